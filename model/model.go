package model

// Coarse part-of-speech tags carried in Token.POS.
const (
	POSVerb  = "VERB"
	POSAdj   = "ADJ"
	POSNoun  = "NOUN"
	POSPropn = "PROPN"
	POSPron  = "PRON"
	POSNum   = "NUM"
	POSAux   = "AUX"
	POSAdp   = "ADP"
	POSSconj = "SCONJ"
	POSCconj = "CCONJ"
	POSPart  = "PART"
	POSAdv   = "ADV"
	POSDet   = "DET"
	POSIntj  = "INTJ"
	POSPunct = "PUNCT"
	POSSym   = "SYM"
	POSSpace = "SPACE"
	POSX     = "X"
)

// Token represents a token / morpheme produced by the tokenizer.
type Token struct {
	Index          int    `json:"index"`
	Text           string `json:"text"`
	Lemma          string `json:"lemma,omitempty"`
	Norm           string `json:"norm,omitempty"`
	POS            string `json:"pos,omitempty"`
	Tag            string `json:"tag,omitempty"`
	InflectionType string `json:"inflection_type,omitempty"`
	InflectionForm string `json:"inflection_form,omitempty"`
	Reading        string `json:"reading,omitempty"`
	Head           int    `json:"head"`
	Start          int    `json:"start"`
	End            int    `json:"end"`
}

// IsRoot reports whether the token heads itself.
func (t Token) IsRoot() bool {
	return t.Head == t.Index
}

// Sentence is an ordered token sequence with a designated root.
// Token.Index and Token.Head are positions within Tokens.
type Sentence struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
	Root   int     `json:"root"`
}

// RootToken returns the sentence root, or false for an empty sentence.
func (s Sentence) RootToken() (Token, bool) {
	if s.Root < 0 || s.Root >= len(s.Tokens) {
		return Token{}, false
	}
	return s.Tokens[s.Root], true
}

// Lefts returns the dependents of token i that precede it.
func (s Sentence) Lefts(i int) []Token {
	var out []Token
	for _, t := range s.Tokens {
		if t.Index >= i {
			break
		}
		if t.Head == i {
			out = append(out, t)
		}
	}
	return out
}

// Rights returns the dependents of token i that follow it.
func (s Sentence) Rights(i int) []Token {
	var out []Token
	for _, t := range s.Tokens {
		if t.Index > i && t.Head == i {
			out = append(out, t)
		}
	}
	return out
}

// Span returns tokens[start:end], clamped to the sentence bounds.
func (s Sentence) Span(start, end int) []Token {
	if start < 0 {
		start = 0
	}
	if end > len(s.Tokens) {
		end = len(s.Tokens)
	}
	if start >= end {
		return nil
	}
	return s.Tokens[start:end]
}

// Document is the analysed form of one utterance.
type Document struct {
	Text      string     `json:"text"`
	Sentences []Sentence `json:"sentences"`
}

// Surface joins the token texts of a span.
func Surface(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	b := make([]byte, 0, n)
	for _, t := range tokens {
		b = append(b, t.Text...)
	}
	return string(b)
}
