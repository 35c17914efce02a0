// Package trim walks a clause from its last token backwards and cuts off the
// trailing tokens that should not be echoed back.
package trim

import (
	"strings"

	"oumugaeshi/kana"
	"oumugaeshi/model"
)

// Decision is the outcome for one visited token.
type Decision int

const (
	// Continue drops the token and visits the one to its left.
	Continue Decision = iota
	// Stop keeps the token as the new rightmost token.
	Stop
	// Cancel rejects the whole utterance.
	Cancel
)

func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case Stop:
		return "stop"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// Reason qualifies a Cancel decision.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonToken
	ReasonDialect
)

func (r Reason) String() string {
	switch r {
	case ReasonToken:
		return "token"
	case ReasonDialect:
		return "dialect"
	}
	return "none"
}

// Rules holds the membership lists the trimmer decides by. Auxiliaries are
// matched on their inflection type, particles and punctuation on their norm
// with katakana folded to hiragana (ネ matches ね).
type Rules struct {
	AuxiliaryTrimmable     []string
	AuxiliaryCancel        []string
	AuxiliaryDialect       []string
	SentenceFinalTrimmable []string
	SentenceFinalCancel    []string
	SentenceFinalDialect   []string
	ConnectiveDialect      []string
	QuestionMarks          []string
	VolitionalForms        []string
}

type set map[string]struct{}

func newSet(items []string) set {
	s := make(set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s set) has(v string) bool {
	_, ok := s[v]
	return ok
}

// Trimmer is immutable once built and safe for concurrent use.
type Trimmer struct {
	auxTrim, auxCancel, auxDialect       set
	finalTrim, finalCancel, finalDialect set
	connDialect, questions               set
	volitional                           []string
}

// New compiles rules into a Trimmer.
func New(r Rules) *Trimmer {
	return &Trimmer{
		auxTrim:      newSet(r.AuxiliaryTrimmable),
		auxCancel:    newSet(r.AuxiliaryCancel),
		auxDialect:   newSet(r.AuxiliaryDialect),
		finalTrim:    newSet(r.SentenceFinalTrimmable),
		finalCancel:  newSet(r.SentenceFinalCancel),
		finalDialect: newSet(r.SentenceFinalDialect),
		connDialect:  newSet(r.ConnectiveDialect),
		questions:    newSet(r.QuestionMarks),
		volitional:   append([]string(nil), r.VolitionalForms...),
	}
}

// Trim returns the longest acceptable prefix of span. The result aliases span.
// A cancelling token yields a *CancelledByTokenError or a
// *DialectNotSupportedError; a span with no acceptable token yields nil.
func (t *Trimmer) Trim(span []model.Token) ([]model.Token, error) {
	for i := len(span) - 1; i >= 0; i-- {
		d, reason := t.Decide(span, i)
		switch d {
		case Stop:
			return span[:i+1], nil
		case Cancel:
			if reason == ReasonDialect {
				return nil, &DialectNotSupportedError{Token: span[i]}
			}
			return nil, &CancelledByTokenError{Token: span[i]}
		}
	}
	return nil, nil
}

// Decide classifies span[i]. The left neighbour is consulted for the polite
// negative ません.
func (t *Trimmer) Decide(span []model.Token, i int) (Decision, Reason) {
	tok := span[i]
	for _, f := range t.volitional {
		if f != "" && strings.HasPrefix(tok.InflectionForm, f) {
			return Cancel, ReasonToken
		}
	}
	switch {
	case isAuxiliary(tok):
		typ := tok.InflectionType
		switch {
		case t.auxCancel.has(typ):
			if typ == "助動詞-ヌ" && i > 0 && span[i-1].InflectionType == "助動詞-マス" {
				return Stop, ReasonNone
			}
			return Cancel, ReasonToken
		case t.auxDialect.has(typ):
			return Cancel, ReasonDialect
		case t.auxTrim.has(typ):
			return Continue, ReasonNone
		}
		return Stop, ReasonNone
	case tok.Tag == "助詞-終助詞":
		norm := kana.KatakanaToHiragana(tok.Norm)
		switch {
		case t.finalCancel.has(norm):
			return Cancel, ReasonToken
		case t.finalDialect.has(norm):
			return Cancel, ReasonDialect
		case t.finalTrim.has(norm):
			return Continue, ReasonNone
		}
		return Stop, ReasonNone
	case tok.Tag == "助詞-接続助詞":
		if t.connDialect.has(kana.KatakanaToHiragana(tok.Norm)) {
			return Cancel, ReasonDialect
		}
		return Stop, ReasonNone
	case tok.Tag == "助詞-準体助詞":
		return Continue, ReasonNone
	case strings.HasPrefix(tok.Tag, "感動詞"), strings.HasPrefix(tok.Tag, "連体詞"),
		tok.POS == model.POSIntj, tok.POS == model.POSDet, tok.POS == model.POSSpace:
		return Continue, ReasonNone
	case tok.POS == model.POSPunct, strings.HasPrefix(tok.Tag, "補助記号"):
		if t.questions.has(tok.Norm) || t.questions.has(tok.Text) {
			return Cancel, ReasonToken
		}
		return Continue, ReasonNone
	}
	return Stop, ReasonNone
}

func isAuxiliary(tok model.Token) bool {
	return strings.HasPrefix(tok.Tag, "助動詞") || (tok.POS == model.POSAux && !strings.HasPrefix(tok.Tag, "動詞"))
}
