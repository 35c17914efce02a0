// Package analyze groups tokens into phrases (bunsetsu) and selects the
// clause a reflection is built from.
package analyze

import (
	"strings"

	"oumugaeshi/model"
)

// Phrase is a bunsetsu: tokens [Start, End) whose content head is Head.
type Phrase struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Head  int `json:"head"`
}

// Clause is the span a reflection is built from.
type Clause struct {
	Start int `json:"start"`
	End   int `json:"end"`
	Root  int `json:"root"`
}

func isFunction(t model.Token) bool {
	switch t.POS {
	case model.POSAdp, model.POSAux, model.POSPart, model.POSSconj, model.POSPunct, model.POSSpace:
		return true
	}
	return false
}

func isPrefix(t model.Token) bool { return strings.HasPrefix(t.Tag, "接頭辞") }

func isSuffix(t model.Token) bool { return strings.HasPrefix(t.Tag, "接尾辞") }

func nounLike(t model.Token) bool {
	switch t.POS {
	case model.POSNoun, model.POSPropn, model.POSNum, model.POSPron:
		return true
	}
	return false
}

// Phrases chunks tokens into phrases. A content token opens a new phrase
// unless it is glued to the previous one by a prefix, a suffix or noun-noun
// compounding; function tokens always join the open phrase.
func Phrases(tokens []model.Token) []Phrase {
	var out []Phrase
	funcSeen := false
	for i, t := range tokens {
		if len(out) == 0 {
			out = append(out, Phrase{Start: i, End: i + 1, Head: i})
			funcSeen = isFunction(t)
			continue
		}
		cur := &out[len(out)-1]
		if isFunction(t) {
			cur.End = i + 1
			funcSeen = true
			continue
		}
		prev := tokens[i-1]
		if !funcSeen && (isPrefix(prev) || isSuffix(t) || (nounLike(prev) && nounLike(t))) {
			cur.End = i + 1
			cur.Head = i
			continue
		}
		out = append(out, Phrase{Start: i, End: i + 1, Head: i})
		funcSeen = false
	}
	return out
}

// AssignHeads fills Token.Head with a right-branching dependency guess:
// function tokens head to their phrase head, each phrase head to the next
// phrase head, and the last phrase head is the root. It returns the root
// index, or -1 for no tokens.
func AssignHeads(tokens []model.Token) int {
	phrases := Phrases(tokens)
	if len(phrases) == 0 {
		return -1
	}
	for pi, p := range phrases {
		head := p.Head
		next := head
		if pi+1 < len(phrases) {
			next = phrases[pi+1].Head
		}
		for i := p.Start; i < p.End; i++ {
			if i == head {
				tokens[i].Head = next
			} else {
				tokens[i].Head = head
			}
		}
	}
	return phrases[len(phrases)-1].Head
}

// SelectClause picks the root phrase and, when it depends on the root and is
// neither topic-marked nor closed by a comma, the phrase right before it.
// The clause runs to the end of the sentence.
func SelectClause(s model.Sentence) (Clause, bool) {
	if s.Root < 0 || s.Root >= len(s.Tokens) {
		return Clause{}, false
	}
	phrases := Phrases(s.Tokens)
	p := -1
	for i, ph := range phrases {
		if s.Root >= ph.Start && s.Root < ph.End {
			p = i
			break
		}
	}
	if p < 0 {
		return Clause{}, false
	}
	c := Clause{Start: phrases[p].Start, End: len(s.Tokens), Root: s.Root}
	if p > 0 {
		prev := phrases[p-1]
		if dependsOn(s, prev, s.Root) && !topicMarked(s.Tokens[prev.Start:prev.End]) && !commaClosed(s.Tokens[prev.Start:prev.End]) {
			c.Start = prev.Start
		}
	}
	return c, true
}

func dependsOn(s model.Sentence, p Phrase, root int) bool {
	return s.Tokens[p.Head].Head == root
}

// topicMarked reports a phrase closed by the binding particles は or も.
func topicMarked(tokens []model.Token) bool {
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if t.POS == model.POSPunct || t.POS == model.POSSpace {
			continue
		}
		return t.Tag == "助詞-係助詞" && (t.Text == "は" || t.Text == "も")
	}
	return false
}

func commaClosed(tokens []model.Token) bool {
	if len(tokens) == 0 {
		return false
	}
	last := tokens[len(tokens)-1]
	return last.Tag == "補助記号-読点" || last.Text == "、" || last.Text == "，" || last.Text == ","
}

// Connective returns the conjunctive particle closing the phrase right before
// the clause, if any (が, ので, から, けど, ...).
func Connective(s model.Sentence, c Clause) string {
	i := c.Start - 1
	for i >= 0 && (s.Tokens[i].POS == model.POSPunct || s.Tokens[i].POS == model.POSSpace) {
		i--
	}
	if i < 0 {
		return ""
	}
	if t := s.Tokens[i]; t.Tag == "助詞-接続助詞" {
		return t.Text
	}
	return ""
}
