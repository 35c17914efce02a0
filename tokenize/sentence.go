package tokenize

import (
	"strings"

	"oumugaeshi/analyze"
	"oumugaeshi/model"
)

var terminators = map[string]bool{
	"。": true, "．": true, "！": true, "？": true, "!": true, "?": true,
}

func endsSentence(t model.Token) bool {
	return terminators[t.Text] || strings.Contains(t.Text, "\n")
}

// splitSentences cuts tokens after every terminator or newline. Each
// sentence gets its own Index and Head numbering; Start and End stay offsets
// into text. fix runs on every cut [start, end) before heads are assigned.
func splitSentences(text string, tokens []model.Token, fix func(start, end int)) []model.Sentence {
	runes := []rune(text)
	var out []model.Sentence
	start := 0
	flush := func(end int) {
		defer func() { start = end }()
		if end <= start || blank(tokens[start:end]) {
			return
		}
		if fix != nil {
			fix(start, end)
		}
		st := make([]model.Token, end-start)
		copy(st, tokens[start:end])
		for i := range st {
			st[i].Index = i
		}
		root := analyze.AssignHeads(st)
		out = append(out, model.Sentence{
			Text:   strings.TrimSpace(sliceRunes(runes, st[0].Start, st[len(st)-1].End)),
			Tokens: st,
			Root:   root,
		})
	}
	for i, t := range tokens {
		if endsSentence(t) {
			flush(i + 1)
		}
	}
	flush(len(tokens))
	return out
}

func blank(tokens []model.Token) bool {
	for _, t := range tokens {
		if t.POS != model.POSSpace && strings.TrimSpace(t.Text) != "" {
			return false
		}
	}
	return true
}

func sliceRunes(r []rune, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(r) {
		end = len(r)
	}
	if start >= end {
		return ""
	}
	return string(r[start:end])
}
