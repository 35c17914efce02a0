package tokenize

import (
	"strings"

	"golang.org/x/text/width"

	"oumugaeshi/model"
)

// UniDic feature columns as laid out by kagome-dict/uni.
const (
	uniPOSEnd   = 4
	uniCType    = 4
	uniCForm    = 5
	uniLemma    = 7
	uniPron     = 9
	uniOrthBase = 10
)

func feature(f []string, i int) string {
	if i >= len(f) || f[i] == "*" {
		return ""
	}
	return f[i]
}

func joinPOS(f []string, end int) string {
	parts := make([]string, 0, end)
	for i := 0; i < end && i < len(f); i++ {
		if p := feature(f, i); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "-")
}

// fromUni converts a UniDic morpheme.
func fromUni(surface string, f []string) model.Token {
	lemma := feature(f, uniOrthBase)
	if lemma == "" {
		lemma = feature(f, uniLemma)
	}
	if lemma == "" {
		lemma = surface
	}
	tag := joinPOS(f, uniPOSEnd)
	return model.Token{
		Text:           surface,
		Lemma:          lemma,
		Norm:           width.Fold.String(lemma),
		Tag:            tag,
		POS:            universalPOS(tag),
		InflectionType: feature(f, uniCType),
		InflectionForm: feature(f, uniCForm),
		Reading:        feature(f, uniPron),
	}
}

// universalPOS maps a UniDic tag to a coarse tag.
func universalPOS(tag string) string {
	parts := strings.SplitN(tag, "-", 3)
	pos1 := parts[0]
	pos2 := ""
	if len(parts) > 1 {
		pos2 = parts[1]
	}
	switch pos1 {
	case "名詞":
		switch pos2 {
		case "固有名詞":
			return model.POSPropn
		case "数詞":
			return model.POSNum
		case "助動詞語幹":
			// hearsay そう
			return model.POSAux
		}
		return model.POSNoun
	case "代名詞":
		return model.POSPron
	case "形状詞":
		if pos2 == "助動詞語幹" {
			return model.POSAux
		}
		return model.POSAdj
	case "連体詞":
		return model.POSDet
	case "副詞":
		return model.POSAdv
	case "接続詞":
		return model.POSCconj
	case "感動詞":
		return model.POSIntj
	case "動詞":
		return model.POSVerb
	case "形容詞":
		return model.POSAdj
	case "助動詞":
		return model.POSAux
	case "助詞":
		switch pos2 {
		case "接続助詞", "準体助詞":
			return model.POSSconj
		case "終助詞":
			return model.POSPart
		}
		return model.POSAdp
	case "接頭辞":
		return model.POSNoun
	case "接尾辞":
		switch pos2 {
		case "形容詞的", "形状詞的":
			return model.POSAdj
		case "動詞的":
			return model.POSVerb
		}
		return model.POSNoun
	case "補助記号":
		switch pos2 {
		case "句点", "読点", "括弧開", "括弧閉":
			return model.POSPunct
		case "空白":
			return model.POSSpace
		}
		return model.POSSym
	case "記号":
		return model.POSSym
	case "空白":
		return model.POSSpace
	}
	return model.POSX
}

// Verbs that act as aspect or benefactive helpers after て/で.
var helperVerbs = map[string]bool{
	"いる": true, "居る": true, "おる": true, "ある": true, "有る": true,
	"行く": true, "いく": true, "来る": true, "くる": true,
	"しまう": true, "仕舞う": true, "おく": true, "置く": true, "みる": true, "見る": true,
	"もらう": true, "貰う": true, "くれる": true, "呉れる": true, "あげる": true, "上げる": true,
}

// Fused て helpers the IPA dictionary tags as bound verbs.
var contractedHelpers = map[string]bool{
	"ちゃう": true, "じゃう": true, "ちまう": true, "じまう": true,
}

// markHelperVerbs retags bound verbs that follow the connective て/で as AUX,
// along with the fused helpers.
func markHelperVerbs(tokens []model.Token) {
	for i := range tokens {
		cur := tokens[i]
		if cur.Tag != "動詞-非自立可能" {
			continue
		}
		if contractedHelpers[cur.Lemma] {
			tokens[i].POS = model.POSAux
			continue
		}
		if i == 0 {
			continue
		}
		prev := tokens[i-1]
		if prev.Tag != "助詞-接続助詞" || (prev.Norm != "て" && prev.Norm != "で") {
			continue
		}
		if helperVerbs[cur.Lemma] {
			tokens[i].POS = model.POSAux
		}
	}
}
