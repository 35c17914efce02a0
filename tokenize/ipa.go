package tokenize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"oumugaeshi/kana"
	"oumugaeshi/model"
)

// IPA feature columns as laid out by kagome-dict/ipa.
const (
	ipaPOSEnd = 4
	ipaCType  = 4
	ipaCForm  = 5
	ipaBase   = 6
	ipaPron   = 8
)

// fromIPA converts an IPA morpheme into the UniDic vocabulary the rest of
// the pipeline speaks.
func fromIPA(surface string, f []string) model.Token {
	lemma := feature(f, ipaBase)
	if lemma == "" {
		lemma = surface
	}
	tag := ipaTag(f, lemma)
	t := model.Token{
		Text:           surface,
		Lemma:          lemma,
		Norm:           width.Fold.String(lemma),
		Tag:            tag,
		POS:            universalPOS(tag),
		InflectionForm: ipaForm(surface, feature(f, ipaCType), feature(f, ipaCForm)),
		Reading:        feature(f, ipaPron),
	}
	if strings.HasPrefix(tag, "助動詞") {
		t.InflectionType = ipaAuxType(feature(f, ipaCType), lemma)
	} else {
		t.InflectionType = ipaType(feature(f, ipaCType))
	}
	return t
}

var voiceAuxiliaries = map[string]bool{"れる": true, "られる": true, "せる": true, "させる": true}

func ipaTag(f []string, lemma string) string {
	pos1, pos2, pos3 := feature(f, 0), feature(f, 1), feature(f, 2)
	switch pos1 {
	case "名詞":
		switch pos2 {
		case "形容動詞語幹":
			return "形状詞-一般"
		case "固有名詞":
			return "名詞-固有名詞"
		case "代名詞":
			return "代名詞"
		case "数":
			return "名詞-数詞"
		case "接尾":
			return "接尾辞-名詞的"
		case "サ変接続":
			return "名詞-普通名詞-サ変可能"
		case "副詞可能":
			return "名詞-普通名詞-副詞可能"
		case "非自立":
			if lemma == "ん" || lemma == "の" {
				return "助詞-準体助詞"
			}
		case "特殊":
			if pos3 == "助動詞語幹" {
				return "形状詞-助動詞語幹"
			}
		}
		return "名詞-普通名詞-一般"
	case "動詞":
		switch pos2 {
		case "非自立":
			return "動詞-非自立可能"
		case "接尾":
			if voiceAuxiliaries[lemma] {
				return "助動詞"
			}
			return "接尾辞-動詞的"
		}
		return "動詞-一般"
	case "形容詞":
		switch pos2 {
		case "非自立":
			return "形容詞-非自立可能"
		case "接尾":
			return "接尾辞-形容詞的"
		}
		return "形容詞-一般"
	case "助動詞":
		return "助動詞"
	case "助詞":
		switch pos2 {
		case "格助詞", "連体化", "副詞化":
			return "助詞-格助詞"
		case "係助詞":
			return "助詞-係助詞"
		case "接続助詞":
			return "助詞-接続助詞"
		case "終助詞":
			return "助詞-終助詞"
		}
		return "助詞-副助詞"
	case "副詞":
		return "副詞"
	case "連体詞":
		return "連体詞"
	case "接続詞":
		return "接続詞"
	case "感動詞":
		return "感動詞-一般"
	case "フィラー":
		return "感動詞-フィラー"
	case "接頭詞":
		return "接頭辞"
	case "記号":
		switch pos2 {
		case "句点":
			return "補助記号-句点"
		case "読点":
			return "補助記号-読点"
		case "括弧開":
			return "補助記号-括弧開"
		case "括弧閉":
			return "補助記号-括弧閉"
		case "空白":
			return "空白"
		}
		return "補助記号-一般"
	}
	return pos1
}

// ipaType maps an IPA conjugation type onto the UniDic class names.
func ipaType(ctype string) string {
	switch {
	case ctype == "":
		return ""
	case strings.HasPrefix(ctype, "五段・"):
		row := strings.TrimPrefix(ctype, "五段・")
		if r, size := utf8.DecodeRuneInString(row); size > 0 {
			row = string(r) + "行"
		}
		if row == "ワ行" {
			row = "ワア行"
		}
		return "五段-" + row
	case strings.HasPrefix(ctype, "一段"):
		return "下一段"
	case strings.HasPrefix(ctype, "カ変"):
		return "カ行変格"
	case strings.HasPrefix(ctype, "サ変"):
		return "サ行変格"
	case strings.HasPrefix(ctype, "形容詞"):
		return "形容詞"
	case ctype == "不変化型":
		return ""
	}
	return ctype
}

var invariantAuxiliaries = map[string]string{
	"ん":  "助動詞-ヌ",
	"ぬ":  "助動詞-ヌ",
	"う":  "助動詞-ウ",
	"よう": "助動詞-ヨウ",
	"まい": "助動詞-マイ",
}

// ipaAuxType names auxiliaries the way UniDic does (助動詞-タ, 助動詞-レル).
func ipaAuxType(ctype, lemma string) string {
	switch {
	case strings.HasPrefix(ctype, "特殊・"):
		return "助動詞-" + strings.TrimPrefix(ctype, "特殊・")
	case strings.HasPrefix(ctype, "文語・"):
		return "文語助動詞-" + strings.TrimPrefix(ctype, "文語・")
	}
	if t, ok := invariantAuxiliaries[lemma]; ok {
		return t
	}
	return "助動詞-" + kana.HiraganaToKatakana(lemma)
}

var ipaForms = map[string]string{
	"基本形":     "終止形-一般",
	"文語基本形":   "終止形-一般",
	"音便基本形":   "終止形-撥音便",
	"未然形":     "未然形-一般",
	"未然ヌ接続":   "未然形-一般",
	"未然ウ接続":   "意志推量形",
	"未然レル接続":  "未然形-サ",
	"連用形":     "連用形-一般",
	"連用テ接続":   "連用形-一般",
	"連用デ接続":   "連用形-一般",
	"連用ゴザイ接続": "連用形-ウ音便",
	"仮定形":     "仮定形-一般",
	"仮定縮約１":   "仮定形-融合",
	"体言接続":    "連体形-一般",
	"ガル接続":    "語幹-一般",
}

func ipaForm(surface, ctype, cform string) string {
	if cform == "" {
		return ""
	}
	switch {
	case cform == "連用タ接続":
		switch {
		case strings.HasSuffix(surface, "っ"):
			return "連用形-促音便"
		case strings.HasSuffix(surface, "ん"):
			return "連用形-撥音便"
		case strings.HasSuffix(surface, "い") && strings.HasPrefix(ctype, "五段"):
			return "連用形-イ音便"
		}
		return "連用形-一般"
	case strings.HasPrefix(cform, "命令"):
		return "命令形"
	case cform == "未然形" && (ctype == "特殊・ダ" || ctype == "特殊・デス" || ctype == "特殊・マス") &&
		(strings.HasSuffix(surface, "ろ") || strings.HasSuffix(surface, "しょ")):
		// だろ, でしょ, ましょ
		return "意志推量形"
	}
	if f, ok := ipaForms[cform]; ok {
		return f
	}
	return cform
}

// promoteFinalParticles retags the ambiguous IPA particle class
// 副助詞／並立助詞／終助詞 as sentence-final when nothing but punctuation
// follows it.
func promoteFinalParticles(tokens []model.Token, raw [][]string) {
	for i := len(tokens) - 1; i >= 0; i-- {
		t := tokens[i]
		if t.POS == model.POSPunct || t.POS == model.POSSpace {
			continue
		}
		if feature(raw[i], 1) == "副助詞／並立助詞／終助詞" {
			tokens[i].Tag = "助詞-終助詞"
			tokens[i].POS = model.POSPart
			continue
		}
		return
	}
}

// resolveSou separates the two readings IPA gives one そう tag. After a
// conclusive form it is hearsay (降るそうだ); otherwise it is appearance
// (降りそうだ, 高そうだ). A た between a godan continuative and appearance
// そう is the たい stem (行きたそうだ), which IPA prefers to read as past.
func resolveSou(tokens []model.Token, raw [][]string) {
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Tag != "形状詞-助動詞語幹" || tokens[i].Lemma != "そう" {
			continue
		}
		prev := &tokens[i-1]
		if prev.InflectionType == "助動詞-タ" && i >= 2 && isGodanContinuative(raw[i-2]) {
			prev.InflectionType = "助動詞-タイ"
			prev.InflectionForm = "語幹-一般"
			prev.Lemma = "たい"
			prev.Norm = "たい"
		}
		if strings.HasPrefix(prev.InflectionForm, "終止形") {
			tokens[i].Tag = "名詞-助動詞語幹"
		}
	}
}

func isGodanContinuative(f []string) bool {
	ctype := feature(f, ipaCType)
	return feature(f, 0) == "動詞" && feature(f, ipaCForm) == "連用形" &&
		strings.HasPrefix(ctype, "五段・") && !strings.HasPrefix(ctype, "五段・サ行")
}
