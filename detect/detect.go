// Package detect classifies parsed tokens into an inflected root text and the
// appendants that follow it.
package detect

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"oumugaeshi/jodoushi"
	"oumugaeshi/katsuyo"
	"oumugaeshi/model"
)

const stage = "detect"

// ErrNotDetected matches every MissError.
var ErrNotDetected = errors.New("not detected")

// MissError reports a token that could not be classified. Warn is set when
// the token looked classifiable but carried an unknown inflection payload.
type MissError struct {
	Token  model.Token
	Reason string
	Warn   bool
}

func (e *MissError) Error() string {
	return fmt.Sprintf("detect: %q not detected: %s", e.Token.Text, e.Reason)
}

func (e *MissError) Is(target error) bool { return target == ErrNotDetected }

// Options configures a Detector.
type Options struct {
	// IgnoredAuxiliaries are auxiliary inflection types that add nothing to a
	// rebuilt ending (the copula and polite forms).
	IgnoredAuxiliaries []string
}

// Detector is safe for concurrent use; it holds only read-only rule sets.
type Detector struct {
	ignored map[string]struct{}
}

// New returns a Detector for opts.
func New(opts Options) *Detector {
	d := &Detector{ignored: make(map[string]struct{}, len(opts.IgnoredAuxiliaries))}
	for _, s := range opts.IgnoredAuxiliaries {
		d.ignored[s] = struct{}{}
	}
	return d
}

// Root maps a token to its open inflected text.
func (d *Detector) Root(tok model.Token) (katsuyo.KatsuyoText, error) {
	switch tok.POS {
	case model.POSVerb:
		return verbRoot(tok)
	case model.POSAdj:
		if strings.HasPrefix(tok.Tag, "形状詞") {
			return katsuyo.KatsuyoText{Gokan: lemma(tok), Katsuyo: katsuyo.Keiyoudoushi}, nil
		}
		if strings.Contains(tok.InflectionType, "形容詞") {
			return katsuyo.KatsuyoText{Gokan: dropLast(lemma(tok)), Katsuyo: katsuyo.Keiyoushi}, nil
		}
		return katsuyo.KatsuyoText{}, &MissError{Token: tok, Reason: fmt.Sprintf("unrecognized adjective inflection %q", tok.InflectionType), Warn: true}
	case model.POSNoun, model.POSPropn:
		return katsuyo.KatsuyoText{Gokan: tok.Text, Katsuyo: katsuyo.Keiyoudoushi}, nil
	}
	return katsuyo.KatsuyoText{}, &MissError{Token: tok, Reason: fmt.Sprintf("part of speech %s cannot anchor a root", tok.POS)}
}

var godanRows = map[string]*katsuyo.Katsuyo{
	"カ行":  katsuyo.GodanKa,
	"ガ行":  katsuyo.GodanGa,
	"サ行":  katsuyo.GodanSa,
	"タ行":  katsuyo.GodanTa,
	"ナ行":  katsuyo.GodanNa,
	"バ行":  katsuyo.GodanBa,
	"マ行":  katsuyo.GodanMa,
	"ラ行":  katsuyo.GodanRa,
	"ワア行": katsuyo.GodanWa,
	"ワ行":  katsuyo.GodanWa,
}

var ikuLemmas = map[string]bool{"行く": true, "いく": true, "逝く": true, "往く": true}

func verbRoot(tok model.Token) (katsuyo.KatsuyoText, error) {
	typ := tok.InflectionType
	base := lemma(tok)
	miss := func(reason string) (katsuyo.KatsuyoText, error) {
		return katsuyo.KatsuyoText{}, &MissError{Token: tok, Reason: reason, Warn: true}
	}
	switch {
	case strings.HasPrefix(typ, "五段-"):
		row := strings.TrimPrefix(typ, "五段-")
		if i := strings.Index(row, "-"); i >= 0 {
			row = row[:i]
		}
		k, ok := godanRows[row]
		if !ok {
			return miss(fmt.Sprintf("unknown godan row %q", row))
		}
		if k == katsuyo.GodanKa && ikuLemmas[base] {
			k = katsuyo.GodanKaIku
		}
		return katsuyo.KatsuyoText{Gokan: dropLast(base), Katsuyo: k}, nil
	case strings.HasPrefix(typ, "上一段"), strings.HasPrefix(typ, "下一段"):
		if !strings.HasSuffix(base, "る") {
			return miss(fmt.Sprintf("ichidan lemma %q does not end in る", base))
		}
		k := katsuyo.ShimoIchidan
		if strings.HasPrefix(typ, "上一段") {
			k = katsuyo.KamiIchidan
		}
		return katsuyo.KatsuyoText{Gokan: strings.TrimSuffix(base, "る"), Katsuyo: k}, nil
	case strings.HasPrefix(typ, "カ行変格"):
		if strings.HasSuffix(base, "来る") {
			return katsuyo.KatsuyoText{Gokan: strings.TrimSuffix(base, "来る"), Katsuyo: katsuyo.KahenKuruKanji}, nil
		}
		return katsuyo.KatsuyoText{Gokan: strings.TrimSuffix(base, "くる"), Katsuyo: katsuyo.KahenKuru}, nil
	case strings.HasPrefix(typ, "サ行変格"):
		if strings.HasSuffix(base, "ずる") {
			return katsuyo.KatsuyoText{Gokan: strings.TrimSuffix(base, "ずる"), Katsuyo: katsuyo.SahenZuru}, nil
		}
		gokan := strings.TrimSuffix(strings.TrimSuffix(base, "する"), "為る")
		return katsuyo.KatsuyoText{Gokan: gokan, Katsuyo: katsuyo.SahenSuru}, nil
	}
	return miss(fmt.Sprintf("unsupported verb inflection %q", typ))
}

// Appendants maps the tokens that follow the root to appendants, in order.
// Tokens that cannot be mapped are skipped and reported as diagnostics.
func (d *Detector) Appendants(tail []model.Token) ([]katsuyo.Appendant, []model.Diagnostic) {
	var (
		out   []katsuyo.Appendant
		diags []model.Diagnostic
	)
	miss := func(tok model.Token, format string, args ...any) {
		t := tok
		diags = append(diags, model.Diagnostic{Stage: stage, Token: &t, Message: fmt.Sprintf(format, args...)})
	}
	for i := 0; i < len(tail); i++ {
		tok := tail[i]
		switch {
		case isAuxiliary(tok):
			if lemma(tok) == "いる" || lemma(tok) == "居る" || lemma(tok) == "おる" {
				// bare いる without a preceding て is part of the previous appendant
				continue
			}
			a, ok := d.auxiliary(tail, i)
			if ok {
				if a != nil {
					out = append(out, a)
				}
				continue
			}
			miss(tok, "unsupported auxiliary %s", tok.InflectionType)
		case tok.Tag == "助詞-接続助詞" && (tok.Norm == "て" || tok.Norm == "で"):
			if i+1 < len(tail) && isIru(tail[i+1]) {
				out = append(out, jodoushi.SustainedAspect{})
				i++
				continue
			}
			if i+1 < len(tail) && isHelperVerb(tail[i+1]) {
				next := tail[i+1]
				v, err := verbRoot(next)
				if err != nil {
					miss(next, "helper verb: %v", err)
					i++
					continue
				}
				out = append(out, jodoushi.TeHelper{Verb: v})
				i++
				continue
			}
			out = append(out, jodoushi.Continuation{})
		case tok.Tag == "助詞-準体助詞", tok.POS == model.POSPunct, tok.POS == model.POSSpace:
		default:
			miss(tok, "token does not contribute to the ending")
		}
	}
	return out, diags
}

// auxiliary classifies tail[i]. A nil appendant with true means the token is
// known and contributes nothing.
//
// UniDic types the voice auxiliaries by their own conjugation (せる is
// 下一段-サ行, られる is 助動詞-レル), so they are matched by lemma.
func (d *Detector) auxiliary(tail []model.Token, i int) (katsuyo.Appendant, bool) {
	tok := tail[i]
	if strings.HasPrefix(tok.Tag, "助動詞") {
		switch lemma(tok) {
		case "れる", "られる":
			return jodoushi.Passive{}, true
		case "せる", "させる":
			return jodoushi.Causative{}, true
		case "たがる":
			return jodoushi.DesiderativeOther{}, true
		}
	}
	if contractions[lemma(tok)] {
		v, err := verbRoot(tok)
		if err != nil {
			return nil, false
		}
		return jodoushi.TeContraction{Verb: v}, true
	}
	switch tok.InflectionType {
	case "助動詞-レル", "助動詞-ラレル":
		return jodoushi.Passive{}, true
	case "助動詞-セル", "助動詞-サセル":
		return jodoushi.Causative{}, true
	case "助動詞-ナイ", "助動詞-ヌ":
		return jodoushi.Negation{}, true
	case "助動詞-タイ":
		return jodoushi.DesiderativeSelf{}, true
	case "助動詞-タ":
		return jodoushi.PastCompletion{}, true
	case "助動詞-ラシイ":
		return jodoushi.Likelihood{}, true
	case "助動詞-ダ":
		if strings.HasPrefix(tok.InflectionForm, "意志推量形") && i+1 < len(tail) && lemma(tail[i+1]) == "う" {
			return jodoushi.Conjecture{}, true
		}
	}
	switch {
	case lemma(tok) == "そう" && strings.HasPrefix(tok.Tag, "名詞-助動詞語幹"):
		return jodoushi.Hearsay{}, true
	case lemma(tok) == "そう" && strings.HasPrefix(tok.Tag, "形状詞-助動詞語幹"):
		return jodoushi.Appearance{}, true
	case lemma(tok) == "う" && i > 0 && tail[i-1].InflectionType == "助動詞-ダ":
		return nil, true
	}
	if _, ok := d.ignored[tok.InflectionType]; ok {
		return nil, true
	}
	return nil, false
}

// Helpers fused with their て. UniDic tags them as auxiliaries, IPA as bound
// verbs.
var contractions = map[string]bool{
	"ちゃう": true, "じゃう": true, "ちまう": true, "じまう": true,
	"てる": true, "でる": true, "とく": true, "どく": true,
}

func isAuxiliary(tok model.Token) bool {
	return tok.POS == model.POSAux || strings.HasPrefix(tok.Tag, "助動詞")
}

// isHelperVerb reports a bound verb the tokenizer retagged as a helper.
func isHelperVerb(tok model.Token) bool {
	return tok.POS == model.POSAux && strings.HasPrefix(tok.Tag, "動詞")
}

func isIru(tok model.Token) bool {
	switch lemma(tok) {
	case "いる", "居る", "おる":
		return true
	}
	return false
}

func lemma(tok model.Token) string {
	if tok.Lemma != "" {
		return tok.Lemma
	}
	return tok.Text
}

func dropLast(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
