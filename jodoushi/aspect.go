package jodoushi

import (
	"fmt"

	"oumugaeshi/katsuyo"
)

// PastCompletion is た/だ (過去・完了).
type PastCompletion struct{}

func (PastCompletion) String() string { return "PastCompletion(た)" }

func (p PastCompletion) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	ta := voiceTa(left, "た", "だ")
	return attach(left, onbinForm(left), open(ta, katsuyo.JodoushiTa), p)
}

// SustainedAspect is ている/でいる (継続).
type SustainedAspect struct{}

func (SustainedAspect) String() string { return "SustainedAspect(ている)" }

func (s SustainedAspect) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	if err := requireVerb(left, s); err != nil {
		return nil, err
	}
	te := voiceTa(left, "て", "で")
	return attach(left, onbinForm(left), open(te+"い", katsuyo.KamiIchidan), s)
}

// Continuation is the connective て/で form.
type Continuation struct{}

func (Continuation) String() string { return "Continuation(て)" }

func (c Continuation) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	kt, ok := left.(katsuyo.KatsuyoText)
	if !ok {
		return katsuyo.Concat(left, open(voiceTa(left, "て", "で"), katsuyo.Mukatsuyo)), nil
	}
	switch kt.Class().Category() {
	case katsuyo.Adjective:
		// 高くて
		return attach(left, katsuyo.Renyo, open("て", katsuyo.Mukatsuyo), c)
	case katsuyo.AdjectivalNoun:
		// 静かで
		return attach(left, katsuyo.Renyo, open("", katsuyo.Mukatsuyo), c)
	}
	return attach(left, onbinForm(left), open(voiceTa(left, "て", "で"), katsuyo.Mukatsuyo), c)
}

// TeHelper is a helper verb after the connective て: てしまう, てみる,
// ておく. Verb is the open text of the helper, so later endings inflect it.
type TeHelper struct {
	Verb katsuyo.KatsuyoText
}

func (h TeHelper) String() string { return fmt.Sprintf("TeHelper(て%s)", h.Verb.Surface()) }

func (h TeHelper) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	te, err := Continuation{}.MergeOnto(left)
	if err != nil {
		return nil, err
	}
	return katsuyo.Concat(te, h.Verb), nil
}

// TeContraction is a helper fused with its て (ちゃう, てる, とく). Verb
// already spells the plain or voiced onset the stem selected.
type TeContraction struct {
	Verb katsuyo.KatsuyoText
}

func (c TeContraction) String() string { return fmt.Sprintf("TeContraction(%s)", c.Verb.Surface()) }

func (c TeContraction) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	if err := requireVerb(left, c); err != nil {
		return nil, err
	}
	return attach(left, onbinForm(left), c.Verb, c)
}

// onbinForm is the form た and て attach to: the onbin continuative when the
// class has one.
func onbinForm(left katsuyo.Element) katsuyo.Form {
	if kt, ok := left.(katsuyo.KatsuyoText); ok && !kt.Class().Has(katsuyo.RenyoTa) {
		return katsuyo.Renyo
	}
	return katsuyo.RenyoTa
}
