package jodoushi

import "oumugaeshi/katsuyo"

// Hearsay is そうだ after the conclusive form (伝聞).
type Hearsay struct{}

func (Hearsay) String() string { return "Hearsay(そうだ)" }

func (h Hearsay) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	return attach(left, katsuyo.Shushi, open("そう", katsuyo.Keiyoudoushi), h)
}

// Appearance is そうだ after the continuative form (様態): 降りそう, 高そう,
// 静かそう. よい and ない insert さ (よさそう, なさそう).
type Appearance struct{}

func (Appearance) String() string { return "Appearance(そうだ)" }

var appearanceSa = map[string]bool{"よ": true, "良": true, "善": true, "な": true, "無": true}

func (a Appearance) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	sou := open("そう", katsuyo.Keiyoudoushi)
	kt, ok := left.(katsuyo.KatsuyoText)
	if !ok {
		return katsuyo.Concat(left, sou), nil
	}
	switch kt.Class().Category() {
	case katsuyo.Adjective:
		stem := kt.Gokan
		if appearanceSa[stem] {
			stem += "さ"
		}
		return katsuyo.Concat(katsuyo.NonKatsuyoText{Text: stem}, sou), nil
	case katsuyo.AdjectivalNoun:
		return katsuyo.Concat(katsuyo.NonKatsuyoText{Text: kt.Gokan}, sou), nil
	}
	return attach(left, katsuyo.Renyo, sou, a)
}

// Conjecture is だろう (推量). Both dictionaries emit だろう as a single
// volitional copula token, which the trimmer cancels, so a parsed utterance
// never reaches it; it is only built by direct composition.
type Conjecture struct{}

func (Conjecture) String() string { return "Conjecture(だろう)" }

func (c Conjecture) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	l, err := stemOrShushi(left, c)
	if err != nil {
		return nil, err
	}
	return katsuyo.Concat(l, open("だろう", katsuyo.Mukatsuyo)), nil
}

// Likelihood is らしい (推定).
type Likelihood struct{}

func (Likelihood) String() string { return "Likelihood(らしい)" }

func (l Likelihood) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	prev, err := stemOrShushi(left, l)
	if err != nil {
		return nil, err
	}
	return katsuyo.Concat(prev, open("らし", katsuyo.Keiyoushi)), nil
}

// IndirectHonorific is the polite ます.
type IndirectHonorific struct{}

func (IndirectHonorific) String() string { return "IndirectHonorific(ます)" }

func (i IndirectHonorific) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	if err := requireVerb(left, i); err != nil {
		return nil, err
	}
	return attach(left, katsuyo.Renyo, open("ま", katsuyo.JodoushiMasu), i)
}

// stemOrShushi resolves left to its conclusive form, except that adjectival
// nouns attach by their bare stem (静かだろう, 学生らしい).
func stemOrShushi(left katsuyo.Element, who any) (katsuyo.Element, error) {
	if kt, ok := left.(katsuyo.KatsuyoText); ok && kt.Class().Category() == katsuyo.AdjectivalNoun {
		return katsuyo.NonKatsuyoText{Text: kt.Gokan}, nil
	}
	return katsuyo.Extract(left, katsuyo.Shushi, who)
}
