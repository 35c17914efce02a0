package jodoushi

import "oumugaeshi/katsuyo"

// Negation is ない (否定).
type Negation struct{}

func (Negation) String() string { return "Negation(ない)" }

func (n Negation) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	return attach(left, katsuyo.RenyoNai, open("な", katsuyo.Keiyoushi), n)
}

// DesiderativeSelf is たい, the speaker's own wish (希望).
type DesiderativeSelf struct{}

func (DesiderativeSelf) String() string { return "DesiderativeSelf(たい)" }

func (d DesiderativeSelf) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	if kt, ok := left.(katsuyo.KatsuyoText); ok && !kt.Class().IsVerb() {
		return nil, unsupported(left, d, "たい cannot follow %s (%s)", kt.Class().Category(), kt.Class().Name())
	}
	return attach(left, katsuyo.Renyo, open("た", katsuyo.Keiyoushi), d)
}

// DesiderativeOther is たがる, a third party's wish.
type DesiderativeOther struct{}

func (DesiderativeOther) String() string { return "DesiderativeOther(たがる)" }

func (d DesiderativeOther) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	if err := requireVerb(left, d); err != nil {
		return nil, err
	}
	return attach(left, katsuyo.Renyo, open("たが", katsuyo.GodanRa), d)
}
