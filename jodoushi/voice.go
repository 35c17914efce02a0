package jodoushi

import "oumugaeshi/katsuyo"

// Passive is れる/られる (受身).
type Passive struct{}

func (Passive) String() string { return "Passive(れる/られる)" }

func (p Passive) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	return mergeVoice(left, p, "れ", "られ")
}

// Causative is せる/させる (使役).
type Causative struct{}

func (Causative) String() string { return "Causative(せる/させる)" }

func (c Causative) MergeOnto(left katsuyo.Element) (katsuyo.Element, error) {
	return mergeVoice(left, c, "せ", "させ")
}

// mergeVoice attaches an ichidan voice auxiliary whose allomorph depends on
// the irrealis stem. The sahen classes are resolved by the spelling of their
// conclusive form: する takes the short allomorph (される, させる) and ずる the
// long one (信じられる, 信じさせる).
func mergeVoice(left katsuyo.Element, who any, short, long string) (katsuyo.Element, error) {
	if err := requireVerb(left, who); err != nil {
		return nil, err
	}
	if kt, ok := left.(katsuyo.KatsuyoText); ok {
		k := kt.Class()
		if k.IsSahen() {
			fixed, ok := kt.Fix(katsuyo.MizenReru)
			if !ok {
				return nil, unsupported(left, who, "%s has no %s", k.Name(), katsuyo.MizenReru)
			}
			shushi, _ := k.Form(katsuyo.Shushi)
			switch shushi {
			case "する":
				return katsuyo.Concat(fixed, open(short, katsuyo.ShimoIchidan)), nil
			case "ずる":
				return katsuyo.Concat(fixed, open(long, katsuyo.ShimoIchidan)), nil
			}
			return nil, unsupported(left, who, "unknown sahen conclusive %q", shushi)
		}
	}
	mizen, err := katsuyo.Extract(left, katsuyo.Mizen, who)
	if err != nil {
		return nil, err
	}
	return katsuyo.Concat(mizen, open(allomorph(mizen, short, long), katsuyo.ShimoIchidan)), nil
}
