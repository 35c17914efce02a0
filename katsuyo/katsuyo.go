// Package katsuyo models Japanese conjugation classes and the inflected text
// values built from them.
//
// A Katsuyo is pure data: the named stem-forms of one conjugation class.
// All composition behaviour lives on the text values and the appendants in
// package jodoushi.
package katsuyo

import "strings"

// Form names one stem-form of a conjugation class.
type Form int

// Forms in grammar-book order. MizenU precedes volitional う/よう, MizenReru
// precedes れる/せる (sahen classes only), RenyoTa precedes た/て and RenyoNai
// precedes ない.
const (
	FormNone Form = iota
	Mizen
	MizenU
	MizenReru
	Renyo
	RenyoTa
	RenyoNai
	Shushi
	Rentai
	Katei
	Meirei
)

var formNames = map[Form]string{
	FormNone:  "none",
	Mizen:     "未然形",
	MizenU:    "未然形-ウ",
	MizenReru: "未然形-レル",
	Renyo:     "連用形",
	RenyoTa:   "連用形-タ",
	RenyoNai:  "連用形-ナイ",
	Shushi:    "終止形",
	Rentai:    "連体形",
	Katei:     "仮定形",
	Meirei:    "命令形",
}

func (f Form) String() string {
	if s, ok := formNames[f]; ok {
		return s
	}
	return "unknown"
}

// Category is the part of speech a conjugation class belongs to.
type Category int

const (
	Verb Category = iota
	Adjective
	AdjectivalNoun
	Auxiliary
	NonInflecting
)

func (c Category) String() string {
	switch c {
	case Verb:
		return "動詞"
	case Adjective:
		return "形容詞"
	case AdjectivalNoun:
		return "形状詞"
	case Auxiliary:
		return "助動詞"
	case NonInflecting:
		return "無活用"
	}
	return "unknown"
}

// Katsuyo is an immutable conjugation class.
type Katsuyo struct {
	name     string
	category Category
	forms    map[Form]string
	voicedTa bool
}

// Name returns the class identifier, e.g. "五段-バ行".
func (k *Katsuyo) Name() string { return k.name }

// Category returns the part of speech of the class.
func (k *Katsuyo) Category() Category { return k.category }

// IsVerb reports whether the class conjugates a verb.
func (k *Katsuyo) IsVerb() bool { return k.category == Verb }

// IsSahen reports whether the class is one of the サ行変格 classes.
func (k *Katsuyo) IsSahen() bool { return strings.HasPrefix(k.name, "サ行変格") }

// VoicedTa reports whether た and て are voiced after the onbin stem (遊んだ, 泳いで).
func (k *Katsuyo) VoicedTa() bool { return k.voicedTa }

// Form returns the ending for f. A class that does not define f reports false.
func (k *Katsuyo) Form(f Form) (string, bool) {
	s, ok := k.forms[f]
	return s, ok
}

// Has reports whether the class defines f.
func (k *Katsuyo) Has(f Form) bool {
	_, ok := k.forms[f]
	return ok
}

// Forms lists the forms the class defines, in grammar-book order.
func (k *Katsuyo) Forms() []Form {
	var out []Form
	for f := Mizen; f <= Meirei; f++ {
		if k.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (k *Katsuyo) String() string { return k.name }
