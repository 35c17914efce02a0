package katsuyo

func godan(name, mizen, mizenU, renyo, renyoTa, shushi, katei, meirei string, voiced bool) *Katsuyo {
	return &Katsuyo{
		name:     name,
		category: Verb,
		voicedTa: voiced,
		forms: map[Form]string{
			Mizen:    mizen,
			MizenU:   mizenU,
			Renyo:    renyo,
			RenyoTa:  renyoTa,
			RenyoNai: mizen,
			Shushi:   shushi,
			Rentai:   shushi,
			Katei:    katei,
			Meirei:   meirei,
		},
	}
}

func ichidan(name string) *Katsuyo {
	return &Katsuyo{
		name:     name,
		category: Verb,
		forms: map[Form]string{
			Mizen:    "",
			MizenU:   "よ",
			Renyo:    "",
			RenyoTa:  "",
			RenyoNai: "",
			Shushi:   "る",
			Rentai:   "る",
			Katei:    "れ",
			Meirei:   "ろ",
		},
	}
}

// Inflection table. Godan classes are keyed by the row of the final kana.
var (
	GodanKa    = godan("五段-カ行", "か", "こ", "き", "い", "く", "け", "け", false)
	GodanKaIku = godan("五段-カ行-イク", "か", "こ", "き", "っ", "く", "け", "け", false)
	GodanGa    = godan("五段-ガ行", "が", "ご", "ぎ", "い", "ぐ", "げ", "げ", true)
	GodanSa    = godan("五段-サ行", "さ", "そ", "し", "し", "す", "せ", "せ", false)
	GodanTa    = godan("五段-タ行", "た", "と", "ち", "っ", "つ", "て", "て", false)
	GodanNa    = godan("五段-ナ行", "な", "の", "に", "ん", "ぬ", "ね", "ね", true)
	GodanBa    = godan("五段-バ行", "ば", "ぼ", "び", "ん", "ぶ", "べ", "べ", true)
	GodanMa    = godan("五段-マ行", "ま", "も", "み", "ん", "む", "め", "め", true)
	GodanRa    = godan("五段-ラ行", "ら", "ろ", "り", "っ", "る", "れ", "れ", false)
	GodanWa    = godan("五段-ワア行", "わ", "お", "い", "っ", "う", "え", "え", false)

	KamiIchidan  = ichidan("上一段")
	ShimoIchidan = ichidan("下一段")

	KahenKuru = &Katsuyo{
		name:     "カ行変格",
		category: Verb,
		forms: map[Form]string{
			Mizen:    "こ",
			MizenU:   "こ",
			Renyo:    "き",
			RenyoTa:  "き",
			RenyoNai: "こ",
			Shushi:   "くる",
			Rentai:   "くる",
			Katei:    "くれ",
			Meirei:   "こい",
		},
	}
	// KahenKuruKanji is the カ行変格 class spelled with 来 in every form.
	KahenKuruKanji = &Katsuyo{
		name:     "カ行変格-来",
		category: Verb,
		forms: map[Form]string{
			Mizen:    "来",
			MizenU:   "来",
			Renyo:    "来",
			RenyoTa:  "来",
			RenyoNai: "来",
			Shushi:   "来る",
			Rentai:   "来る",
			Katei:    "来れ",
			Meirei:   "来い",
		},
	}

	SahenSuru = &Katsuyo{
		name:     "サ行変格",
		category: Verb,
		forms: map[Form]string{
			Mizen:     "し",
			MizenU:    "し",
			MizenReru: "さ",
			Renyo:     "し",
			RenyoTa:   "し",
			RenyoNai:  "し",
			Shushi:    "する",
			Rentai:    "する",
			Katei:     "すれ",
			Meirei:    "しろ",
		},
	}
	SahenZuru = &Katsuyo{
		name:     "サ行変格-ズル",
		category: Verb,
		forms: map[Form]string{
			Mizen:     "じ",
			MizenU:    "じ",
			MizenReru: "じ",
			Renyo:     "じ",
			RenyoTa:   "じ",
			RenyoNai:  "じ",
			Shushi:    "ずる",
			Rentai:    "ずる",
			Katei:     "ずれ",
			Meirei:    "じろ",
		},
	}

	Keiyoushi = &Katsuyo{
		name:     "形容詞",
		category: Adjective,
		forms: map[Form]string{
			Mizen:    "かろ",
			MizenU:   "かろ",
			Renyo:    "く",
			RenyoTa:  "かっ",
			RenyoNai: "く",
			Shushi:   "い",
			Rentai:   "い",
			Katei:    "けれ",
		},
	}
	Keiyoudoushi = &Katsuyo{
		name:     "形状詞",
		category: AdjectivalNoun,
		forms: map[Form]string{
			Mizen:    "だろ",
			MizenU:   "だろ",
			Renyo:    "で",
			RenyoTa:  "だっ",
			RenyoNai: "で",
			Shushi:   "だ",
			Rentai:   "な",
			Katei:    "なら",
		},
	}
	Mukatsuyo = &Katsuyo{
		name:     "無活用",
		category: NonInflecting,
		forms: map[Form]string{
			Shushi: "",
			Rentai: "",
		},
	}

	JodoushiTa = &Katsuyo{
		name:     "助動詞-タ",
		category: Auxiliary,
		forms: map[Form]string{
			Mizen:  "ろ",
			MizenU: "ろ",
			Shushi: "",
			Rentai: "",
			Katei:  "ら",
		},
	}
	JodoushiMasu = &Katsuyo{
		name:     "助動詞-マス",
		category: Auxiliary,
		forms: map[Form]string{
			Mizen:   "せ",
			MizenU:  "しょ",
			Renyo:   "し",
			RenyoTa: "し",
			Shushi:  "す",
			Rentai:  "す",
			Katei:   "すれ",
			Meirei:  "せ",
		},
	}
)

var table = func() map[string]*Katsuyo {
	m := make(map[string]*Katsuyo)
	for _, k := range All() {
		m[k.name] = k
	}
	return m
}()

// All returns every class in the table.
func All() []*Katsuyo {
	return []*Katsuyo{
		GodanKa, GodanKaIku, GodanGa, GodanSa, GodanTa, GodanNa, GodanBa, GodanMa, GodanRa, GodanWa,
		KamiIchidan, ShimoIchidan,
		KahenKuru, KahenKuruKanji,
		SahenSuru, SahenZuru,
		Keiyoushi, Keiyoudoushi, Mukatsuyo,
		JodoushiTa, JodoushiMasu,
	}
}

// Lookup returns the class registered under name.
func Lookup(name string) (*Katsuyo, bool) {
	k, ok := table[name]
	return k, ok
}
