package kana

import (
	"testing"
)

func TestDanOf(t *testing.T) {
	cases := []struct {
		r    rune
		want Dan
		ok   bool
	}{
		{'ば', DanA, true},
		{'わ', DanA, true},
		{'さ', DanA, true},
		{'バ', DanA, true},
		{'べ', DanE, true},
		{'こ', DanO, true},
		{'じ', DanI, true},
		{'よ', DanO, true},
		{'ん', 0, false},
		{'見', 0, false},
		{'a', 0, false},
	}
	for _, c := range cases {
		got, ok := DanOf(c.r)
		if ok != c.ok {
			t.Fatalf("DanOf(%c) ok = %v, want %v", c.r, ok, c.ok)
		}
		if ok && got != c.want {
			t.Errorf("DanOf(%c) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestLastDan(t *testing.T) {
	if d, ok := LastDan("遊ば"); !ok || d != DanA {
		t.Errorf("expected a-dan for 遊ば, got %v %v", d, ok)
	}
	if _, ok := LastDan(""); ok {
		t.Errorf("expected no dan for empty string")
	}
}

func TestKanaConversion(t *testing.T) {
	if got := KatakanaToHiragana("イリミナイカワ"); got != "いりみないかわ" {
		t.Errorf("KatakanaToHiragana = %s", got)
	}
	if got := HiraganaToKatakana("だ"); got != "ダ" {
		t.Errorf("HiraganaToKatakana = %s", got)
	}
}
