// Package kana holds the gojuon grid and small script helpers.
package kana

import "unicode/utf8"

// Dan is a vowel column of the gojuon grid.
type Dan int

const (
	DanA Dan = iota
	DanI
	DanU
	DanE
	DanO
)

func (d Dan) String() string {
	switch d {
	case DanA:
		return "a"
	case DanI:
		return "i"
	case DanU:
		return "u"
	case DanE:
		return "e"
	case DanO:
		return "o"
	}
	return "?"
}

// rows of the grid, one string per consonant row, columns in a-i-u-e-o order.
// Blank cells are written as "　" and never match.
var rows = []string{
	"あいうえお",
	"かきくけこ",
	"がぎぐげご",
	"さしすせそ",
	"ざじずぜぞ",
	"たちつてと",
	"だぢづでど",
	"なにぬねの",
	"はひふへほ",
	"ばびぶべぼ",
	"ぱぴぷぺぽ",
	"まみむめも",
	"や　ゆ　よ",
	"らりるれろ",
	"わゐ　ゑを",
	"ぁぃぅぇぉ",
	"ゃ　ゅ　ょ",
}

var danTable = buildDanTable()

func buildDanTable() map[rune]Dan {
	m := make(map[rune]Dan)
	for _, row := range rows {
		col := 0
		for _, r := range row {
			if r != '　' {
				m[r] = Dan(col)
			}
			col++
		}
	}
	return m
}

// DanOf returns the vowel column of a kana. Katakana is folded to hiragana
// first; kanji, ん and symbols report false.
func DanOf(r rune) (Dan, bool) {
	d, ok := danTable[toHiragana(r)]
	return d, ok
}

// LastDan returns the vowel column of the final rune of s.
func LastDan(s string) (Dan, bool) {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return 0, false
	}
	return DanOf(r)
}

func toHiragana(r rune) rune {
	if r >= 0x30A1 && r <= 0x30F6 {
		return r - 0x60
	}
	return r
}

// KatakanaToHiragana converts katakana to hiragana, leaving other runes alone.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = toHiragana(r)
	}
	return string(runes)
}

// HiraganaToKatakana is the inverse of KatakanaToHiragana.
func HiraganaToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x3041 && r <= 0x3096 {
			runes[i] = r + 0x60
		}
	}
	return string(runes)
}
