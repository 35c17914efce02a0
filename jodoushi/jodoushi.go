// Package jodoushi is the appendant library: auxiliaries and helper endings
// that attach to a preceding inflected text and produce a new one.
//
// Every appendant is a stateless value. MergeOnto never mutates its input.
package jodoushi

import (
	"fmt"
	"strings"

	"oumugaeshi/kana"
	"oumugaeshi/katsuyo"
)

func unsupported(left katsuyo.Element, right any, format string, args ...any) error {
	return &katsuyo.UnsupportedCompositionError{Left: left, Right: right, Reason: fmt.Sprintf(format, args...)}
}

// requireVerb rejects open texts whose class is not a verb. Fixed and
// non-inflecting elements pass through.
func requireVerb(left katsuyo.Element, right any) error {
	kt, ok := left.(katsuyo.KatsuyoText)
	if !ok {
		return nil
	}
	if c := kt.Class(); !c.IsVerb() {
		return unsupported(left, right, "%s is not a verb class (%s)", c.Name(), c.Category())
	}
	return nil
}

func open(gokan string, k *katsuyo.Katsuyo) katsuyo.KatsuyoText {
	return katsuyo.KatsuyoText{Gokan: gokan, Katsuyo: k}
}

// attach resolves left to form f and concatenates right.
func attach(left katsuyo.Element, f katsuyo.Form, right katsuyo.Element, who any) (katsuyo.Element, error) {
	l, err := katsuyo.Extract(left, f, who)
	if err != nil {
		return nil, err
	}
	return katsuyo.Concat(l, right), nil
}

// allomorph picks short after an a-dan stem and long otherwise (れる/られる,
// せる/させる).
func allomorph(prev katsuyo.Element, short, long string) string {
	if d, ok := kana.LastDan(prev.Surface()); ok && d == kana.DanA {
		return short
	}
	return long
}

// voiceTa returns た/て, or だ/で after a voiced onbin stem. Closed elements
// carry no class, so only a trailing ん voices them.
func voiceTa(left katsuyo.Element, plain, voiced string) string {
	if kt, ok := left.(katsuyo.KatsuyoText); ok {
		if kt.Class().VoicedTa() {
			return voiced
		}
		return plain
	}
	if strings.HasSuffix(left.Surface(), "ん") {
		return voiced
	}
	return plain
}
