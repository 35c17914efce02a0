package katsuyo

import "fmt"

// Element is one of the three text shapes a composition can produce:
// KatsuyoText, FixedKatsuyoText or NonKatsuyoText.
type Element interface {
	// Surface renders the element as written text.
	Surface() string
	element()
}

// Appendant attaches itself to the element on its left. Composition is
// directional: left + right always asks right to interpret left.
type Appendant interface {
	MergeOnto(left Element) (Element, error)
}

// Add composes right onto left and returns the new element. Neither operand
// is modified.
func Add(left Element, right Appendant) (Element, error) {
	if left == nil || right == nil {
		panic("katsuyo: Add with nil operand")
	}
	return right.MergeOnto(left)
}

// KatsuyoText is an inflectable word still open to suffixation.
type KatsuyoText struct {
	Gokan   string
	Katsuyo *Katsuyo
}

func (KatsuyoText) element() {}

// Surface renders the conclusive form, falling back to the attributive form
// for classes without one.
func (t KatsuyoText) Surface() string {
	k := t.Class()
	if s, ok := k.Form(Shushi); ok {
		return t.Gokan + s
	}
	if s, ok := k.Form(Rentai); ok {
		return t.Gokan + s
	}
	return t.Gokan
}

// Fix resolves the text to one stem-form.
func (t KatsuyoText) Fix(f Form) (FixedKatsuyoText, bool) {
	s, ok := t.Class().Form(f)
	if !ok {
		return FixedKatsuyoText{}, false
	}
	return FixedKatsuyoText{Gokan: t.Gokan, Form: f, Ending: s}, true
}

// Render returns the surface of form f.
func (t KatsuyoText) Render(f Form) (string, bool) {
	fixed, ok := t.Fix(f)
	if !ok {
		return "", false
	}
	return fixed.Surface(), true
}

// MergeOnto appends the text to left through the continuative form of an
// open left element.
func (t KatsuyoText) MergeOnto(left Element) (Element, error) {
	return mergeDefault(left, t, Renyo)
}

// Class returns the inflection class. A KatsuyoText without one is a
// programming error and panics.
func (t KatsuyoText) Class() *Katsuyo {
	if t.Katsuyo == nil {
		panic(fmt.Sprintf("katsuyo: KatsuyoText %q has no inflection class", t.Gokan))
	}
	return t.Katsuyo
}

func (t KatsuyoText) String() string {
	if t.Katsuyo == nil {
		return fmt.Sprintf("KatsuyoText(%s/<nil>)", t.Gokan)
	}
	return fmt.Sprintf("KatsuyoText(%s/%s)", t.Gokan, t.Katsuyo.name)
}

// FixedKatsuyoText is a KatsuyoText resolved to a single stem-form. It only
// concatenates.
type FixedKatsuyoText struct {
	Gokan  string
	Form   Form
	Ending string
}

func (FixedKatsuyoText) element() {}

func (t FixedKatsuyoText) Surface() string { return t.Gokan + t.Ending }

func (t FixedKatsuyoText) MergeOnto(left Element) (Element, error) {
	return mergeDefault(left, t, Renyo)
}

func (t FixedKatsuyoText) String() string {
	return fmt.Sprintf("FixedKatsuyoText(%s+%s/%s)", t.Gokan, t.Ending, t.Form)
}

// NonKatsuyoText is text without inflection: particles, bare nouns,
// conjunctions and symbols. Attach names the form an open left element must
// take before it; FormNone means the continuative.
type NonKatsuyoText struct {
	Text   string
	Attach Form
}

func (NonKatsuyoText) element() {}

func (t NonKatsuyoText) Surface() string { return t.Text }

func (t NonKatsuyoText) MergeOnto(left Element) (Element, error) {
	f := t.Attach
	if f == FormNone {
		f = Renyo
	}
	return mergeDefault(left, t, f)
}

func (t NonKatsuyoText) String() string {
	return fmt.Sprintf("NonKatsuyoText(%s)", t.Text)
}

func mergeDefault(left, right Element, f Form) (Element, error) {
	l, err := Extract(left, f, right)
	if err != nil {
		return nil, err
	}
	return Concat(l, right), nil
}

// Extract resolves an open KatsuyoText to form f. Fixed and non-inflecting
// elements are returned unchanged. right is only used for error reporting.
func Extract(left Element, f Form, right any) (Element, error) {
	kt, ok := left.(KatsuyoText)
	if !ok {
		return left, nil
	}
	fixed, ok := kt.Fix(f)
	if !ok {
		return nil, &UnsupportedCompositionError{
			Left:   left,
			Right:  right,
			Reason: fmt.Sprintf("%s has no %s", kt.Class().name, f),
		}
	}
	return fixed, nil
}

// Concat joins the surface of left with right. The result keeps the shape of
// right: an inflecting right stays open, a fixed right stays fixed.
func Concat(left, right Element) Element {
	prefix := left.Surface()
	switch r := right.(type) {
	case KatsuyoText:
		return KatsuyoText{Gokan: prefix + r.Gokan, Katsuyo: r.Class()}
	case FixedKatsuyoText:
		return FixedKatsuyoText{Gokan: prefix + r.Gokan, Form: r.Form, Ending: r.Ending}
	case NonKatsuyoText:
		return NonKatsuyoText{Text: prefix + r.Text, Attach: r.Attach}
	}
	panic(fmt.Sprintf("katsuyo: unknown element %T", right))
}
