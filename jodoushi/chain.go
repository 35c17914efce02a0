package jodoushi

import "oumugaeshi/katsuyo"

// Chain composes appendants onto root from left to right. An appendant that
// fails to attach is skipped; its error is collected and composition goes on
// with the remaining appendants.
func Chain(root katsuyo.Element, appendants ...katsuyo.Appendant) (katsuyo.Element, []error) {
	cur := root
	var errs []error
	for _, a := range appendants {
		next, err := katsuyo.Add(cur, a)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cur = next
	}
	return cur, errs
}
