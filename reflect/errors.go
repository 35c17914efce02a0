package reflect

import (
	"errors"
	"fmt"

	"oumugaeshi/model"
	"oumugaeshi/trim"
)

// NoValidSentenceError reports a document without a sentence whose root may
// anchor a reflection.
type NoValidSentenceError struct {
	Document model.Document
}

func (e *NoValidSentenceError) Error() string {
	return fmt.Sprintf("reflect: no valid sentence in %q", e.Document.Text)
}

// NoValidTokenError reports a clause that leaves nothing to reflect: it was
// trimmed away entirely, lost its root, or its root could not be classified.
type NoValidTokenError struct {
	Span   []model.Token
	Token  *model.Token
	Reason string
	Err    error
}

func (e *NoValidTokenError) Error() string {
	msg := fmt.Sprintf("reflect: no valid token in %q: %s", model.Surface(e.Span), e.Reason)
	if e.Token != nil {
		msg += fmt.Sprintf(" (%s)", e.Token.Text)
	}
	return msg
}

func (e *NoValidTokenError) Unwrap() error { return e.Err }

// IsCancellation reports whether err is one of the four conditions that mean
// "no reflection for this utterance" rather than a failure.
func IsCancellation(err error) bool {
	var (
		ns *NoValidSentenceError
		nt *NoValidTokenError
		ct *trim.CancelledByTokenError
		dn *trim.DialectNotSupportedError
	)
	return errors.As(err, &ns) || errors.As(err, &nt) || errors.As(err, &ct) || errors.As(err, &dn)
}
