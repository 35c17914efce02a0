package trim

import (
	"fmt"

	"oumugaeshi/model"
)

// CancelledByTokenError reports a token that makes the utterance unsuitable
// for reflection: a volitional form, a question particle, a literary
// auxiliary or a question mark.
type CancelledByTokenError struct {
	Token model.Token
}

func (e *CancelledByTokenError) Error() string {
	return fmt.Sprintf("trim: cancelled by token %q (%s %s)", e.Token.Text, e.Token.Tag, e.Token.InflectionType)
}

// DialectNotSupportedError reports a recognised dialect particle or auxiliary.
type DialectNotSupportedError struct {
	Token model.Token
}

func (e *DialectNotSupportedError) Error() string {
	return fmt.Sprintf("trim: dialect not supported: %q (%s)", e.Token.Text, e.Token.Tag)
}
