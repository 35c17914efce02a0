package model

import "fmt"

// Diagnostic is a soft error recorded while a reflection is built.
type Diagnostic struct {
	Stage   string `json:"stage"`
	Token   *Token `json:"token,omitempty"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	if d.Token != nil {
		return fmt.Sprintf("[%s] %s (%s)", d.Stage, d.Message, d.Token.Text)
	}
	return fmt.Sprintf("[%s] %s", d.Stage, d.Message)
}
