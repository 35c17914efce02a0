// Package ingest turns raw input into utterances for the pipeline.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrEmpty is returned for input that is blank after trimming.
var ErrEmpty = errors.New("empty utterance")

// Utterance is one user turn.
type Utterance struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// New trims text and wraps it in an Utterance with a fresh ULID.
func New(text string) (Utterance, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Utterance{}, ErrEmpty
	}
	return Utterance{
		ID:        ulid.Make().String(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Stream reads r line by line and publishes one Utterance per non-blank
// line. Both channels are closed when r is exhausted or ctx is done.
func Stream(ctx context.Context, r io.Reader) (<-chan Utterance, <-chan error) {
	out := make(chan Utterance, 16)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			u, err := New(sc.Text())
			if errors.Is(err, ErrEmpty) {
				continue
			}
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case out <- u:
			}
		}
		if err := sc.Err(); err != nil {
			errs <- err
		}
	}()
	return out, errs
}
