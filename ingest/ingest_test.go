package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNew(t *testing.T) {
	u, err := New("  旅行へ行く \n")
	require.NoError(t, err)
	assert.Equal(t, "旅行へ行く", u.Text)
	_, err = ulid.ParseStrict(u.ID)
	assert.NoError(t, err)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = New(" \t")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStream(t *testing.T) {
	defer goleak.VerifyNone(t)
	out, errs := Stream(context.Background(), strings.NewReader("行きます\n\n学生です\n"))
	var got []string
	for u := range out {
		got = append(got, u.Text)
	}
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"行きます", "学生です"}, got)
}

func TestStreamUniqueIDs(t *testing.T) {
	out, _ := Stream(context.Background(), strings.NewReader("a\nb\nc\n"))
	seen := map[string]bool{}
	for u := range out {
		assert.False(t, seen[u.ID])
		seen[u.ID] = true
	}
	assert.Len(t, seen, 3)
}

func TestStreamStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, errs := Stream(ctx, strings.NewReader(strings.Repeat("行く\n", 100)))
	n := 0
	for range out {
		n++
	}
	assert.Less(t, n, 100)
	assert.ErrorIs(t, <-errs, context.Canceled)
}
