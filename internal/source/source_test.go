package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"news_aggregator/internal/domain"
)

type stubAdapter struct {
	id         string
	configured bool
}

func (s *stubAdapter) ID() string   { return s.id }
func (s *stubAdapter) Name() string { return s.id }
func (s *stubAdapter) Fetch(ctx context.Context, q domain.Query) ([]domain.Article, error) {
	return nil, nil
}
func (s *stubAdapter) IsConfigured() bool { return s.configured }

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError("alpha", 503, "upstream unavailable", cause)

	assert.Contains(t, err.Error(), "alpha")
	assert.Contains(t, err.Error(), "503")
	assert.ErrorIs(t, err, cause)

	var srcErr *Error
	assert.ErrorAs(t, error(err), &srcErr)
	assert.Equal(t, "alpha", srcErr.SourceID)
}

func TestErrorWithoutStatus(t *testing.T) {
	err := NewError("beta", 0, "parse failure", nil)
	assert.Equal(t, "source beta: parse failure", err.Error())
}

func TestIsTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, IsTimeout(ctx.Err()))

	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(NewError("a", 0, "timed out", context.DeadlineExceeded)))
}
