package model

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(NewError(KindTimeout, errors.New("deadline"))))
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.True(t, IsTimeout(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)))
	assert.False(t, IsTimeout(NewError(KindTransport, errors.New("boom"))))
	assert.False(t, IsTimeout(errors.New("boom")))
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(NewError(KindRateLimited, errors.New("429"))))
	assert.False(t, IsRateLimited(NewError(KindTimeout, errors.New("deadline"))))
	assert.False(t, IsRateLimited(errors.New("boom")))
}

func TestClassify(t *testing.T) {
	t.Run("deadline becomes timeout", func(t *testing.T) {
		assert.Equal(t, KindTimeout, Classify(context.DeadlineExceeded).Kind)
	})

	t.Run("unknown becomes transport", func(t *testing.T) {
		assert.Equal(t, KindTransport, Classify(errors.New("boom")).Kind)
	})

	t.Run("already classified passes through", func(t *testing.T) {
		orig := NewError(KindRateLimited, errors.New("429"))
		assert.Same(t, orig, Classify(fmt.Errorf("wrapped: %w", orig)))
	})
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewError(KindTransport, cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transport")
}
