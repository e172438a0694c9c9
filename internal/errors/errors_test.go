package errors

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	err := Wrap(&codedError{code: "NOT_FOUND"}, "failed to load")

	got, ok := AsType[*codedError](err)

	assert.True(t, ok)
	assert.Equal(t, "NOT_FOUND", got.code)

	_, ok = AsType[*codedError](io.EOF)
	assert.False(t, ok)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func innermost() error {
	return WithStack(io.ErrUnexpectedEOF)
}

func TestOrigin(t *testing.T) {
	err := Wrap(innermost(), "failed to decode body")

	origin := Origin(err)

	assert.True(t, strings.HasPrefix(origin, "innermost errors_test.go:"), origin)
	assert.True(t, Is(err, io.ErrUnexpectedEOF))
	assert.Equal(t, io.ErrUnexpectedEOF, Cause(err))
}

func TestOrigin_NoStack(t *testing.T) {
	assert.Empty(t, Origin(New("plain")))
	assert.Empty(t, Origin(nil))
}
