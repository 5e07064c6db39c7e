package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errClaimed = New("claimed")

func TestWrap_KeepsSentinelMatchable(t *testing.T) {
	wrapped := Wrapf(Wrap(errClaimed, "claim"), "request %d", 7)

	assert.True(t, Is(wrapped, errClaimed))
	assert.Equal(t, "request 7: claim: claimed", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrap_KeepsSentinelMatchable")
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, WithStack(nil))
}

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAs_FindsWrappedType(t *testing.T) {
	err := WithStack(&codedError{code: "ALREADY_CLAIMED"})

	var coded *codedError
	assert.True(t, As(err, &coded))
	assert.Equal(t, "ALREADY_CLAIMED", coded.code)
	assert.EqualError(t, Errorf("units %d", 0), "units 0")
}
