package chainerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorRendering(t *testing.T) {
	e := Errorf(HashMismatch, "hash set to %s", "ffff").AtLine(3)
	require.Equal(t, "line 3: hash set to ffff", e.Error())
	require.Equal(t, "HashMismatch", e.Kind.String())
}

func TestKindOfWrapped(t *testing.T) {
	base := Errorf(LinkageError, "bad link")
	wrapped := errors.WithMessage(base, "validating")
	require.Equal(t, LinkageError, KindOf(wrapped))
	require.Equal(t, KindUnknown, KindOf(errors.New("other")))
	require.Equal(t, KindUnknown, KindOf(nil))

	ve, ok := AsError(wrapped)
	require.True(t, ok)
	require.Equal(t, "bad link", ve.Message)
}

func TestAtLineCopies(t *testing.T) {
	base := Errorf(EmptyInput, "empty")
	at := base.AtLine(7)
	require.Equal(t, 0, base.Line)
	require.Equal(t, 7, at.Line)
}

func TestUnknownKindString(t *testing.T) {
	require.Equal(t, "Kind(99)", Kind(99).String())
}
