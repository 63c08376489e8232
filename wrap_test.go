package packman

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("unexpected EOF")
	err := Wrap(cause, CodeParseError, "reading packet body")

	require.Equal(t, CodeParseError, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "reading packet body", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeParseError, "ignored"))
	require.Nil(t, Wrapf(nil, CodeParseError, "ignored %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeParseError, "ignored", nil))
}

func TestWrap_RejectsUnraisableCodes(t *testing.T) {
	cause := stderrors.New("io failure")

	tests := []struct {
		name string
		code ErrorCode
	}{
		{
			name: "success sentinel",
			code: CodeSuccess,
		},
		{
			name: "undefined code",
			code: ErrorCode(42),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() {
				Wrap(cause, tt.code, "wrapped")
			})
			require.Panics(t, func() {
				Wrapf(cause, tt.code, "wrapped %d", 1)
			})
			require.Panics(t, func() {
				WrapWithContext(cause, tt.code, "wrapped", nil)
			})
		})
	}
}

func TestWrap_PreservesClassification(t *testing.T) {
	// A blackhole stays retryable even when re-wrapped under a
	// permanent-by-default code.
	inner := FromStatus(int(CodeBlackhole))
	err := Wrap(inner, CodeImpossible, "unexpected state while retrying")

	require.Equal(t, CodeImpossible, err.Code())
	require.Equal(t, ClassificationRetryable, err.Classification())
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("short read")
	err := Wrapf(cause, CodeParseError, "packet %d truncated", 7)

	require.Equal(t, "packet 7 truncated", err.Message())
	require.True(t, stderrors.Is(err, cause))
}

func TestWrapWithContext(t *testing.T) {
	cause := stderrors.New("bad info pointer")
	ctx := map[string]interface{}{
		"offset": 64,
		"words":  12,
	}

	err := WrapWithContext(cause, CodeGarbled, "decoding closure", ctx)

	require.Equal(t, CodeGarbled, err.Code())
	require.Equal(t, 64, err.Context()["offset"])

	// The caller's map is copied, not aliased.
	ctx["offset"] = 0
	require.Equal(t, 64, err.Context()["offset"])
}

func TestWrap_ChainTraversal(t *testing.T) {
	cause := stderrors.New("root cause")
	err1 := Wrap(cause, CodeGarbled, "inner")
	err2 := Wrap(err1, CodeParseError, "outer")

	require.True(t, stderrors.Is(err2, cause))

	var packErr PackError
	require.True(t, stderrors.As(err2, &packErr))
	require.Equal(t, CodeParseError, packErr.Code())
}
