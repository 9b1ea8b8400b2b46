package errorparser

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAs(t *testing.T) {
	inner := New("inner")

	tests := []struct {
		name   string
		err    error
		want   *ParsedError
		wantOK bool
	}{
		{"nil", nil, nil, false},
		{"standard error", stderrors.New("plain"), nil, false},
		{"parsed error", inner, inner, true},
		{"wrapped parsed error", fmt.Errorf("ctx: %w", inner), inner, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := As(tt.err)
			require.Equal(t, tt.wantOK, ok)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.Same(t, tt.want, got)
		})
	}
}

func TestGetStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusInternalServerError},
		{"standard error", stderrors.New("plain"), http.StatusInternalServerError},
		{"default", New("x"), http.StatusInternalServerError},
		{"user error", New("x", WithUserError(true)), http.StatusBadRequest},
		{"explicit", New("x", WithStatusCode(http.StatusTooManyRequests)), http.StatusTooManyRequests},
		{"wrapped", fmt.Errorf("ctx: %w", New("x", WithStatusCode(http.StatusNotFound))), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetStatusCode(tt.err))
		})
	}
}

func TestIsUserError(t *testing.T) {
	require.False(t, IsUserError(nil))
	require.False(t, IsUserError(stderrors.New("plain")))
	require.False(t, IsUserError(New("internal")))
	require.True(t, IsUserError(New("user", WithUserError(true))))
	require.True(t, IsUserError(fmt.Errorf("ctx: %w", New("user", WithStatusCode(http.StatusBadRequest)))))
}

func TestGetInfo(t *testing.T) {
	require.Nil(t, GetInfo(nil))
	require.Nil(t, GetInfo(stderrors.New("plain")))

	cause := New("cause", WithInfo(map[string]any{"index": "logs"}))
	err := Wrap(cause, "effect", WithInfo(map[string]any{"shard": 1}))
	require.Equal(t, map[string]any{"index": "logs", "shard": 1}, GetInfo(err))
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Nil(t, Wrap(nil, "ignored"))
		require.Nil(t, Wrapf(nil, "ignored %d", 1))
	})

	t.Run("nil is a nil error", func(t *testing.T) {
		annotate := func(err error) error {
			return Wrap(err, "context", WithUserError(true))
		}
		annotatef := func(err error) error {
			return Wrapf(err, "context %d", 1)
		}

		require.True(t, annotate(nil) == nil)
		require.True(t, annotatef(nil) == nil)
		require.NotPanics(t, func() {
			if err := annotate(nil); err != nil {
				_ = err.Error()
			}
		})
	})

	t.Run("preserves cause", func(t *testing.T) {
		cause := stderrors.New("connection refused")
		wrapped := Wrap(cause, "failed to connect", WithStatusCode(http.StatusBadGateway))

		err, ok := As(wrapped)
		require.True(t, ok)
		require.Equal(t, "failed to connect", err.Message())
		require.Equal(t, cause, err.Cause())
		require.Equal(t, http.StatusBadGateway, err.StatusCode())
		require.True(t, stderrors.Is(wrapped, cause))
	})

	t.Run("options can override cause", func(t *testing.T) {
		other := stderrors.New("other")
		err, ok := As(Wrap(stderrors.New("first"), "msg", WithCause(other)))
		require.True(t, ok)
		require.Equal(t, other, err.Cause())
	})

	t.Run("formatted", func(t *testing.T) {
		cause := New("shard failure")
		err, ok := As(Wrapf(cause, "search on %s failed after %d attempts", "logs", 3))

		require.True(t, ok)
		require.Equal(t, "search on logs failed after 3 attempts", err.Message())
		require.Same(t, cause, err.Cause())
	})

	t.Run("formatted with options", func(t *testing.T) {
		cause := New("shard failure")
		err, ok := As(Wrap(cause, fmt.Sprintf("search on %s failed", "logs"),
			WithStatusCode(http.StatusBadGateway),
			WithInfo(map[string]any{"index": "logs"}),
		))

		require.True(t, ok)
		require.Equal(t, "search on logs failed", err.Message())
		require.Equal(t, http.StatusBadGateway, err.StatusCode())
		require.Equal(t, map[string]any{"index": "logs"}, err.Info())
		require.Same(t, cause, err.Cause())
	})
}

func TestNewf(t *testing.T) {
	err := Newf("invalid size %d", 12)
	require.Equal(t, "invalid size 12", err.Message())
	require.Nil(t, err.Cause())
	require.Contains(t, err.Trace(), "TestNewf")
}
