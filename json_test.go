package errorparser

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestToJSON_InternalError(t *testing.T) {
	cause := New("Hello there!", WithInfo(map[string]any{"other": true}))
	err := New("Bad news bears", WithCause(cause), WithInfo(map[string]any{"stuff": true}))

	want := Record{
		Info:       map[string]any{"other": true, "stuff": true},
		Name:       "ParsedError",
		Message:    "Bad news bears",
		StatusCode: http.StatusInternalServerError,
		Causes:     []string{cause.Trace()},
		Stack:      err.Trace(),
	}
	if diff := cmp.Diff(want, err.ToJSON()); diff != "" {
		t.Errorf("ToJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSON_UserError(t *testing.T) {
	cause := New("Hello there!")
	err := New("Bad news bears", WithStatusCode(http.StatusUnprocessableEntity), WithCause(cause))

	record := err.ToJSON()
	require.Empty(t, record.Stack)
	require.Equal(t, http.StatusUnprocessableEntity, record.StatusCode)
	require.Equal(t, []string{"ParsedError: Hello there!"}, record.Causes)
}

func TestMarshalJSON_FieldPresence(t *testing.T) {
	tests := []struct {
		name      string
		err       *ParsedError
		wantStack bool
	}{
		{"internal", New("internal"), true},
		{"internal with explicit flag", New("internal", WithUserError(false)), true},
		{"user flag", New("user", WithUserError(true)), false},
		{"user status", New("user", WithStatusCode(http.StatusForbidden)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.err)
			require.NoError(t, err)

			var fields map[string]any
			require.NoError(t, json.Unmarshal(data, &fields))

			for _, key := range []string{"info", "name", "message", "statusCode", "causes"} {
				require.Contains(t, fields, key)
			}
			_, hasStack := fields["stack"]
			require.Equal(t, tt.wantStack, hasStack)
		})
	}
}

func TestMarshalJSON_Defaults(t *testing.T) {
	data, err := json.Marshal(New("not allowed", WithStatusCode(http.StatusForbidden)))
	require.NoError(t, err)
	require.JSONEq(t,
		`{"info":{},"name":"ParsedError","message":"not allowed","statusCode":403,"causes":[]}`,
		string(data),
	)
}

func TestMarshalJSON_UnsupportedInfo(t *testing.T) {
	err := New("bad info", WithInfo(map[string]any{"ch": make(chan int)}))

	_, marshalErr := json.Marshal(err)
	require.Error(t, marshalErr)

	var parsed *ParsedError
	require.True(t, stderrors.As(marshalErr, &parsed))
	require.Equal(t, "MarshalError", parsed.Name())
}

func TestMarshalJSON_Embedded(t *testing.T) {
	type response struct {
		Success bool         `json:"success"`
		Error   *ParsedError `json:"error,omitempty"`
	}

	data, err := json.Marshal(response{Error: New("nope", WithUserError(true))})
	require.NoError(t, err)
	require.JSONEq(t,
		`{"success":false,"error":{"info":{},"name":"ParsedError","message":"nope","statusCode":400,"causes":[]}}`,
		string(data),
	)
}

func TestToJSONFunc(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.Nil(t, ToJSON(nil))
	})

	t.Run("parsed error in chain", func(t *testing.T) {
		inner := New("inner", WithUserError(true))
		record := ToJSON(fmt.Errorf("outer: %w", inner))

		require.NotNil(t, record)
		require.Equal(t, "inner", record.Message)
		require.Equal(t, http.StatusBadRequest, record.StatusCode)
	})

	t.Run("standard error", func(t *testing.T) {
		record := ToJSON(stderrors.New("something went wrong"))

		require.Equal(t, "Error", record.Name)
		require.Equal(t, "something went wrong", record.Message)
		require.Equal(t, http.StatusInternalServerError, record.StatusCode)
		require.Equal(t, "Error: something went wrong", record.Stack)
		require.NotNil(t, record.Causes)
		require.NotNil(t, record.Info)
	})
}
