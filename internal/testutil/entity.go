package testutil

import (
	"encoding/json"
	"testing"

	"github.com/saasukit/saasu/entity"
	"github.com/saasukit/saasu/internal/testutil/assert"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/types"
	"github.com/stretchr/testify/require"
)

// MakeEntity creates an entity of type d from a json string.
func MakeEntity(t testing.TB, d *schema.Descriptor, jsonDoc string) *entity.Entity {
	t.Helper()

	e := entity.New(d)
	err := e.UnmarshalJSON([]byte(jsonDoc))
	assert.NoError(t, err)
	return e
}

// RequireJSONEq encodes o to JSON and compares it with expected.
func RequireJSONEq(t testing.TB, o any, expected string) {
	t.Helper()

	data, err := json.Marshal(o)
	assert.NoError(t, err)
	require.JSONEq(t, expected, string(data))
}

// RequireEntityEqual fails if the two entities do not hold the same data.
func RequireEntityEqual(t testing.TB, want, got *entity.Entity) {
	t.Helper()

	require.Equal(t, want.Name(), got.Name())

	w, err := want.MarshalJSON()
	assert.NoError(t, err)
	RequireJSONEq(t, got, string(w))
}

// RequireText fails if field is not a text field holding want.
func RequireText(t testing.TB, e *entity.Entity, field, want string) {
	t.Helper()

	got, ok := e.Text(field)
	require.True(t, ok, "expected %s.%s to be set", e.Name(), field)
	require.Equal(t, want, got, "unexpected value for %s.%s", e.Name(), field)
}

// RequireNull fails if field is not NULL.
func RequireNull(t testing.TB, e *entity.Entity, field string) {
	t.Helper()

	v, err := e.Get(field)
	assert.NoError(t, err)
	require.True(t, types.IsNull(v), "expected %s.%s to be NULL, got %v", e.Name(), field, v)
}
