package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalHash_KeyOrderInvariance(t *testing.T) {
	a := map[string]any{
		"b": 1.0,
		"a": map[string]any{"y": "v", "x": []any{1.0, 2.0}},
	}
	b := map[string]any{
		"a": map[string]any{"x": []any{1.0, 2.0}, "y": "v"},
		"b": 1.0,
	}
	assert.Equal(t, CanonicalHash("ev", a), CanonicalHash("ev", b))
}

func TestCanonicalHash_ArrayOrderPreserved(t *testing.T) {
	a := map[string]any{"items": []any{"x", "y"}}
	b := map[string]any{"items": []any{"y", "x"}}
	assert.NotEqual(t, CanonicalHash("ev", a), CanonicalHash("ev", b))
}

func TestCanonicalHash_TypeDistinguishes(t *testing.T) {
	props := map[string]any{"k": "v"}
	assert.NotEqual(t, CanonicalHash("a", props), CanonicalHash("b", props))
}

func TestHashValue_Stable(t *testing.T) {
	v := map[string]any{"nested": map[string]any{"deep": []any{map[string]any{"z": 1.0, "a": 2.0}}}}
	assert.Equal(t, HashValue(v), HashValue(v))
}

func TestHashValue_NilProperties(t *testing.T) {
	assert.NotPanics(t, func() { CanonicalHash("ev", nil) })
	assert.Equal(t, CanonicalHash("ev", nil), CanonicalHash("ev", nil))
}
