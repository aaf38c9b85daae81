package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer("972")

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "trunk prefix", raw: "0521234567", want: "+972521234567"},
		{name: "bare country code", raw: "972521234567", want: "+972521234567"},
		{name: "already international", raw: "+972521234567", want: "+972521234567"},
		{name: "formatted with separators", raw: "052-123-4567", want: "+972521234567"},
		{name: "spaces and parens", raw: "(052) 123 4567", want: "+972521234567"},
		{name: "no trunk no country code", raw: "521234567", want: "+972521234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewNormalizer("972")

	for _, raw := range []string{"0521234567", "972521234567", "+972 52 123 4567", "garbage123"} {
		once := n.Normalize(raw)
		assert.Equal(t, once, n.Normalize(once), "normalize(normalize(%q))", raw)
	}
}

func TestNormalize_Total(t *testing.T) {
	n := NewNormalizer("972")

	// Never panics, always returns something, whatever the input.
	assert.NotEmpty(t, n.Normalize(""))
	assert.NotEmpty(t, n.Normalize("abc"))
	assert.NotEmpty(t, n.Normalize("++++"))
}
