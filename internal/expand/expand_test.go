package expand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwaddell/cidr/internal/errors"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "full specifier passes through",
			tokens: []string{"10.0.0.1/24"},
			want:   []string{"10.0.0.1/24"},
		},
		{
			name:   "shorthand inherits previous address",
			tokens: []string{"10.0.0.1/24", "/16"},
			want:   []string{"10.0.0.1/24", "10.0.0.1/16"},
		},
		{
			name:   "explicit override sets address",
			tokens: []string{"/10.0.0.1/24", "/30"},
			want:   []string{"10.0.0.1/24", "10.0.0.1/30"},
		},
		{
			name:   "default seeds leading shorthand",
			tokens: []string{"/24"},
			want:   []string{"192.168.1.1/24"},
		},
		{
			name:   "inheritance is left to right",
			tokens: []string{"/8", "10.0.0.1/24", "/16", "172.16.0.1/12", "/30"},
			want:   []string{"192.168.1.1/8", "10.0.0.1/24", "10.0.0.1/16", "172.16.0.1/12", "172.16.0.1/30"},
		},
		{
			name:   "override then shorthand",
			tokens: []string{"10.0.0.1/24", "/172.16.0.1/12", "/28"},
			want:   []string{"10.0.0.1/24", "172.16.0.1/12", "172.16.0.1/28"},
		},
		{
			name:   "bare address without prefix passes through",
			tokens: []string{"10.1.2.3"},
			want:   []string{"10.1.2.3"},
		},
		{
			name:   "empty batch",
			tokens: []string{},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandErrors(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		wantToken string
	}{
		{
			name:      "bad octet in full specifier",
			tokens:    []string{"10.0.0.999/24"},
			wantToken: "10.0.0.999/24",
		},
		{
			name:      "bad octet in override",
			tokens:    []string{"/300.0.0.1/24"},
			wantToken: "/300.0.0.1/24",
		},
		{
			name:      "failure mid batch yields no partial result",
			tokens:    []string{"10.0.0.1/24", "bogus/16", "/8"},
			wantToken: "bogus/16",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.tokens)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.IsCode(err, errors.CodeAddressParse))

			var tokenErr *errors.TokenError
			require.ErrorAs(t, err, &tokenErr)
			assert.Equal(t, tt.wantToken, tokenErr.Token)
		})
	}
}

// Shorthand prefixes are not validated during expansion; the engine
// rejects them when the resolved specifier is parsed.
func TestExpandDefersRangeChecks(t *testing.T) {
	got, err := Expand([]string{"/40"})
	require.NoError(t, err)
	assert.Equal(t, []string{"192.168.1.1/40"}, got)
}
