package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExternalURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"full https URL", "https://example.com/product", "https://example.com/product", false},
		{"full http URL", "http://example.com", "http://example.com", false},
		{"bare domain", "example.com", "https://example.com", false},
		{"bare domain with path", "shop.example.com/keys?ref=1", "https://shop.example.com/keys?ref=1", false},
		{"whitespace trimmed", "  example.com  ", "https://example.com", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"unsupported scheme", "ftp://example.com", "", true},
		{"no dot in host", "localhost", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeExternalURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
