package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabooya/gh-seed/internal/domain"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		want    string
		wantErr bool
	}{
		{"scp-like ssh", "git@github.com:acme/widgets.git", "acme/widgets", false},
		{"scp-like without suffix", "git@github.com:acme/widgets", "acme/widgets", false},
		{"https", "https://github.com/acme/widgets.git", "acme/widgets", false},
		{"https without suffix", "https://github.com/acme/widgets", "acme/widgets", false},
		{"ssh scheme", "ssh://git@github.com/acme/widgets.git", "acme/widgets", false},
		{"no path", "https://github.com", "", true},
		{"too many segments", "https://github.com/a/b/c", "", true},
		{"bare word", "widgets", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.remote)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetector_Detect_NotARepo(t *testing.T) {
	d := NewDetector()
	_, err := d.Detect(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrRepoNotDetected)
}
