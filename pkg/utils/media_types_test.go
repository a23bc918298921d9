package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMime(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/jpeg", MediaTypeImage},
		{"image/png", MediaTypeImage},
		{"image/svg+xml", MediaTypeImage},
		{"video/mp4", MediaTypeVideo},
		{"video/quicktime", MediaTypeVideo},
		{"text/plain", MediaTypeText},
		{"application/pdf", MediaTypeText},
		{"application/zip", MediaTypeOther},
		{"audio/mpeg", MediaTypeOther},
	}

	for _, tc := range cases {
		got, err := ClassifyMime(tc.mime)
		require.NoError(t, err, "mime %q", tc.mime)
		assert.Equal(t, tc.want, got, "mime %q", tc.mime)
	}
}

func TestClassifyMimeEmpty(t *testing.T) {
	_, err := ClassifyMime("")
	assert.ErrorIs(t, err, ErrUnknownMediaType)
}
