package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseURI(t *testing.T) {
	bucket, key, err := parseURI("s3://datasets/projects/alpha/raw/img.jpg")
	require.NoError(t, err)
	require.Equal(t, "datasets", bucket)
	require.Equal(t, "projects/alpha/raw/img.jpg", key)
}

func TestParseURIRejectsMalformed(t *testing.T) {
	for _, uri := range []string{"", "datasets/raw", "s3://", "s3://bucket", "s3://bucket/", "http://x/y"} {
		_, _, err := parseURI(uri)
		require.Error(t, err, "uri=%q", uri)
	}
}
