package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Configured(t *testing.T) {
	t.Parallel()

	full := Config{Bucket: "b", AccessKey: "a", SecretKey: "s"}
	assert.True(t, full.Configured())

	assert.False(t, Config{}.Configured())
	assert.False(t, Config{Bucket: "b"}.Configured())
	assert.False(t, Config{Bucket: "b", AccessKey: "a"}.Configured())
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestPublicURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		key  string
		want string
	}{
		{
			name: "cdn prefix wins",
			cfg:  Config{Bucket: "docs", Region: "us-east-1", PublicURL: "https://cdn.example.com/"},
			key:  "applications/x.pdf",
			want: "https://cdn.example.com/applications/x.pdf",
		},
		{
			name: "path style endpoint",
			cfg:  Config{Bucket: "docs", Endpoint: "http://localhost:9000", PathStyle: true},
			key:  "x.pdf",
			want: "http://localhost:9000/docs/x.pdf",
		},
		{
			name: "default aws url",
			cfg:  Config{Bucket: "docs", Region: "us-east-1"},
			key:  "x.pdf",
			want: "https://docs.s3.us-east-1.amazonaws.com/x.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &S3Storage{cfg: tt.cfg}
			assert.Equal(t, tt.want, s.publicURL(tt.key))
		})
	}
}

func TestBuildKey(t *testing.T) {
	t.Parallel()

	s := &S3Storage{cfg: Config{Bucket: "docs"}}

	key := s.buildKey("applications", "application/pdf")
	assert.Contains(t, key, "applications/")
	assert.Contains(t, key, ".pdf")

	bare := s.buildKey("", "application/x-unknown-type")
	assert.NotContains(t, bare, "/")
}
