package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.instagram.com/reel/Cxyz123/", PlatformInstagram},
		{"https://www.tiktok.com/@user/video/7281", PlatformTikTok},
		{"https://www.youtube.com/shorts/abc123", PlatformYouTube},
		{"https://www.youtube.com/watch?v=abc123", PlatformYouTube},
		{"https://WWW.TIKTOK.COM/@User/video/1", PlatformTikTok},
		{"https://www.instagram.com/p/Cxyz123/", ""},
		{"https://vimeo.com/12345", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), "url %q", tt.url)
	}
}

func TestNormalizeMetrics_PlatformFieldNames(t *testing.T) {
	instagram := normalizeMetrics(map[string]interface{}{
		"play_count":    float64(12000),
		"like_count":    float64(340),
		"comment_count": float64(56),
	}, PlatformInstagram)
	assert.Equal(t, int64(12000), instagram.Views)
	assert.Equal(t, int64(340), instagram.Likes)
	assert.Equal(t, int64(56), instagram.Comments)

	tiktok := normalizeMetrics(map[string]interface{}{
		"playCount":    float64(99000),
		"diggCount":    float64(1200),
		"commentCount": float64(80),
	}, PlatformTikTok)
	assert.Equal(t, int64(99000), tiktok.Views)
	assert.Equal(t, int64(1200), tiktok.Likes)
	assert.Equal(t, int64(80), tiktok.Comments)

	youtube := normalizeMetrics(map[string]interface{}{
		"view_count": float64(410),
	}, PlatformYouTube)
	assert.Equal(t, int64(410), youtube.Views)
	assert.Equal(t, int64(0), youtube.Likes)
}

func TestNormalizeMetrics_MissingFieldsDefaultToZero(t *testing.T) {
	metrics := normalizeMetrics(map[string]interface{}{}, PlatformInstagram)
	assert.Equal(t, int64(0), metrics.Views)
	assert.Equal(t, int64(0), metrics.Likes)
	assert.Equal(t, int64(0), metrics.Comments)
}
