package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 測試 DetectPlatform
func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected PlatformID
	}{
		{"youtube 網址", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"youtu.be 短網址", "https://youtu.be/dQw4w9WgXcQ", PlatformYouTube},
		{"大寫網址也要比對到", "https://YOUTUBE.com/watch?v=x", PlatformYouTube},
		{"tiktok 網址", "https://www.tiktok.com/@user/video/123", PlatformTikTok},
		{"instagram 網址", "https://www.instagram.com/reel/abc/", PlatformInstagram},
		{"facebook 網址", "https://www.facebook.com/watch?v=123", PlatformFacebook},
		{"fb.watch 短網址", "https://fb.watch/abc123/", PlatformFacebook},
		{"twitter 網址", "https://twitter.com/user/status/123", PlatformTwitter},
		{"x.com 網址", "https://x.com/user/status/123", PlatformTwitter},
		{"不支援的平台", "https://vimeo.com/12345", PlatformUnknown},
		{"空字串", "", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}
