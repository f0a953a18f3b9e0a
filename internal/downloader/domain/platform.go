package domain

import "regexp"

// PlatformID definition supported platform
// PlatformID 定義支援的社群平台
type PlatformID string

const (
	// PlatformYouTube youtube.com / youtu.be
	PlatformYouTube PlatformID = "youtube"
	// PlatformTikTok tiktok.com
	PlatformTikTok PlatformID = "tiktok"
	// PlatformInstagram instagram.com
	PlatformInstagram PlatformID = "instagram"
	// PlatformFacebook facebook.com / fb.watch
	PlatformFacebook PlatformID = "facebook"
	// PlatformTwitter twitter.com / x.com
	PlatformTwitter PlatformID = "twitter"
	// PlatformUnknown 無法辨識的平台
	PlatformUnknown PlatformID = "unknown"
)

// platformPattern 依固定順序比對，map 的迭代順序不固定所以用 slice
type platformPattern struct {
	platform PlatformID
	pattern  *regexp.Regexp
}

var platformPatterns = []platformPattern{
	{PlatformYouTube, regexp.MustCompile(`(?i)(youtube\.com|youtu\.be)`)},
	{PlatformTikTok, regexp.MustCompile(`(?i)tiktok\.com`)},
	{PlatformInstagram, regexp.MustCompile(`(?i)instagram\.com`)},
	{PlatformFacebook, regexp.MustCompile(`(?i)(facebook\.com|fb\.watch)`)},
	{PlatformTwitter, regexp.MustCompile(`(?i)(twitter\.com|x\.com)`)},
}

// SupportedPlatformsHint 提示訊息，列出支援的平台
const SupportedPlatformsHint = "YouTube, TikTok, Instagram, Facebook, Twitter/X"

// DetectPlatform detect the social media platform from the URL
// DetectPlatform 由 URL 比對出社群平台，比對不到回傳 PlatformUnknown
func DetectPlatform(url string) PlatformID {
	for _, p := range platformPatterns {
		if p.pattern.MatchString(url) {
			return p.platform
		}
	}
	return PlatformUnknown
}
