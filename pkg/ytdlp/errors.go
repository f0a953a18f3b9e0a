package ytdlp

import (
	"errors"
	"fmt"
	"strings"
)

// 引擎錯誤的分類結果，handler 依此對應 403/404/401
var (
	// ErrPrivateVideo 影片為私人影片
	ErrPrivateVideo = errors.New("video is private")
	// ErrVideoUnavailable 影片不存在或已下架
	ErrVideoUnavailable = errors.New("video is unavailable")
	// ErrLoginRequired 需要登入才能存取
	ErrLoginRequired = errors.New("video requires login")
)

// ExtractError 其他無法分類的引擎錯誤，保留原始輸出
type ExtractError struct {
	Output string
}

func (e *ExtractError) Error() string {
	return e.Output
}

// classifyExtractError 以子字串比對分類 yt-dlp 的錯誤輸出。
// yt-dlp 走 pipe 沒有結構化錯誤碼，只能 best-effort 比對文字，
// 順序固定：private -> unavailable -> login -> 其他
func classifyExtractError(output string, cause error) error {
	msg := strings.TrimSpace(output)
	if msg == "" {
		msg = cause.Error()
	}
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "private"):
		return fmt.Errorf("%w: %s", ErrPrivateVideo, msg)
	case strings.Contains(lower, "unavailable"), strings.Contains(lower, "not available"):
		return fmt.Errorf("%w: %s", ErrVideoUnavailable, msg)
	case strings.Contains(lower, "login"), strings.Contains(lower, "sign in"):
		return fmt.Errorf("%w: %s", ErrLoginRequired, msg)
	default:
		return &ExtractError{Output: msg}
	}
}
