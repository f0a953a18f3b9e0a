package domain

import "errors"

// 定義 usecase 對外的錯誤，handler 依此對應 HTTP 狀態碼
var (
	// ErrUnsupportedPlatform URL 不屬於任何支援的平台
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrNoVideoInfo 引擎沒有回傳可用的影片資訊
	ErrNoVideoInfo = errors.New("could not extract video information")
	// ErrStagedFileMissing 下載完成但暫存目錄找不到檔案
	ErrStagedFileMissing = errors.New("downloaded file not found")
)
