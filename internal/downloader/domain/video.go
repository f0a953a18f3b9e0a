package domain

// FormatDescriptor 一個可下載的影片變體（解析度/容器/音訊組合）
type FormatDescriptor struct {
	FormatID       string `json:"format_id"`
	Ext            string `json:"ext"`
	Resolution     string `json:"resolution"`
	Filesize       *int64 `json:"filesize,omitempty"`
	FilesizeApprox *int64 `json:"filesize_approx,omitempty"`
	HasAudio       bool   `json:"has_audio"`
	HasVideo       bool   `json:"has_video"`
}

// VideoInfo usecase get video info response
// VideoInfo 影片資訊，formats 依解析度由高到低排序
type VideoInfo struct {
	Title     string             `json:"title"`
	Platform  PlatformID         `json:"platform"`
	Thumbnail string             `json:"thumbnail,omitempty"`
	Duration  *float64           `json:"duration,omitempty"`
	Formats   []FormatDescriptor `json:"formats"`
}

// DownloadReq usecase download request
type DownloadReq struct {
	URL      string
	FormatID string
}

// DownloadResult usecase download response，指向暫存目錄內已下載的檔案
type DownloadResult struct {
	// FilePath 暫存檔案的實際路徑
	FilePath string
	// FileName 回傳給 client 的顯示檔名（已過濾非法字元）
	FileName string
	// Token 本次下載的請求識別碼
	Token string
}
