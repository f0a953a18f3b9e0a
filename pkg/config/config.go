package config

import "time"

// Downloader definition download_service YAML structure
type Downloader struct {
	Port string `mapstructure:"port"`
	IP   string `mapstructure:"ip"`

	// StagingDir 下載檔案暫存目錄，留空時使用系統 temp 目錄
	StagingDir string `mapstructure:"staging_dir"`
	// YtDlpPath yt-dlp 執行檔路徑，留空時依 PATH 尋找
	YtDlpPath string `mapstructure:"ytdlp_path"`

	Janitor JanitorConfig `mapstructure:"janitor"`
}

// JanitorConfig definition staged file cleanup setting
type JanitorConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	// TTL 暫存檔保留時間，超過即清除
	TTL time.Duration `mapstructure:"ttl"`
}
