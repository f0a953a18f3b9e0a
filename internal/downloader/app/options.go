package app

import (
	"media_download_service/internal/downloader/domain"
	"media_download_service/pkg/ytdlp"
)

// baseEngineOptions 共通的引擎選項：不展開播放清單、安靜模式、一律抓完整 metadata
func baseEngineOptions() ytdlp.Options {
	return ytdlp.Options{
		NoPlaylist:  true,
		Quiet:       true,
		NoWarnings:  true,
		FlatExtract: false,
	}
}

// engineOptions 依平台調整引擎選項。
// TikTok 優先挑解析度高、mp4/m4a 容器的變體，偏向無浮水印的串流
func engineOptions(platform domain.PlatformID) ytdlp.Options {
	opts := baseEngineOptions()

	if platform == domain.PlatformTikTok {
		opts.FormatSort = []string{"res", "ext:mp4:m4a"}
	}

	return opts
}
