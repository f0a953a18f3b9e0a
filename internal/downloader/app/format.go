package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"media_download_service/internal/downloader/domain"
	"media_download_service/pkg/ytdlp"
)

// codecNone yt-dlp 用 "none" 表示沒有該軌
const codecNone = "none"

// buildFormatList 把引擎回傳的原始 format 清單整理成對外的格式：
// 1. 丟掉沒有直接媒體 URL 的項目
// 2. 丟掉純音訊項目
// 3. 組解析度標籤：{width}x{height} > {height}p > format note > "unknown"
// 4. 以 (解析度, 副檔名, 是否有音訊) 去重，保留先出現的
// 5. 依解析度高度由大到小穩定排序
func buildFormatList(raw []ytdlp.RawFormat) []domain.FormatDescriptor {
	formats := []domain.FormatDescriptor{}
	seen := make(map[string]bool)

	for _, f := range raw {
		if f.URL == "" {
			continue
		}

		hasVideo := f.VCodec != "" && f.VCodec != codecNone
		hasAudio := f.ACodec != "" && f.ACodec != codecNone

		// 純音訊不列入
		if !hasVideo {
			continue
		}

		resolution := resolutionLabel(f)

		key := fmt.Sprintf("%s_%s_%t", resolution, f.Ext, hasAudio)
		if seen[key] {
			continue
		}
		seen[key] = true

		formats = append(formats, domain.FormatDescriptor{
			FormatID:       f.FormatID,
			Ext:            f.Ext,
			Resolution:     resolution,
			Filesize:       f.Filesize,
			FilesizeApprox: f.FilesizeApprox,
			HasAudio:       hasAudio,
			HasVideo:       hasVideo,
		})
	}

	// 穩定排序，同高度保持原本順序
	sort.SliceStable(formats, func(i, j int) bool {
		return resolutionHeight(formats[i].Resolution) > resolutionHeight(formats[j].Resolution)
	})

	return formats
}

// resolutionLabel 組出解析度標籤
func resolutionLabel(f ytdlp.RawFormat) string {
	if f.Height != nil {
		if f.Width != nil {
			return fmt.Sprintf("%dx%d", *f.Width, *f.Height)
		}
		return fmt.Sprintf("%dp", *f.Height)
	}
	if f.FormatNote != "" {
		return f.FormatNote
	}
	return "unknown"
}

// resolutionHeight 從標籤解析出高度，"1080p" 與 "1920x1080" 都回傳 1080，
// 解析不出來視為 0
func resolutionHeight(resolution string) int {
	s := strings.TrimSuffix(resolution, "p")
	if i := strings.LastIndex(s, "x"); i >= 0 {
		s = s[i+1:]
	}
	height, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return height
}
