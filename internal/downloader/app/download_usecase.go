package app

import (
	"context"
	"fmt"

	"media_download_service/internal/downloader/domain"
	"media_download_service/internal/downloader/repository"
	"media_download_service/pkg"
	"media_download_service/pkg/logger"
	"media_download_service/pkg/ytdlp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tokenLength 下載請求識別碼長度
const tokenLength = 8

// DownloadUseCase 這裡封裝了對外提供的應用服務
type DownloadUseCase interface {
	GetVideoInfo(ctx context.Context, url string) (*domain.VideoInfo, error)
	DownloadVideo(ctx context.Context, req domain.DownloadReq) (*domain.DownloadResult, error)
}

type downloadUseCase struct {
	Engine  ytdlp.Engine
	Staging repository.StagingRepo
}

// NewDownloadUseCase 建立一個新的 DownloadUseCase
func NewDownloadUseCase(engine ytdlp.Engine, staging repository.StagingRepo) DownloadUseCase {
	return &downloadUseCase{
		Engine:  engine,
		Staging: staging,
	}
}

// GetVideoInfo 取得影片資訊與可用的 format 清單
func (s *downloadUseCase) GetVideoInfo(ctx context.Context, url string) (*domain.VideoInfo, error) {
	// 1. 比對平台
	platform := domain.DetectPlatform(url)
	if platform == domain.PlatformUnknown {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, url)
	}

	// 2. 依平台選項呼叫引擎抓 metadata
	meta, err := s.Engine.ExtractInfo(ctx, url, engineOptions(platform))
	if err != nil {
		logger.Log.Errorf(fmt.Sprintf("url[%s] extract info failed :", url), err)
		return nil, err
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: url[%s]", domain.ErrNoVideoInfo, url)
	}

	// 3. 整理 format 清單
	title := meta.Title
	if title == "" {
		title = "Untitled"
	}

	info := &domain.VideoInfo{
		Title:     title,
		Platform:  platform,
		Thumbnail: meta.Thumbnail,
		Duration:  meta.Duration,
		Formats:   buildFormatList(meta.Formats),
	}

	logger.Log.Debug("video info extracted",
		zap.String("url", url),
		zap.String("platform", string(platform)),
		zap.Int("formats", len(info.Formats)),
	)
	return info, nil
}

// DownloadVideo 下載指定 format 的影片並回傳暫存檔位置
func (s *downloadUseCase) DownloadVideo(ctx context.Context, req domain.DownloadReq) (*domain.DownloadResult, error) {
	// 1. 比對平台
	platform := domain.DetectPlatform(req.URL)
	if platform == domain.PlatformUnknown {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, req.URL)
	}

	// 2. 產生本次請求的識別碼與輸出模板
	token := uuid.New().String()[:tokenLength]
	template, err := s.Staging.OutputTemplate(token)
	if err != nil {
		return nil, err
	}

	// 3. 下載一律用共通選項加上指定的 format id
	opts := baseEngineOptions()
	opts.Format = req.FormatID
	opts.OutputTemplate = template

	meta, err := s.Engine.Download(ctx, req.URL, opts)
	if err != nil {
		logger.Log.Errorf(fmt.Sprintf("url[%s] token[%s] download failed :", req.URL, token), err)
		return nil, err
	}
	if meta == nil {
		return nil, fmt.Errorf("%w: url[%s]", domain.ErrNoVideoInfo, req.URL)
	}

	// 4. 組對外檔名，title 反映引擎實際輸出
	title := meta.Title
	if title == "" {
		title = "video"
	}
	ext := meta.Ext
	if ext == "" {
		ext = "mp4"
	}

	// 5. 回查暫存檔，引擎回報成功但檔案不在視為資料完整性錯誤
	filePath, err := s.Staging.Locate(token)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("video downloaded",
		zap.String("url", req.URL),
		zap.String("token", token),
		zap.String("file", filePath),
	)

	return &domain.DownloadResult{
		FilePath: filePath,
		FileName: fmt.Sprintf("%s.%s", pkg.SanitizeFilename(title), ext),
		Token:    token,
	}, nil
}
