package handlers

import (
	"errors"
	"fmt"
	"strings"

	"media_download_service/internal/downloader/app"
	"media_download_service/internal/downloader/domain"
	"media_download_service/pkg/logger"
	"media_download_service/pkg/ytdlp"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DownloadHandler 处理影片下載相關的 HTTP 请求
type DownloadHandler struct {
	Usecase app.DownloadUseCase
}

// NewDownloadHandler 创建新的 DownloadHandler
func NewDownloadHandler(usecase app.DownloadUseCase) *DownloadHandler {
	return &DownloadHandler{
		Usecase: usecase,
	}
}

// GetVideoInfo 取得影片資訊
// @Summary 取得影片資訊
// @Description 回傳影片標題、平台與可用的 format 清單
// @Tags Downloads
// @Accept json
// @Produce json
// @Param request body handlers.InfoRequest true "影片 URL"
// @Success 200 {object} domain.VideoInfo "影片資訊"
// @Failure 400 {object} string "請求錯誤或不支援的平台"
// @Failure 401 {object} string "需要登入"
// @Failure 403 {object} string "私人影片"
// @Failure 404 {object} string "影片不存在"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /api/info [post]
func (h *DownloadHandler) GetVideoInfo(c *fiber.Ctx) error {
	var req InfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "URL is required"})
	}

	logger.Log.Debug("info request", zap.String("url", url))

	info, err := h.Usecase.GetVideoInfo(c.UserContext(), url)
	if err != nil {
		status, msg := infoErrorStatus(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	return c.JSON(info)
}

// DownloadVideo 下載指定 format 的影片
// @Summary 下載影片
// @Description 依 format_id 下載影片並以附件回傳
// @Tags Downloads
// @Accept json
// @Produce video/mp4
// @Param request body handlers.DownloadRequest true "影片 URL 與 format_id"
// @Success 200 {file} file "影片檔案"
// @Failure 400 {object} string "請求錯誤、不支援的平台或下載失敗"
// @Failure 404 {object} string "影片或暫存檔不存在"
// @Failure 500 {object} string "伺服器錯誤"
// @Router /api/download [post]
func (h *DownloadHandler) DownloadVideo(c *fiber.Ctx) error {
	var req DownloadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	url := strings.TrimSpace(req.URL)
	formatID := strings.TrimSpace(req.FormatID)
	if url == "" || formatID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "URL and format_id are required"})
	}

	result, err := h.Usecase.DownloadVideo(c.UserContext(), domain.DownloadReq{
		URL:      url,
		FormatID: formatID,
	})
	if err != nil {
		status, msg := downloadErrorStatus(err)
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	// 回傳固定 video/mp4，不依實際容器判斷
	if err := c.Download(result.FilePath, result.FileName); err != nil {
		logger.Log.Errorf(fmt.Sprintf("token[%s] send staged file failed :", result.Token), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to send file"})
	}
	c.Set(fiber.HeaderContentType, "video/mp4")
	return nil
}

// HealthCheck health check endpoint
// @Summary Health check
// @Description Returns service ready status
// @Tags Shared
// @Success 200 {object} map[string]string "ok"
// @Router /health [get]
func (h *DownloadHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// InfoRequest info 請求內容
type InfoRequest struct {
	URL string `json:"url"`
}

// DownloadRequest download 請求內容
type DownloadRequest struct {
	URL      string `json:"url"`
	FormatID string `json:"format_id"`
}

// infoErrorStatus info 路徑的錯誤對應：
// private -> 403, login -> 401, unavailable/無資訊 -> 404,
// 其他抽取錯誤 -> 400，未預期 -> 500
func infoErrorStatus(err error) (int, string) {
	var extractErr *ytdlp.ExtractError
	switch {
	case errors.Is(err, domain.ErrUnsupportedPlatform):
		return fiber.StatusBadRequest, "Unsupported platform. Supported: " + domain.SupportedPlatformsHint
	case errors.Is(err, ytdlp.ErrPrivateVideo):
		return fiber.StatusForbidden, "This video is private and cannot be accessed"
	case errors.Is(err, ytdlp.ErrVideoUnavailable):
		return fiber.StatusNotFound, "This video is unavailable"
	case errors.Is(err, ytdlp.ErrLoginRequired):
		return fiber.StatusUnauthorized, "This video requires login to access"
	case errors.Is(err, domain.ErrNoVideoInfo):
		return fiber.StatusNotFound, "Could not extract video information"
	case errors.As(err, &extractErr):
		return fiber.StatusBadRequest, "Failed to extract video: " + extractErr.Output
	default:
		return fiber.StatusInternalServerError, "An unexpected error occurred: " + err.Error()
	}
}

// downloadErrorStatus download 路徑的錯誤對應：
// 引擎回報的失敗一律 400，無資訊或暫存檔不見 -> 404，未預期 -> 500
func downloadErrorStatus(err error) (int, string) {
	var extractErr *ytdlp.ExtractError
	switch {
	case errors.Is(err, domain.ErrUnsupportedPlatform):
		return fiber.StatusBadRequest, "Unsupported platform"
	case errors.Is(err, domain.ErrNoVideoInfo):
		return fiber.StatusNotFound, "Could not extract video information"
	case errors.Is(err, domain.ErrStagedFileMissing):
		return fiber.StatusNotFound, "Downloaded file not found"
	case errors.Is(err, ytdlp.ErrPrivateVideo),
		errors.Is(err, ytdlp.ErrVideoUnavailable),
		errors.Is(err, ytdlp.ErrLoginRequired):
		return fiber.StatusBadRequest, "Failed to download: " + err.Error()
	case errors.As(err, &extractErr):
		return fiber.StatusBadRequest, "Failed to download: " + extractErr.Output
	default:
		return fiber.StatusInternalServerError, "An unexpected error occurred: " + err.Error()
	}
}
