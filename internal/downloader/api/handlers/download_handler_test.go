package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"media_download_service/internal/downloader/app"
	"media_download_service/internal/downloader/domain"
	"media_download_service/pkg/logger"
	"media_download_service/pkg/ytdlp"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDownloadUseCase 是 DownloadUseCase 的 Mock
type MockDownloadUseCase struct {
	mock.Mock
}

// GetVideoInfo 模擬取得影片資訊
func (m *MockDownloadUseCase) GetVideoInfo(ctx context.Context, url string) (*domain.VideoInfo, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VideoInfo), args.Error(1)
}

// DownloadVideo 模擬下載影片
func (m *MockDownloadUseCase) DownloadVideo(ctx context.Context, req domain.DownloadReq) (*domain.DownloadResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DownloadResult), args.Error(1)
}

func newTestApp(usecase app.DownloadUseCase) *fiber.App {
	r := fiber.New()
	h := NewDownloadHandler(usecase)
	r.Get("/health", h.HealthCheck)
	r.Post("/api/info", h.GetVideoInfo)
	r.Post("/api/download", h.DownloadVideo)
	return r
}

func postJSON(t *testing.T, r *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

// 測試 HealthCheck
func TestHealthCheck(t *testing.T) {
	logger.SetNewNop()
	r := newTestApp(new(MockDownloadUseCase))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := r.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

// 測試 GetVideoInfo handler
func TestGetVideoInfoHandler(t *testing.T) {
	logger.SetNewNop()

	t.Run("成功回傳影片資訊", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		info := &domain.VideoInfo{
			Title:    "Test Video",
			Platform: domain.PlatformYouTube,
			Formats: []domain.FormatDescriptor{
				{FormatID: "22", Ext: "mp4", Resolution: "720p", HasAudio: true, HasVideo: true},
			},
		}
		mockUsecase.On("GetVideoInfo", mock.Anything, "https://youtu.be/abc").Return(info, nil)

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "https://youtu.be/abc"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body domain.VideoInfo
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Test Video", body.Title)
		assert.Equal(t, domain.PlatformYouTube, body.Platform)
		assert.Len(t, body.Formats, 1)
	})

	t.Run("空 URL 回 400 且不會呼叫 usecase", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "   "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockUsecase.AssertNotCalled(t, "GetVideoInfo", mock.Anything, mock.Anything)
	})

	t.Run("不支援的平台回 400", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("GetVideoInfo", mock.Anything, "https://vimeo.com/1").
			Return(nil, fmt.Errorf("%w: https://vimeo.com/1", domain.ErrUnsupportedPlatform))

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "https://vimeo.com/1"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "Unsupported platform")
	})

	t.Run("私人影片回 403", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("GetVideoInfo", mock.Anything, "https://youtu.be/p").
			Return(nil, fmt.Errorf("%w: Private video", ytdlp.ErrPrivateVideo))

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "https://youtu.be/p"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("需要登入回 401", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("GetVideoInfo", mock.Anything, "https://youtu.be/l").
			Return(nil, fmt.Errorf("%w: Sign in to confirm", ytdlp.ErrLoginRequired))

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "https://youtu.be/l"})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("影片不存在回 404", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("GetVideoInfo", mock.Anything, "https://youtu.be/u").
			Return(nil, fmt.Errorf("%w: Video unavailable", ytdlp.ErrVideoUnavailable))

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "https://youtu.be/u"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("其他抽取錯誤回 400 帶原始訊息", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("GetVideoInfo", mock.Anything, "https://youtu.be/e").
			Return(nil, &ytdlp.ExtractError{Output: "ERROR: something odd"})

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "https://youtu.be/e"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "something odd")
	})

	t.Run("未預期錯誤回 500", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("GetVideoInfo", mock.Anything, "https://youtu.be/x").
			Return(nil, fmt.Errorf("boom"))

		resp := postJSON(t, r, "/api/info", fiber.Map{"url": "https://youtu.be/x"})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

// 測試 DownloadVideo handler
func TestDownloadVideoHandler(t *testing.T) {
	logger.SetNewNop()

	t.Run("成功回傳檔案", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		staged := filepath.Join(t.TempDir(), "file.mp4")
		assert.NoError(t, os.WriteFile(staged, []byte("dummy video content"), 0644))

		mockUsecase.On("DownloadVideo", mock.Anything, domain.DownloadReq{URL: "https://youtu.be/abc", FormatID: "22"}).
			Return(&domain.DownloadResult{FilePath: staged, FileName: "Test Video.mp4", Token: "abc12345"}, nil)

		resp := postJSON(t, r, "/api/download", fiber.Map{"url": "https://youtu.be/abc", "format_id": "22"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "Test Video.mp4")

		data, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.Equal(t, "dummy video content", string(data))
	})

	t.Run("缺 format_id 回 400", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		resp := postJSON(t, r, "/api/download", fiber.Map{"url": "https://youtu.be/abc"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockUsecase.AssertNotCalled(t, "DownloadVideo", mock.Anything, mock.Anything)
	})

	t.Run("缺 URL 回 400", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		resp := postJSON(t, r, "/api/download", fiber.Map{"format_id": "22"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("暫存檔不見回 404", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("DownloadVideo", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: token[abc12345]", domain.ErrStagedFileMissing))

		resp := postJSON(t, r, "/api/download", fiber.Map{"url": "https://youtu.be/abc", "format_id": "22"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("下載失敗回 400", func(t *testing.T) {
		mockUsecase := new(MockDownloadUseCase)
		r := newTestApp(mockUsecase)

		mockUsecase.On("DownloadVideo", mock.Anything, mock.Anything).
			Return(nil, &ytdlp.ExtractError{Output: "ERROR: no formats"})

		resp := postJSON(t, r, "/api/download", fiber.Map{"url": "https://youtu.be/abc", "format_id": "22"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "Failed to download")
	})
}
