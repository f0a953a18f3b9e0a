package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"media_download_service/internal/downloader/domain"
	errprocess "media_download_service/pkg/err"
)

// outputPattern yt-dlp 的輸出檔名模板，title 與 ext 由引擎替換
const outputPattern = "%(title)s.%(ext)s"

// StagingRepo 暫存目錄存取層。每個下載請求分配一個 token 子目錄，
// 寫入後用 token 回查檔案，避免在共用目錄下做前綴掃描
type StagingRepo interface {
	// OutputTemplate 建立 token 子目錄並回傳引擎的輸出路徑模板
	OutputTemplate(token string) (string, error)
	// Locate 回傳 token 子目錄中第一個檔案的路徑
	Locate(token string) (string, error)
	// Sweep 清除超過 ttl 的 token 子目錄，回傳清除數量
	Sweep(ttl time.Duration) (int, error)
}

type localStagingRepo struct {
	baseDir string
}

// NewStagingRepo create staging repo，baseDir 留空時使用系統 temp 目錄
func NewStagingRepo(baseDir string) (StagingRepo, error) {
	if baseDir == "" {
		baseDir = filepath.Join(os.TempDir(), "media_download_service")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errprocess.Set(fmt.Sprintf("create staging dir[%s] failed : %v", baseDir, err))
	}
	return &localStagingRepo{baseDir: baseDir}, nil
}

// OutputTemplate 建立 token 子目錄並回傳輸出模板
func (r *localStagingRepo) OutputTemplate(token string) (string, error) {
	dir := filepath.Join(r.baseDir, token)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errprocess.Set(fmt.Sprintf("token[%s] create staging dir failed : %v", token, err))
	}
	return filepath.Join(dir, outputPattern), nil
}

// Locate 回查 token 子目錄中下載完成的檔案
func (r *localStagingRepo) Locate(token string) (string, error) {
	dir := filepath.Join(r.baseDir, token)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: token[%s]", domain.ErrStagedFileMissing, token)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		return filepath.Join(dir, entry.Name()), nil
	}
	return "", fmt.Errorf("%w: token[%s]", domain.ErrStagedFileMissing, token)
}

// Sweep 清除過期的 token 子目錄
func (r *localStagingRepo) Sweep(ttl time.Duration) (int, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return 0, errprocess.Set(fmt.Sprintf("read staging dir[%s] failed : %v", r.baseDir, err))
	}

	cutoff := time.Now().Add(-ttl)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(r.baseDir, entry.Name())); err != nil {
			return removed, errprocess.Set(fmt.Sprintf("token[%s] remove staging dir failed : %v", entry.Name(), err))
		}
		removed++
	}
	return removed, nil
}
