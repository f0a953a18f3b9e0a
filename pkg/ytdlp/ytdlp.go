package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"media_download_service/pkg/logger"
)

// DefaultBinary yt-dlp 執行檔預設名稱，依 PATH 尋找
const DefaultBinary = "yt-dlp"

// RawFormat mirrors one entry of the "formats" list in yt-dlp JSON output.
// 欄位都是選填，yt-dlp 依平台不同給的欄位也不同
type RawFormat struct {
	FormatID       string `json:"format_id"`
	Ext            string `json:"ext"`
	URL            string `json:"url"`
	Width          *int   `json:"width"`
	Height         *int   `json:"height"`
	VCodec         string `json:"vcodec"`
	ACodec         string `json:"acodec"`
	Filesize       *int64 `json:"filesize"`
	FilesizeApprox *int64 `json:"filesize_approx"`
	FormatNote     string `json:"format_note"`
}

// VideoMetadata mirrors the top-level fields of yt-dlp --dump-single-json
// we care about. 下載模式時 Title/Ext 反映實際輸出的檔名
type VideoMetadata struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Thumbnail string      `json:"thumbnail"`
	Duration  *float64    `json:"duration"`
	Ext       string      `json:"ext"`
	Formats   []RawFormat `json:"formats"`
}

// Options 轉成 yt-dlp 的命令列參數
type Options struct {
	NoPlaylist bool
	Quiet      bool
	NoWarnings bool
	// FlatExtract false 時帶 --no-flat-playlist，一律抓完整 metadata
	FlatExtract bool
	// FormatSort 對應 --format-sort，例如 ["res", "ext:mp4:m4a"]
	FormatSort []string
	// Format 下載模式指定的 format id
	Format string
	// OutputTemplate 下載模式的輸出路徑模板，保留 %(title)s.%(ext)s 替換
	OutputTemplate string
}

// Engine 抽象出外部抽取引擎，讓 usecase 可以 mock
type Engine interface {
	ExtractInfo(ctx context.Context, url string, opts Options) (*VideoMetadata, error)
	Download(ctx context.Context, url string, opts Options) (*VideoMetadata, error)
}

// Client 以 subprocess 方式呼叫 yt-dlp
type Client struct {
	binPath string
}

// NewClient create yt-dlp client，binPath 留空時使用 DefaultBinary
func NewClient(binPath string) *Client {
	if binPath == "" {
		binPath = DefaultBinary
	}
	return &Client{binPath: binPath}
}

// ExtractInfo 只抓 metadata，不下載檔案
func (c *Client) ExtractInfo(ctx context.Context, url string, opts Options) (*VideoMetadata, error) {
	args := append(buildArgs(opts), "--dump-single-json", url)
	return c.run(ctx, args)
}

// Download 下載指定 format 並輸出到 opts.OutputTemplate，同時回傳 metadata
func (c *Client) Download(ctx context.Context, url string, opts Options) (*VideoMetadata, error) {
	args := buildArgs(opts)
	args = append(args, "--no-simulate", "--dump-single-json")
	if opts.Format != "" {
		args = append(args, "-f", opts.Format)
	}
	if opts.OutputTemplate != "" {
		args = append(args, "-o", opts.OutputTemplate)
	}
	args = append(args, url)
	return c.run(ctx, args)
}

// buildArgs 組出共通參數
func buildArgs(opts Options) []string {
	var args []string
	if opts.NoPlaylist {
		args = append(args, "--no-playlist")
	}
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if opts.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if !opts.FlatExtract {
		args = append(args, "--no-flat-playlist")
	}
	if len(opts.FormatSort) > 0 {
		args = append(args, "--format-sort", strings.Join(opts.FormatSort, ","))
	}
	return args
}

// run 執行 yt-dlp，stdout 是 JSON metadata，stderr 留著做錯誤分類
func (c *Client) run(ctx context.Context, args []string) (*VideoMetadata, error) {
	logger.Log.Debug(fmt.Sprintf("exec %s %s", c.binPath, strings.Join(args, " ")))

	cmd := exec.CommandContext(ctx, c.binPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, classifyExtractError(stderr.String(), err)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" || out == "null" {
		return nil, nil
	}

	var meta VideoMetadata
	if err := json.Unmarshal([]byte(out), &meta); err != nil {
		return nil, fmt.Errorf("parse yt-dlp output failed: %w", err)
	}
	return &meta, nil
}
