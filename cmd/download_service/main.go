package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	_ "media_download_service/docs" // 引入生成的 Swagger 文档
	"media_download_service/internal/downloader/api/handlers"
	"media_download_service/internal/downloader/api/router"
	"media_download_service/internal/downloader/app"
	"media_download_service/internal/downloader/repository"
	"media_download_service/pkg/config"
	"media_download_service/pkg/logger"
	"media_download_service/pkg/ytdlp"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

const (
	defaultJanitorInterval = 10 * time.Minute
	defaultJanitorTTL      = time.Hour
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.DownloadService, config.EnvConfig.DownloadServiceLogPath)

	cfg := config.LoadConfig[config.Downloader](config.EnvConfig.DownloadService, config.EnvConfig.DownloadServiceYAMLPath)

	// 1. 初始化暫存目錄
	staging, err := repository.NewStagingRepo(cfg.StagingDir)
	if err != nil {
		logger.Log.Fatal("Unable to init staging directory", zap.Error(err))
	}

	// 2. 初始化 yt-dlp 引擎與 usecase
	engine := ytdlp.NewClient(cfg.YtDlpPath)
	usecase := app.NewDownloadUseCase(engine, staging)

	// 3. 啟動暫存檔清理（以 goroutine 執行，用 context 控制生命週期）
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Janitor.Enabled {
		interval := cfg.Janitor.Interval
		if interval <= 0 {
			interval = defaultJanitorInterval
		}
		ttl := cfg.Janitor.TTL
		if ttl <= 0 {
			ttl = defaultJanitorTTL
		}
		janitor := app.NewJanitor(staging, interval, ttl)
		go janitor.Start(ctx)
	}

	// 4. 建立 Fiber 應用
	r := fiber.New()

	// 添加日志中间件
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.DownloadServiceLogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer file.Close()

	r.Use(fiber_log.New(fiber_log.Config{
		Output: file, // 将日志输出到文件
	}))

	// 全開的 CORS，正式環境要收斂 origin 清單
	r.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "*",
		AllowCredentials: true,
	}))
	if config.IsProduction() {
		logger.Log.Warn("CORS allows all origins with credentials; tighten this for production")
	}
	// 本地開發預設打開 debug log，線上用 /debug 再開
	if config.IsLocal() {
		logger.Log.SetDebugMode(true)
	}

	// 5. 設定 API 路由
	downloadHandler := handlers.NewDownloadHandler(usecase)
	router.RegisterRoutes(r, downloadHandler)

	// 6. 啟動 API 服務
	if err := r.Listen(":" + cfg.Port); err != nil {
		cleanup()
		logger.Log.Fatal("Server failed to start", zap.Error(err))
	}
}

func cleanup() {
	// 释放资源，例如清理暫存檔等
	log.Println("Performing cleanup tasks...")
}
