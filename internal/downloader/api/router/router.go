package router

import (
	"media_download_service/internal/downloader/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// RegisterRoutes 注册下載相關的路由
// @title Media Download Service API
// @version 1.0
// @description API documentation for Media Download Service
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App, downloadHandler *handlers.DownloadHandler) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", downloadHandler.HealthCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	apiRoutes := app.Group("/api")
	apiRoutes.Post("/info", downloadHandler.GetVideoInfo)
	apiRoutes.Post("/download", downloadHandler.DownloadVideo)
}
