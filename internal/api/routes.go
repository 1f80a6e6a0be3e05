package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"typecraft/internal/config"
	"typecraft/internal/editor"
	"typecraft/internal/storage"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
	editorCtl *editor.Controller,
	cfg *config.Config,
) {
	templateHandler := NewTemplateHandler()
	editorHandler := NewEditorHandler(editorCtl)
	artifactHandler := NewArtifactHandler(db, cfg.Studio.Watermark)
	exportHandler := NewExportHandler(db, asynqClient, storageClient)
	assetHandler := NewAssetHandler(storageClient, redisClient, logger, cfg.Clamd.Addr)
	wsHandler := NewWsHandler(redisClient, logger, nil)

	// 公开分享页，不走 /v1 前缀。
	router.GET("/r", artifactHandler.ViewEncoded)
	router.GET("/r/:slug", artifactHandler.ViewShared)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		v1.GET("/templates", templateHandler.ListTemplates)
		v1.GET("/templates/:artifact", templateHandler.GetTemplate)

		v1.POST("/render/preview", artifactHandler.Preview)

		editorGroup := v1.Group("/editor/:artifact")
		{
			editorGroup.GET("", editorHandler.Open)
			editorGroup.PUT("/layout", editorHandler.SetLayout)
			editorGroup.PUT("/theme", editorHandler.SetTheme)
			editorGroup.PATCH("/answers", editorHandler.PatchAnswers)
			editorGroup.PUT("/slug", editorHandler.SetSavedSlug)
			editorGroup.POST("/next", editorHandler.Next)
			editorGroup.POST("/prev", editorHandler.Prev)
			editorGroup.POST("/reset", editorHandler.Reset)
			editorGroup.GET("/panels/:name", editorHandler.GetPanel)
			editorGroup.PUT("/panels/:name", editorHandler.SetPanel)

			deckGroup := editorGroup.Group("/slides")
			{
				deckGroup.POST("", editorHandler.AddSlide)
				deckGroup.DELETE("/:id", editorHandler.RemoveSlide)
				deckGroup.POST("/:id/move", editorHandler.MoveSlide)
				deckGroup.POST("/:id/select", editorHandler.SelectSlide)
				deckGroup.PATCH("/:id", editorHandler.PatchSlide)
				deckGroup.PUT("/:id/type", editorHandler.RetypeSlide)
				deckGroup.POST("/:id/commit-bullets", editorHandler.CommitBullets)
			}
			editorGroup.PUT("/logo", editorHandler.SetLogo)
		}

		artifactGroup := v1.Group("/artifacts")
		{
			artifactGroup.POST("", artifactHandler.CreateArtifact)
			artifactGroup.GET("/:id", artifactHandler.GetArtifact)
		}

		exportGroup := v1.Group("/exports")
		{
			exportGroup.POST("", exportHandler.CreateExport)
			exportGroup.GET("/:id", exportHandler.GetExport)
			exportGroup.GET("/:id/download-link", exportHandler.GetDownloadLink)
			exportGroup.GET("/:id/file", exportHandler.DownloadFile)
			exportGroup.DELETE("/:id", exportHandler.DeleteExport)
		}

		assetGroup := v1.Group("/assets")
		{
			assetGroup.POST("/upload", assetHandler.UploadAsset)
			assetGroup.GET("/view", assetHandler.GetAssetURL)
		}
	}
}
