package api

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"typecraft/internal/storage"
)

// Upload limits. Assets are logo/screenshot images dropped into documents.
const (
	maxAssetBytes    = 5 * 1024 * 1024
	maxUploadsPerDay = 60
)

var assetExtByMIME = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// AssetHandler 负责处理图片上传与访问。
// 上传前走 ClamAV 扫描，地址未配置时跳过。
type AssetHandler struct {
	Storage     *storage.Client
	RedisClient *redis.Client
	Logger      *slog.Logger
	ClamdAddr   string
}

// NewAssetHandler 返回 AssetHandler 实例。
func NewAssetHandler(storageClient *storage.Client, redisClient *redis.Client, logger *slog.Logger, clamdAddr string) *AssetHandler {
	return &AssetHandler{
		Storage:     storageClient,
		RedisClient: redisClient,
		Logger:      logger,
		ClamdAddr:   clamdAddr,
	}
}

// UploadAsset 处理图片上传：限频、限大小、按 MIME 白名单过滤并扫描病毒。
func (h *AssetHandler) UploadAsset(c *gin.Context) {
	if h.RedisClient != nil {
		key := fmt.Sprintf("typecraft:asset_uploads:%s", c.ClientIP())
		count, err := incrWithTTL(c.Request.Context(), h.RedisClient, key, 24*time.Hour)
		if err != nil {
			h.Logger.Warn("asset upload rate counter failed", slog.Any("error", err))
		} else if count > maxUploadsPerDay {
			Error(c, http.StatusTooManyRequests, "daily upload limit reached")
			return
		}
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}
	if file.Size > maxAssetBytes {
		BadRequest(c, "file too large")
		return
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := assetExtByMIME[contentType]
	if !ok {
		BadRequest(c, "unsupported file type")
		return
	}

	if h.ClamdAddr != "" {
		clean, err := h.scanFile(file)
		if err != nil {
			h.Logger.Error("scan file", slog.String("error", err.Error()))
			Internal(c, "failed to scan file")
			return
		}
		if !clean {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer fileReader.Close()

	objectKey := fmt.Sprintf("%s%s.%s", storage.AssetPrefix, uuid.NewString(), ext)
	if _, err := h.Storage.UploadFile(c.Request.Context(), objectKey, fileReader, file.Size, contentType); err != nil {
		h.Logger.Error("upload file", slog.String("error", err.Error()))
		Internal(c, "failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"objectKey": objectKey})
}

// GetAssetURL 返回资产的临时预签名 URL。
func (h *AssetHandler) GetAssetURL(c *gin.Context) {
	objectKey := c.Query("key")
	if objectKey == "" {
		BadRequest(c, "missing key")
		return
	}
	if !isValidAssetObjectKey(objectKey) {
		Forbidden(c, "access denied")
		return
	}

	signedURL, err := h.Storage.GeneratePresignedURL(c.Request.Context(), objectKey, 15*time.Minute)
	if err != nil {
		h.Logger.Error("generate presigned url", slog.String("error", err.Error()))
		Internal(c, "failed to generate url")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// scanFile streams the upload through clamd; clean=false means a signature
// matched.
func (h *AssetHandler) scanFile(file *multipart.FileHeader) (clean bool, err error) {
	fileReader, err := file.Open()
	if err != nil {
		return false, fmt.Errorf("open upload: %w", err)
	}

	clamdClient := clamd.NewClamd(h.ClamdAddr)
	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
	fileReader.Close()
	if err != nil {
		return false, fmt.Errorf("scan stream: %w", err)
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return false, nil
		}
	}
	return true, nil
}
