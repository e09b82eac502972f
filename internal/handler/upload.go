package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/earthly-ai/backend/internal/model"
)

type UploadHandler struct {
	logger zerolog.Logger
}

func NewUploadHandler(logger zerolog.Logger) *UploadHandler {
	return &UploadHandler{logger: logger}
}

// Upload reads the whole multipart payload to report its size. The body
// is not validated and not retained; the returned file ID is a random
// token since no record is kept to count.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn().Err(err).Msg("invalid upload request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.logger.Error().Err(err).Msg("file upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
		return
	}
	defer f.Close()

	contents, err := io.ReadAll(f)
	if err != nil {
		h.logger.Error().Err(err).Msg("file upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file upload failed"})
		return
	}

	fileID := "uploaded_" + uuid.NewString()
	h.logger.Info().Str("filename", fileHeader.Filename).Str("file_id", fileID).Int("size", len(contents)).Msg("file uploaded")

	c.JSON(http.StatusOK, model.UploadResponse{
		Message:  "File uploaded successfully",
		Filename: fileHeader.Filename,
		FileID:   fileID,
		Size:     int64(len(contents)),
	})
}
