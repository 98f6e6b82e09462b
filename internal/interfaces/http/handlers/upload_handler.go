package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "cenit-labs.backend/internal/domain/errors"
	"cenit-labs.backend/internal/interfaces/http/response"
	"cenit-labs.backend/pkg/mediahost"
)

type UploadHandler struct {
	uploader mediahost.Uploader
}

func NewUploadHandler(uploader mediahost.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type uploadInput struct {
	Image    string `json:"image"`
	Filename string `json:"filename"`
}

// UploadImage accepts a base64 data URL, validates its type and size, and
// returns a URL usable as a team member imageUrl. With a configured media
// host the image is uploaded there; otherwise the data URL itself is
// returned and stored inline.
// POST /api/upload
func (h *UploadHandler) UploadImage(c *gin.Context) {
	var input uploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if input.Image == "" {
		response.Error(c, domainerrors.BadRequest("no image provided"))
		return
	}

	mime, data, err := mediahost.ParseDataURL(input.Image)
	if err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if !mediahost.AllowedImageType(mime) {
		response.Error(c, domainerrors.BadRequest("invalid file type, only JPEG, PNG, GIF and WebP are allowed"))
		return
	}

	maxSize := mediahost.MaxInlineSize
	if h.uploader.Configured() {
		maxSize = mediahost.MaxHostedSize
	}
	if len(data) > maxSize {
		response.Error(c, domainerrors.BadRequest(tooLargeMessage(maxSize)))
		return
	}

	imageURL := input.Image
	if h.uploader.Configured() {
		imageURL, err = h.uploader.Upload(c.Request.Context(), input.Image, input.Filename)
		if err != nil {
			response.Error(c, domainerrors.NewAppError(
				http.StatusInternalServerError, "failed to upload image", err))
			return
		}
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success":  true,
		"imageUrl": imageURL,
	})
}

func tooLargeMessage(maxSize int) string {
	if maxSize == mediahost.MaxHostedSize {
		return "file too large, maximum size is 10MB"
	}
	return "file too large, maximum size is 5MB"
}
