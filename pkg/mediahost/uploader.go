package mediahost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	// Folder is the media-host folder all team images land in.
	Folder = "cenit-labs/team"

	// transformation crops to a portrait around the face and lets the host
	// pick quality and format per client.
	transformation = "c_fill,g_face,w_800,h_1000/q_auto/f_auto"
)

// Uploader hands image payloads to an external media host and returns the
// hosted URL.
type Uploader interface {
	// Configured reports whether host credentials are present. When false,
	// Upload fails and callers should fall back to inline storage.
	Configured() bool
	Upload(ctx context.Context, dataURL, filename string) (string, error)
}

// CloudinaryHost uploads images to Cloudinary. A host built without a cloud
// name is a valid, unconfigured instance.
type CloudinaryHost struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryHost(cloudName, apiKey, apiSecret string) (*CloudinaryHost, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return &CloudinaryHost{}, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryHost{cld: cld}, nil
}

func (h *CloudinaryHost) Configured() bool {
	return h.cld != nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, dataURL, filename string) (string, error) {
	if h.cld == nil {
		return "", errors.New("media host not configured")
	}

	publicID := filename
	if publicID == "" {
		publicID = fmt.Sprintf("upload-%d", time.Now().UnixMilli())
	}

	result, err := h.cld.Upload.Upload(ctx, dataURL, uploader.UploadParams{
		Folder:         Folder,
		PublicID:       publicID,
		ResourceType:   "image",
		Transformation: transformation,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}
