package mediahost

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Size ceilings for uploaded images. Hosted uploads are handed off to the
// media host and may be larger; inline uploads are stored as data URLs in
// the record itself and stay small.
const (
	MaxInlineSize = 5 << 20
	MaxHostedSize = 10 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AllowedImageType reports whether mime is an accepted upload type.
func AllowedImageType(mime string) bool {
	return allowedImageTypes[strings.ToLower(strings.TrimSpace(mime))]
}

// ParseDataURL splits a base64 data URL into its MIME type and decoded
// payload.
func ParseDataURL(s string) (string, []byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, errors.New("image must be a base64 data URL")
	}
	rest := strings.TrimPrefix(s, "data:")

	mime, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, errors.New("image data URL must be base64 encoded")
	}
	if mime == "" {
		return "", nil, errors.New("image data URL missing MIME type")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode image payload: %w", err)
	}
	return strings.ToLower(mime), data, nil
}

// EncodeDataURL builds a base64 data URL from a MIME type and payload.
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
