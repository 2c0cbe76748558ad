package render

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const silhouette = `<?xml version="1.0" encoding="UTF-8"?>
<svg width="100" height="100" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">
  <circle cx="50" cy="50" r="50" fill="#6c757d"/>
  <path d="M50 55c-13.8 0-25 11.2-25 25h50c0-13.8-11.2-25-25-25z" fill="#ffffff" opacity="0.7"/>
  <circle cx="50" cy="35" r="20" fill="#ffffff" opacity="0.7"/>
</svg>`

// FallbackAvatar is the generic silhouette used when the avatar cannot be fetched.
var FallbackAvatar = DataURI("image/svg+xml", []byte(silhouette))

// DataURI encodes data as a base64 data URI.
func DataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// AvatarDataURI sniffs the image type of data and embeds it. ok is false when
// data is not an image.
func AvatarDataURI(data []byte) (uri string, ok bool) {
	mediaType := mimetype.Detect(data).String()
	if !strings.HasPrefix(mediaType, "image/") {
		return "", false
	}
	return DataURI(mediaType, data), true
}
