package utils

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeText  = "text"
	MediaTypeOther = "other"
)

var imageMimeTypes = map[string]bool{
	"image/apng":    true,
	"image/png":     true,
	"image/avif":    true,
	"image/gif":     true,
	"image/jpeg":    true,
	"image/svg+xml": true,
	"image/webp":    true,
}

var videoMimeTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/mpeg":      true,
	"video/webm":      true,
}

var textMimeTypes = map[string]bool{
	"text/plain":      true,
	"application/pdf": true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ClassifyMime buckets a declared MIME type into the media taxonomy.
// An empty or unrecognizable MIME type is rejected; anything recognizable
// but outside the known buckets is stored as "other".
func ClassifyMime(mimeType string) (string, error) {
	if mimeType == "" {
		return "", ErrUnknownMediaType
	}

	switch {
	case imageMimeTypes[mimeType]:
		return MediaTypeImage, nil
	case videoMimeTypes[mimeType]:
		return MediaTypeVideo, nil
	case textMimeTypes[mimeType]:
		return MediaTypeText, nil
	}

	return MediaTypeOther, nil
}
