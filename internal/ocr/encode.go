package ocr

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// ErrNotAnImage is returned when the declared media type is not an image.
var ErrNotAnImage = fmt.Errorf("file is not an image")

// EncodeImage reads an uploaded file into raw base64 with no data-URL prefix.
// The declared media type must indicate an image before any bytes are read;
// an unreadable file yields an error and no partial result.
func EncodeImage(r io.Reader, declaredType string) (string, error) {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(declaredType, ";")[0]))
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotAnImage, declaredType)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
