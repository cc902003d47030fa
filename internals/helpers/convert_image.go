package helper

import (
	"bytes"
	"fmt"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxImageWidth = 1600

// ConvertToWebP decodes an uploaded image, downscales it to a sane width and
// re-encodes it as webp.
func ConvertToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveUpload writes data under ./uploads/<folder>/ and returns the public URL.
func SaveUpload(folder, originalName string, data []byte) (string, error) {
	dir := filepath.Join("uploads", folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := GenerateUniqueFilename(originalName)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", folder, name), nil
}

func GenerateUniqueFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString()[:8], ext)
}
