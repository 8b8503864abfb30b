package validation

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

const (
	MaxImageSize = 5 * 1024 * 1024
	MaxVideoSize = 10 * 1024 * 1024
)

var (
	ErrFileTooLarge = errors.New("file exceeds the size limit")
	ErrBadFileType  = errors.New("file type not accepted")
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var videoTypes = map[string]bool{
	"video/mp4":       true,
	"video/webm":      true,
	"video/ogg":       true,
	"application/ogg": true,
	"video/quicktime": true,
}

var imageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
var videoExts = map[string]bool{".mp4": true, ".webm": true, ".ogg": true, ".mov": true}

// CheckImage accepts an existing URL, nothing at all, or a local file that
// is JPEG/PNG/WEBP and at most 5MB. Presence is a separate concern handled
// by required tags.
func CheckImage(ref catalog.FileRef) error {
	return checkFile(ref, MaxImageSize, imageTypes, imageExts)
}

// CheckVideo allows MP4/WEBM/OGG/QuickTime up to 10MB.
func CheckVideo(ref catalog.FileRef) error {
	return checkFile(ref, MaxVideoSize, videoTypes, videoExts)
}

func checkFile(ref catalog.FileRef, maxSize int64, types, exts map[string]bool) error {
	if ref.Path == "" {
		return nil
	}

	info, err := os.Stat(ref.Path)
	if err != nil {
		return err
	}
	if info.Size() > maxSize {
		return ErrFileTooLarge
	}

	sniffed, err := sniffContentType(ref.Path)
	if err != nil {
		return err
	}
	if types[sniffed] {
		return nil
	}
	// Some accepted containers (QuickTime among them) have no sniff entry.
	if sniffed == "application/octet-stream" && exts[strings.ToLower(filepath.Ext(ref.Path))] {
		return nil
	}
	return ErrBadFileType
}

func sniffContentType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && n == 0 {
		return "", err
	}
	contentType := http.DetectContentType(buf[:n])
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.TrimSpace(contentType), nil
}
