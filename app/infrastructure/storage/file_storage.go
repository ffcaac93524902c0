package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"plume.ink/plume-blog-server/app/utils/logger"
	"plume.ink/plume-blog-server/config/environment_variables"
)

// imageExtensions classifies uploads by filename substring, matching the
// loose check the site has always used ("photo.jpg.txt" counts as an image).
var imageExtensions = []string{"jpg", "png", "jpeg", "bmp"}

// downsizeQuality is the JPEG quality applied to uploaded images. Uploads
// feed article bodies, not galleries; small beats pretty.
const downsizeQuality = 20

var ErrPathTraversal = errors.New("upload path escapes the storage root")

// FileStorage writes uploads beneath a local static root, partitioned by
// date and media kind, and hands back public URLs.
type FileStorage struct {
	root      string
	urlPrefix string
}

func NewFileStorage() *FileStorage {
	return &FileStorage{
		root:      environment_variables.EnvironmentVariables.STATIC_ROOT,
		urlPrefix: strings.TrimRight(environment_variables.EnvironmentVariables.STATIC_URL_PREFIX, "/"),
	}
}

// IsImage reports whether the filename looks like an image upload.
func IsImage(filename string) bool {
	lowered := strings.ToLower(filename)
	for _, ext := range imageExtensions {
		if strings.Contains(lowered, ext) {
			return true
		}
	}
	return false
}

func datePartition(now time.Time) string {
	return now.Format("2006/01/02")
}

// targetDir resolves the destination directory for an upload and rejects
// any path that would land outside the storage root.
func (s *FileStorage) targetDir(kind string, now time.Time) (string, error) {
	dir := filepath.Join(s.root, kind, datePartition(now))
	cleaned := filepath.Clean(dir)
	cleanedRoot := filepath.Clean(s.root)
	if cleaned != cleanedRoot && !strings.HasPrefix(cleaned, cleanedRoot+string(os.PathSeparator)) {
		return "", ErrPathTraversal
	}
	return cleaned, nil
}

// Save stores the upload and returns its public URL. Image uploads are
// re-encoded at reduced quality; anything else is written as-is.
func (s *FileStorage) Save(filename string, content []byte) (string, error) {
	now := time.Now()
	kind := "files"
	isImage := IsImage(filename)
	if isImage {
		kind = "image"
	}

	dir, err := s.targetDir(kind, now)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := filepath.Ext(filename)
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ext
	path := filepath.Join(dir, name)

	if isImage {
		content = downsize(content)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/%s", s.urlPrefix, kind, datePartition(now), name)
	return url, nil
}

// downsize re-encodes an image at reduced quality. Content that does not
// decode (or a format the encoder cannot write back) passes through
// untouched rather than failing the upload.
func downsize(content []byte) []byte {
	img, format, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		logger.GetLogger().Warnf("upload did not decode as image, storing original: %v", err)
		return content
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: downsizeQuality})
	case "png":
		err = png.Encode(&buf, img)
	default:
		return content
	}
	if err != nil {
		logger.GetLogger().Warnf("image re-encode failed, storing original: %v", err)
		return content
	}
	return buf.Bytes()
}
