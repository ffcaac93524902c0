package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestIsImage(t *testing.T) {
	cases := map[string]bool{
		"photo.jpg":      true,
		"photo.JPEG":     true,
		"shot.png":       true,
		"scan.bmp":       true,
		"photo.jpg.txt":  true,
		"notes.txt":      false,
		"archive.tar.gz": false,
	}
	for filename, want := range cases {
		if got := IsImage(filename); got != want {
			t.Fatalf("IsImage(%q) = %v, want %v", filename, got, want)
		}
	}
}

func TestTargetDirRejectsTraversal(t *testing.T) {
	s := &FileStorage{root: "/srv/static", urlPrefix: "/static"}
	if _, err := s.targetDir("../../etc", time.Now()); err == nil {
		t.Fatal("expected traversal rejection")
	}
	if _, err := s.targetDir("image", time.Now()); err != nil {
		t.Fatalf("expected image dir to resolve: %v", err)
	}
}

func TestSavePartitionsByDateAndKind(t *testing.T) {
	root := t.TempDir()
	s := &FileStorage{root: root, urlPrefix: "/static"}

	url, err := s.Save("notes.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	partition := time.Now().Format("2006/01/02")
	if !strings.HasPrefix(url, "/static/files/"+partition+"/") {
		t.Fatalf("unexpected url %q", url)
	}
	if !strings.HasSuffix(url, ".txt") {
		t.Fatalf("expected extension preserved, got %q", url)
	}

	rel := strings.TrimPrefix(url, "/static/")
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("non-image content altered: %q", data)
	}
}

func TestSaveDownsizesJpeg(t *testing.T) {
	root := t.TempDir()
	s := &FileStorage{root: root, urlPrefix: "/static"}

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	var original bytes.Buffer
	if err := jpeg.Encode(&original, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("failed to build fixture image: %v", err)
	}

	url, err := s.Save("photo.jpg", original.Bytes())
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.Contains(url, "/image/") {
		t.Fatalf("image upload not routed to image dir: %q", url)
	}

	rel := strings.TrimPrefix(url, "/static/")
	stored, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("stored image unreadable: %v", err)
	}
	if len(stored) >= original.Len() {
		t.Fatalf("expected downsized image smaller than original: %d >= %d", len(stored), original.Len())
	}
	if _, _, err := image.Decode(bytes.NewReader(stored)); err != nil {
		t.Fatalf("stored image does not decode: %v", err)
	}
}

func TestSaveKeepsUndecodableImageContent(t *testing.T) {
	root := t.TempDir()
	s := &FileStorage{root: root, urlPrefix: "/static"}

	content := []byte("not really a jpeg")
	url, err := s.Save("broken.jpg", content)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	rel := strings.TrimPrefix(url, "/static/")
	stored, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if !bytes.Equal(stored, content) {
		t.Fatal("undecodable upload should be stored as-is")
	}
}
