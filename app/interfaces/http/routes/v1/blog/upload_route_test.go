package blog

import (
	"bytes"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"plume.ink/plume-blog-server/app/infrastructure/storage"
	"plume.ink/plume-blog-server/app/utils/crypto"
	"plume.ink/plume-blog-server/config/environment_variables"
)

func newUploadTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	env := &environment_variables.EnvironmentVariables
	env.BLOG_SECRET_KEY = "upload-test-secret"
	env.STATIC_ROOT = root
	env.STATIC_URL_PREFIX = "/static"

	engine := gin.New()
	NewUploadRoute(storage.NewFileStorage()).RegisterRouter(engine.Group("/"))
	return engine, root
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write multipart content: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func storedFileCount(t *testing.T, root string) int {
	t.Helper()
	count := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("failed to walk storage root: %v", err)
	}
	return count
}

func TestUploadMissingSignatureIsForbidden(t *testing.T) {
	engine, root := newUploadTestRouter(t)

	body, contentType := multipartBody(t, "notes.txt", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without a signature, got %d", recorder.Code)
	}
	if n := storedFileCount(t, root); n != 0 {
		t.Fatalf("expected nothing written, found %d files", n)
	}
}

func TestUploadWrongSignatureIsForbidden(t *testing.T) {
	engine, root := newUploadTestRouter(t)

	body, contentType := multipartBody(t, "notes.txt", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/upload?sign=deadbeef", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a wrong signature, got %d", recorder.Code)
	}
	if n := storedFileCount(t, root); n != 0 {
		t.Fatalf("expected nothing written, found %d files", n)
	}
}

func TestUploadNonPostGetsHint(t *testing.T) {
	engine, root := newUploadTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/upload", nil)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 on GET, got %d", recorder.Code)
	}
	if recorder.Body.String() != "only for post" {
		t.Fatalf("expected the post-only hint, got %q", recorder.Body.String())
	}
	if n := storedFileCount(t, root); n != 0 {
		t.Fatalf("expected nothing written, found %d files", n)
	}
}

func TestUploadValidSignatureStoresFile(t *testing.T) {
	engine, root := newUploadTestRouter(t)

	sign := crypto.UploadSignature("upload-test-secret")
	body, contentType := multipartBody(t, "notes.txt", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/upload?sign="+sign, body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	url := strings.TrimSpace(recorder.Body.String())
	if !strings.HasPrefix(url, "/static/files/") {
		t.Fatalf("expected a /static/files/ URL, got %q", url)
	}
	if n := storedFileCount(t, root); n != 1 {
		t.Fatalf("expected exactly one stored file, found %d", n)
	}
}
