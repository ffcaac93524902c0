package blog

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"plume.ink/plume-blog-server/app/infrastructure/storage"
	"plume.ink/plume-blog-server/app/interfaces/http/responses"
	"plume.ink/plume-blog-server/app/utils/crypto"
	"plume.ink/plume-blog-server/app/utils/logger"
	"plume.ink/plume-blog-server/config/environment_variables"
)

// maxUploadBytes bounds a single upload request.
const maxUploadBytes = 20 << 20

type UploadRoute struct {
	fileStorage *storage.FileStorage
}

func NewUploadRoute(fileStorage *storage.FileStorage) *UploadRoute {
	return &UploadRoute{
		fileStorage,
	}
}

func (route *UploadRoute) RegisterRouter(router gin.IRouter) {
	// Editor integrations probe this endpoint with GET before posting, so
	// it accepts any method and answers non-POSTs with a hint.
	router.Any("/upload", route.Upload)
}

// @Summary Upload files
// @Description Accepts signed multipart uploads and returns one public URL per file, newline separated. Images are stored downsized.
// @Tags Blog API
// @Accept mpfd
// @Produce plain
// @Param sign query string true "Upload signature"
// @Success 200 {string} string "Newline separated URLs"
// @Failure 403 {object} responses.ErrorPage "Bad signature"
// @Router /v1/blog/upload [post]
func (route *UploadRoute) Upload(reqCtx *gin.Context) {
	if reqCtx.Request.Method != http.MethodPost {
		reqCtx.String(http.StatusOK, "only for post")
		return
	}

	sign := reqCtx.Query("sign")
	expected := crypto.UploadSignature(environment_variables.EnvironmentVariables.BLOG_SECRET_KEY)
	if subtle.ConstantTimeCompare([]byte(sign), []byte(expected)) != 1 {
		responses.RenderForbidden(reqCtx, "signature error")
		return
	}

	reqCtx.Request.Body = http.MaxBytesReader(reqCtx.Writer, reqCtx.Request.Body, maxUploadBytes)
	form, err := reqCtx.MultipartForm()
	if err != nil {
		responses.RenderErrorPage(reqCtx, http.StatusBadRequest, "invalid multipart payload")
		return
	}

	var urls []string
	for _, files := range form.File {
		for _, fileHeader := range files {
			file, err := fileHeader.Open()
			if err != nil {
				responses.RenderErrorPage(reqCtx, http.StatusBadRequest, "unreadable upload")
				return
			}
			content, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				responses.RenderErrorPage(reqCtx, http.StatusBadRequest, "unreadable upload")
				return
			}

			url, err := route.fileStorage.Save(fileHeader.Filename, content)
			if err != nil {
				if errors.Is(err, storage.ErrPathTraversal) {
					reqCtx.String(http.StatusBadRequest, "invalid filename")
					return
				}
				logger.GetLogger().Errorf("upload store failed: %v", err)
				responses.RenderServerError(reqCtx)
				return
			}
			urls = append(urls, url)
		}
	}

	reqCtx.String(http.StatusOK, strings.Join(urls, "\n"))
}
