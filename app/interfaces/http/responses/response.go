package responses

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"plume.ink/plume-blog-server/config"
)

type ErrorResponse struct {
	Code          string `json:"code"`
	Error         string `json:"error"`
	ErrorInstance error  `json:"-"`
}

type GeneralResponse[T any] struct {
	Status string `json:"status"`
	Result T      `json:"result"`
}

type ListResponse[T any] struct {
	Status   string `json:"status"`
	Total    int64  `json:"total"`
	Page     int    `json:"page"`
	LastPage int    `json:"last_page"`
	Results  []T    `json:"results"`
}

const ResponseCodeOk = "000000"

// ErrorPage is the body of reader-facing failures: a message and the status
// it was served with, nothing else.
type ErrorPage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statuscode"`
}

func RenderNotFound(reqCtx *gin.Context) {
	RenderErrorPage(reqCtx, http.StatusNotFound, "page not found")
}

func RenderForbidden(reqCtx *gin.Context, message string) {
	RenderErrorPage(reqCtx, http.StatusForbidden, message)
}

func RenderServerError(reqCtx *gin.Context) {
	RenderErrorPage(reqCtx, http.StatusInternalServerError, "server error")
}

func RenderErrorPage(reqCtx *gin.Context, status int, message string) {
	reqCtx.AbortWithStatusJSON(status, ErrorPage{
		Message:    message,
		StatusCode: status,
	})
}

func NewCookieWithSecurity(name string, value string, expires time.Time) *http.Cookie {
	if config.IsDev() {
		return &http.Cookie{
			Name:     name,
			Value:    value,
			Expires:  expires,
			HttpOnly: false,
			Secure:   false,
			Path:     "/",
		}
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	}
}
