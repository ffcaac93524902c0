package blog

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/comment"
	"plume.ink/plume-blog-server/app/domain/common"
	"plume.ink/plume-blog-server/app/domain/hook"
	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/interfaces/http/requests"
	"plume.ink/plume-blog-server/app/interfaces/http/responses"
	"plume.ink/plume-blog-server/app/utils/logger"
)

type DetailRoute struct {
	articleService *article.ArticleService
	commentService *comment.CommentService
	settingService *setting.Service
	hooks          *hook.Registry
}

func NewDetailRoute(
	articleService *article.ArticleService,
	commentService *comment.CommentService,
	settingService *setting.Service,
	hooks *hook.Registry,
) *DetailRoute {
	return &DetailRoute{
		articleService,
		commentService,
		settingService,
		hooks,
	}
}

func (route *DetailRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/articles/:id", route.GetArticle)
}

type NeighborResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type CommentResponse struct {
	ID         uint              `json:"id"`
	AuthorName string            `json:"author_name"`
	Body       string            `json:"body"`
	ParentID   *uint             `json:"parent_id,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	Replies    []CommentResponse `json:"replies,omitempty"`
}

type CommentPageResponse struct {
	Comments    []CommentResponse `json:"comments"`
	Page        int               `json:"page"`
	NumPages    int               `json:"num_pages"`
	Total       int               `json:"total"`
	NextPageURL *string           `json:"next_page_url,omitempty"`
	PrevPageURL *string           `json:"prev_page_url,omitempty"`
}

type ArticleDetailResponse struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Body         string              `json:"body"`
	Excerpt      string              `json:"excerpt"`
	AuthorName   string              `json:"author_name"`
	AuthorSlug   string              `json:"author_slug"`
	CategoryName string              `json:"category_name"`
	Tags         []string            `json:"tags"`
	Views        int64               `json:"views"`
	PubTime      time.Time           `json:"pub_time"`
	Prev         *NeighborResponse   `json:"prev,omitempty"`
	Next         *NeighborResponse   `json:"next,omitempty"`
	CommentPage  CommentPageResponse `json:"comment_page"`
}

// @Summary Article detail page
// @Description Returns a published article with its rendered body, neighbors and one page of threaded comments.
// @Tags Blog API
// @Produce json
// @Param id path int true "Article ID"
// @Param comment_page query string false "Comment page; clamped into range"
// @Success 200 {object} ArticleDetailResponse "Article detail"
// @Failure 404 {object} responses.ErrorPage "Unknown or unpublished article"
// @Failure 500 {object} responses.ErrorPage "Body rendering failed"
// @Router /v1/blog/articles/{id} [get]
func (route *DetailRoute) GetArticle(reqCtx *gin.Context) {
	id, err := requests.GetUintParam(reqCtx, "id")
	if err != nil {
		responses.RenderNotFound(reqCtx)
		return
	}

	ctx := reqCtx.Request.Context()
	a, err := route.articleService.GetVisible(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			responses.RenderNotFound(reqCtx)
			return
		}
		logger.GetLogger().Errorf("article lookup failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}

	// A failed counter bump never fails the page.
	if err := route.articleService.IncrementViews(ctx, a.ID); err != nil {
		logger.GetLogger().Warnf("failed to increment views for article %d: %v", a.ID, err)
	}

	hctx := hook.Context{
		"article_id": a.ID,
		"author_id":  a.AuthorID,
	}
	route.hooks.RunAction(ctx, hook.AfterArticleBodyGetAction, hctx)
	body, err := route.hooks.ApplyFilters(ctx, hook.ArticleContentFilter, a.Body, hctx)
	if err != nil {
		logger.GetLogger().Errorf("article body rendering aborted: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}

	settings, err := route.settingService.GetBlogSettings(ctx)
	if err != nil {
		logger.GetLogger().Errorf("failed to load blog settings: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	commentPage, err := route.commentService.Paginate(
		ctx, a.ID, reqCtx.Query("comment_page"), settings.CommentPageSize, a.AbsoluteURL())
	if err != nil {
		logger.GetLogger().Errorf("comment pagination failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}

	prev, next, err := route.articleService.Neighbors(ctx, a)
	if err != nil {
		logger.GetLogger().Errorf("neighbor lookup failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}

	response := &ArticleDetailResponse{
		ID:           a.ID,
		Title:        a.Title,
		Body:         body,
		Excerpt:      a.Excerpt,
		AuthorName:   a.AuthorName,
		AuthorSlug:   a.AuthorSlug,
		CategoryName: a.CategoryName,
		Tags:         a.Tags,
		Views:        a.Views,
		PubTime:      a.PubTime,
		CommentPage:  buildCommentPage(commentPage),
	}
	if prev != nil {
		response.Prev = &NeighborResponse{ID: prev.ID, Title: prev.Title}
	}
	if next != nil {
		response.Next = &NeighborResponse{ID: next.ID, Title: next.Title}
	}
	reqCtx.JSON(http.StatusOK, response)
}

// buildCommentPage threads replies under the top-level comments of the
// current page.
func buildCommentPage(page *comment.Page) CommentPageResponse {
	replies := make(map[uint][]CommentResponse)
	for _, c := range page.All {
		if c.ParentID == nil {
			continue
		}
		replies[*c.ParentID] = append(replies[*c.ParentID], CommentResponse{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Body:       c.Body,
			ParentID:   c.ParentID,
			CreatedAt:  c.CreatedAt,
		})
	}

	comments := make([]CommentResponse, 0, len(page.Comments))
	for _, c := range page.Comments {
		comments = append(comments, CommentResponse{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Body:       c.Body,
			CreatedAt:  c.CreatedAt,
			Replies:    replies[c.ID],
		})
	}

	return CommentPageResponse{
		Comments:    comments,
		Page:        page.Page,
		NumPages:    page.NumPages,
		Total:       page.Total,
		NextPageURL: page.NextPageURL,
		PrevPageURL: page.PrevPageURL,
	}
}
