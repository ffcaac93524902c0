package blog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/category"
	"plume.ink/plume-blog-server/app/domain/common"
	"plume.ink/plume-blog-server/app/domain/links"
	"plume.ink/plume-blog-server/app/domain/listing"
	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/interfaces/http/responses"
	"plume.ink/plume-blog-server/app/utils/functional"
	"plume.ink/plume-blog-server/app/utils/logger"
)

type ListRoute struct {
	listingService  *listing.Service
	articleService  *article.ArticleService
	categoryService *category.CategoryService
	linksService    *links.LinksService
	settingService  *setting.Service
}

func NewListRoute(
	listingService *listing.Service,
	articleService *article.ArticleService,
	categoryService *category.CategoryService,
	linksService *links.LinksService,
	settingService *setting.Service,
) *ListRoute {
	return &ListRoute{
		listingService,
		articleService,
		categoryService,
		linksService,
		settingService,
	}
}

func (route *ListRoute) RegisterRouter(router gin.IRouter) {
	router.GET("", route.Index)
	router.GET("/categories", route.Categories)
	router.GET("/categories/:slug", route.CategoryArchive)
	router.GET("/tags/:slug", route.TagArchive)
	router.GET("/authors/:slug", route.AuthorArchive)
	router.GET("/archives", route.Archives)
	router.GET("/search", route.Search)
	router.GET("/links", route.Links)
}

type ListPageResponse struct {
	Status   string            `json:"status"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	LastPage int               `json:"last_page"`
	Results  []article.Summary `json:"results"`
}

func listPageResponse(page *listing.CachedPage) *ListPageResponse {
	return &ListPageResponse{
		Status:   "ok",
		Total:    page.Total,
		Page:     page.Page,
		LastPage: page.LastPage,
		Results:  page.Items,
	}
}

func renderListError(reqCtx *gin.Context, err error) {
	if errors.Is(err, common.ErrNotFound) {
		responses.RenderNotFound(reqCtx)
		return
	}
	logger.GetLogger().Errorf("list page failed: %v", err)
	responses.RenderServerError(reqCtx)
}

// @Summary Front page article listing
// @Description Returns one page of published article summaries, newest first. Served from cache.
// @Tags Blog API
// @Produce json
// @Param page query string false "Page number; anything invalid means page 1"
// @Success 200 {object} ListPageResponse "One page of summaries"
// @Failure 500 {object} responses.ErrorPage "Server error"
// @Router /v1/blog [get]
func (route *ListRoute) Index(reqCtx *gin.Context) {
	page, err := route.listingService.Index(reqCtx.Request.Context(), reqCtx.Query("page"))
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, listPageResponse(page))
}

type CategoryResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Weight       int    `json:"weight"`
	ArticleCount int64  `json:"article_count"`
}

// @Summary List categories
// @Description Returns one page of categories ordered by weight, heaviest first, each with its published article count.
// @Tags Blog API
// @Produce json
// @Param page query string false "Page number"
// @Success 200 {object} responses.ListResponse[CategoryResponse] "Categories"
// @Failure 500 {object} responses.ErrorPage "Server error"
// @Router /v1/blog/categories [get]
func (route *ListRoute) Categories(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	categories, err := route.categoryService.ListByWeight(ctx)
	if err != nil {
		renderListError(reqCtx, err)
		return
	}

	settings, err := route.settingService.GetBlogSettings(ctx)
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	pageSize := settings.ArticlePageSize
	lastPage := query.LastPage(int64(len(categories)), pageSize)
	page := query.ClampPage(query.SanitizePage(reqCtx.Query("page")), lastPage)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(categories) {
		start = len(categories)
	}
	if end > len(categories) {
		end = len(categories)
	}

	result := make([]CategoryResponse, 0, end-start)
	for _, c := range categories[start:end] {
		count, err := route.articleService.CountPublishedInCategories(ctx, []uint{c.ID})
		if err != nil {
			renderListError(reqCtx, err)
			return
		}
		result = append(result, CategoryResponse{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Weight:       c.Weight,
			ArticleCount: count,
		})
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[CategoryResponse]{
		Status:   "ok",
		Total:    int64(len(categories)),
		Page:     page,
		LastPage: lastPage,
		Results:  result,
	})
}

// @Summary Category archive
// @Description Returns one page of the archive for a category and its subcategories.
// @Tags Blog API
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query string false "Page number"
// @Success 200 {object} ListPageResponse "One page of summaries"
// @Failure 404 {object} responses.ErrorPage "Unknown category"
// @Router /v1/blog/categories/{slug} [get]
func (route *ListRoute) CategoryArchive(reqCtx *gin.Context) {
	_, page, err := route.listingService.Category(reqCtx.Request.Context(), reqCtx.Param("slug"), reqCtx.Query("page"))
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, listPageResponse(page))
}

// @Summary Tag archive
// @Description Returns one page of articles carrying a tag.
// @Tags Blog API
// @Produce json
// @Param slug path string true "Tag slug"
// @Param page query string false "Page number"
// @Success 200 {object} ListPageResponse "One page of summaries"
// @Failure 404 {object} responses.ErrorPage "Unknown tag"
// @Router /v1/blog/tags/{slug} [get]
func (route *ListRoute) TagArchive(reqCtx *gin.Context) {
	_, page, err := route.listingService.Tag(reqCtx.Request.Context(), reqCtx.Param("slug"), reqCtx.Query("page"))
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, listPageResponse(page))
}

// @Summary Author archive
// @Description Returns one page of an author's published articles.
// @Tags Blog API
// @Produce json
// @Param slug path string true "Author slug"
// @Param page query string false "Page number"
// @Success 200 {object} ListPageResponse "One page of summaries"
// @Failure 404 {object} responses.ErrorPage "Unknown author"
// @Router /v1/blog/authors/{slug} [get]
func (route *ListRoute) AuthorArchive(reqCtx *gin.Context) {
	_, page, err := route.listingService.Author(reqCtx.Request.Context(), reqCtx.Param("slug"), reqCtx.Query("page"))
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, listPageResponse(page))
}

// @Summary Archives
// @Description Returns every published article in one listing, newest first.
// @Tags Blog API
// @Produce json
// @Success 200 {object} ListPageResponse "All published articles"
// @Failure 500 {object} responses.ErrorPage "Server error"
// @Router /v1/blog/archives [get]
func (route *ListRoute) Archives(reqCtx *gin.Context) {
	page, err := route.listingService.Archives(reqCtx.Request.Context())
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, listPageResponse(page))
}

// @Summary Search articles
// @Description Matches published articles on title or body, case-insensitive. Never cached.
// @Tags Blog API
// @Produce json
// @Param q query string true "Search terms"
// @Param page query string false "Page number"
// @Success 200 {object} ListPageResponse "Matching summaries"
// @Failure 500 {object} responses.ErrorPage "Server error"
// @Router /v1/blog/search [get]
func (route *ListRoute) Search(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()
	settings, err := route.settingService.GetBlogSettings(ctx)
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	pagination := &query.Pagination{
		Page:     query.SanitizePage(reqCtx.Query("page")),
		PageSize: settings.ArticlePageSize,
	}
	q := reqCtx.Query("q")
	logger.GetLogger().WithField("query", q).Info("article search")
	items, total, err := route.articleService.Search(ctx, q, pagination)
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, &ListPageResponse{
		Status:   "ok",
		Total:    total,
		Page:     pagination.Page,
		LastPage: query.LastPage(total, settings.ArticlePageSize),
		Results:  items,
	})
}

type LinkResponse struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Sequence int    `json:"sequence"`
	ShowType string `json:"show_type"`
}

// @Summary List friend links
// @Description Returns enabled friend links in display order.
// @Tags Blog API
// @Produce json
// @Success 200 {object} responses.GeneralResponse[[]LinkResponse] "Links"
// @Failure 500 {object} responses.ErrorPage "Server error"
// @Router /v1/blog/links [get]
func (route *ListRoute) Links(reqCtx *gin.Context) {
	enabled, err := route.linksService.ListEnabled(reqCtx.Request.Context())
	if err != nil {
		renderListError(reqCtx, err)
		return
	}
	result := functional.Map(enabled, func(l *links.Link) LinkResponse {
		return LinkResponse{
			Name:     l.Name,
			URL:      l.URL,
			Sequence: l.Sequence,
			ShowType: string(l.ShowType),
		}
	})
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[[]LinkResponse]{
		Status: "ok",
		Result: result,
	})
}
