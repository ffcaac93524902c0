package blog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/auth"
	"plume.ink/plume-blog-server/app/domain/common"
	"plume.ink/plume-blog-server/app/domain/links"
	"plume.ink/plume-blog-server/app/domain/query"
	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/domain/summary"
	"plume.ink/plume-blog-server/app/infrastructure/cache"
	"plume.ink/plume-blog-server/app/interfaces/http/requests"
	"plume.ink/plume-blog-server/app/interfaces/http/responses"
	"plume.ink/plume-blog-server/app/utils/emailservice"
	"plume.ink/plume-blog-server/app/utils/functional"
	"plume.ink/plume-blog-server/app/utils/logger"
	"plume.ink/plume-blog-server/config/environment_variables"
)

type AdminRoute struct {
	authService    *auth.AuthService
	articleService *article.ArticleService
	summaryService *summary.SummaryService
	linksService   *links.LinksService
	settingService *setting.Service
	auditService   *setting.AuditService
	cacheService   *cache.RedisCacheService
}

func NewAdminRoute(
	authService *auth.AuthService,
	articleService *article.ArticleService,
	summaryService *summary.SummaryService,
	linksService *links.LinksService,
	settingService *setting.Service,
	auditService *setting.AuditService,
	cacheService *cache.RedisCacheService,
) *AdminRoute {
	return &AdminRoute{
		authService,
		articleService,
		summaryService,
		linksService,
		settingService,
		auditService,
		cacheService,
	}
}

func (route *AdminRoute) RegisterRouter(router gin.IRouter) {
	adminRouter := router.Group("/admin",
		route.authService.AppUserAuthMiddleware(),
		route.authService.RegisteredUserMiddleware(),
	)
	adminRouter.POST("/articles", route.CreateArticle)
	adminRouter.PUT("/articles/:id", route.UpdateArticle)
	adminRouter.DELETE("/articles/:id", route.DeleteArticle)
	adminRouter.GET("/articles/mine", route.MyArticles)
	adminRouter.POST("/clean-cache", route.CleanCache)
	adminRouter.POST("/links", route.CreateLink)
	adminRouter.GET("/settings", route.GetSettings)
	adminRouter.PUT("/settings", route.UpdateSettings)
	adminRouter.PUT("/settings/smtp", route.UpdateSMTPSettings)
	adminRouter.GET("/audit-logs", route.AuditLogs)
}

type ArticleRequest struct {
	Title      string   `json:"title" binding:"required"`
	Body       string   `json:"body" binding:"required"`
	Excerpt    string   `json:"excerpt"`
	CategoryID uint     `json:"category_id"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status"`
	Type       string   `json:"type"`
}

type ArticleResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status"`
	Type    string `json:"type"`
	URL     string `json:"url"`
}

func articleResponse(a *article.Article) ArticleResponse {
	return ArticleResponse{
		ID:      a.ID,
		Title:   a.Title,
		Excerpt: a.Excerpt,
		Status:  string(a.Status),
		Type:    string(a.Type),
		URL:     a.AbsoluteURL(),
	}
}

// @Summary Create an article
// @Description Creates an article owned by the authenticated author. An empty excerpt is generated from the body.
// @Tags Blog Admin API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ArticleRequest true "Article content"
// @Success 200 {object} responses.GeneralResponse[ArticleResponse] "Created article"
// @Failure 400 {object} responses.ErrorResponse "Invalid payload"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /v1/blog/admin/articles [post]
func (route *AdminRoute) CreateArticle(reqCtx *gin.Context) {
	userEntity, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		responses.RenderForbidden(reqCtx, "login required")
		return
	}

	var request ArticleRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "1a9b9a64-26bb-4637-a25b-e42001a00a9c",
			Error: "invalid article payload",
		})
		return
	}

	ctx := reqCtx.Request.Context()
	excerpt := request.Excerpt
	if excerpt == "" {
		excerpt = route.summaryService.Excerpt(ctx, request.Body)
	}

	a := &article.Article{
		Title:      request.Title,
		Body:       request.Body,
		Excerpt:    excerpt,
		Status:     article.Status(request.Status),
		Type:       article.Type(request.Type),
		AuthorID:   userEntity.ID,
		CategoryID: request.CategoryID,
		Tags:       request.Tags,
	}
	created, err := route.articleService.Create(ctx, a)
	if err != nil {
		logger.GetLogger().Errorf("article create failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}

	route.auditService.Record(context.WithoutCancel(ctx), setting.AuditEventArticleCreated,
		&userEntity.ID, &userEntity.Email, map[string]interface{}{"article_id": created.ID})
	go route.notifyAdmins(created, userEntity.Name)

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[ArticleResponse]{
		Status: "ok",
		Result: articleResponse(created),
	})
}

// notifyAdmins emails the configured administrators about a new article.
// Delivery failures are logged and dropped.
func (route *AdminRoute) notifyAdmins(a *article.Article, authorName string) {
	subject := fmt.Sprintf("New article: %s", a.Title)
	body := fmt.Sprintf("%s published <a href=%q>%s</a>.", authorName, a.AbsoluteURL(), a.Title)
	for _, email := range environment_variables.EnvironmentVariables.ADMIN_EMAILS {
		if err := emailservice.SendEmail(email, subject, body); err != nil {
			logger.GetLogger().Warnf("failed to notify %s about article %d: %v", email, a.ID, err)
		}
	}
}

// @Summary Update an article
// @Description Updates an article the authenticated author owns. Other authors' articles are not found.
// @Tags Blog Admin API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param request body ArticleRequest true "Article content"
// @Success 200 {object} responses.GeneralResponse[ArticleResponse] "Updated article"
// @Failure 404 {object} responses.ErrorPage "Not found or not owned"
// @Router /v1/blog/admin/articles/{id} [put]
func (route *AdminRoute) UpdateArticle(reqCtx *gin.Context) {
	userEntity, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		responses.RenderForbidden(reqCtx, "login required")
		return
	}
	id, err := requests.GetUintParam(reqCtx, "id")
	if err != nil {
		responses.RenderNotFound(reqCtx)
		return
	}

	var request ArticleRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "d41f2b9e-5a33-44bb-8f87-a7c255af04c5",
			Error: "invalid article payload",
		})
		return
	}

	ctx := reqCtx.Request.Context()
	updated, err := route.articleService.UpdateOwn(ctx, userEntity.ID, &article.Article{
		ID:         id,
		Title:      request.Title,
		Body:       request.Body,
		Excerpt:    request.Excerpt,
		CategoryID: request.CategoryID,
		Tags:       request.Tags,
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			responses.RenderNotFound(reqCtx)
			return
		}
		logger.GetLogger().Errorf("article update failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	route.auditService.Record(context.WithoutCancel(ctx), setting.AuditEventArticleUpdated,
		&userEntity.ID, &userEntity.Email, map[string]interface{}{"article_id": updated.ID})
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[ArticleResponse]{
		Status: "ok",
		Result: articleResponse(updated),
	})
}

// @Summary Delete an article
// @Description Deletes an article the authenticated author owns.
// @Tags Blog Admin API
// @Security BearerAuth
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} responses.GeneralResponse[string] "Deleted"
// @Failure 404 {object} responses.ErrorPage "Not found or not owned"
// @Router /v1/blog/admin/articles/{id} [delete]
func (route *AdminRoute) DeleteArticle(reqCtx *gin.Context) {
	userEntity, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		responses.RenderForbidden(reqCtx, "login required")
		return
	}
	id, err := requests.GetUintParam(reqCtx, "id")
	if err != nil {
		responses.RenderNotFound(reqCtx)
		return
	}

	ctx := reqCtx.Request.Context()
	if err := route.articleService.DeleteOwn(ctx, userEntity.ID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			responses.RenderNotFound(reqCtx)
			return
		}
		logger.GetLogger().Errorf("article delete failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	route.auditService.Record(context.WithoutCancel(ctx), setting.AuditEventArticleDeleted,
		&userEntity.ID, &userEntity.Email, map[string]interface{}{"article_id": id})
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: "ok",
		Result: "deleted",
	})
}

type MyArticlesResponse struct {
	Status  string            `json:"status"`
	Total   int64             `json:"total"`
	Results []ArticleResponse `json:"results"`
}

// @Summary List own articles
// @Description Returns the authenticated author's articles, drafts included.
// @Tags Blog Admin API
// @Security BearerAuth
// @Produce json
// @Param page query string false "Page number"
// @Success 200 {object} MyArticlesResponse "Own articles"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /v1/blog/admin/articles/mine [get]
func (route *AdminRoute) MyArticles(reqCtx *gin.Context) {
	userEntity, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		responses.RenderForbidden(reqCtx, "login required")
		return
	}

	ctx := reqCtx.Request.Context()
	settings, err := route.settingService.GetBlogSettings(ctx)
	if err != nil {
		responses.RenderServerError(reqCtx)
		return
	}
	pagination := &query.Pagination{
		Page:     query.SanitizePage(reqCtx.Query("page")),
		PageSize: settings.ArticlePageSize,
	}
	rows, total, err := route.articleService.ListMine(ctx, userEntity.ID, pagination)
	if err != nil {
		logger.GetLogger().Errorf("own article listing failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	reqCtx.JSON(http.StatusOK, &MyArticlesResponse{
		Status: "ok",
		Total:  total,
		Results: functional.Map(rows, func(a *article.Article) ArticleResponse {
			return articleResponse(a)
		}),
	})
}

// @Summary Clear the page cache
// @Description Drops every cached list page. The clear is recorded in the audit log.
// @Tags Blog Admin API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.GeneralResponse[string] "Cache cleared"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Router /v1/blog/admin/clean-cache [post]
func (route *AdminRoute) CleanCache(reqCtx *gin.Context) {
	userEntity, ok := auth.GetUserFromContext(reqCtx)
	if !ok {
		responses.RenderForbidden(reqCtx, "login required")
		return
	}

	ctx := reqCtx.Request.Context()
	if err := route.cacheService.Clear(ctx); err != nil {
		logger.GetLogger().Errorf("cache clear failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	route.auditService.Record(context.WithoutCancel(ctx), setting.AuditEventCacheCleared,
		&userEntity.ID, &userEntity.Email, nil)

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: "ok",
		Result: "cache cleared",
	})
}

type LinkRequest struct {
	Name     string `json:"name" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	Sequence int    `json:"sequence"`
	ShowType string `json:"show_type"`
}

// @Summary Create a friend link
// @Description Adds a friend link and probes it once for reachability.
// @Tags Blog Admin API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body LinkRequest true "Link"
// @Success 200 {object} responses.GeneralResponse[LinkResponse] "Created link"
// @Failure 400 {object} responses.ErrorResponse "Invalid payload"
// @Router /v1/blog/admin/links [post]
func (route *AdminRoute) CreateLink(reqCtx *gin.Context) {
	var request LinkRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "5e43b5a6-1d6f-4745-bb27-6b3a9f2a11df",
			Error: "invalid link payload",
		})
		return
	}

	showType := links.ShowType(request.ShowType)
	if showType == "" {
		showType = links.ShowTypeIndex
	}
	created, err := route.linksService.Create(reqCtx.Request.Context(), &links.Link{
		Name:     request.Name,
		URL:      request.URL,
		Sequence: request.Sequence,
		IsEnable: true,
		ShowType: showType,
	})
	if err != nil {
		logger.GetLogger().Errorf("link create failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[LinkResponse]{
		Status: "ok",
		Result: LinkResponse{
			Name:     created.Name,
			URL:      created.URL,
			Sequence: created.Sequence,
			ShowType: string(created.ShowType),
		},
	})
}

// @Summary Get blog settings
// @Tags Blog Admin API
// @Security BearerAuth
// @Produce json
// @Success 200 {object} responses.GeneralResponse[setting.BlogSettings] "Settings"
// @Router /v1/blog/admin/settings [get]
func (route *AdminRoute) GetSettings(reqCtx *gin.Context) {
	settings, err := route.settingService.GetBlogSettings(reqCtx.Request.Context())
	if err != nil {
		responses.RenderServerError(reqCtx)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[*setting.BlogSettings]{
		Status: "ok",
		Result: settings,
	})
}

type UpdateSettingsRequest struct {
	SiteTitle       string `json:"site_title" binding:"required"`
	SiteDescription string `json:"site_description"`
	ArticlePageSize int    `json:"article_page_size" binding:"required,min=1"`
	CommentPageSize int    `json:"comment_page_size" binding:"required,min=1"`
	LinksShowType   string `json:"links_show_type"`
}

// @Summary Update blog settings
// @Tags Blog Admin API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateSettingsRequest true "Settings"
// @Success 200 {object} responses.GeneralResponse[setting.BlogSettings] "Updated settings"
// @Failure 400 {object} responses.ErrorResponse "Invalid payload"
// @Router /v1/blog/admin/settings [put]
func (route *AdminRoute) UpdateSettings(reqCtx *gin.Context) {
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var request UpdateSettingsRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "83a1cfcd-4f9d-4f8c-9f39-3f8a7dbfc329",
			Error: "invalid settings payload",
		})
		return
	}

	ctx := reqCtx.Request.Context()
	updated, err := route.settingService.UpdateBlogSettings(ctx, setting.UpdateBlogSettingsInput{
		SiteTitle:       request.SiteTitle,
		SiteDescription: request.SiteDescription,
		ArticlePageSize: request.ArticlePageSize,
		CommentPageSize: request.CommentPageSize,
		LinksShowType:   request.LinksShowType,
		ActorID:         &userEntity.ID,
		ActorEmail:      &userEntity.Email,
	})
	if err != nil {
		logger.GetLogger().Errorf("settings update failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	route.auditService.Record(context.WithoutCancel(ctx), setting.AuditEventSettingsUpdated,
		&userEntity.ID, &userEntity.Email, map[string]interface{}{"key": setting.SettingKeyBlog})

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[*setting.BlogSettings]{
		Status: "ok",
		Result: updated,
	})
}

type UpdateSMTPSettingsRequest struct {
	Enabled   bool    `json:"enabled"`
	Host      string  `json:"host" binding:"required"`
	Port      int     `json:"port" binding:"required,min=1"`
	Username  string  `json:"username"`
	Password  *string `json:"password"`
	FromEmail string  `json:"from_email" binding:"required,email"`
}

// @Summary Update SMTP settings
// @Description Stores notification mail settings; the password is encrypted at rest and omitting it keeps the stored one.
// @Tags Blog Admin API
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateSMTPSettingsRequest true "SMTP settings"
// @Success 200 {object} responses.GeneralResponse[setting.SMTPSettings] "Updated settings"
// @Failure 400 {object} responses.ErrorResponse "Invalid payload"
// @Router /v1/blog/admin/settings/smtp [put]
func (route *AdminRoute) UpdateSMTPSettings(reqCtx *gin.Context) {
	userEntity, _ := auth.GetUserFromContext(reqCtx)

	var request UpdateSMTPSettingsRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "6de7a6da-f3c3-43b0-b6d2-0e4c62a1a184",
			Error: "invalid SMTP settings payload",
		})
		return
	}

	ctx := reqCtx.Request.Context()
	updated, err := route.settingService.UpdateSMTPSettings(ctx, setting.UpdateSMTPSettingsInput{
		Enabled:    request.Enabled,
		Host:       request.Host,
		Port:       request.Port,
		Username:   request.Username,
		Password:   request.Password,
		FromEmail:  request.FromEmail,
		ActorID:    &userEntity.ID,
		ActorEmail: &userEntity.Email,
	})
	if err != nil {
		logger.GetLogger().Errorf("SMTP settings update failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	route.auditService.Record(context.WithoutCancel(ctx), setting.AuditEventSettingsUpdated,
		&userEntity.ID, &userEntity.Email, map[string]interface{}{"key": setting.SettingKeySMTP})

	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[*setting.SMTPSettings]{
		Status: "ok",
		Result: updated,
	})
}

type AuditLogResponse struct {
	ID        uint                   `json:"id"`
	UserEmail *string                `json:"user_email,omitempty"`
	Event     string                 `json:"event"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// @Summary List audit logs
// @Tags Blog Admin API
// @Security BearerAuth
// @Produce json
// @Param event query string false "Filter by event name"
// @Success 200 {object} responses.ListResponse[AuditLogResponse] "Audit entries, newest first"
// @Router /v1/blog/admin/audit-logs [get]
func (route *AdminRoute) AuditLogs(reqCtx *gin.Context) {
	filter := setting.AuditLogFilter{}
	if event := reqCtx.Query("event"); event != "" {
		filter.Event = &event
	}
	entries, total, err := route.auditService.List(reqCtx.Request.Context(), filter)
	if err != nil {
		logger.GetLogger().Errorf("audit log listing failed: %v", err)
		responses.RenderServerError(reqCtx)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.ListResponse[AuditLogResponse]{
		Status: "ok",
		Total:  total,
		Results: functional.Map(entries, func(entry *setting.AuditLog) AuditLogResponse {
			return AuditLogResponse{
				ID:        entry.ID,
				UserEmail: entry.UserEmail,
				Event:     entry.Event,
				Metadata:  entry.Metadata,
			}
		}),
	})
}
