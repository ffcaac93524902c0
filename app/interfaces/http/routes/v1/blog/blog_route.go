package blog

import (
	"github.com/gin-gonic/gin"
)

type BlogRoute struct {
	listRoute   *ListRoute
	detailRoute *DetailRoute
	uploadRoute *UploadRoute
	adminRoute  *AdminRoute
}

func NewBlogRoute(
	listRoute *ListRoute,
	detailRoute *DetailRoute,
	uploadRoute *UploadRoute,
	adminRoute *AdminRoute,
) *BlogRoute {
	return &BlogRoute{
		listRoute,
		detailRoute,
		uploadRoute,
		adminRoute,
	}
}

func (route *BlogRoute) RegisterRouter(router gin.IRouter) {
	blogRouter := router.Group("/blog")
	route.listRoute.RegisterRouter(blogRouter)
	route.detailRoute.RegisterRouter(blogRouter)
	route.uploadRoute.RegisterRouter(blogRouter)
	route.adminRoute.RegisterRouter(blogRouter)
}
