package routes

import (
	"github.com/google/wire"
	v1 "plume.ink/plume-blog-server/app/interfaces/http/routes/v1"
	"plume.ink/plume-blog-server/app/interfaces/http/routes/v1/auth"
	"plume.ink/plume-blog-server/app/interfaces/http/routes/v1/blog"
)

var RouteProvider = wire.NewSet(
	auth.NewAuthRoute,
	blog.NewListRoute,
	blog.NewDetailRoute,
	blog.NewUploadRoute,
	blog.NewAdminRoute,
	blog.NewBlogRoute,
	v1.NewV1Route,
)
