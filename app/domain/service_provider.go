package domain

import (
	"github.com/google/wire"
	"plume.ink/plume-blog-server/app/domain/article"
	"plume.ink/plume-blog-server/app/domain/auth"
	"plume.ink/plume-blog-server/app/domain/category"
	"plume.ink/plume-blog-server/app/domain/comment"
	"plume.ink/plume-blog-server/app/domain/cron"
	"plume.ink/plume-blog-server/app/domain/hook"
	"plume.ink/plume-blog-server/app/domain/links"
	"plume.ink/plume-blog-server/app/domain/listing"
	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/app/domain/summary"
	"plume.ink/plume-blog-server/app/domain/tag"
	"plume.ink/plume-blog-server/app/domain/user"
	"plume.ink/plume-blog-server/app/infrastructure/cache"
)

var ServiceProvider = wire.NewSet(
	auth.NewAuthService,
	user.NewService,
	article.NewService,
	category.NewService,
	tag.NewService,
	comment.NewService,
	links.NewService,
	listing.NewService,
	wire.Bind(new(listing.Store), new(*cache.RedisCacheService)),
	hook.NewDefaultRegistry,
	summary.NewSummaryService,
	setting.NewService,
	setting.NewAuditService,
	cron.NewCronService,
)
