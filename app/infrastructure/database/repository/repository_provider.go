package repository

import (
	"github.com/google/wire"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/articlerepo"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/categoryrepo"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/commentrepo"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/linksrepo"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/settingsrepo"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/tagrepo"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/transaction"
	"plume.ink/plume-blog-server/app/infrastructure/database/repository/userrepo"
)

var RepositoryProvider = wire.NewSet(
	articlerepo.NewArticleGormRepository,
	categoryrepo.NewCategoryGormRepository,
	tagrepo.NewTagGormRepository,
	commentrepo.NewCommentGormRepository,
	linksrepo.NewLinksGormRepository,
	userrepo.NewUserGormRepository,
	settingsrepo.NewSettingRepository,
	settingsrepo.NewAuditRepository,
	transaction.NewDatabase,
)
