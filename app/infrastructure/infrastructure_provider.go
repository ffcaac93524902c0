package infrastructure

import (
	"github.com/google/wire"
	"plume.ink/plume-blog-server/app/infrastructure/cache"
	"plume.ink/plume-blog-server/app/infrastructure/storage"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewRedisCacheService,
	storage.NewFileStorage,
)
