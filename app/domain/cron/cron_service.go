package cron

import (
	"context"
	"time"

	"github.com/mileusna/crontab"

	"plume.ink/plume-blog-server/app/domain/links"
	"plume.ink/plume-blog-server/app/infrastructure/cache"
	"plume.ink/plume-blog-server/app/utils/logger"
	"plume.ink/plume-blog-server/config/environment_variables"
)

const linkSweepLockTTL = 10 * time.Minute

type CronService struct {
	cacheService *cache.RedisCacheService
	linksService *links.LinksService
}

func NewCronService(cacheService *cache.RedisCacheService, linksService *links.LinksService) *CronService {
	return &CronService{
		cacheService: cacheService,
		linksService: linksService,
	}
}

func (cs *CronService) Start(ctx context.Context, ctab *crontab.Crontab) {

	ctab.AddJob("* * * * *", func() {
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})

	// Hourly link reachability sweep. The redsync mutex keeps a single
	// replica doing the probing.
	ctab.AddJob("0 * * * *", func() {
		err := cache.WithLock(*cs.cacheService, cache.CronLinksMutexName, func() error {
			return cs.linksService.Sweep(ctx)
		}, linkSweepLockTTL)
		if err != nil {
			logger.GetLogger().Warnf("link sweep skipped: %v", err)
		}
	})
}
