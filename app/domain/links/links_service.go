package links

import (
	"context"
	"fmt"
	"sort"
	"time"

	"resty.dev/v3"

	"plume.ink/plume-blog-server/app/utils/httpclients"
	"plume.ink/plume-blog-server/app/utils/logger"
	"plume.ink/plume-blog-server/app/utils/ptr"
)

type LinksService struct {
	repo   Repository
	client *resty.Client
}

func NewService(repo Repository) *LinksService {
	return &LinksService{
		repo:   repo,
		client: httpclients.NewClient("LinkCheckClient"),
	}
}

// ListEnabled returns the enabled links ordered by sequence.
func (s *LinksService) ListEnabled(ctx context.Context) ([]*Link, error) {
	enabled, err := s.repo.FindEnabled(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Sequence < enabled[j].Sequence
	})
	return enabled, nil
}

// Create stores a link after an inline reachability probe; an unreachable
// URL is still stored, just flagged.
func (s *LinksService) Create(ctx context.Context, l *Link) (*Link, error) {
	s.probe(ctx, l)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Sweep re-checks every link and persists the result. Run from cron under a
// distributed lock.
func (s *LinksService) Sweep(ctx context.Context) error {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, l := range all {
		s.probe(ctx, l)
		if err := s.repo.Update(ctx, l); err != nil {
			return fmt.Errorf("failed to persist link check for %q: %w", l.Name, err)
		}
	}
	return nil
}

func (s *LinksService) probe(ctx context.Context, l *Link) {
	resp, err := s.client.R().SetContext(ctx).Head(l.URL)
	reachable := err == nil && resp.StatusCode() < 500
	if !reachable {
		logger.GetLogger().Warnf("link %q (%s) unreachable", l.Name, l.URL)
	}
	l.Reachable = ptr.ToBool(reachable)
	l.LastCheckedAt = ptr.ToTime(time.Now())
}
