package category

import (
	"context"
	"sort"
)

type CategoryService struct {
	repo Repository
}

func NewService(repo Repository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

func (s *CategoryService) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	return s.repo.FindBySlug(ctx, slug)
}

// ListByWeight returns every category, heaviest first. Callers attach
// per-category article counts themselves.
func (s *CategoryService) ListByWeight(ctx context.Context) ([]*Category, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Weight > all[j].Weight
	})
	return all, nil
}

// TransitiveSubCategoryIDs resolves the category and every descendant,
// eagerly, before any article query runs. A visited set keeps accidental
// parent cycles from looping.
func (s *CategoryService) TransitiveSubCategoryIDs(ctx context.Context, root *Category) ([]uint, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[uint][]uint, len(all))
	for _, c := range all {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	visited := map[uint]bool{root.ID: true}
	ids := []uint{root.ID}
	queue := []uint{root.ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			if visited[child] {
				continue
			}
			visited[child] = true
			ids = append(ids, child)
			queue = append(queue, child)
		}
	}
	return ids, nil
}
