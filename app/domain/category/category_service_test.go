package category

import (
	"context"
	"sort"
	"testing"

	"plume.ink/plume-blog-server/app/utils/ptr"
)

type fakeCategoryRepo struct {
	categories []*Category
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *Category) error {
	c.ID = uint(len(r.categories) + 1)
	r.categories = append(r.categories, c)
	return nil
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]*Category, error) {
	return r.categories, nil
}

// treeFixture builds:
//
//	Tech (1) -> Go (2) -> Generics (4)
//	         -> Rust (3)
//	Life (5)
func treeFixture() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: []*Category{
		{ID: 1, Name: "Tech", Slug: "tech", Weight: 10},
		{ID: 2, Name: "Go", Slug: "go", ParentID: ptr.ToUint(1), Weight: 5},
		{ID: 3, Name: "Rust", Slug: "rust", ParentID: ptr.ToUint(1), Weight: 3},
		{ID: 4, Name: "Generics", Slug: "generics", ParentID: ptr.ToUint(2), Weight: 1},
		{ID: 5, Name: "Life", Slug: "life", Weight: 20},
	}}
}

func TestTransitiveSubCategoryIDs(t *testing.T) {
	repo := treeFixture()
	service := NewService(repo)

	root, err := service.FindBySlug(context.Background(), "tech")
	if err != nil || root == nil {
		t.Fatalf("failed to find root category: %v", err)
	}

	ids, err := service.TransitiveSubCategoryIDs(context.Background(), root)
	if err != nil {
		t.Fatalf("failed to resolve subtree: %v", err)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	expected := []uint{1, 2, 3, 4}
	if len(ids) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, ids)
	}
	for i := range expected {
		if ids[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, ids)
		}
	}
}

func TestTransitiveSubCategoryIDsLeaf(t *testing.T) {
	repo := treeFixture()
	service := NewService(repo)

	leaf, _ := service.FindBySlug(context.Background(), "life")
	ids, err := service.TransitiveSubCategoryIDs(context.Background(), leaf)
	if err != nil {
		t.Fatalf("failed to resolve leaf: %v", err)
	}
	if len(ids) != 1 || ids[0] != 5 {
		t.Fatalf("expected only the leaf itself, got %v", ids)
	}
}

func TestTransitiveSubCategoryIDsSurvivesCycle(t *testing.T) {
	// Two categories pointing at each other must not loop forever.
	repo := &fakeCategoryRepo{categories: []*Category{
		{ID: 1, Name: "A", Slug: "a", ParentID: ptr.ToUint(2)},
		{ID: 2, Name: "B", Slug: "b", ParentID: ptr.ToUint(1)},
	}}
	service := NewService(repo)

	ids, err := service.TransitiveSubCategoryIDs(context.Background(), repo.categories[0])
	if err != nil {
		t.Fatalf("failed to resolve cyclic tree: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected both categories exactly once, got %v", ids)
	}
}

func TestListByWeightOrdersHeaviestFirst(t *testing.T) {
	service := NewService(treeFixture())

	all, err := service.ListByWeight(context.Background())
	if err != nil {
		t.Fatalf("failed to list categories: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Weight < all[i].Weight {
			t.Fatalf("categories not ordered by weight: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
	if all[0].Name != "Life" {
		t.Fatalf("expected the heaviest category first, got %q", all[0].Name)
	}
}
