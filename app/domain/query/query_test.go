package query_test

import (
	"testing"

	"plume.ink/plume-blog-server/app/domain/query"
)

func TestSanitizePage(t *testing.T) {
	cases := map[string]int{
		"":     1,
		"abc":  1,
		"-3":   1,
		"0":    1,
		"1":    1,
		"17":   17,
		"1.5":  1,
		" 2":   1,
		"9999": 9999,
	}
	for raw, want := range cases {
		if got := query.SanitizePage(raw); got != want {
			t.Fatalf("SanitizePage(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestClampPage(t *testing.T) {
	if got := query.ClampPage(7, 3); got != 3 {
		t.Fatalf("expected clamp to last page, got %d", got)
	}
	if got := query.ClampPage(-1, 3); got != 1 {
		t.Fatalf("expected clamp to first page, got %d", got)
	}
	if got := query.ClampPage(2, 3); got != 2 {
		t.Fatalf("expected in-range page untouched, got %d", got)
	}
	if got := query.ClampPage(5, 0); got != 1 {
		t.Fatalf("expected empty set to clamp to 1, got %d", got)
	}
}

func TestLastPage(t *testing.T) {
	if got := query.LastPage(0, 10); got != 1 {
		t.Fatalf("empty total: got %d", got)
	}
	if got := query.LastPage(10, 10); got != 1 {
		t.Fatalf("exact fit: got %d", got)
	}
	if got := query.LastPage(11, 10); got != 2 {
		t.Fatalf("overflow row: got %d", got)
	}
	if got := query.LastPage(11, 0); got != 1 {
		t.Fatalf("unpaginated: got %d", got)
	}
}

func TestPaginationOffset(t *testing.T) {
	p := query.Pagination{Page: 3, PageSize: 10}
	if p.Offset() != 20 {
		t.Fatalf("offset: got %d", p.Offset())
	}
	unpaginated := query.Pagination{Page: 3, PageSize: 0}
	if unpaginated.Offset() != 0 {
		t.Fatalf("unpaginated offset: got %d", unpaginated.Offset())
	}
}
