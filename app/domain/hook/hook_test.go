package hook_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"plume.ink/plume-blog-server/app/domain/hook"
)

func TestApplyFiltersComposesLeftToRight(t *testing.T) {
	registry := hook.NewRegistry(hook.FilterErrorSkip)
	registry.RegisterFilter(hook.ArticleContentFilter, func(ctx context.Context, value string, hctx hook.Context) (string, error) {
		return value + "-f1", nil
	})
	registry.RegisterFilter(hook.ArticleContentFilter, func(ctx context.Context, value string, hctx hook.Context) (string, error) {
		return strings.ToUpper(value), nil
	})

	got, err := registry.ApplyFilters(context.Background(), hook.ArticleContentFilter, "body", nil)
	if err != nil {
		t.Fatalf("apply filters: %v", err)
	}
	// F2(F1(original)) — order matters.
	if got != "BODY-F1" {
		t.Fatalf("expected BODY-F1, got %q", got)
	}
}

func TestApplyFiltersNoFiltersReturnsInput(t *testing.T) {
	registry := hook.NewRegistry(hook.FilterErrorSkip)
	got, err := registry.ApplyFilters(context.Background(), hook.ArticleContentFilter, "unchanged", nil)
	if err != nil {
		t.Fatalf("apply filters: %v", err)
	}
	if got != "unchanged" {
		t.Fatalf("expected input back, got %q", got)
	}
}

func TestFailingFilterSkipped(t *testing.T) {
	registry := hook.NewRegistry(hook.FilterErrorSkip)
	registry.RegisterFilter("f", func(ctx context.Context, value string, hctx hook.Context) (string, error) {
		return "", errors.New("boom")
	})
	registry.RegisterFilter("f", func(ctx context.Context, value string, hctx hook.Context) (string, error) {
		return value + "!", nil
	})

	got, err := registry.ApplyFilters(context.Background(), "f", "body", nil)
	if err != nil {
		t.Fatalf("skip policy must not surface filter errors: %v", err)
	}
	if got != "body!" {
		t.Fatalf("expected last good value to flow on, got %q", got)
	}
}

func TestFailingFilterAborts(t *testing.T) {
	registry := hook.NewRegistry(hook.FilterErrorAbort)
	registry.RegisterFilter("f", func(ctx context.Context, value string, hctx hook.Context) (string, error) {
		return "", errors.New("boom")
	})

	if _, err := registry.ApplyFilters(context.Background(), "f", "body", nil); err == nil {
		t.Fatal("abort policy must surface filter errors")
	}
}

func TestPanickingFilterSkipped(t *testing.T) {
	registry := hook.NewRegistry(hook.FilterErrorSkip)
	registry.RegisterFilter("f", func(ctx context.Context, value string, hctx hook.Context) (string, error) {
		panic("plugin bug")
	})

	got, err := registry.ApplyFilters(context.Background(), "f", "body", nil)
	if err != nil {
		t.Fatalf("apply filters: %v", err)
	}
	if got != "body" {
		t.Fatalf("expected original value to survive, got %q", got)
	}
}

func TestActionsDoNotAffectValue(t *testing.T) {
	registry := hook.NewRegistry(hook.FilterErrorSkip)
	fired := 0
	registry.RegisterAction(hook.AfterArticleBodyGetAction, func(ctx context.Context, hctx hook.Context) {
		fired++
	})
	registry.RegisterAction(hook.AfterArticleBodyGetAction, func(ctx context.Context, hctx hook.Context) {
		panic("observer bug")
	})
	registry.RegisterAction(hook.AfterArticleBodyGetAction, func(ctx context.Context, hctx hook.Context) {
		fired++
	})

	registry.RunAction(context.Background(), hook.AfterArticleBodyGetAction, hook.Context{"k": "v"})

	if fired != 2 {
		t.Fatalf("expected surviving observers to run, fired=%d", fired)
	}

	got, err := registry.ApplyFilters(context.Background(), hook.ArticleContentFilter, "body", nil)
	if err != nil {
		t.Fatalf("apply filters: %v", err)
	}
	if got != "body" {
		t.Fatalf("actions must never change the rendered body, got %q", got)
	}
}
