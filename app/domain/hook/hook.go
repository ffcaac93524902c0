package hook

import (
	"context"
	"fmt"
	"sync"

	"plume.ink/plume-blog-server/app/utils/logger"
)

// Hook names the detail page fires around article body rendering.
const (
	AfterArticleBodyGetAction = "after_article_body_get"
	ArticleContentFilter      = "article_content"
)

// Context carries request-scoped values into hook callbacks.
type Context map[string]interface{}

// ActionFunc observes an event; its return value is ignored.
type ActionFunc func(ctx context.Context, hctx Context)

// FilterFunc transforms a value; its output feeds the next filter in the
// chain.
type FilterFunc func(ctx context.Context, value string, hctx Context) (string, error)

// FilterErrorPolicy decides what a failing or panicking filter does to the
// rest of the chain.
type FilterErrorPolicy int

const (
	// FilterErrorSkip logs the failure and keeps the last good value.
	FilterErrorSkip FilterErrorPolicy = iota
	// FilterErrorAbort stops the chain and returns the error.
	FilterErrorAbort
)

// Registry holds ordered lists of named actions and filters. Registration
// order is invocation order; filters compose left-to-right.
type Registry struct {
	mu      sync.RWMutex
	actions map[string][]ActionFunc
	filters map[string][]FilterFunc
	policy  FilterErrorPolicy
}

func NewRegistry(policy FilterErrorPolicy) *Registry {
	return &Registry{
		actions: make(map[string][]ActionFunc),
		filters: make(map[string][]FilterFunc),
		policy:  policy,
	}
}

// NewDefaultRegistry is the registry the application wires in: a failing
// filter is skipped and the last good value survives.
func NewDefaultRegistry() *Registry {
	return NewRegistry(FilterErrorSkip)
}

func (r *Registry) RegisterAction(name string, fn ActionFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = append(r.actions[name], fn)
}

func (r *Registry) RegisterFilter(name string, fn FilterFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = append(r.filters[name], fn)
}

// RunAction notifies every observer of the named event, in registration
// order. Panics are contained per observer; a broken plugin must not take
// the page render down with it.
func (r *Registry) RunAction(ctx context.Context, name string, hctx Context) {
	r.mu.RLock()
	observers := r.actions[name]
	r.mu.RUnlock()

	for i, fn := range observers {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					logger.GetLogger().Errorf("action %s[%d] panicked: %v", name, i, rec)
				}
			}()
			fn(ctx, hctx)
		}()
	}
}

// ApplyFilters folds the registered filters over value, left to right; each
// filter's output is the next filter's input and the final output replaces
// the original value. A failing filter is skipped or aborts the chain per
// the registry policy.
func (r *Registry) ApplyFilters(ctx context.Context, name string, value string, hctx Context) (string, error) {
	r.mu.RLock()
	chain := r.filters[name]
	r.mu.RUnlock()

	current := value
	for i, fn := range chain {
		next, err := r.applyOne(ctx, fn, current, hctx)
		if err != nil {
			if r.policy == FilterErrorAbort {
				return "", fmt.Errorf("filter %s[%d]: %w", name, i, err)
			}
			logger.GetLogger().Errorf("filter %s[%d] failed, skipping: %v", name, i, err)
			continue
		}
		current = next
	}
	return current, nil
}

func (r *Registry) applyOne(ctx context.Context, fn FilterFunc, value string, hctx Context) (result string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("filter panicked: %v", rec)
		}
	}()
	return fn(ctx, value, hctx)
}
