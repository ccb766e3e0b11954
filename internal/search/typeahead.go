// Package search wraps the product listing endpoint in a debounced
// search-as-you-type helper: every keystroke reschedules the fetch, and only
// the last query within the window hits the backend.
package search

import (
	"context"
	"time"

	"healthshop-client/internal/api"
	"healthshop-client/internal/debounce"
	"healthshop-client/internal/domain"
)

// DefaultDelay is the quiet window between keystrokes before a query fires.
const DefaultDelay = 300 * time.Millisecond

type productSearcher interface {
	Products(ctx context.Context, q api.ProductQuery) (*domain.Page[domain.Product], error)
}

// Typeahead delivers debounced search results through a callback.
type Typeahead struct {
	api      productSearcher
	debounce *debounce.Debouncer
	size     int
	onResult func(query string, products []domain.Product, err error)
}

// NewTypeahead builds a Typeahead delivering up to size results per query to
// onResult. The callback runs on the timer goroutine.
func NewTypeahead(a productSearcher, delay time.Duration, size int, onResult func(string, []domain.Product, error)) *Typeahead {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Typeahead{
		api:      a,
		debounce: debounce.New(delay),
		size:     size,
		onResult: onResult,
	}
}

// Input feeds the current text of the search box. Rapid successive calls
// cancel each other; only the last query within the window is sent.
func (t *Typeahead) Input(ctx context.Context, query string) {
	t.debounce.Do(func() {
		page, err := t.api.Products(ctx, api.ProductQuery{Search: query, Size: t.size})
		if err != nil {
			t.onResult(query, nil, err)
			return
		}
		t.onResult(query, page.Content, nil)
	})
}

// Cancel drops any pending query, e.g. when the search view closes.
func (t *Typeahead) Cancel() {
	t.debounce.Cancel()
}
