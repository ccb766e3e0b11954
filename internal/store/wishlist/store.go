// Package wishlist keeps the user's saved products plus a product-id set for
// O(1) membership checks. Mutations update the id set optimistically, then
// refetch the full list so the set and the rendered list never diverge.
package wishlist

import (
	"context"
	"sync"

	"healthshop-client/internal/domain"
)

type wishlistAPI interface {
	Wishlist(ctx context.Context) ([]domain.Product, error)
	AddToWishlist(ctx context.Context, productID int64) error
	RemoveFromWishlist(ctx context.Context, productID int64) error
}

// Store holds the wishlist state.
type Store struct {
	api wishlistAPI

	mu      sync.RWMutex
	items   []domain.Product
	ids     map[int64]struct{}
	loading bool
}

// New builds an empty Store over the given API client.
func New(a wishlistAPI) *Store {
	return &Store{api: a, ids: make(map[int64]struct{})}
}

// FetchWishlist replaces the items and the derived id set from the server.
// On error the previous state stays intact and the loading flag drops.
func (s *Store) FetchWishlist(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.api.Wishlist(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return err
	}
	s.items = items
	s.ids = make(map[int64]struct{}, len(items))
	for _, p := range items {
		s.ids[p.ID] = struct{}{}
	}
	return nil
}

// AddToWishlist optimistically marks productID saved, issues the call, then
// refetches to reconcile. A failed call rolls the optimistic mark back.
func (s *Store) AddToWishlist(ctx context.Context, productID int64) error {
	s.mu.Lock()
	s.ids[productID] = struct{}{}
	s.mu.Unlock()

	if err := s.api.AddToWishlist(ctx, productID); err != nil {
		s.mu.Lock()
		delete(s.ids, productID)
		s.mu.Unlock()
		return err
	}
	_ = s.FetchWishlist(ctx)
	return nil
}

// RemoveFromWishlist optimistically unmarks productID, issues the call, then
// refetches to reconcile. A failed call rolls the optimistic unmark back.
func (s *Store) RemoveFromWishlist(ctx context.Context, productID int64) error {
	s.mu.Lock()
	_, present := s.ids[productID]
	delete(s.ids, productID)
	s.mu.Unlock()

	if err := s.api.RemoveFromWishlist(ctx, productID); err != nil {
		if present {
			s.mu.Lock()
			s.ids[productID] = struct{}{}
			s.mu.Unlock()
		}
		return err
	}
	_ = s.FetchWishlist(ctx)
	return nil
}

// IsInWishlist reports membership against the id set.
func (s *Store) IsInWishlist(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[productID]
	return ok
}

// Items returns a copy of the saved products.
func (s *Store) Items() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.Product, len(s.items))
	copy(items, s.items)
	return items
}

// Loading reports whether a fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
