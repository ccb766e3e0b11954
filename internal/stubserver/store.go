package stubserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"healthshop-client/internal/domain"
)

// user is the server-side account record. PasswordHash never leaves the store.
type user struct {
	domain.User
	PasswordHash []byte
	CreatedAt    time.Time
}

// cartLine is the persistent cart row; prices are resolved against the
// product at read time.
type cartLine struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	AddedAt   time.Time
}

// memStore holds all stub data in memory. It exists to exercise the client,
// so there is deliberately no persistence.
type memStore struct {
	mu         sync.RWMutex
	nextID     int64
	users      map[int64]*user
	byEmail    map[string]int64
	products   map[int64]domain.Product
	categories []domain.Category
	cartLines  map[int64]*cartLine
	coupons    map[int64]domain.Coupon
	wishlists  map[int64][]int64
	orders     []*domain.Order
	ordersBy   map[int64][]*domain.Order
	profiles   map[int64]domain.HealthProfile
	reviews    map[int64][]domain.Review
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[int64]*user),
		byEmail:   make(map[string]int64),
		products:  make(map[int64]domain.Product),
		cartLines: make(map[int64]*cartLine),
		coupons:   make(map[int64]domain.Coupon),
		wishlists: make(map[int64][]int64),
		ordersBy:  make(map[int64][]*domain.Order),
		profiles:  make(map[int64]domain.HealthProfile),
		reviews:   make(map[int64][]domain.Review),
	}
}

// id returns the next identifier. Callers must hold mu.
func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) userByEmail(email string) (*user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, false
	}
	u := *s.users[id]
	return &u, true
}

func (s *memStore) userByID(id int64) (*user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	copied := *u
	return &copied, true
}

func (s *memStore) addUser(u user) (*user, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email := strings.ToLower(u.Email)
	if _, exists := s.byEmail[email]; exists {
		return nil, false
	}
	u.ID = s.id()
	u.Email = email
	u.CreatedAt = time.Now().UTC()
	s.users[u.ID] = &u
	s.byEmail[email] = u.ID
	copied := u
	return &copied, true
}

func (s *memStore) addProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.id()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	s.products[p.ID] = p
	return p
}

func (s *memStore) product(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *memStore) removeProduct(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	return true
}

// productList returns all products ordered by id.
func (s *memStore) productList() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) addCategory(c domain.Category) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.id()
	}
	s.categories = append(s.categories, c)
	return c
}

func (s *memStore) categoryList() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *memStore) addCoupon(c domain.Coupon) domain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.id()
	}
	c.Code = domain.NormalizeCouponCode(c.Code)
	s.coupons[c.ID] = c
	return c
}

func (s *memStore) couponByCode(code string) (domain.Coupon, bool) {
	code = domain.NormalizeCouponCode(code)
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.coupons {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Coupon{}, false
}

func (s *memStore) couponList() []domain.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Coupon, 0, len(s.coupons))
	for _, c := range s.coupons {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memStore) removeCoupon(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coupons[id]; !ok {
		return false
	}
	delete(s.coupons, id)
	return true
}

// cartFor returns the user's lines ordered by when they were added.
func (s *memStore) cartFor(userID int64) []cartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []cartLine
	for _, line := range s.cartLines {
		if line.UserID == userID {
			out = append(out, *line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// upsertCartLine merges an addition into an existing line for the same
// product, otherwise creates one.
func (s *memStore) upsertCartLine(userID, productID int64, quantity int) cartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range s.cartLines {
		if line.UserID == userID && line.ProductID == productID {
			line.Quantity += quantity
			return *line
		}
	}
	line := &cartLine{
		ID:        s.id(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	}
	s.cartLines[line.ID] = line
	return *line
}

func (s *memStore) cartLine(id int64) (cartLine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	line, ok := s.cartLines[id]
	if !ok {
		return cartLine{}, false
	}
	return *line, true
}

func (s *memStore) setCartQuantity(id int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if line, ok := s.cartLines[id]; ok {
		line.Quantity = quantity
	}
}

func (s *memStore) removeCartLine(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cartLines, id)
}

func (s *memStore) clearCart(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, line := range s.cartLines {
		if line.UserID == userID {
			delete(s.cartLines, id)
		}
	}
}

func (s *memStore) wishlistFor(userID int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.wishlists[userID]
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}

func (s *memStore) addWishlist(userID, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.wishlists[userID] {
		if id == productID {
			return
		}
	}
	s.wishlists[userID] = append(s.wishlists[userID], productID)
}

func (s *memStore) removeWishlist(userID, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.wishlists[userID]
	for i, id := range ids {
		if id == productID {
			s.wishlists[userID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

func (s *memStore) inWishlist(userID, productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.wishlists[userID] {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *memStore) addOrder(userID int64, o domain.Order) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.id()
	stored := o
	s.orders = append(s.orders, &stored)
	s.ordersBy[userID] = append(s.ordersBy[userID], &stored)
	return o
}

// ordersFor returns the user's orders, newest first.
func (s *memStore) ordersFor(userID int64) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := s.ordersBy[userID]
	out := make([]domain.Order, 0, len(refs))
	for i := len(refs) - 1; i >= 0; i-- {
		out = append(out, *refs[i])
	}
	return out
}

func (s *memStore) allOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, *s.orders[i])
	}
	return out
}

func (s *memStore) setOrderStatus(id int64, status string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			o.Status = status
			return *o, true
		}
	}
	return domain.Order{}, false
}

func (s *memStore) profileFor(userID int64) (domain.HealthProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	return p, ok
}

func (s *memStore) setProfile(userID int64, p domain.HealthProfile) domain.HealthProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = s.id()
	}
	s.profiles[userID] = p
	return p
}

func (s *memStore) profileList() []domain.HealthProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.HealthProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out
}

func (s *memStore) addReview(r domain.Review) domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	r.CreatedAt = time.Now().UTC()
	s.reviews[r.ProductID] = append(s.reviews[r.ProductID], r)
	return r
}

// reviewsFor returns a product's reviews, newest first.
func (s *memStore) reviewsFor(productID int64) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := s.reviews[productID]
	out := make([]domain.Review, 0, len(refs))
	for i := len(refs) - 1; i >= 0; i-- {
		out = append(out, refs[i])
	}
	return out
}

func (s *memStore) userList() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.User)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
