package session

import (
	"sync"

	"boutique-app/internal/cart"
	"boutique-app/internal/product"
	"boutique-app/internal/wizard"
)

type View string

const (
	ViewCustomer View = "customer"
	ViewAdmin    View = "admin"
)

// Session is the view-routing state for one active storefront session:
// which top-level view is shown, the category tab, the search term, the
// transient cart drawer, and whether the admin gate has been passed.
// None of it is persisted; a restart starts fresh. The session also owns
// the cart and the wizard, which live exactly as long as it does.
type Session struct {
	mu          sync.Mutex
	view        View
	tab         product.Category
	search      string
	cartOpen    bool
	adminAuthed bool

	Cart   *cart.Cart
	Wizard *wizard.Wizard
}

func New(c *cart.Cart, w *wizard.Wizard) *Session {
	return &Session{
		view:   ViewCustomer,
		tab:    product.CategorySale,
		Cart:   c,
		Wizard: w,
	}
}

// State is a snapshot of the routing state for rendering.
type State struct {
	View        View             `json:"view"`
	Tab         product.Category `json:"tab"`
	Search      string           `json:"search"`
	CartOpen    bool             `json:"cartOpen"`
	AdminAuthed bool             `json:"adminAuthed"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		View:        s.view,
		Tab:         s.tab,
		Search:      s.search,
		CartOpen:    s.cartOpen,
		AdminAuthed: s.adminAuthed,
	}
}

// ShowCustomer switches to the storefront view and closes the drawer.
func (s *Session) ShowCustomer() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = ViewCustomer
	s.cartOpen = false
}

// ShowAdmin switches to the admin view. The gate must be passed again
// every time the view is entered.
func (s *Session) ShowAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = ViewAdmin
	s.adminAuthed = false
}

func (s *Session) SetTab(tab product.Category) error {
	if tab != product.CategorySale && tab != product.CategoryRent {
		return product.ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
	return nil
}

func (s *Session) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

func (s *Session) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = true
}

func (s *Session) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = false
}

// MarkAdminAuthed records a passed admin gate for this session only.
func (s *Session) MarkAdminAuthed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminAuthed = true
}
