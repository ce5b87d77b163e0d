package service

import (
	"context"
	"sync"
	"time"

	"redlenic/storefront/internal/cart"
	"redlenic/storefront/internal/catalog"
	"redlenic/storefront/internal/checkout"
	"redlenic/storefront/internal/domain/event"
	"redlenic/storefront/internal/queue"
	"redlenic/storefront/internal/router"
	"redlenic/storefront/internal/state"
	"redlenic/storefront/internal/view"

	log "github.com/sirupsen/logrus"
)

// Service owns the application state: the read-only catalog and every visitor's cart.
// Each call is one turn: it loads the cart, applies the action and persists before returning.
// Calls are serialized, so a page rendered after a mutation always sees it.
type Service struct {
	catalog    *catalog.Catalog
	storage    state.Storage
	publisher  queue.Publisher
	formatter  *checkout.Formatter
	settings   view.Settings
	storageKey string

	mutex sync.Mutex
	now   func() time.Time
}

func NewService(
	catalog *catalog.Catalog,
	storage state.Storage,
	publisher queue.Publisher,
	formatter *checkout.Formatter,
	settings view.Settings,
	storageKey string,
) *Service {
	return &Service{
		catalog:    catalog,
		storage:    storage,
		publisher:  publisher,
		formatter:  formatter,
		settings:   settings,
		storageKey: storageKey,
		now:        time.Now,
	}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Page resolves the fragment and builds the page model for the visitor
func (s *Service) Page(ctx context.Context, visitorID, fragment string) view.Page {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	route := router.Resolve(fragment)
	log.Debugf("Rendering %s %v for visitor %s", route.Page, route.Params, visitorID)

	return view.Build(view.Input{
		Catalog:  s.catalog,
		Cart:     s.loadCart(ctx, visitorID).Entries(),
		Route:    route,
		Settings: s.settings,
	})
}

func (s *Service) AddToCart(ctx context.Context, visitorID string, productID int) bool {
	return s.mutate(ctx, visitorID, func(c *cart.Store) bool {
		return c.Add(ctx, productID)
	})
}

func (s *Service) RemoveFromCart(ctx context.Context, visitorID string, productID int) bool {
	return s.mutate(ctx, visitorID, func(c *cart.Store) bool {
		return c.Remove(ctx, productID)
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, visitorID string, productID, delta int) bool {
	return s.mutate(ctx, visitorID, func(c *cart.Store) bool {
		return c.UpdateQuantity(ctx, productID, delta)
	})
}

// Checkout returns the WhatsApp order link; false when the cart is empty
func (s *Service) Checkout(ctx context.Context, visitorID string) (string, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	c := s.loadCart(ctx, visitorID)
	entries := c.Entries()

	message, ok := s.formatter.Format(entries)
	if !ok {
		log.Debugf("Refusing checkout of empty cart for visitor %s", visitorID)
		return "", false
	}
	link := s.formatter.Link(message)

	s.publish(ctx, &event.CheckoutRequestedEvent{
		VisitorID:   visitorID,
		Entries:     entries,
		Total:       c.Total(),
		Message:     message,
		RequestedAt: s.now().UTC(),
	})

	log.Infof("🛒 Checkout handoff for visitor %s: %d items, total %d", visitorID, c.Count(), c.Total())
	return link, true
}

// ContactLink is the general inquiry deep link
func (s *Service) ContactLink() string {
	return s.formatter.ContactLink()
}

func (s *Service) mutate(ctx context.Context, visitorID string, apply func(*cart.Store) bool) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	c := s.loadCart(ctx, visitorID)
	c.OnChange(func(store *cart.Store, change cart.Change) {
		s.publish(ctx, &event.CartChangedEvent{
			VisitorID: visitorID,
			Action:    change.Action,
			ProductID: change.ProductID,
			Quantity:  change.Quantity,
			CartCount: store.Count(),
			CartTotal: store.Total(),
		})
	})
	return apply(c)
}

func (s *Service) loadCart(ctx context.Context, visitorID string) *cart.Store {
	c := cart.New(s.storage, s.cartKey(visitorID), s.catalog.Product)
	c.Load(ctx)
	return c
}

func (s *Service) cartKey(visitorID string) string {
	return s.storageKey + ":" + visitorID
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if _, err := s.publisher.Publish(ctx, e); err != nil {
		log.Errorf("❌ Failed to publish %s: %v", e.EventType(), err)
	}
}
