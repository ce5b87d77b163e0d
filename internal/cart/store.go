package cart

import (
	"context"
	"encoding/json"

	"redlenic/storefront/internal/domain"
	"redlenic/storefront/internal/state"

	log "github.com/sirupsen/logrus"
)

// ProductLookup resolves a product id against the catalog
type ProductLookup func(id int) (domain.Product, bool)

// MaxQuantity caps a single entry so line totals stay far from int overflow
const MaxQuantity = 999

// Change describes a completed cart mutation
type Change struct {
	Action    string // "add", "remove" or "quantity"
	ProductID int
	Quantity  int // Quantity after the change, 0 when the entry was removed
}

// Store is an ordered list of cart entries backed by key-value persistence.
// Every mutation persists the whole list and then notifies OnChange hooks.
type Store struct {
	storage  state.Storage
	key      string
	lookup   ProductLookup
	entries  []domain.CartEntry
	onChange []func(*Store, Change)
}

func New(storage state.Storage, key string, lookup ProductLookup) *Store {
	return &Store{
		storage: storage,
		key:     key,
		lookup:  lookup,
		entries: make([]domain.CartEntry, 0),
	}
}

// OnChange registers a hook that runs after each persisted mutation
func (s *Store) OnChange(fn func(*Store, Change)) {
	s.onChange = append(s.onChange, fn)
}

// Load replaces the in-memory entries with the persisted list.
// Absent or corrupt data yields an empty cart.
func (s *Store) Load(ctx context.Context) {
	s.entries = make([]domain.CartEntry, 0)

	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		log.Warnf("⚠️ Failed to load cart %s, starting empty: %v", s.key, err)
		return
	}
	if len(data) == 0 {
		return
	}

	var entries []domain.CartEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warnf("⚠️ Corrupt cart data under %s, starting empty: %v", s.key, err)
		return
	}
	if entries != nil {
		s.entries = entries
	}
}

// Persist writes the full entry list. Failures are logged, never returned to callers.
func (s *Store) Persist(ctx context.Context) {
	data, err := Marshal(s.entries)
	if err != nil {
		log.Errorf("❌ Failed to serialize cart %s: %v", s.key, err)
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		log.Errorf("❌ Failed to persist cart %s: %v", s.key, err)
	}
}

// Add inserts the product with quantity 1 or increments its entry.
// Unknown product ids and entries already at MaxQuantity are ignored.
func (s *Store) Add(ctx context.Context, productID int) bool {
	product, ok := s.lookup(productID)
	if !ok {
		log.Debugf("Ignoring add of unknown product %d", productID)
		return false
	}

	quantity := 1
	if i := s.index(productID); i >= 0 {
		if s.entries[i].Quantity >= MaxQuantity {
			return false
		}
		s.entries[i].Quantity++
		quantity = s.entries[i].Quantity
	} else {
		s.entries = append(s.entries, domain.CartEntry{Product: product, Quantity: 1})
	}

	s.commit(ctx, Change{Action: "add", ProductID: productID, Quantity: quantity})
	return true
}

// Remove deletes the entry for productID if present
func (s *Store) Remove(ctx context.Context, productID int) bool {
	i := s.index(productID)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)

	s.commit(ctx, Change{Action: "remove", ProductID: productID})
	return true
}

// UpdateQuantity adds delta to an existing entry; a result <= 0 removes it.
// A delta that would take the entry past MaxQuantity is refused.
func (s *Store) UpdateQuantity(ctx context.Context, productID, delta int) bool {
	i := s.index(productID)
	if i < 0 {
		return false
	}
	if delta > MaxQuantity-s.entries[i].Quantity {
		log.Debugf("Refusing quantity change %+d for product %d", delta, productID)
		return false
	}

	quantity := s.entries[i].Quantity + delta
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	s.entries[i].Quantity = quantity

	s.commit(ctx, Change{Action: "quantity", ProductID: productID, Quantity: quantity})
	return true
}

// Total is the sum of price × quantity
func (s *Store) Total() int {
	total := 0
	for _, e := range s.entries {
		total += e.LineTotal()
	}
	return total
}

// Count is the sum of quantities, not the number of entries
func (s *Store) Count() int {
	count := 0
	for _, e := range s.entries {
		count += e.Quantity
	}
	return count
}

func (s *Store) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns a copy of the entries in insertion order
func (s *Store) Entries() []domain.CartEntry {
	entries := make([]domain.CartEntry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// Quantity of productID in the cart, 0 when absent
func (s *Store) Quantity(productID int) int {
	if i := s.index(productID); i >= 0 {
		return s.entries[i].Quantity
	}
	return 0
}

func (s *Store) index(productID int) int {
	for i, e := range s.entries {
		if e.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) commit(ctx context.Context, change Change) {
	s.Persist(ctx)
	for _, fn := range s.onChange {
		fn(s, change)
	}
}

// Marshal serializes entries in the persisted layout; nil becomes "[]"
func Marshal(entries []domain.CartEntry) ([]byte, error) {
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	return json.Marshal(entries)
}
