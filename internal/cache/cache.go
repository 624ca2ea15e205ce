// Package cache holds the client-side query cache and the rules deciding
// which cached views a mutation makes stale. The rules are pure functions so
// they can be tested without a store; the store is an explicit instance owned
// by whoever composes the client, never a package global.
package cache

import "sync"

const (
	ResourceCategories = "categories"
	ResourceProducts   = "products"
)

// Key addresses one cached query result. An empty ID is the list view of the
// resource; a non-empty ID is a detail view.
type Key struct {
	Resource string
	ID       string
}

func CategoriesKey() Key          { return Key{Resource: ResourceCategories} }
func ProductsKey() Key            { return Key{Resource: ResourceProducts} }
func CategoryKey(name string) Key { return Key{Resource: ResourceCategories, ID: name} }
func ProductKey(id string) Key    { return Key{Resource: ResourceProducts, ID: id} }

// Selector names a set of keys to invalidate: either one exact key, or every
// detail view of a resource (AllDetails).
type Selector struct {
	Key        Key
	AllDetails bool
}

func exact(k Key) Selector { return Selector{Key: k} }

// allDetails matches every key of the resource that has a non-empty ID.
func allDetails(resource string) Selector {
	return Selector{Key: Key{Resource: resource}, AllDetails: true}
}

func (s Selector) Matches(k Key) bool {
	if s.AllDetails {
		return k.Resource == s.Key.Resource && k.ID != ""
	}
	return k == s.Key
}

// Invalidation rules, one per mutation. Each returns exactly the views that
// must be refetched before being trusted again.

// CreateCategoryInvalidations: a new category only changes the category list.
func CreateCategoryInvalidations() []Selector {
	return []Selector{exact(CategoriesKey())}
}

// RenameCategoryInvalidations: the rename cascades into every product's
// foreign key, so besides both category detail views and the category list,
// the product list and all product detail views go stale.
func RenameCategoryInvalidations(oldName, newName string) []Selector {
	return []Selector{
		exact(CategoriesKey()),
		exact(CategoryKey(oldName)),
		exact(CategoryKey(newName)),
		exact(ProductsKey()),
		allDetails(ResourceProducts),
	}
}

// DeleteCategoryInvalidations: the delete cascades to products, so every
// product view may now be gone.
func DeleteCategoryInvalidations(name string) []Selector {
	return []Selector{
		exact(CategoriesKey()),
		exact(CategoryKey(name)),
		exact(ProductsKey()),
		allDetails(ResourceProducts),
	}
}

// CreateProductInvalidations: the product list plus the fresh detail view.
func CreateProductInvalidations(id string) []Selector {
	return []Selector{
		exact(ProductsKey()),
		exact(ProductKey(id)),
	}
}

// SaveProductInvalidations covers single-product update and delete.
func SaveProductInvalidations(id string) []Selector {
	return []Selector{
		exact(ProductsKey()),
		exact(ProductKey(id)),
	}
}

// BulkProductsInvalidations covers bulk delete and bulk recategorize: the
// product list plus the detail view of every requested id.
func BulkProductsInvalidations(ids []string) []Selector {
	selectors := make([]Selector, 0, len(ids)+1)
	selectors = append(selectors, exact(ProductsKey()))
	for _, id := range ids {
		selectors = append(selectors, exact(ProductKey(id)))
	}
	return selectors
}

// Store is a concurrency-safe cache of query results.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]any
}

func NewStore() *Store {
	return &Store{entries: make(map[Key]any)}
}

func (s *Store) Get(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[k]
	return v, ok
}

func (s *Store) Put(k Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k] = v
}

// Invalidate drops every entry matched by any selector and reports how many
// entries were removed.
func (s *Store) Invalidate(selectors ...Selector) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k := range s.entries {
		for _, sel := range selectors {
			if sel.Matches(k) {
				delete(s.entries, k)
				removed++
				break
			}
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
