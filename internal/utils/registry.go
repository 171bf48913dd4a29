package utils

import "fmt"

// RegistryValidator checks a key-value pair against the items already registered
type RegistryValidator[K comparable, V any] func(key K, value V, existing map[K]V) error

// Registry is a generic keyed collection that remembers insertion order.
// It has a single writer and no internal locking.
type Registry[K comparable, V any] struct {
	items     map[K]V
	order     []K
	validator RegistryValidator[K, V]
	name      string
}

// NewRegistry creates an empty registry; name prefixes validation errors
func NewRegistry[K comparable, V any](name string) *Registry[K, V] {
	return &Registry[K, V]{
		items: make(map[K]V),
		name:  name,
	}
}

// SetValidator sets the validation function run on every Register
func (r *Registry[K, V]) SetValidator(validator RegistryValidator[K, V]) {
	r.validator = validator
}

// Register adds or replaces an item. A replaced key keeps its original position.
func (r *Registry[K, V]) Register(key K, value V) error {
	if r.validator != nil {
		if err := r.validator(key, value, r.items); err != nil {
			return fmt.Errorf("%s registry: %w", r.name, err)
		}
	}

	if _, exists := r.items[key]; !exists {
		r.order = append(r.order, key)
	}
	r.items[key] = value
	return nil
}

// Get retrieves an item from the registry
func (r *Registry[K, V]) Get(key K) (V, bool) {
	value, exists := r.items[key]
	return value, exists
}

// Has checks if a key exists in the registry
func (r *Registry[K, V]) Has(key K) bool {
	_, exists := r.items[key]
	return exists
}

// Keys returns all keys in insertion order
func (r *Registry[K, V]) Keys() []K {
	keys := make([]K, len(r.order))
	copy(keys, r.order)
	return keys
}

// Values returns all items in insertion order
func (r *Registry[K, V]) Values() []V {
	values := make([]V, 0, len(r.order))
	for _, key := range r.order {
		values = append(values, r.items[key])
	}
	return values
}

// Size returns the number of items in the registry
func (r *Registry[K, V]) Size() int {
	return len(r.order)
}

