// Package dict implements a string to string dictionary as a hash table of chained, singly
// linked buckets. The bucket count is fixed when the table is created; the table never resizes,
// so keeping the load factor reasonable is up to the caller.
//
// A Dictionary is not safe for concurrent mutation. Callers sharing one across goroutines must
// serialize access themselves.
package dict

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultCapacity is the bucket count used by callers that have no better estimate.
const DefaultCapacity = 16381

var (
	// ErrInvalidCapacity is returned by New when the bucket count is not positive.
	ErrInvalidCapacity = errors.New("dict: capacity must be positive")
	// ErrEmptyKey is returned by Insert for an empty key. The table is left unchanged.
	ErrEmptyKey = errors.New("dict: empty key")
	// ErrNilDictionary is returned when mutating a nil or zero-value Dictionary not built by New.
	ErrNilDictionary = errors.New("dict: nil dictionary")
)

type entry struct {
	key   string
	value string
	next  *entry
}

// Dictionary maps string keys to string values.
type Dictionary struct {
	buckets []*entry
	size    int
	logger  *zap.Logger
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithLogger sets the logger used for diagnostics such as rejected keys.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dictionary) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates an empty dictionary with capacity buckets.
func New(capacity int, opts ...Option) (*Dictionary, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	d := &Dictionary{
		buckets: make([]*entry, capacity),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Hash returns the bucket index of key in a table of capacity buckets: a base-37 polynomial over
// the key bytes, wrapping at 64 bits, reduced modulo capacity. A non-positive capacity yields 0.
func Hash(key string, capacity int) int {
	if capacity < 1 {
		return 0
	}
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*37 + uint64(key[i])
	}
	return int(h % uint64(capacity))
}

// ready reports whether d was built by New. A nil or zero-value Dictionary holds no buckets.
func (d *Dictionary) ready() bool {
	return d != nil && len(d.buckets) > 0
}

func (d *Dictionary) log() *zap.Logger {
	if d.logger == nil {
		return zap.NewNop()
	}
	return d.logger
}

// Insert stores value under key, replacing any existing value. An empty key is rejected.
func (d *Dictionary) Insert(key, value string) error {
	if !d.ready() {
		return ErrNilDictionary
	}
	if key == "" {
		d.log().Warn("rejected dictionary insert", zap.Error(ErrEmptyKey))
		return ErrEmptyKey
	}

	idx := Hash(key, len(d.buckets))
	for e := d.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return nil
		}
	}
	d.buckets[idx] = &entry{key: key, value: value, next: d.buckets[idx]}
	d.size++
	return nil
}

// Get returns the value stored under key and whether it was present.
func (d *Dictionary) Get(key string) (string, bool) {
	if !d.ready() || key == "" {
		return "", false
	}
	for e := d.buckets[Hash(key, len(d.buckets))]; e != nil; e = e.next {
		if e.key == key {
			return e.value, true
		}
	}
	return "", false
}

// Remove deletes key and reports whether it was present.
func (d *Dictionary) Remove(key string) bool {
	if !d.ready() || key == "" {
		return false
	}

	idx := Hash(key, len(d.buckets))
	var prev *entry
	for e := d.buckets[idx]; e != nil; prev, e = e, e.next {
		if e.key != key {
			continue
		}
		if prev == nil {
			d.buckets[idx] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		d.size--
		return true
	}
	return false
}

// Keys returns every key. Order follows bucket index, then chain position, and is not stable
// across inserts.
func (d *Dictionary) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, d.size)
	d.Range(func(key, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns every value, in the same order Keys would return their keys.
func (d *Dictionary) Values() []string {
	if d == nil {
		return nil
	}
	values := make([]string, 0, d.size)
	d.Range(func(_, value string) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Range calls fn for every entry until fn returns false. fn must not modify the dictionary.
func (d *Dictionary) Range(fn func(key, value string) bool) {
	if d == nil {
		return
	}
	for _, head := range d.buckets {
		for e := head; e != nil; e = e.next {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// Size returns the number of keys.
func (d *Dictionary) Size() int {
	if d == nil {
		return 0
	}
	return d.size
}

// Capacity returns the fixed bucket count.
func (d *Dictionary) Capacity() int {
	if d == nil {
		return 0
	}
	return len(d.buckets)
}

// LoadFactor returns Size divided by Capacity.
func (d *Dictionary) LoadFactor() float64 {
	if d == nil || len(d.buckets) == 0 {
		return 0
	}
	return float64(d.size) / float64(len(d.buckets))
}

// Clear removes every entry, keeping the bucket count.
func (d *Dictionary) Clear() {
	if d == nil {
		return
	}
	clear(d.buckets)
	d.size = 0
}

// Clone returns an independent copy with the same capacity, logger, and chain layout.
func (d *Dictionary) Clone() *Dictionary {
	if d == nil {
		return nil
	}
	c := &Dictionary{
		buckets: make([]*entry, len(d.buckets)),
		size:    d.size,
		logger:  d.logger,
	}
	for i, head := range d.buckets {
		tail := &c.buckets[i]
		for e := head; e != nil; e = e.next {
			*tail = &entry{key: e.key, value: e.value}
			tail = &(*tail).next
		}
	}
	return c
}

// String renders one `"key": "value"` line per entry.
func (d *Dictionary) String() string {
	var b strings.Builder
	d.Range(func(key, value string) bool {
		fmt.Fprintf(&b, "%q: %q\n", key, value)
		return true
	})
	return b.String()
}
