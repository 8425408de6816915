// Package store persists named collections of records as JSON arrays.
//
// A Backend moves raw bytes for a collection name; Collection[T] layers
// typed load/save/append/remove on top of it.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Collection names shared by the API server and the seeder
const (
	Appointments    = "appointments"
	Spares          = "spares"
	Feedback        = "feedback"
	Contacts        = "contacts"
	CustomerRecords = "customer-records"
)

// Names lists every collection the service owns
var Names = []string{Appointments, Spares, Feedback, Contacts, CustomerRecords}

// ErrNotExist is returned by a Backend when the collection has never been written
var ErrNotExist = errors.New("collection does not exist")

// Backend reads and writes the serialized form of a collection
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Collection is a typed view over one named collection. Every read and
// write holds the mutex, which only serializes callers inside this process.
type Collection[T any] struct {
	name    string
	backend Backend
	mu      sync.Mutex
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{name: name, backend: backend}
}

func (c *Collection[T]) Name() string {
	return c.name
}

// Load returns every record in insertion order. An absent collection is
// created empty on first read.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Save overwrites the whole collection. The write is not atomic.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, records)
}

// load and save expect c.mu to be held
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.backend.Read(ctx, c.name)
	if errors.Is(err, ErrNotExist) {
		empty := []T{}
		if err := c.save(ctx, empty); err != nil {
			return nil, err
		}
		return empty, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.backend.Write(ctx, c.name, data); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}

// Append loads, pushes rec and saves
func (c *Collection[T]) Append(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	records = append(records, rec)
	if err := c.save(ctx, records); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Remove drops the first record for which match returns true.
// It reports false, without writing, when nothing matched.
func (c *Collection[T]) Remove(ctx context.Context, match func(T) bool) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return false, err
	}

	for i, rec := range records {
		if match(rec) {
			kept := append(records[:i:i], records[i+1:]...)
			if err := c.save(ctx, kept); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
