// Package ops exposes every calculation as a named operation taking JSON
// parameters and returning a JSON-serializable result. The CLI dispatches
// through the registry; embedding callers can do the same.
package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Handler executes one operation on raw JSON parameters.
type Handler func(ctx context.Context, params json.RawMessage) (any, error)

// Info describes a registered operation.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrUnknownOperation is returned when dispatching a name that was never
// registered.
type ErrUnknownOperation struct {
	Name string
}

func (e *ErrUnknownOperation) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Name)
}

type entry struct {
	info    Info
	handler Handler
}

// Registry is a thread-safe name-to-handler map. Duplicate registrations
// overwrite the previous entry.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds an operation under its name.
func (r *Registry) Register(name, description string, h Handler) error {
	if name == "" {
		return fmt.Errorf("operation name cannot be empty")
	}
	if h == nil {
		return fmt.Errorf("operation %q has no handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry{
		info:    Info{Name: name, Description: description},
		handler: h,
	}
	return nil
}

// Operations lists all registered operations, sorted by name.
func (r *Registry) Operations() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Dispatch runs the named operation with the given JSON parameters.
func (r *Registry) Dispatch(ctx context.Context, name string, params json.RawMessage) (any, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &ErrUnknownOperation{Name: name}
	}
	return e.handler(ctx, params)
}

// decode unmarshals params into a typed struct; empty input decodes the
// zero value so operations with all-optional parameters work bare.
func decode[T any](params json.RawMessage) (T, error) {
	var v T
	if len(params) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(params, &v); err != nil {
		return v, fmt.Errorf("invalid parameters: %w", err)
	}
	return v, nil
}

// handle adapts a typed operation function into a Handler.
func handle[T any](fn func(ctx context.Context, req T) (any, error)) Handler {
	return func(ctx context.Context, params json.RawMessage) (any, error) {
		req, err := decode[T](params)
		if err != nil {
			return nil, err
		}
		return fn(ctx, req)
	}
}
