package shipper

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry manages registered shipping carriers.
type Registry struct {
	shippers map[string]Shipper
	mu       sync.RWMutex
}

// NewRegistry creates a new shipper registry.
func NewRegistry() *Registry {
	return &Registry{
		shippers: make(map[string]Shipper),
	}
}

// Register adds a shipper to the registry.
func (r *Registry) Register(s Shipper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shippers[s.Name()] = s
}

// Get returns a shipper by name.
func (r *Registry) Get(name string) (Shipper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.shippers[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCarrierNotFound, name)
}

// All returns all registered shippers ordered by name.
func (r *Registry) All() []Shipper {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Shipper, 0, len(r.shippers))
	for _, s := range r.shippers {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// Names returns the sorted names of all registered shippers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.shippers))
	for name := range r.shippers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered shippers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shippers)
}

// GetAllQuotes fetches quotes from all registered carriers in parallel.
// Errors from individual carriers are collected but don't fail the entire request.
// Responses are ordered by carrier name.
func (r *Registry) GetAllQuotes(ctx context.Context, req *QuoteRequest) ([]*QuoteResponse, []error) {
	shippers := r.All()
	if len(shippers) == 0 {
		return nil, []error{ErrCarrierNotFound}
	}

	names := make([]string, len(shippers))
	for i, s := range shippers {
		names[i] = s.Name()
	}
	return r.fanOut(ctx, req, names)
}

// GetQuotesFromCarriers fetches quotes from specific carriers.
func (r *Registry) GetQuotesFromCarriers(ctx context.Context, req *QuoteRequest, carriers []string) ([]*QuoteResponse, []error) {
	if len(carriers) == 0 {
		return r.GetAllQuotes(ctx, req)
	}
	return r.fanOut(ctx, req, carriers)
}

func (r *Registry) fanOut(ctx context.Context, req *QuoteRequest, carriers []string) ([]*QuoteResponse, []error) {
	slots := make([]*QuoteResponse, len(carriers))
	errs := make([]error, 0)
	mu := &sync.Mutex{}

	g, ctx := errgroup.WithContext(ctx)

	for i, name := range carriers {
		g.Go(func() error {
			s, err := r.Get(name)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return nil
			}

			resp, err := s.GetQuote(ctx, req)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				return nil // Don't fail the group, continue with other carriers
			}
			slots[i] = resp
			return nil
		})
	}

	_ = g.Wait()

	results := make([]*QuoteResponse, 0, len(slots))
	for _, resp := range slots {
		if resp != nil {
			results = append(results, resp)
		}
	}
	return results, errs
}
