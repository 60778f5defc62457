package source

import (
	"fmt"

	"news_aggregator/internal/domain"
)

// Registry binds the statically configured source descriptors to their
// adapters. It is built once at startup and passed to the orchestrator by
// handle; there is no package-level instance, so tests construct isolated
// registries freely.
type Registry struct {
	descriptors map[string]domain.SourceDescriptor
	adapters    map[string]Adapter
	order       []string
}

func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]domain.SourceDescriptor),
		adapters:    make(map[string]Adapter),
	}
}

// Register binds an adapter to its descriptor. Registering an unconfigured
// adapter is allowed; it is skipped at selection time.
func (r *Registry) Register(desc domain.SourceDescriptor, adapter Adapter) error {
	if desc.ID == "" {
		return fmt.Errorf("register source: empty id")
	}
	if desc.ID != adapter.ID() {
		return fmt.Errorf("register source: descriptor id %q does not match adapter id %q", desc.ID, adapter.ID())
	}
	if _, exists := r.descriptors[desc.ID]; exists {
		return fmt.Errorf("register source: duplicate id %q", desc.ID)
	}

	r.descriptors[desc.ID] = desc
	r.adapters[desc.ID] = adapter
	r.order = append(r.order, desc.ID)
	return nil
}

// Adapter returns the adapter bound to id.
func (r *Registry) Adapter(id string) (Adapter, bool) {
	a, ok := r.adapters[id]
	return a, ok
}

// Descriptor returns the static descriptor for id.
func (r *Registry) Descriptor(id string) (domain.SourceDescriptor, bool) {
	d, ok := r.descriptors[id]
	return d, ok
}

// Descriptors returns every registered descriptor whose adapter is
// configured, in registration order.
func (r *Registry) Descriptors() []domain.SourceDescriptor {
	out := make([]domain.SourceDescriptor, 0, len(r.order))
	for _, id := range r.order {
		if !r.adapters[id].IsConfigured() {
			continue
		}
		out = append(out, r.descriptors[id])
	}
	return out
}

// Len returns the number of registered sources, configured or not.
func (r *Registry) Len() int { return len(r.order) }
