package server

import (
	"fmt"
	"sort"
	"sync"

	"github.com/skystead/astro-tools-mcp/internal/astro"
)

// Registry holds named in-memory images for the duration of a session.
//
// The registry itself is safe for concurrent use; the images it hands out
// are not, so callers mutate an image only from the request loop that
// fetched it.
type Registry struct {
	mu     sync.RWMutex
	images map[string]*astro.Image
}

// NewRegistry creates an empty image registry.
func NewRegistry() *Registry {
	return &Registry{images: make(map[string]*astro.Image)}
}

// Put registers an image under a name, replacing any previous holder.
func (r *Registry) Put(name string, im *astro.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[name] = im
}

// Get returns the image registered under name.
func (r *Registry) Get(name string) (*astro.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	im, ok := r.images[name]
	if !ok {
		return nil, fmt.Errorf("no image named %q; create one with image_create", name)
	}
	return im, nil
}

// Remove drops an image from the registry.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.images, name)
}

// Names lists registered image names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.images))
	for n := range r.images {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
