package attachment

import (
	"fmt"
	"net/url"
	"sync"
)

// URLScheme prefixes every display URL issued by a Registry.
const URLScheme = "attachment"

// Registry issues and revokes display URLs for attached files.
type Registry struct {
	mu     sync.Mutex
	next   uint64
	active map[string]*File
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[string]*File)}
}

// CreateURL registers f and returns a fresh display URL for it.
// Each call returns a distinct URL, even for the same file.
func (r *Registry) CreateURL(f *File) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	u := fmt.Sprintf("%s://%d/%s", URLScheme, r.next, url.PathEscape(f.Name))
	r.active[u] = f
	return u
}

// Attach registers f and returns the attached image.
func (r *Registry) Attach(f *File) *Image {
	return &Image{File: f, URL: r.CreateURL(f)}
}

// Revoke invalidates u. Unknown or already revoked URLs are ignored.
func (r *Registry) Revoke(u string) {
	if u == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, u)
}

// Release revokes the URL of img, if any.
func (r *Registry) Release(img *Image) {
	if img == nil {
		return
	}
	r.Revoke(img.URL)
}

// Resolve returns the file behind an active URL.
func (r *Registry) Resolve(u string) (*File, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.active[u]
	return f, ok
}

// Active returns the number of URLs that have not been revoked.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// RevokeAll invalidates every outstanding URL.
func (r *Registry) RevokeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.active)
}
