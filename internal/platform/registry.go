package platform

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry = make(map[string]Scraper)
	mu       sync.RWMutex
)

// Register makes a storefront available under name, replacing any previous
// registration.
func Register(name string, scraper Scraper) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = scraper
}

func Get(name string) (Scraper, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("platform %q not registered (available: %v)", name, namesLocked())
	}
	return s, nil
}

// Names lists registered storefronts in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
