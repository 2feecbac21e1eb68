package auth

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrDuplicateScheme indicates a scheme name is already registered.
var ErrDuplicateScheme = errors.New("auth scheme already registered")

// Registry holds the named schemes of a single application instance.
// Each server owns its own Registry so two instances never share state.
type Registry struct {
	mu      sync.RWMutex
	schemes map[string]Scheme
}

// NewRegistry returns an empty scheme registry.
func NewRegistry() *Registry {
	return &Registry{schemes: make(map[string]Scheme)}
}

// Register 将方案加入注册表，重复键会返回 ErrDuplicateScheme。
func (r *Registry) Register(scheme Scheme) error {
	key := normalizeName(scheme.Name)
	if key == "" {
		return errors.New("scheme name is required")
	}
	if scheme.Validate == nil {
		return fmt.Errorf("scheme %s has no validator", key)
	}
	scheme.Name = key

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemes[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateScheme, key)
	}
	r.schemes[key] = scheme
	return nil
}

// Resolve 返回指定名称的方案。
func (r *Registry) Resolve(name string) (Scheme, bool) {
	key := normalizeName(name)
	if key == "" {
		return Scheme{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	scheme, ok := r.schemes[key]
	return scheme, ok
}

// Names 返回按字典序排列的已注册方案名，供诊断端使用。
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.schemes) == 0 {
		return nil
	}
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
