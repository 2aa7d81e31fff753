// Package cache implementa la caché de consultas compartida por las vistas.
//
// Estrategia de consistencia: se aplica localmente y se reconcilia en segundo plano.
// Update/Delete parchean las entradas en memoria (Patch/PatchPrefix); Create
// invalida el prefijo afectado; el TTL y el job de refresco reconcilian con el backend.
// Una carga que termina después de una invalidación o un parche no se guarda.
package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value    any
	storedAt time.Time
}

// QueryCache entradas por clave con TTL. Las cargas concurrentes de una misma
// clave se agrupan en una sola llamada al backend.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group
	now     func() time.Time
	// epoch sube con cada Invalidate, Remove o Patch.
	epoch uint64
}

// New construye la caché. ttl <= 0 desactiva el cacheo (siempre recarga).
func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock reemplaza el reloj (tests).
func (c *QueryCache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *QueryCache) lookup(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.ttl <= 0 || c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set guarda value bajo key con marca de tiempo actual.
func (c *QueryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// setIfCurrent guarda value solo si nada se invalidó ni parcheó desde epoch.
func (c *QueryCache) setIfCurrent(key string, value any, epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return false
	}
	c.entries[key] = entry{value: value, storedAt: c.now()}
	return true
}

func (c *QueryCache) currentEpoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

// Invalidate elimina las entradas cuya clave empieza por alguno de los prefijos.
func (c *QueryCache) Invalidate(prefixes ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	removed := 0
	for key := range c.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(key, p) {
				delete(c.entries, key)
				removed++
				break
			}
		}
	}
	return removed
}

// Remove elimina exactamente las claves dadas.
func (c *QueryCache) Remove(keys ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	removed := 0
	for _, key := range keys {
		if _, ok := c.entries[key]; ok {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// KeysWithPrefix claves presentes bajo prefix (ordenadas).
func (c *QueryCache) KeysWithPrefix(prefix string) []string {
	var out []string
	for _, k := range c.Keys() {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out
}

// Keys devuelve las claves presentes (ordenadas).
func (c *QueryCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get devuelve el valor fresco de key o lo carga con load. Un error de carga no se cachea.
func Get[T any](ctx context.Context, c *QueryCache, key string, load func(context.Context) (T, error)) (T, error) {
	if v, ok := c.lookup(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		epoch := c.currentEpoch()
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.setIfCurrent(key, loaded, epoch)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Peek devuelve la entrada vigente de key sin cargarla.
func Peek[T any](c *QueryCache, key string) (T, bool) {
	if v, ok := c.lookup(key); ok {
		if typed, ok := v.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Patch aplica fn a la entrada key si existe y es de tipo T. No renueva la marca de tiempo.
func Patch[T any](c *QueryCache, key string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	return patchLocked(c, key, fn)
}

// PatchPrefix aplica fn a todas las entradas de tipo T bajo prefix y devuelve cuántas cambió.
func PatchPrefix[T any](c *QueryCache, prefix string, fn func(T) T) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	n := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) && patchLocked(c, key, fn) {
			n++
		}
	}
	return n
}

func patchLocked[T any](c *QueryCache, key string, fn func(T) T) bool {
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	typed, ok := e.value.(T)
	if !ok {
		return false
	}
	e.value = fn(typed)
	c.entries[key] = e
	return true
}
