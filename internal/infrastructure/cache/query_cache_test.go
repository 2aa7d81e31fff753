package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
)

func TestGet_CachéaHastaQueExpira(t *testing.T) {
	c := cache.New(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return now })

	var calls int
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a"}, nil
	}

	_, err := cache.Get(t.Context(), c, "kunden", load)
	require.NoError(t, err)
	_, err = cache.Get(t.Context(), c, "kunden", load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	now = now.Add(2 * time.Minute)
	_, err = cache.Get(t.Context(), c, "kunden", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "una entrada caducada se recarga")
}

func TestGet_ErrorNoSeCachea(t *testing.T) {
	c := cache.New(time.Minute)
	boom := errors.New("boom")

	_, err := cache.Get(t.Context(), c, "k", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, c.Keys())

	v, err := cache.Get(t.Context(), c, "k", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestGet_CargasConcurrentesSeAgrupan(t *testing.T) {
	c := cache.New(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	load := func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := cache.Get(context.Background(), c, "geraete", load)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestPatchEInvalidate(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set("geraete:page:1", []int{1, 2, 3})
	c.Set("geraete:page:2", []int{4, 5})
	c.Set("kunden", []int{9})

	n := cache.PatchPrefix(c, "geraete:page:", func(v []int) []int {
		out := v[:0:0]
		for _, x := range v {
			if x != 2 {
				out = append(out, x)
			}
		}
		return out
	})
	assert.Equal(t, 2, n)

	v, err := cache.Get(t.Context(), c, "geraete:page:1", func(context.Context) ([]int, error) {
		t.Fatal("no debe recargar")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, v)

	assert.False(t, cache.Patch(c, "kunden", func(v string) string { return v }), "tipo distinto no se parchea")

	assert.Equal(t, 2, c.Invalidate("geraete:"))
	assert.Equal(t, []string{"kunden"}, c.Keys())
}

func TestGet_CargaEnCursoNoPisaUnaInvalidacion(t *testing.T) {
	c := cache.New(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan string)

	go func() {
		v, err := cache.Get(context.Background(), c, "geraete:page:::1", func(context.Context) (string, error) {
			close(started)
			<-release
			return "vor-dem-anlegen", nil
		})
		assert.NoError(t, err)
		done <- v
	}()

	<-started
	c.Invalidate("geraete:")
	close(release)
	assert.Equal(t, "vor-dem-anlegen", <-done, "quien esperaba recibe su resultado")
	assert.Empty(t, c.Keys())

	v, err := cache.Get(t.Context(), c, "geraete:page:::1", func(context.Context) (string, error) {
		return "nach-dem-anlegen", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "nach-dem-anlegen", v)
}

func TestGet_CargaEnCursoNoPisaUnParche(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set("geraete:alle", []int{1})
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, err := cache.Get(context.Background(), c, "kunden", func(context.Context) ([]int, error) {
			close(started)
			<-release
			return []int{1}, nil
		})
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, cache.Patch(c, "geraete:alle", func(v []int) []int { return append(v, 2) }))
	close(release)
	<-done

	assert.Equal(t, []string{"geraete:alle"}, c.Keys())
}

func TestRemoveYPeek(t *testing.T) {
	c := cache.New(time.Minute)
	c.Set("geraete:page:::1", 1)
	c.Set("geraete:page:::10", 10)

	v, ok := cache.Peek[int](c, "geraete:page:::10")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	_, ok = cache.Peek[string](c, "geraete:page:::10")
	assert.False(t, ok)

	assert.Equal(t, 1, c.Remove("geraete:page:::1", "fehlt"))
	assert.Equal(t, []string{"geraete:page:::10"}, c.KeysWithPrefix("geraete:page:"))
}
