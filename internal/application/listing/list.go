// Package listing modela una lista paginada mantenida localmente: las
// ediciones reemplazan la fila por id y los borrados quitan una sola fila.
package listing

// Identifiable lo implementan las entidades con id del backend.
type Identifiable interface {
	GetID() int64
}

// List página de elementos más el total reportado por el backend.
// Replace y Remove no modifican el receptor: devuelven una copia.
type List[T Identifiable] struct {
	Items []T
	Total int
}

// New crea una lista; total < 0 usa len(items).
func New[T Identifiable](items []T, total int) List[T] {
	if total < 0 {
		total = len(items)
	}
	return List[T]{Items: items, Total: total}
}

// Replace sustituye el elemento con el mismo id; orden y resto intactos.
// Si el id no está, la lista se devuelve sin cambios y found = false.
func (l List[T]) Replace(saved T) (List[T], bool) {
	for i, it := range l.Items {
		if it.GetID() == saved.GetID() {
			items := make([]T, len(l.Items))
			copy(items, l.Items)
			items[i] = saved
			return List[T]{Items: items, Total: l.Total}, true
		}
	}
	return l, false
}

// Remove quita exactamente una fila y decrementa el total en uno.
func (l List[T]) Remove(id int64) (List[T], bool) {
	for i, it := range l.Items {
		if it.GetID() == id {
			items := make([]T, 0, len(l.Items)-1)
			items = append(items, l.Items[:i]...)
			items = append(items, l.Items[i+1:]...)
			total := l.Total - 1
			if total < 0 {
				total = 0
			}
			return List[T]{Items: items, Total: total}, true
		}
	}
	return l, false
}

// Prepend añade un elemento nuevo al principio e incrementa el total.
func (l List[T]) Prepend(created T) List[T] {
	items := make([]T, 0, len(l.Items)+1)
	items = append(items, created)
	items = append(items, l.Items...)
	return List[T]{Items: items, Total: l.Total + 1}
}

// Find busca por id.
func (l List[T]) Find(id int64) (T, bool) {
	for _, it := range l.Items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Index construye un mapa id → elemento.
func Index[T Identifiable](items []T) map[int64]T {
	m := make(map[int64]T, len(items))
	for _, it := range items {
		m[it.GetID()] = it
	}
	return m
}
