package list

import (
	"fmt"
	"sync"
)

// List define las operaciones que usan las colas del simulador (READY, interrupciones, segmentos).
type List[T any] interface {
	Add(item T)                                 // Añadir un elemento al final de la lista
	Dequeue() (T, error)                        // Eliminar y devolver el primer elemento de la lista
	DrainAll() []T                              // Vaciar la lista devolviendo todos sus elementos en orden
	Find(predicate func(T) bool) (T, int, bool) // Permite buscar un elemento de la lista dado un predicado.
	Get(index int) (T, error)                   // Obtener un elemento a partir de un índice dado
	GetAll() []T                                // Retorna todos los elementos que se encuentra en la lista
	IsEmpty() bool                              // Indica si la lista no tiene elementos
	RemoveAll(match func(T) bool) int           // Elimina todos los elementos que cumplen el predicado
	RemoveWhere(match func(T) bool) (T, bool)   // Elimina el primer elemento que cumple el predicado
	Size() int                                  // Retornar el tamaño de la lista
}

// ArrayList implements List
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewArrayList crea y devuelve una nueva instancia de ArrayList.
func NewArrayList[T any]() *ArrayList[T] {
	return &ArrayList[T]{
		items: make([]T, 0),
	}
}

// Add inserta un elemento al final de la lista.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock()
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error indicando que está vacía.
//
// Ejemplo:
//
//	func main() {
//		numbers := &list.ArrayList[int]{}
//		numbers.Add(10)
//		numbers.Add(20)
//		value, _ := numbers.Dequeue()
//		fmt.Println("Valor: ", value) //output: 10
//	}
func (list *ArrayList[T]) Dequeue() (T, error) {
	list.mu.Lock()
	defer list.mu.Unlock()

	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	valor := list.items[0]
	list.items = list.items[1:]
	return valor, nil
}

// DrainAll vacía la lista de una sola vez y devuelve los elementos en el orden en que fueron agregados.
// Al tomar el lock una única vez, ningún Add concurrente queda a mitad de camino.
func (list *ArrayList[T]) DrainAll() []T {
	list.mu.Lock()
	defer list.mu.Unlock()

	drained := list.items
	list.items = make([]T, 0)
	return drained
}

// Find permite buscar un elemento de la lista dado un predicado.
// Devuelve el elemento, su índice y si fue encontrado.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20)
//
//		number, index, found := list.Find(func(number int) bool {
//			return number == 20
//		})
//	}
func (list *ArrayList[T]) Find(predicate func(T) bool) (T, int, bool) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	for i, item := range list.items {
		if predicate(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Get devuelve el elemento en el índice proporcionado.
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock()
	defer list.mu.RUnlock()

	if index < 0 || index >= len(list.items) {
		var zero T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll retorna una copia de todos los elementos que se encuentra en la lista
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock()
	defer list.mu.RUnlock()

	// Copia del slice para que modificaciones externas no afecten la lista interna
	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}

func (list *ArrayList[T]) IsEmpty() bool {
	return list.Size() == 0
}

// RemoveAll elimina todos los elementos que cumplen el predicado y devuelve cuántos se eliminaron.
// El orden relativo de los elementos que quedan se conserva.
func (list *ArrayList[T]) RemoveAll(match func(T) bool) int {
	list.mu.Lock()
	defer list.mu.Unlock()

	kept := make([]T, 0, len(list.items))
	for _, item := range list.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	removed := len(list.items) - len(kept)
	list.items = kept
	return removed
}

// RemoveWhere elimina el primer elemento que cumple el predicado y lo devuelve.
func (list *ArrayList[T]) RemoveWhere(match func(T) bool) (T, bool) {
	list.mu.Lock()
	defer list.mu.Unlock()

	for i, item := range list.items {
		if match(item) {
			list.items = append(list.items[:i], list.items[i+1:]...)
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Size devuelve el tamaño de la lista.
func (list *ArrayList[T]) Size() int {
	list.mu.RLock()
	defer list.mu.RUnlock()

	return len(list.items)
}
