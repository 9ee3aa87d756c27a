package list

import (
	"fmt"
	"sync"
)

// List define las operaciones que el simulador necesita sobre una lista:
// el anillo de procesos listos y el log de ejecución se apoyan en ella.
type List[T any] interface {
	Add(item T)                                 // Añadir un elemento al final de la lista
	Find(predicate func(T) bool) (T, int, bool) // Permite buscar un elemento de la lista dado un predicado.
	ForEach(callback func(T))                   // A cada elemento de la lista se le va aplicar la función que le pase
	Get(index int) (T, error)                   // Obtener un elemento a partir de un índice dado
	GetAll() []T                                // Retorna todos los elementos que se encuentra en la lista
	Remove(index int)                           // Eliminar un elemento en el índice dado
	RemoveWhere(match func(T) bool)             // Eliminar el primer elemento que cumpla el predicado
	Size() int                                  // Retornar el tamaño de la lista
}

// ArrayList implements List
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Add inserta un elemento al final de la lista.
//
// Ejemplo:
//
//	func main() {
//		ring := &ArrayList[int]{}
//		ring.Add(10)
//		ring.Add(20)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Find permite buscar un elemento de la lista dado un predicado. Devuelve el
// elemento, su índice y un booleano indicando si se encontró.
func (list *ArrayList[T]) Find(predicate func(T) bool) (T, int, bool) {
	list.mu.RLock() // Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	for i, item := range list.items {
		if predicate(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// ForEach a cada elemento de la lista se va a aplicar la función que le pase.
func (list *ArrayList[T]) ForEach(callback func(T)) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	for _, item := range list.items {
		callback(item)
	}
}

// Get devuelve el elemento en el índice proporcionado.
//
// Ejemplo:
//
//	func main() {
//		ring := &ArrayList[int]{}
//		ring.Add(10)
//		ring.Add(20)
//
//		value, _ := ring.Get(1)
//		fmt.Println("Valor: ", value) //Output: 20
//	}
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock() // Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	// Validar si el índice está dentro del rango
	if index < 0 || index >= len(list.items) {
		var zero T // Crear un valor cero del tipo genérico T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll retorna una copia de todos los elementos que se encuentra en la lista
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock() // Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	// Crear una copia del slice para evitar que modificaciones externas afecten la lista interna
	itemsCopy := make([]T, len(list.items))
	copy(itemsCopy, list.items)
	return itemsCopy
}

// Remove remueve un elemento de la lista a partir de su índice. Un índice
// fuera de rango no tiene efecto.
func (list *ArrayList[T]) Remove(index int) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	if index >= 0 && index < len(list.items) {
		list.items = append(list.items[:index], list.items[index+1:]...)
	}
}

// RemoveWhere elimina el primer elemento que cumpla el predicado.
func (list *ArrayList[T]) RemoveWhere(match func(T) bool) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	for i, item := range list.items {
		if match(item) {
			list.items = append(list.items[:i], list.items[i+1:]...)
			break
		}
	}
}

// Size devuelve el tamaño de la lista.
func (list *ArrayList[T]) Size() int {
	list.mu.RLock() // Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	return len(list.items)
}
