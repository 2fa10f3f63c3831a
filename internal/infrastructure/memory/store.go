// Package memory implementa el almacén de inventario en memoria: un único
// objeto Store es dueño de las seis colecciones (productos, clientes, ventas,
// movimientos, seriales y devoluciones) y un RWMutex serializa todo acceso.
// Es el análogo en memoria del pool PostgreSQL: los repositorios y el TxRunner
// se construyen sobre él y ninguna otra capa toca las colecciones.
package memory

import (
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Store contiene el estado del inventario para la vida del proceso.
// Se construye una sola vez en el arranque; no hay persistencia entre
// reinicios ni mecanismo de rollback: una escritura confirmada es definitiva.
// Las tablas guardan valores (no punteros) para que ningún caller conserve
// una referencia mutable al estado interno.
type Store struct {
	mu sync.RWMutex

	products  *table[entity.Product]
	customers *table[entity.Customer]
	sales     *table[entity.Sale]
	movements *table[entity.StockMovement]
	serials   *table[entity.SerialNumber]
	returns   *table[entity.Return]
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  newTable[entity.Product](),
		customers: newTable[entity.Customer](),
		sales:     newTable[entity.Sale](),
		movements: newTable[entity.StockMovement](),
		serials:   newTable[entity.SerialNumber](),
		returns:   newTable[entity.Return](),
	}
}

// rwLocker abstrae el mutex del Store para que los repositorios construidos
// dentro de una transacción (lock ya tomado por TxRunner) usen un guard nulo.
type rwLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// unlocked es el guard nulo: el TxRunner ya sostiene el lock exclusivo.
type unlocked struct{}

func (unlocked) Lock()    {}
func (unlocked) Unlock()  {}
func (unlocked) RLock()   {}
func (unlocked) RUnlock() {}

// table es una colección ordenada por inserción indexada por id.
// No sincroniza: el caller sostiene el lock del Store.
type table[T any] struct {
	byID  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{byID: make(map[string]T)}
}

// put inserta o reemplaza el registro. Las inserciones conservan el orden.
func (t *table[T]) put(id string, v T) {
	if _, ok := t.byID[id]; !ok {
		t.order = append(t.order, id)
	}
	t.byID[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.byID[id]
	return v, ok
}

func (t *table[T]) delete(id string) bool {
	if _, ok := t.byID[id]; !ok {
		return false
	}
	delete(t.byID, id)
	for i, oid := range t.order {
		if oid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// list devuelve los registros en orden de inserción.
func (t *table[T]) list() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}

func (t *table[T]) len() int {
	return len(t.byID)
}
