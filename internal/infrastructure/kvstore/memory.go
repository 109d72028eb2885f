package kvstore

import (
	"context"
	"fmt"
	"sync"
)

var _ TxStore = (*MemoryStore)(nil)

// MemoryStore implementación en memoria del sustrato KV. Conserva el orden de
// inserción por espacio de nombres y soporta transacciones con buffer local
// que solo toca el estado base en Commit.
type MemoryStore struct {
	mu  sync.RWMutex
	nss map[string]*namespace
}

type namespace struct {
	index   map[string]int // clave -> posición en entries
	entries []Entry
}

// NewMemoryStore construye el almacén vacío.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nss: make(map[string]*namespace)}
}

func (s *MemoryStore) ns(name string) *namespace {
	n, ok := s.nss[name]
	if !ok {
		n = &namespace{index: make(map[string]int)}
		s.nss[name] = n
	}
	return n
}

// Get devuelve una copia del valor, o nil si la clave no existe.
func (s *MemoryStore) Get(_ context.Context, ns string, key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nss[ns]
	if !ok {
		return nil, nil
	}
	i, ok := n.index[string(key)]
	if !ok {
		return nil, nil
	}
	return cloneBytes(n.entries[i].Value), nil
}

// Put inserta o sobrescribe. La sobrescritura conserva la posición de inserción.
func (s *MemoryStore) Put(_ context.Context, ns string, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putLocked(ns, key, value)
	return nil
}

func (s *MemoryStore) putLocked(ns string, key, value []byte) {
	n := s.ns(ns)
	if i, ok := n.index[string(key)]; ok {
		n.entries[i].Value = cloneBytes(value)
		return
	}
	n.index[string(key)] = len(n.entries)
	n.entries = append(n.entries, Entry{Key: cloneBytes(key), Value: cloneBytes(value)})
}

// Len devuelve la cantidad de claves del espacio.
func (s *MemoryStore) Len(_ context.Context, ns string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nss[ns]
	if !ok {
		return 0, nil
	}
	return uint64(len(n.entries)), nil
}

// List devuelve las entradas [offset, offset+limit) en orden de inserción.
func (s *MemoryStore) List(_ context.Context, ns string, offset, limit uint64) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nss[ns]
	if !ok {
		return nil, nil
	}
	return sliceEntries(n.entries, offset, limit), nil
}

// Begin abre una transacción con buffer local de escrituras.
func (s *MemoryStore) Begin(_ context.Context) (Tx, error) {
	return &memoryTx{
		base:   s,
		staged: make(map[string]map[string][]byte),
	}, nil
}

// memoryTx acumula escrituras en orden cronológico; las lecturas ven primero
// el buffer propio y después el estado base.
type memoryTx struct {
	base   *MemoryStore
	ops    []memoryOp
	staged map[string]map[string][]byte // ns -> clave -> último valor escrito
	done   bool
}

type memoryOp struct {
	ns    string
	key   []byte
	value []byte
}

func (t *memoryTx) Get(ctx context.Context, ns string, key []byte) ([]byte, error) {
	if t.done {
		return nil, errTxDone
	}
	if m, ok := t.staged[ns]; ok {
		if v, ok := m[string(key)]; ok {
			return cloneBytes(v), nil
		}
	}
	return t.base.Get(ctx, ns, key)
}

func (t *memoryTx) Put(_ context.Context, ns string, key, value []byte) error {
	if t.done {
		return errTxDone
	}
	t.ops = append(t.ops, memoryOp{ns: ns, key: cloneBytes(key), value: cloneBytes(value)})
	m, ok := t.staged[ns]
	if !ok {
		m = make(map[string][]byte)
		t.staged[ns] = m
	}
	m[string(key)] = cloneBytes(value)
	return nil
}

func (t *memoryTx) Len(ctx context.Context, ns string) (uint64, error) {
	if t.done {
		return 0, errTxDone
	}
	n, err := t.base.Len(ctx, ns)
	if err != nil {
		return 0, err
	}
	// Claves nuevas del buffer que el estado base todavía no conoce.
	for k := range t.staged[ns] {
		v, err := t.base.Get(ctx, ns, []byte(k))
		if err != nil {
			return 0, err
		}
		if v == nil {
			n++
		}
	}
	return n, nil
}

func (t *memoryTx) List(ctx context.Context, ns string, offset, limit uint64) ([]Entry, error) {
	if t.done {
		return nil, errTxDone
	}
	base, err := t.base.List(ctx, ns, 0, ^uint64(0))
	if err != nil {
		return nil, err
	}
	merged := make([]Entry, 0, len(base))
	seen := make(map[string]bool, len(base))
	for _, e := range base {
		v := e.Value
		if m, ok := t.staged[ns]; ok {
			if sv, ok := m[string(e.Key)]; ok {
				v = sv
			}
		}
		merged = append(merged, Entry{Key: cloneBytes(e.Key), Value: cloneBytes(v)})
		seen[string(e.Key)] = true
	}
	// Claves nuevas en orden de escritura.
	for _, op := range t.ops {
		if op.ns != ns || seen[string(op.key)] {
			continue
		}
		seen[string(op.key)] = true
		m := t.staged[ns]
		merged = append(merged, Entry{Key: cloneBytes(op.key), Value: cloneBytes(m[string(op.key)])})
	}
	return sliceEntries(merged, offset, limit), nil
}

// Commit aplica todas las escrituras pendientes de una vez sobre el estado base.
func (t *memoryTx) Commit(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.base.mu.Lock()
	defer t.base.mu.Unlock()
	for _, op := range t.ops {
		t.base.putLocked(op.ns, op.key, op.value)
	}
	return nil
}

// Rollback descarta el buffer completo sin tocar el estado base.
func (t *memoryTx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.ops = nil
	t.staged = nil
	return nil
}

var errTxDone = fmt.Errorf("kvstore: transacción finalizada")

func sliceEntries(entries []Entry, offset, limit uint64) []Entry {
	size := uint64(len(entries))
	if offset >= size {
		return nil
	}
	end := offset + limit
	if end > size || end < offset { // end < offset: overflow de offset+limit
		end = size
	}
	out := make([]Entry, 0, end-offset)
	for _, e := range entries[offset:end] {
		out = append(out, Entry{Key: cloneBytes(e.Key), Value: cloneBytes(e.Value)})
	}
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
