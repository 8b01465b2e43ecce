package resource

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tiendaapi/internal/models"
	"tiendaapi/internal/store"
)

// memoryProducts is an in-memory Store[models.Product] that counts calls.
type memoryProducts struct {
	mu      sync.Mutex
	rows    map[int]models.Product
	nextID  int
	calls   int
	failErr error

	// replaceErr/deleteErr simulate races the gateway would surface.
	replaceErr error
	deleteErr  error
}

func newMemoryProducts(seed ...models.Product) *memoryProducts {
	m := &memoryProducts{rows: make(map[int]models.Product), nextID: 1}
	for _, p := range seed {
		p.ID = m.nextID
		m.rows[p.ID] = p
		m.nextID++
	}
	return m
}

func (m *memoryProducts) touch() error {
	m.calls++
	return m.failErr
}

func (m *memoryProducts) sorted() []models.Product {
	out := make([]models.Product, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memoryProducts) ListAll(context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	return m.sorted(), nil
}

func (m *memoryProducts) GetByID(_ context.Context, id int) (models.Product, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return models.Product{}, false, err
	}
	p, ok := m.rows[id]
	return p, ok, nil
}

func (m *memoryProducts) FindWhere(_ context.Context, p store.Predicate) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}

	out := make([]models.Product, 0)
	for _, row := range m.sorted() {
		var keep bool
		switch {
		case p.Field == "price" && p.Op == store.Equal:
			keep = row.Price == p.Value.(float64)
		case p.Field == "stock" && p.Op == store.LessThan:
			keep = row.Stock < p.Value.(int)
		case p.Field == "description" && p.Op == store.Contains:
			keep = strings.Contains(row.Description, p.Value.(string))
		case p.Field == "seller" && p.Op == store.HasSuffix:
			keep = strings.HasSuffix(row.Seller, p.Value.(string))
		default:
			return nil, store.ErrUnknownField
		}
		if keep {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memoryProducts) FindSorted(_ context.Context, field string, dir store.Direction) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return nil, err
	}
	if field != "price" {
		return nil, store.ErrUnknownField
	}

	out := m.sorted()
	sort.SliceStable(out, func(i, j int) bool {
		if dir == store.Descending {
			return out[i].Price > out[j].Price
		}
		return out[i].Price < out[j].Price
	})
	return out, nil
}

func (m *memoryProducts) Insert(_ context.Context, p models.Product) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return 0, err
	}
	p.ID = m.nextID
	m.rows[p.ID] = p
	m.nextID++
	return p.ID, nil
}

func (m *memoryProducts) Replace(_ context.Context, id int, p models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	if m.replaceErr != nil {
		return m.replaceErr
	}
	if _, ok := m.rows[id]; !ok {
		return store.ErrNotFound
	}
	m.rows[id] = p
	return nil
}

func (m *memoryProducts) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.touch(); err != nil {
		return err
	}
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}
