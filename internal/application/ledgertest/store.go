// Package ledgertest provee un doble en memoria de TxRepos y TxRunner para
// probar los workflows sin PostgreSQL. El runner trabaja sobre un clon del
// estado y solo lo promueve si el callback termina sin error, reproduciendo
// la semántica Commit/Rollback de la transacción real.
package ledgertest

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/ferreteria-pro/internal/application/ledger"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/docnumber"
	"github.com/tu-usuario/ferreteria-pro/internal/domain/entity"
)

// Store estado en memoria compartido por los repos falsos.
type Store struct {
	mu             sync.Mutex
	products       map[string]*entity.Product
	movements      []*entity.StockMovement
	sales          map[string]*entity.Sale
	saleItems      map[string][]*entity.SaleItem
	returns        map[string]*entity.Return
	returnItems    map[string][]*entity.ReturnItem
	purchaseOrders map[string]*entity.PurchaseOrder
	poItems        map[string][]*entity.PurchaseOrderItem
	quotations     map[string]*entity.Quotation
	quotationItems map[string][]*entity.QuotationItem
	sequences      map[string]int
}

// NewStore crea un estado vacío.
func NewStore() *Store {
	return &Store{
		products:       map[string]*entity.Product{},
		sales:          map[string]*entity.Sale{},
		saleItems:      map[string][]*entity.SaleItem{},
		returns:        map[string]*entity.Return{},
		returnItems:    map[string][]*entity.ReturnItem{},
		purchaseOrders: map[string]*entity.PurchaseOrder{},
		poItems:        map[string][]*entity.PurchaseOrderItem{},
		quotations:     map[string]*entity.Quotation{},
		quotationItems: map[string][]*entity.QuotationItem{},
		sequences:      map[string]int{},
	}
}

// SeedProduct agrega un producto al estado (para armar fixtures).
func (s *Store) SeedProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.products[p.ID] = &cp
}

// Product devuelve una copia del producto o nil si no existe.
func (s *Store) Product(id string) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// Movements devuelve copia del log completo en orden de inserción.
func (s *Store) Movements() []*entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.StockMovement, 0, len(s.movements))
	for _, m := range s.movements {
		cp := *m
		out = append(out, &cp)
	}
	return out
}

// SaleCount cantidad de ventas persistidas.
func (s *Store) SaleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sales)
}

// SaleItemCount cantidad total de líneas de venta persistidas.
func (s *Store) SaleItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, items := range s.saleItems {
		n += len(items)
	}
	return n
}

// Return devuelve una copia de la devolución o nil.
func (s *Store) Return(id string) *entity.Return {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret, ok := s.returns[id]
	if !ok {
		return nil
	}
	cp := *ret
	return &cp
}

// PurchaseOrder devuelve una copia de la orden o nil.
func (s *Store) PurchaseOrder(id string) *entity.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	po, ok := s.purchaseOrders[id]
	if !ok {
		return nil
	}
	cp := *po
	return &cp
}

// Quotation devuelve una copia de la cotización o nil.
func (s *Store) Quotation(id string) *entity.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotations[id]
	if !ok {
		return nil
	}
	cp := *q
	return &cp
}

// clone copia profunda del estado (las entidades son structs de valores).
func (s *Store) clone() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := NewStore()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	for id, sale := range s.sales {
		cp := *sale
		c.sales[id] = &cp
	}
	for id, items := range s.saleItems {
		for _, item := range items {
			ci := *item
			c.saleItems[id] = append(c.saleItems[id], &ci)
		}
	}
	for id, ret := range s.returns {
		cp := *ret
		c.returns[id] = &cp
	}
	for id, items := range s.returnItems {
		for _, item := range items {
			ci := *item
			c.returnItems[id] = append(c.returnItems[id], &ci)
		}
	}
	for id, po := range s.purchaseOrders {
		cp := *po
		c.purchaseOrders[id] = &cp
	}
	for id, items := range s.poItems {
		for _, item := range items {
			ci := *item
			c.poItems[id] = append(c.poItems[id], &ci)
		}
	}
	for id, q := range s.quotations {
		cp := *q
		c.quotations[id] = &cp
	}
	for id, items := range s.quotationItems {
		for _, item := range items {
			ci := *item
			c.quotationItems[id] = append(c.quotationItems[id], &ci)
		}
	}
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	return c
}

// adopt reemplaza el estado propio por el de other (commit del clon).
func (s *Store) adopt(other *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = other.products
	s.movements = other.movements
	s.sales = other.sales
	s.saleItems = other.saleItems
	s.returns = other.returns
	s.returnItems = other.returnItems
	s.purchaseOrders = other.purchaseOrders
	s.poItems = other.poItems
	s.quotations = other.quotations
	s.quotationItems = other.quotationItems
	s.sequences = other.sequences
}

// Runner implementa ledger.TxRunner sobre el Store: ejecuta fn contra un
// clon y lo adopta solo si fn no retorna error (rollback implícito).
type Runner struct {
	Store *Store
}

// NewRunner construye el runner de transacciones en memoria.
func NewRunner(store *Store) *Runner {
	return &Runner{Store: store}
}

// Run ejecuta fn con repos atados al clon; commit = adoptar el clon.
func (r *Runner) Run(_ context.Context, fn func(tx *ledger.TxRepos) error) error {
	work := r.Store.clone()
	if err := fn(Repos(work)); err != nil {
		return err
	}
	r.Store.adopt(work)
	return nil
}

// Repos arma el bundle TxRepos sobre un Store (sin semántica transaccional;
// útil para fixtures y lecturas directas).
func Repos(s *Store) *ledger.TxRepos {
	return &ledger.TxRepos{
		Products:   &productRepo{s: s},
		Movements:  &movementRepo{s: s},
		Sales:      &saleRepo{s: s},
		Returns:    &returnRepo{s: s},
		Purchases:  &purchaseOrderRepo{s: s},
		Quotations: &quotationRepo{s: s},
		Sequences:  &sequenceRepo{s: s},
	}
}

type sequenceRepo struct{ s *Store }

// Next contador por (tipo, día), equivalente al upsert atómico de PostgreSQL.
func (r *sequenceRepo) Next(kind docnumber.Kind, date time.Time) (int, error) {
	key := string(kind) + "|" + date.Format("20060102")
	r.s.sequences[key]++
	return r.s.sequences[key], nil
}
