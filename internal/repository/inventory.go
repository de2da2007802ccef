package repository

import (
	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/repository/memstore"
)

var (
	ErrPartExists   = memstore.ErrPartExists
	ErrPartNotFound = memstore.ErrPartNotFound
)

type InventoryStore interface {
	AddPart(part domain.Part) error
	EditStock(sku string, stock int) error
	RemovePart(sku string) error
	ListParts() []domain.Part
}

// InventoryRepository exposes the stock ledger held by the in-memory
// store.
type InventoryRepository struct {
	store InventoryStore
}

func NewInventoryRepository(store InventoryStore) *InventoryRepository {
	return &InventoryRepository{
		store: store,
	}
}

func (r *InventoryRepository) AddPart(part domain.Part) error {
	return r.store.AddPart(part)
}

func (r *InventoryRepository) EditStock(sku string, stock int) error {
	return r.store.EditStock(sku, stock)
}

func (r *InventoryRepository) RemovePart(sku string) error {
	return r.store.RemovePart(sku)
}

func (r *InventoryRepository) ListParts() []domain.Part {
	return r.store.ListParts()
}
