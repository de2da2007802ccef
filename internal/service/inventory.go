package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/repository"
)

var (
	ErrPartExists   = repository.ErrPartExists
	ErrPartNotFound = repository.ErrPartNotFound
)

type InventoryRepository interface {
	AddPart(part domain.Part) error
	EditStock(sku string, stock int) error
	RemovePart(sku string) error
	ListParts() []domain.Part
}

// InventoryService manages the stock ledger.
type InventoryService struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

func (s *InventoryService) AddPart(part domain.Part) error {
	if err := s.repo.AddPart(part); err != nil {
		return err
	}

	zap.L().Info("part added to stock ledger",
		zap.String("sku", part.SKU),
		zap.Int("stock", part.Stock),
	)

	return nil
}

func (s *InventoryService) EditStock(sku string, stock int) error {
	return s.repo.EditStock(sku, stock)
}

func (s *InventoryService) RemovePart(sku string) error {
	return s.repo.RemovePart(sku)
}

func (s *InventoryService) ListParts() []domain.Part {
	return s.repo.ListParts()
}

// ExportStockCSV renders the current stock ledger as comma-separated
// text. Values are interpolated without escaping to keep the output
// byte-compatible with the original exports.
func (s *InventoryService) ExportStockCSV() string {
	var b strings.Builder
	b.WriteString("Part Name,SKU Number,Number in Stock\n")
	for _, p := range s.repo.ListParts() {
		fmt.Fprintf(&b, "%s,%s,%d\n", p.Name, p.SKU, p.Stock)
	}

	return b.String()
}
