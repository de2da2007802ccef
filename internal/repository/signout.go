package repository

import (
	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/repository/memstore"
)

var (
	ErrRequestNotFound   = memstore.ErrRequestNotFound
	ErrInsufficientStock = memstore.ErrInsufficientStock
)

type SignOutStore interface {
	SubmitRequest(req domain.SignOutRequest)
	ListRequests() []domain.SignOutRequest
	GetRequest(id string) (domain.SignOutRequest, error)
	CheckAvailability(req domain.SignOutRequest) bool
	ApproveRequest(id string) error
	DeleteRequest(id string) error
	TeamLedger(teamNumber int) []domain.TeamLedgerEntry
	TeamLedgers() []domain.TeamLedger
	TeamCount() int
	SetTeamCount(n int)
}

// SignOutRepository exposes the pending queue and the per-team usage
// ledgers held by the in-memory store.
type SignOutRepository struct {
	store SignOutStore
}

func NewSignOutRepository(store SignOutStore) *SignOutRepository {
	return &SignOutRepository{
		store: store,
	}
}

func (r *SignOutRepository) Submit(req domain.SignOutRequest) {
	r.store.SubmitRequest(req)
}

func (r *SignOutRepository) ListPending() []domain.SignOutRequest {
	return r.store.ListRequests()
}

func (r *SignOutRepository) GetByID(id string) (domain.SignOutRequest, error) {
	return r.store.GetRequest(id)
}

func (r *SignOutRepository) CheckAvailability(req domain.SignOutRequest) bool {
	return r.store.CheckAvailability(req)
}

func (r *SignOutRepository) Approve(id string) error {
	return r.store.ApproveRequest(id)
}

func (r *SignOutRepository) Delete(id string) error {
	return r.store.DeleteRequest(id)
}

func (r *SignOutRepository) TeamLedger(teamNumber int) []domain.TeamLedgerEntry {
	return r.store.TeamLedger(teamNumber)
}

func (r *SignOutRepository) TeamLedgers() []domain.TeamLedger {
	return r.store.TeamLedgers()
}

func (r *SignOutRepository) TeamCount() int {
	return r.store.TeamCount()
}

func (r *SignOutRepository) SetTeamCount(n int) {
	r.store.SetTeamCount(n)
}
