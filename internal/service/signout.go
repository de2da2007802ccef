package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/repository"
)

var (
	ErrRequestNotFound   = repository.ErrRequestNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock
)

type SignOutRepository interface {
	Submit(req domain.SignOutRequest)
	ListPending() []domain.SignOutRequest
	GetByID(id string) (domain.SignOutRequest, error)
	CheckAvailability(req domain.SignOutRequest) bool
	Approve(id string) error
	Delete(id string) error
	TeamLedger(teamNumber int) []domain.TeamLedgerEntry
	TeamLedgers() []domain.TeamLedger
	TeamCount() int
	SetTeamCount(n int)
}

// SignOutService manages the pending request queue, approvals and the
// per-team usage ledgers.
type SignOutService struct {
	repo SignOutRepository
}

func NewSignOutService(repo SignOutRepository) *SignOutService {
	return &SignOutService{
		repo: repo,
	}
}

// Submit queues a sign-out request. No stock check happens here; the
// request is only validated against the ledger at approval time. The
// returned request carries its generated ID.
func (s *SignOutService) Submit(req domain.SignOutRequest) domain.SignOutRequest {
	req.ID = uuid.NewString()
	s.repo.Submit(req)

	zap.L().Info("sign-out request submitted",
		zap.String("request_id", req.ID),
		zap.String("requester", req.RequesterName),
		zap.Int("team", req.TeamNumber),
		zap.Int("lines", len(req.Parts)),
	)

	return req
}

// ListPending returns the queue in submission order, each request
// annotated with a live availability check against current stock.
func (s *SignOutService) ListPending() []domain.PendingRequest {
	queue := s.repo.ListPending()

	pending := make([]domain.PendingRequest, 0, len(queue))
	for _, req := range queue {
		pending = append(pending, domain.PendingRequest{
			SignOutRequest: req,
			Available:      s.repo.CheckAvailability(req),
		})
	}

	return pending
}

func (s *SignOutService) GetByID(id string) (domain.SignOutRequest, error) {
	return s.repo.GetByID(id)
}

func (s *SignOutService) CheckAvailability(req domain.SignOutRequest) bool {
	return s.repo.CheckAvailability(req)
}

// Approve commits the request: stock is debited, the team ledger is
// credited and the request leaves the queue, all as one atomic update.
// A request that can no longer be fulfilled from current stock fails
// with ErrInsufficientStock and changes nothing.
func (s *SignOutService) Approve(id string) error {
	if err := s.repo.Approve(id); err != nil {
		return err
	}

	zap.L().Info("sign-out request approved", zap.String("request_id", id))

	return nil
}

// Delete removes the request from the queue with no other side effects.
func (s *SignOutService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	zap.L().Info("sign-out request deleted", zap.String("request_id", id))

	return nil
}

func (s *SignOutService) TeamLedger(teamNumber int) []domain.TeamLedgerEntry {
	return s.repo.TeamLedger(teamNumber)
}

func (s *SignOutService) TeamLedgers() []domain.TeamLedger {
	return s.repo.TeamLedgers()
}

func (s *SignOutService) TeamCount() int {
	return s.repo.TeamCount()
}

func (s *SignOutService) SetTeamCount(n int) {
	s.repo.SetTeamCount(n)
}

// ExportRequestCSV renders one request as comma-separated text, one row
// per line item. Pure; the request is not re-resolved against stock.
func (s *SignOutService) ExportRequestCSV(req domain.SignOutRequest) string {
	var b strings.Builder
	b.WriteString("Date,Name,Team Number,Part Name,SKU Number,Number Ordered\n")
	for _, line := range req.Parts {
		fmt.Fprintf(&b, "%s,%s,%d,%s,%s,%d\n",
			req.Date, req.RequesterName, req.TeamNumber, line.Name, line.SKU, line.Quantity)
	}

	return b.String()
}

// ExportTeamCSV renders a team's accumulated ledger as comma-separated
// text. A team with no approved requests yields only the header row.
func (s *SignOutService) ExportTeamCSV(teamNumber int) string {
	var b strings.Builder
	b.WriteString("Part Name,SKU Number,Quantity Signed Out\n")
	for _, entry := range s.repo.TeamLedger(teamNumber) {
		fmt.Fprintf(&b, "%s,%s,%d\n", entry.Name, entry.SKU, entry.Quantity)
	}

	return b.String()
}
