package memstore

import (
	"errors"
	"sync"

	"github.com/GraemeWada/signoutapp/internal/domain"
)

var (
	ErrPartExists        = errors.New("a part with this SKU already exists")
	ErrPartNotFound      = errors.New("part not found")
	ErrRequestNotFound   = errors.New("sign-out request not found")
	ErrInsufficientStock = errors.New("insufficient stock to fulfill the request")
)

// Store is the single process-wide home of all application state: the
// stock ledger, the pending sign-out queue, the per-team usage ledgers
// and the team-count setting. Nothing is persisted; a restart resets
// everything to the seeded inventory.
//
// All collections keep insertion order. The mutex is the only
// synchronization in the system; every multi-step sequence (notably
// approval) runs under one lock hold so no caller can observe a
// half-applied state.
type Store struct {
	mu        sync.RWMutex
	parts     []domain.Part
	queue     []domain.SignOutRequest
	teams     map[int][]domain.TeamLedgerEntry
	teamOrder []int
	teamCount int
}

func NewStore(seed []domain.Part, teamCount int) *Store {
	s := &Store{
		parts:     make([]domain.Part, 0, len(seed)),
		queue:     []domain.SignOutRequest{},
		teams:     make(map[int][]domain.TeamLedgerEntry),
		teamCount: teamCount,
	}
	for _, p := range seed {
		if s.findPartLocked(p.SKU) == -1 {
			s.parts = append(s.parts, p)
		}
	}

	return s
}

func (s *Store) findPartLocked(sku string) int {
	for i := range s.parts {
		if s.parts[i].SKU == sku {
			return i
		}
	}

	return -1
}

func (s *Store) findRequestLocked(id string) int {
	for i := range s.queue {
		if s.queue[i].ID == id {
			return i
		}
	}

	return -1
}

// AddPart appends a new part to the stock ledger. SKUs are unique;
// adding an existing one fails instead of shadowing the first match.
func (s *Store) AddPart(part domain.Part) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findPartLocked(part.SKU) != -1 {
		return ErrPartExists
	}
	s.parts = append(s.parts, part)

	return nil
}

// EditStock replaces the stock value of the part matching sku. No other
// field changes.
func (s *Store) EditStock(sku string, stock int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findPartLocked(sku)
	if i == -1 {
		return ErrPartNotFound
	}
	s.parts[i].Stock = stock

	return nil
}

// RemovePart deletes the part matching sku from the stock ledger.
func (s *Store) RemovePart(sku string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findPartLocked(sku)
	if i == -1 {
		return ErrPartNotFound
	}
	s.parts = append(s.parts[:i], s.parts[i+1:]...)

	return nil
}

// ListParts returns the stock ledger in insertion order.
func (s *Store) ListParts() []domain.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parts := make([]domain.Part, len(s.parts))
	copy(parts, s.parts)

	return parts
}

// SubmitRequest appends a request to the pending queue unconditionally;
// stock is not checked until approval time.
func (s *Store) SubmitRequest(req domain.SignOutRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, req)
}

func copyRequest(req domain.SignOutRequest) domain.SignOutRequest {
	parts := make([]domain.RequestedPart, len(req.Parts))
	copy(parts, req.Parts)
	req.Parts = parts

	return req
}

// ListRequests returns the pending queue in submission order.
func (s *Store) ListRequests() []domain.SignOutRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	queue := make([]domain.SignOutRequest, 0, len(s.queue))
	for _, req := range s.queue {
		queue = append(queue, copyRequest(req))
	}

	return queue
}

// GetRequest returns the pending request with the given ID.
func (s *Store) GetRequest(id string) (domain.SignOutRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findRequestLocked(id)
	if i == -1 {
		return domain.SignOutRequest{}, ErrRequestNotFound
	}

	return copyRequest(s.queue[i]), nil
}

func (s *Store) availableLocked(req domain.SignOutRequest) bool {
	// A SKU may appear on several lines of one request; availability
	// must hold for the summed quantity, since approval debits every
	// line.
	needed := make(map[string]int, len(req.Parts))
	for _, line := range req.Parts {
		needed[line.SKU] += line.Quantity
	}

	for sku, quantity := range needed {
		i := s.findPartLocked(sku)
		if i == -1 || s.parts[i].Stock < quantity {
			return false
		}
	}

	return true
}

// CheckAvailability reports whether every line item of the request can
// be fulfilled from current stock. A SKU that is absent from the ledger
// counts as unavailable, not as an error.
func (s *Store) CheckAvailability(req domain.SignOutRequest) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.availableLocked(req)
}

// ApproveRequest commits the pending request with the given ID: it
// debits each line's quantity from stock, accumulates the lines into
// the team's ledger and removes the request from the queue. The whole
// sequence is one critical section; availability is re-validated inside
// it, so a request that can no longer be fulfilled fails with
// ErrInsufficientStock and mutates nothing.
func (s *Store) ApproveRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRequestLocked(id)
	if i == -1 {
		return ErrRequestNotFound
	}
	req := s.queue[i]

	if !s.availableLocked(req) {
		return ErrInsufficientStock
	}

	for _, line := range req.Parts {
		p := s.findPartLocked(line.SKU)
		s.parts[p].Stock -= line.Quantity
	}

	s.creditTeamLocked(req.TeamNumber, req.Parts)
	s.queue = append(s.queue[:i], s.queue[i+1:]...)

	return nil
}

func (s *Store) creditTeamLocked(teamNumber int, lines []domain.RequestedPart) {
	entries, ok := s.teams[teamNumber]
	if !ok {
		s.teamOrder = append(s.teamOrder, teamNumber)
	}

	for _, line := range lines {
		merged := false
		for i := range entries {
			if entries[i].SKU == line.SKU {
				entries[i].Quantity += line.Quantity
				merged = true
				break
			}
		}
		if !merged {
			entries = append(entries, domain.TeamLedgerEntry{
				Name:     line.Name,
				SKU:      line.SKU,
				Quantity: line.Quantity,
			})
		}
	}

	s.teams[teamNumber] = entries
}

// DeleteRequest removes the pending request with the given ID. Stock
// and team ledgers are untouched.
func (s *Store) DeleteRequest(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRequestLocked(id)
	if i == -1 {
		return ErrRequestNotFound
	}
	s.queue = append(s.queue[:i], s.queue[i+1:]...)

	return nil
}

// TeamLedger returns the accumulated entries for one team, empty if the
// team has no approved requests yet.
func (s *Store) TeamLedger(teamNumber int) []domain.TeamLedgerEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.TeamLedgerEntry, len(s.teams[teamNumber]))
	copy(entries, s.teams[teamNumber])

	return entries
}

// TeamLedgers returns every team that has at least one approved
// request, in order of first approval.
func (s *Store) TeamLedgers() []domain.TeamLedger {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ledgers := make([]domain.TeamLedger, 0, len(s.teamOrder))
	for _, team := range s.teamOrder {
		entries := make([]domain.TeamLedgerEntry, len(s.teams[team]))
		copy(entries, s.teams[team])
		ledgers = append(ledgers, domain.TeamLedger{
			TeamNumber: team,
			Entries:    entries,
		})
	}

	return ledgers
}

// TeamCount returns the number of teams the sign-out form offers.
func (s *Store) TeamCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.teamCount
}

// SetTeamCount updates the number of teams. Existing ledgers for teams
// beyond the new count are kept; only the form range changes.
func (s *Store) SetTeamCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teamCount = n
}
