package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/repository"
	"github.com/GraemeWada/signoutapp/internal/repository/memstore"
)

func newSignOutService(seed []domain.Part) *SignOutService {
	store := memstore.NewStore(seed, 8)

	return NewSignOutService(repository.NewSignOutRepository(store))
}

func hammerSeed() []domain.Part {
	return []domain.Part{{Name: "Hammer", SKU: "HM001", Stock: 30}}
}

func TestSignOutService_Submit(t *testing.T) {
	svc := newSignOutService(hammerSeed())

	first := svc.Submit(domain.SignOutRequest{
		RequesterName: "Graeme",
		Date:          "2024-11-02",
		TeamNumber:    3,
		Parts:         []domain.RequestedPart{{Name: "Hammer", SKU: "HM001", Quantity: 5}},
	})
	second := svc.Submit(domain.SignOutRequest{
		RequesterName: "Dana",
		Date:          "2024-11-02",
		TeamNumber:    4,
		Parts:         []domain.RequestedPart{{Name: "Hammer", SKU: "HM001", Quantity: 40}},
	})

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID, "every request gets its own ID")

	pending := svc.ListPending()
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID, "queue keeps submission order")
	assert.True(t, pending[0].Available)
	assert.False(t, pending[1].Available, "over-stock requests are queued but flagged")
}

func TestSignOutService_ApproveFlow(t *testing.T) {
	svc := newSignOutService(hammerSeed())

	req := svc.Submit(domain.SignOutRequest{
		RequesterName: "Graeme",
		Date:          "2024-11-02",
		TeamNumber:    3,
		Parts:         []domain.RequestedPart{{Name: "Hammer", SKU: "HM001", Quantity: 5}},
	})

	require.True(t, svc.CheckAvailability(req))
	require.NoError(t, svc.Approve(req.ID))

	assert.Empty(t, svc.ListPending())

	ledgers := svc.TeamLedgers()
	require.Len(t, ledgers, 1)
	assert.Equal(t, 3, ledgers[0].TeamNumber)
	assert.Equal(t, []domain.TeamLedgerEntry{{Name: "Hammer", SKU: "HM001", Quantity: 5}}, ledgers[0].Entries)

	assert.ErrorIs(t, svc.Approve(req.ID), ErrRequestNotFound, "approval is terminal")
}

func TestSignOutService_ApproveInsufficientStock(t *testing.T) {
	svc := newSignOutService(hammerSeed())

	req := svc.Submit(domain.SignOutRequest{
		RequesterName: "Graeme",
		Date:          "2024-11-02",
		TeamNumber:    3,
		Parts:         []domain.RequestedPart{{Name: "Hammer", SKU: "HM001", Quantity: 40}},
	})

	assert.False(t, svc.CheckAvailability(req))
	assert.ErrorIs(t, svc.Approve(req.ID), ErrInsufficientStock)
	assert.Len(t, svc.ListPending(), 1)
	assert.Empty(t, svc.TeamLedgers())
}

func TestSignOutService_Delete(t *testing.T) {
	svc := newSignOutService(hammerSeed())

	req := svc.Submit(domain.SignOutRequest{
		RequesterName: "Graeme",
		Date:          "2024-11-02",
		TeamNumber:    3,
		Parts:         []domain.RequestedPart{{Name: "Hammer", SKU: "HM001", Quantity: 5}},
	})

	require.NoError(t, svc.Delete(req.ID))
	assert.Empty(t, svc.ListPending())
	assert.Empty(t, svc.TeamLedgers(), "deletion has no ledger side effects")

	assert.ErrorIs(t, svc.Delete(req.ID), ErrRequestNotFound)
}

func TestSignOutService_ExportRequestCSV(t *testing.T) {
	svc := newSignOutService(hammerSeed())

	req := domain.SignOutRequest{
		RequesterName: "Graeme",
		Date:          "2024-11-02",
		TeamNumber:    3,
		Parts: []domain.RequestedPart{
			{Name: "Hammer", SKU: "HM001", Quantity: 5},
			{Name: "Wrench", SKU: "WR001", Quantity: 2},
		},
	}

	want := "Date,Name,Team Number,Part Name,SKU Number,Number Ordered\n" +
		"2024-11-02,Graeme,3,Hammer,HM001,5\n" +
		"2024-11-02,Graeme,3,Wrench,WR001,2\n"
	assert.Equal(t, want, svc.ExportRequestCSV(req))
	assert.Equal(t, want, svc.ExportRequestCSV(req), "export is deterministic")
}

func TestSignOutService_ExportTeamCSV(t *testing.T) {
	svc := newSignOutService(hammerSeed())

	req := svc.Submit(domain.SignOutRequest{
		RequesterName: "Graeme",
		Date:          "2024-11-02",
		TeamNumber:    3,
		Parts:         []domain.RequestedPart{{Name: "Hammer", SKU: "HM001", Quantity: 5}},
	})
	require.NoError(t, svc.Approve(req.ID))

	want := "Part Name,SKU Number,Quantity Signed Out\n" +
		"Hammer,HM001,5\n"
	assert.Equal(t, want, svc.ExportTeamCSV(3))

	assert.Equal(t, "Part Name,SKU Number,Quantity Signed Out\n", svc.ExportTeamCSV(7),
		"a team with no approvals exports only the header")
}

func TestSignOutService_TeamCount(t *testing.T) {
	svc := newSignOutService(hammerSeed())

	assert.Equal(t, 8, svc.TeamCount())
	svc.SetTeamCount(10)
	assert.Equal(t, 10, svc.TeamCount())
}
