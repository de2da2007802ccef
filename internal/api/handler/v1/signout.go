package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GraemeWada/signoutapp/internal/api/handler/v1/request"
	"github.com/GraemeWada/signoutapp/internal/api/handler/v1/response"
	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/service"
)

type SignOutService interface {
	Submit(req domain.SignOutRequest) domain.SignOutRequest
	ListPending() []domain.PendingRequest
	GetByID(id string) (domain.SignOutRequest, error)
	Approve(id string) error
	Delete(id string) error
	TeamLedgers() []domain.TeamLedger
	TeamCount() int
	SetTeamCount(n int)
	ExportRequestCSV(req domain.SignOutRequest) string
	ExportTeamCSV(teamNumber int) string
}

type SignOutHandler struct {
	svc SignOutService
}

func NewSignOutHandler(svc SignOutService) *SignOutHandler {
	return &SignOutHandler{
		svc: svc,
	}
}

// HandleSubmitRequest queues a sign-out request. Public; stock is not
// checked at submit time, only at approval.
func (h *SignOutHandler) HandleSubmitRequest(ctx *gin.Context) {
	req := request.SubmitSignOutRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(h.svc.TeamCount()); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	parts := make([]domain.RequestedPart, 0, len(req.Parts))
	for _, line := range req.Parts {
		parts = append(parts, domain.RequestedPart{
			Name:     line.Name,
			SKU:      line.SKU,
			Quantity: line.Quantity,
		})
	}

	created := h.svc.Submit(domain.SignOutRequest{
		RequesterName: req.Name,
		Date:          req.Date,
		TeamNumber:    req.TeamNumber,
		Parts:         parts,
	})

	ctx.JSON(http.StatusCreated, created)
}

// HandleListRequests returns the pending queue, each request annotated
// with whether current stock can fulfill it.
func (h *SignOutHandler) HandleListRequests(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.ListPending())
}

func (h *SignOutHandler) HandleApproveRequest(ctx *gin.Context) {
	id := ctx.Param("requestID")

	if err := h.svc.Approve(id); err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *SignOutHandler) HandleDeleteRequest(ctx *gin.Context) {
	id := ctx.Param("requestID")

	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleExportRequestCSV streams one pending request as the original's
// per-request CSV download.
func (h *SignOutHandler) HandleExportRequestCSV(ctx *gin.Context) {
	id := ctx.Param("requestID")

	req, err := h.svc.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	filename := fmt.Sprintf("parts_request_%s_%s.csv", req.RequesterName, req.Date)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.svc.ExportRequestCSV(req)))
}

// HandleListTeamLedgers returns every team with approved sign-outs, in
// order of first approval.
func (h *SignOutHandler) HandleListTeamLedgers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.TeamLedgers())
}

func (h *SignOutHandler) HandleExportTeamCSV(ctx *gin.Context) {
	teamNumber, err := strconv.Atoi(ctx.Param("teamNumber"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("team number must be an integer")))

		return
	}

	filename := fmt.Sprintf("team_%d_parts.csv", teamNumber)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.svc.ExportTeamCSV(teamNumber)))
}

func (h *SignOutHandler) HandleGetTeamCount(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.TeamCountResponse{
		TeamCount: h.svc.TeamCount(),
	})
}

func (h *SignOutHandler) HandleUpdateTeamCount(ctx *gin.Context) {
	req := request.UpdateTeamCountRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	h.svc.SetTeamCount(req.TeamCount)

	ctx.JSON(http.StatusOK, response.TeamCountResponse{
		TeamCount: req.TeamCount,
	})
}
