package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GraemeWada/signoutapp/internal/api/handler/v1/request"
	"github.com/GraemeWada/signoutapp/internal/api/handler/v1/response"
	"github.com/GraemeWada/signoutapp/internal/domain"
	"github.com/GraemeWada/signoutapp/internal/service"
)

type InventoryService interface {
	AddPart(part domain.Part) error
	EditStock(sku string, stock int) error
	RemovePart(sku string) error
	ListParts() []domain.Part
	ExportStockCSV() string
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleListParts returns the stock ledger in insertion order. Public:
// the sign-out form needs the parts list before anyone logs in.
func (h *InventoryHandler) HandleListParts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.ListParts())
}

func (h *InventoryHandler) HandleAddPart(ctx *gin.Context) {
	req := request.AddPartRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	part := domain.Part{
		Name:  req.Name,
		SKU:   req.SKU,
		Stock: req.Stock,
	}

	if err := h.svc.AddPart(part); err != nil {
		if errors.Is(err, service.ErrPartExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, part)
}

func (h *InventoryHandler) HandleEditStock(ctx *gin.Context) {
	sku := ctx.Param("sku")

	req := request.UpdateStockRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.EditStock(sku, req.Stock); err != nil {
		if errors.Is(err, service.ErrPartNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *InventoryHandler) HandleRemovePart(ctx *gin.Context) {
	sku := ctx.Param("sku")

	if err := h.svc.RemovePart(sku); err != nil {
		if errors.Is(err, service.ErrPartNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleExportStockCSV streams the stock ledger as the original's
// "Download Current Stock CSV" file.
func (h *InventoryHandler) HandleExportStockCSV(ctx *gin.Context) {
	ctx.Header("Content-Disposition", `attachment; filename="current_stock.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.svc.ExportStockCSV()))
}
