package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/priyankar997/ejWireless/internal/pos"
)

// posHandler holds the submission service and implements the form endpoints.
type posHandler struct {
	service *pos.Service
	logger  *zap.Logger
}

// NewPOSHandler creates a new handler around the submission service.
func NewPOSHandler(service *pos.Service, logger *zap.Logger) *posHandler {
	return &posHandler{
		service: service,
		logger:  logger,
	}
}

// handleListStores returns the fixed storefront addresses used by the store
// selectors on every form.
func (h *posHandler) handleListStores(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"stores": pos.StoreLocations})
}

// handleSubmitSale handles POST /sales, the Add Sale form.
func (h *posHandler) handleSubmitSale(ctx *gin.Context) {
	var req struct {
		Employee      string          `json:"employee"`
		Store         string          `json:"store"`
		Type          string          `json:"type"`
		Product       string          `json:"product"`
		Quantity      int             `json:"quantity"`
		Cost          decimal.Decimal `json:"cost"`
		Sold          decimal.Decimal `json:"sold"`
		PaymentMethod string          `json:"payment_method"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind sale form", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	record, err := h.service.Submit(pos.SaleInput{
		Employee:      req.Employee,
		Store:         req.Store,
		Type:          pos.SaleType(req.Type),
		Product:       req.Product,
		Quantity:      req.Quantity,
		Cost:          req.Cost,
		Sold:          req.Sold,
		PaymentMethod: pos.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		switch {
		case errors.Is(err, pos.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, pos.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, pos.ErrInsufficientStock):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to save sale", zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save sale"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// handleGetInventory handles GET /inventory/:store, the Inventory table.
func (h *posHandler) handleGetInventory(ctx *gin.Context) {
	store := ctx.Param("store")
	if !pos.KnownStore(store) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown store"})
		return
	}

	snapshot, err := h.service.StoreInventory(store)
	if err != nil {
		h.logger.Error("failed to load inventory", zap.String("store", store), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inventory"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"store": store, "inventory": snapshot})
}

// handleAddInventory handles POST /inventory, the Add / Update Inventory form.
func (h *posHandler) handleAddInventory(ctx *gin.Context) {
	var req struct {
		Store    string `json:"store"`
		Product  string `json:"product"`
		Quantity int    `json:"quantity"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind inventory form", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	newQty, err := h.service.AddInventory(req.Store, req.Product, req.Quantity)
	if err != nil {
		if errors.Is(err, pos.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to update inventory",
			zap.String("store", req.Store),
			zap.String("product", req.Product),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update inventory"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"product": req.Product, "quantity": newQty})
}

// handleGetReport handles GET /reports with optional store/employee filters,
// returning the matching records and their totals.
func (h *posHandler) handleGetReport(ctx *gin.Context) {
	store := ctx.Query("store")
	employee := ctx.Query("employee")

	records, totals, err := h.service.Report(store, employee)
	if err != nil {
		if errors.Is(err, pos.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to build report",
			zap.String("store_filter", store),
			zap.String("employee_filter", employee),
			zap.Error(err),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": records, "totals": totals})
}

// handleListEmployees returns the distinct employee names seen in the sales
// ledger, for the By Employee report selector.
func (h *posHandler) handleListEmployees(ctx *gin.Context) {
	names, err := h.service.Employees()
	if err != nil {
		h.logger.Error("failed to list employees", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list employees"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"employees": names})
}
