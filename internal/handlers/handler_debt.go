package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// debtHandler handles company debt and reconciliation ledger routes.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers debt routes.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	staff := rg.Group("/staff/:kind/:id/debts")
	{
		staff.POST("", h.createDebt)
		staff.GET("", h.listDebts)
	}

	debts := rg.Group("/debts")
	{
		debts.GET("/:debtID", h.getDebt)
		debts.GET("/:debtID/entries", h.listDebtHistory)
		debts.POST("/:debtID/entries", h.reconcileDebt)
		debts.POST("/:debtID/write-off", h.writeOffDebt)
	}
}

// createDebt godoc
// @Summary Record a company debt
// @Description Records a standing balance between the company and a staff member, in either direction
// @Tags debts
// @Accept json
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Param debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), staff, req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts for a staff member
// @Tags debts
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Success 200 {array} dto.DebtResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	debts, err := h.debtService.ListDebts(c.Request.Context(), staff)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponses(debts))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), c.Param("debtID"))
	if err != nil {
		respondWithError(c, logger, err, "Debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// listDebtHistory godoc
// @Summary List the reconciliation ledger for a debt
// @Description Returns the append-only ledger entries, oldest first
// @Tags debts
// @Produce json
// @Param debtID path string true "Debt ID"
// @Success 200 {array} dto.DebtEntryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID}/entries [get]
func (h *debtHandler) listDebtHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.debtService.ListDebtHistory(c.Request.Context(), c.Param("debtID"))
	if err != nil {
		respondWithError(c, logger, err, "Debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtEntryResponses(entries))
}

// reconcileDebt godoc
// @Summary Append a ledger entry to a debt
// @Description Appends a payment, adjustment, gift, or additional-debt entry. The outstanding balance and status are derived server-side and updated atomically with the entry.
// @Tags debts
// @Accept json
// @Produce json
// @Param debtID path string true "Debt ID"
// @Param entry body dto.AppendDebtEntryRequest true "Ledger entry"
// @Success 200 {object} dto.ReconcileDebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID}/entries [post]
func (h *debtHandler) reconcileDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AppendDebtEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.debtService.ReconcileDebt(c.Request.Context(), c.Param("debtID"), req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Debt")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// writeOffDebt godoc
// @Summary Write off a debt
// @Description Applies the terminal write-off override with an audited ledger entry. A reason is required.
// @Tags debts
// @Accept json
// @Produce json
// @Param debtID path string true "Debt ID"
// @Param writeOff body dto.WriteOffDebtRequest true "Write-off reason"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /debts/{debtID}/write-off [post]
func (h *debtHandler) writeOffDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.WriteOffDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	debt, err := h.debtService.WriteOffDebt(c.Request.Context(), c.Param("debtID"), req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}
