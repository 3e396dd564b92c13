package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// settlementHandler handles the settlement preview/commit workflow and the
// resulting payment records.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{settlementService: ss}
}

// registerSettlementRoutes registers settlement and payment routes.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := newSettlementHandler(settlementService)

	staff := rg.Group("/staff/:kind/:id")
	{
		staff.POST("/settlements/preview", h.previewSettlement)
		staff.POST("/settlements", h.settlePayment)
		staff.GET("/payments", h.listPayments)
	}
	rg.GET("/payments/:paymentID", h.getPayment)
}

// previewSettlement godoc
// @Summary Preview a settlement
// @Description Computes the settlement for a staff member from their current profile and unpaid loans. Pure read: safe to call on every form edit. A negative net is returned as-is.
// @Tags settlements
// @Accept json
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Param preview body dto.PreviewSettlementRequest false "Optional rate overrides"
// @Success 200 {object} dto.SettlementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/settlements/preview [post]
func (h *settlementHandler) previewSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	var req dto.PreviewSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, loans, err := h.settlementService.PreviewSettlement(c.Request.Context(), staff, req.Overrides.ToDomainOverrides())
	if err != nil {
		respondWithError(c, logger, err, "Compensation profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettlementResponse(result, loans))
}

// settlePayment godoc
// @Summary Commit a settlement
// @Description Recomputes the settlement server-side, validates it, creates an immutable payment record, and marks the recovered loans paid, all-or-nothing. Returns 422 for an uncommittable settlement and 409 when the unpaid loan set changed underneath the commit.
// @Tags settlements
// @Accept json
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Param settlement body dto.SettlePaymentRequest true "Payment metadata and optional overrides"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/settlements [post]
func (h *settlementHandler) settlePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	var req dto.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.settlementService.SettlePayment(c.Request.Context(), staff, req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payment records
// @Description Token-paginated payment history for a staff member, newest first
// @Tags settlements
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/payments [get]
func (h *settlementHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.settlementService.ListPayments(c.Request.Context(), staff, params)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getPayment godoc
// @Summary Get a payment record by ID
// @Tags settlements
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID} [get]
func (h *settlementHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payment, err := h.settlementService.GetPayment(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		respondWithError(c, logger, err, "Payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
