package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// riderHandler handles delivery rider and rider credit routes.
type riderHandler struct {
	riderService portssvc.RiderSvcFacade
}

func newRiderHandler(rs portssvc.RiderSvcFacade) *riderHandler {
	return &riderHandler{riderService: rs}
}

// registerRiderRoutes registers rider routes.
func registerRiderRoutes(rg *gin.RouterGroup, riderService portssvc.RiderSvcFacade) {
	h := newRiderHandler(riderService)

	riders := rg.Group("/riders")
	{
		riders.POST("", h.createRider)
		riders.GET("", h.listRiders)
		riders.GET("/:riderID", h.getRider)
		riders.POST("/:riderID/credit", h.addCredit)
		riders.POST("/:riderID/payments", h.recordPayment)
		riders.GET("/:riderID/payments", h.listPayments)
	}
}

// createRider godoc
// @Summary Register a delivery rider
// @Tags riders
// @Accept json
// @Produce json
// @Param rider body dto.CreateRiderRequest true "Rider details"
// @Success 201 {object} dto.RiderResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /riders [post]
func (h *riderHandler) createRider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rider, err := h.riderService.CreateRider(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Rider")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRiderResponse(rider))
}

// listRiders godoc
// @Summary List delivery riders
// @Tags riders
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.RiderResponse
// @Security BearerAuth
// @Router /riders [get]
func (h *riderHandler) listRiders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	riders, err := h.riderService.ListRiders(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, logger, err, "Rider")
		return
	}
	c.JSON(http.StatusOK, dto.ToRiderResponses(riders))
}

// getRider godoc
// @Summary Get a rider by ID
// @Tags riders
// @Produce json
// @Param riderID path string true "Rider ID"
// @Success 200 {object} dto.RiderResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /riders/{riderID} [get]
func (h *riderHandler) getRider(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rider, err := h.riderService.GetRiderByID(c.Request.Context(), c.Param("riderID"))
	if err != nil {
		respondWithError(c, logger, err, "Rider")
		return
	}
	c.JSON(http.StatusOK, dto.ToRiderResponse(rider))
}

// addCredit godoc
// @Summary Add credit for goods taken by a rider
// @Description Increases the rider's outstanding credit balance by the value of goods taken
// @Tags riders
// @Accept json
// @Produce json
// @Param riderID path string true "Rider ID"
// @Param credit body dto.AdjustRiderCreditRequest true "Credit amount"
// @Success 200 {object} dto.RiderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /riders/{riderID}/credit [post]
func (h *riderHandler) addCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustRiderCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rider, err := h.riderService.AddCredit(c.Request.Context(), c.Param("riderID"), req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Rider")
		return
	}
	c.JSON(http.StatusOK, dto.ToRiderResponse(rider))
}

// recordPayment godoc
// @Summary Record a rider payment
// @Description Records money received from a rider and reduces their credit balance atomically. Paying more than the outstanding balance is rejected.
// @Tags riders
// @Accept json
// @Produce json
// @Param riderID path string true "Rider ID"
// @Param payment body dto.RiderPaymentRequest true "Payment details"
// @Success 201 {object} dto.RiderPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /riders/{riderID}/payments [post]
func (h *riderHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RiderPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.riderService.RecordPayment(c.Request.Context(), c.Param("riderID"), req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Rider")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRiderPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments received from a rider
// @Tags riders
// @Produce json
// @Param riderID path string true "Rider ID"
// @Success 200 {array} dto.RiderPaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /riders/{riderID}/payments [get]
func (h *riderHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.riderService.ListRiderPayments(c.Request.Context(), c.Param("riderID"))
	if err != nil {
		respondWithError(c, logger, err, "Rider")
		return
	}
	c.JSON(http.StatusOK, dto.ToRiderPaymentResponses(payments))
}
