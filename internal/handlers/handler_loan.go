package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// loanHandler handles salary advance routes.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers loan routes.
func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	staff := rg.Group("/staff/:kind/:id/loans")
	{
		staff.POST("", h.grantLoan)
		staff.GET("", h.listLoans)
	}
	rg.GET("/loans/:loanID", h.getLoan)
}

// grantLoan godoc
// @Summary Grant a loan
// @Description Grants a salary advance to a staff member. It is recovered in full at the next settlement.
// @Tags loans
// @Accept json
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Param loan body dto.GrantLoanRequest true "Loan details"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/loans [post]
func (h *loanHandler) grantLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	var req dto.GrantLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	loan, err := h.loanService.GrantLoan(c.Request.Context(), staff, req, actorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List loans for a staff member
// @Description Lists loans for a staff reference, optionally only unpaid ones
// @Tags loans
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Param unpaid query bool false "Only unpaid loans" default(false)
// @Success 200 {array} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	unpaidOnly := c.DefaultQuery("unpaid", "false") == "true"

	loans, err := h.loanService.ListLoans(c.Request.Context(), staff, unpaidOnly)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// getLoan godoc
// @Summary Get a loan by ID
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{loanID} [get]
func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), c.Param("loanID"))
	if err != nil {
		respondWithError(c, logger, err, "Loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}
