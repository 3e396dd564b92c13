package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ovenpos/bakery_backoffice_app/internal/core/ports/services"
	"github.com/ovenpos/bakery_backoffice_app/internal/dto"
	"github.com/ovenpos/bakery_backoffice_app/internal/middleware"
)

// staffHandler handles staff members and compensation profile routes.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{staffService: ss}
}

// registerStaffRoutes registers staff member CRUD and the compensation
// profile routes shared by both staff kinds.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	members := rg.Group("/staff-members")
	{
		members.POST("", h.createStaffMember)
		members.GET("", h.listStaffMembers)
		members.GET("/:id", h.getStaffMember)
		members.PUT("/:id", h.updateStaffMember)
		members.DELETE("/:id", h.deleteStaffMember)
	}

	// Compensation is addressed by (kind, id) so users and staff members
	// share one route shape.
	staff := rg.Group("/staff/:kind/:id")
	{
		staff.GET("/compensation", h.getCompensation)
		staff.PUT("/compensation", h.updateSalaryStructure)
		staff.GET("/compensation/history", h.listSalaryStructureHistory)
	}
}

// createStaffMember godoc
// @Summary Register a staff member
// @Description Registers a non-user staff member (no login credentials)
// @Tags staff
// @Accept json
// @Produce json
// @Param staffMember body dto.CreateStaffMemberRequest true "Staff member details"
// @Success 201 {object} dto.StaffMemberResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff-members [post]
func (h *staffHandler) createStaffMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.staffService.CreateStaffMember(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Staff member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToStaffMemberResponse(member))
}

// getStaffMember godoc
// @Summary Get a staff member by ID
// @Tags staff
// @Produce json
// @Param id path string true "Staff member ID"
// @Success 200 {object} dto.StaffMemberResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff-members/{id} [get]
func (h *staffHandler) getStaffMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	member, err := h.staffService.GetStaffMemberByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Staff member")
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffMemberResponse(member))
}

// listStaffMembers godoc
// @Summary List staff members
// @Tags staff
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.StaffMemberResponse
// @Security BearerAuth
// @Router /staff-members [get]
func (h *staffHandler) listStaffMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	members, err := h.staffService.ListStaffMembers(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, logger, err, "Staff members")
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffMemberResponses(members))
}

// updateStaffMember godoc
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID"
// @Param staffMember body dto.UpdateStaffMemberRequest true "Fields to update"
// @Success 200 {object} dto.StaffMemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff-members/{id} [put]
func (h *staffHandler) updateStaffMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateStaffMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	member, err := h.staffService.UpdateStaffMember(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondWithError(c, logger, err, "Staff member")
		return
	}
	c.JSON(http.StatusOK, dto.ToStaffMemberResponse(member))
}

// deleteStaffMember godoc
// @Summary Delete a staff member
// @Description Soft deletes a staff member
// @Tags staff
// @Param id path string true "Staff member ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff-members/{id} [delete]
func (h *staffHandler) deleteStaffMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.staffService.DeleteStaffMember(c.Request.Context(), c.Param("id"), deleterUserID); err != nil {
		respondWithError(c, logger, err, "Staff member")
		return
	}
	c.Status(http.StatusNoContent)
}

// getCompensation godoc
// @Summary Get the current compensation profile
// @Description Retrieves the current salary structure for a user or staff member
// @Tags compensation
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Success 200 {object} dto.CompensationProfileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/compensation [get]
func (h *staffHandler) getCompensation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	profile, err := h.staffService.GetCompensationProfile(c.Request.Context(), staff)
	if err != nil {
		respondWithError(c, logger, err, "Compensation profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompensationProfileResponse(profile))
}

// updateSalaryStructure godoc
// @Summary Update the salary structure
// @Description Supersedes the current compensation profile with a new version. The old version is retained.
// @Tags compensation
// @Accept json
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Param profile body dto.UpdateSalaryStructureRequest true "New salary structure"
// @Success 200 {object} dto.CompensationProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/compensation [put]
func (h *staffHandler) updateSalaryStructure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	var req dto.UpdateSalaryStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	profile, err := h.staffService.UpdateSalaryStructure(c.Request.Context(), staff, req, updaterUserID)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompensationProfileResponse(profile))
}

// listSalaryStructureHistory godoc
// @Summary List salary structure versions
// @Description Returns all compensation profile versions for a staff reference, newest first
// @Tags compensation
// @Produce json
// @Param kind path string true "Staff kind" Enums(user, staff_member)
// @Param id path string true "Staff ID"
// @Success 200 {array} dto.CompensationProfileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{kind}/{id}/compensation/history [get]
func (h *staffHandler) listSalaryStructureHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	staff, ok := parseStaffRef(c)
	if !ok {
		return
	}

	profiles, err := h.staffService.ListSalaryStructureHistory(c.Request.Context(), staff)
	if err != nil {
		respondWithError(c, logger, err, "Staff")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompensationProfileResponses(profiles))
}
