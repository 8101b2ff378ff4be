package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/formsmith/formsmith/internal/dto"
)

// SubmitResponseHandler godoc
// @Summary Submit a response
// @Description Record a submission against a form. Answer values are strings, or string lists for checkbox fields.
// @Tags responses
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param response body dto.ResponseSubmitDTO true "Answers keyed by field id, with optional submitter name/email"
// @Success 201 {object} dto.ResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed answers"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms/{id}/responses [post]
func (ctrl *Controller) SubmitResponseHandler(ctx *gin.Context) {
	var req dto.ResponseSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitResponse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	response, err := ctrl.responseSvc.SubmitResponse(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response)
}

// ListFormResponsesHandler godoc
// @Summary List responses for a form
// @Description Get all responses submitted against one form, newest first
// @Tags responses
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {array} dto.ResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms/{id}/responses [get]
func (ctrl *Controller) ListFormResponsesHandler(ctx *gin.Context) {
	responses, err := ctrl.responseSvc.ListResponsesForForm(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// ListAllResponsesHandler godoc
// @Summary List all responses
// @Description Get every response across all forms, newest first, joined with the form title
// @Tags responses
// @Produce json
// @Success 200 {array} dto.ResponseWithFormDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /responses [get]
func (ctrl *Controller) ListAllResponsesHandler(ctx *gin.Context) {
	responses, err := ctrl.responseSvc.ListAllResponses()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// DashboardStatsHandler godoc
// @Summary Dashboard statistics
// @Description Aggregate counts, average responses per form and the five most recent responses
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (ctrl *Controller) DashboardStatsHandler(ctx *gin.Context) {
	stats, err := ctrl.responseSvc.DashboardStats()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// ExportResponsesHandler godoc
// @Summary Export responses as CSV
// @Description Download all responses of a form as a CSV attachment, one column per field in form order
// @Tags responses
// @Produce text/csv
// @Param id path string true "Form ID"
// @Success 200 {string} string "CSV payload"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms/{id}/export [get]
func (ctrl *Controller) ExportResponsesHandler(ctx *gin.Context) {
	filename, data, err := ctrl.responseSvc.ExportResponsesAsCSV(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", data)
}

// HealthHandler godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (ctrl *Controller) HealthHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
