package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/formsmith/formsmith/internal/dto"
)

// ListFormsHandler godoc
// @Summary List all forms
// @Description Get all forms, newest first, with their full field definitions
// @Tags forms
// @Produce json
// @Success 200 {array} dto.FormResponseDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms [get]
func (ctrl *Controller) ListFormsHandler(ctx *gin.Context) {
	forms, err := ctrl.formSvc.ListForms()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, forms)
}

// GetFormHandler godoc
// @Summary Get a single form
// @Description Get a form by id, including its ordered field list
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} dto.FormResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms/{id} [get]
func (ctrl *Controller) GetFormHandler(ctx *gin.Context) {
	form, err := ctrl.formSvc.GetForm(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// CreateFormHandler godoc
// @Summary Create a form
// @Description Create a new form with a title, optional description and an ordered field list
// @Tags forms
// @Accept json
// @Produce json
// @Param form body dto.FormUpsertDTO true "Form definition"
// @Success 201 {object} dto.FormResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing title or malformed fields"
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms [post]
func (ctrl *Controller) CreateFormHandler(ctx *gin.Context) {
	var req dto.FormUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateForm: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	form, err := ctrl.formSvc.CreateForm(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, form)
}

// UpdateFormHandler godoc
// @Summary Update a form
// @Description Replace a form's title, description and field list wholesale
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param form body dto.FormUpsertDTO true "Replacement form definition"
// @Success 200 {object} dto.FormResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing title or malformed fields"
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms/{id} [put]
func (ctrl *Controller) UpdateFormHandler(ctx *gin.Context) {
	var req dto.FormUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateForm: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	form, err := ctrl.formSvc.UpdateForm(ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, form)
}

// DeleteFormHandler godoc
// @Summary Delete a form
// @Description Delete a form and, transitively, all of its responses
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Form not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /forms/{id} [delete]
func (ctrl *Controller) DeleteFormHandler(ctx *gin.Context) {
	if err := ctrl.formSvc.DeleteForm(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "form deleted"})
}
