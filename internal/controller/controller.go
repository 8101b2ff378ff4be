package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formsmith/formsmith/internal/dto"
	"github.com/formsmith/formsmith/internal/service"
	"github.com/formsmith/formsmith/pkg/fault"
)

type Controller struct {
	formSvc     service.FormService
	responseSvc service.ResponseService
}

func NewController(formSvc service.FormService, responseSvc service.ResponseService) *Controller {
	return &Controller{
		formSvc:     formSvc,
		responseSvc: responseSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	forms := router.Group("/forms")
	{
		forms.GET("", ctrl.ListFormsHandler)
		forms.POST("", ctrl.CreateFormHandler)
		forms.GET("/:id", ctrl.GetFormHandler)
		forms.PUT("/:id", ctrl.UpdateFormHandler)
		forms.DELETE("/:id", ctrl.DeleteFormHandler)
		forms.GET("/:id/responses", ctrl.ListFormResponsesHandler)
		forms.POST("/:id/responses", ctrl.SubmitResponseHandler)
		forms.GET("/:id/export", ctrl.ExportResponsesHandler)
	}

	router.GET("/responses", ctrl.ListAllResponsesHandler)
	router.GET("/dashboard/stats", ctrl.DashboardStatsHandler)
	router.GET("/health", ctrl.HealthHandler)
}

// respondError maps service faults onto HTTP statuses. Only the fault's
// short message reaches the client; the services already logged the detail.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case fault.IsValidation(err):
		status = http.StatusBadRequest
	case fault.IsNotFound(err):
		status = http.StatusNotFound
	}
	ctx.JSON(status, dto.ErrorResponse{Error: fault.Message(err)})
}
