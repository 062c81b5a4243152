package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	request "fundacoes_backoffice/internal/adapter/http/dto/request"
	response "fundacoes_backoffice/internal/adapter/http/dto/response"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/infrastructure/observability"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BudgetHandler handles budgets (orçamentos) and their conversion into jobs.
//
// location is the company timezone used to read planned dates sent without an
// offset.
type BudgetHandler struct {
	usecase  usecase.IBudgetUseCase
	location *time.Location
	metrics  *observability.Metrics
	logger   *zap.Logger
}

func NewBudgetHandler(uc usecase.IBudgetUseCase, location *time.Location, metrics *observability.Metrics, logger *zap.Logger) *BudgetHandler {
	if location == nil {
		location = time.UTC
	}
	return &BudgetHandler{usecase: uc, location: location, metrics: metrics, logger: logger.Named("budget")}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapBudgetError(err, http.StatusConflict))
		return
	}
	c.JSON(http.StatusCreated, response.Data(budget))
}

func (h *BudgetHandler) List(c *gin.Context) {
	budgets, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapBudgetError(err, http.StatusConflict))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.NonNil(budgets)))
}

func (h *BudgetHandler) Get(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err, http.StatusConflict))
		return
	}
	c.JSON(http.StatusOK, response.Data(budget))
}

func (h *BudgetHandler) Approve(c *gin.Context) {
	h.patchStatus(c, h.usecase.Approve)
}

func (h *BudgetHandler) Reject(c *gin.Context) {
	h.patchStatus(c, h.usecase.Reject)
}

func (h *BudgetHandler) patchStatus(c *gin.Context, updater func(ctx context.Context, id string) (entities.Budget, error)) {
	budget, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBudgetError(err, http.StatusConflict))
		return
	}
	c.JSON(http.StatusOK, response.Data(budget))
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapBudgetError(err, http.StatusConflict))
		return
	}
	c.Status(http.StatusNoContent)
}

// RecalculateTravel quotes the budget address again. The body is optional.
func (h *BudgetHandler) RecalculateTravel(c *gin.Context) {
	var payload request.RecalculateTravelRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, bindError(err))
			return
		}
	}

	budget, err := h.usecase.RecalculateTravel(c.Request.Context(), c.Param("id"), payload.Address)
	if err != nil {
		h.logger.Info("[budget][handler] travel recalculation failed", zap.String("budget_id", c.Param("id")), zap.Error(err))
		writeError(c, mapBudgetError(err, http.StatusConflict))
		return
	}
	c.JSON(http.StatusOK, response.Data(budget))
}

// Convert creates the job of a budget. A budget converts at most once.
func (h *BudgetHandler) Convert(c *gin.Context) {
	budgetID := c.Param("id")

	var payload request.ConvertBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}
	in, err := payload.ToInput(h.location)
	if err != nil {
		writeError(c, validationIssue("plannedDate", "invalid date"))
		return
	}

	job, budget, err := h.usecase.Convert(c.Request.Context(), budgetID, in)
	if err != nil {
		h.metrics.IncrConversion("error")
		h.logger.Info("[budget][handler] convert failed", zap.String("budget_id", budgetID), zap.Error(err))
		writeError(c, mapBudgetError(err, http.StatusBadRequest))
		return
	}
	h.metrics.IncrConversion("ok")
	h.logger.Info("[budget][handler] convert success", zap.String("budget_id", budgetID), zap.String("job_id", job.ID))

	c.JSON(http.StatusCreated, response.FromConversion(job, budget))
}

// mapBudgetError reports an already converted budget with convertedStatus:
// 400 on /convert and 409 on the other mutations.
func mapBudgetError(err error, convertedStatus int) *pkg.AppError {
	if appErr, ok := asValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTeamNotFound):
		return pkg.NewDomainErrorSimple("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetAlreadyConverted):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_CONVERTED", "Budget already converted", convertedStatus)
	case errors.Is(err, usecase.ErrBudgetHasJob):
		return pkg.NewDomainErrorSimple("BUDGET_HAS_JOB", "Budget has a job and cannot be deleted", http.StatusConflict)
	case errors.Is(err, usecase.ErrTeamRequired):
		return validationIssue("teamId", "team is required")
	case errors.Is(err, usecase.ErrPlannedDateRequired):
		return validationIssue("plannedDate", "required")
	case errors.Is(err, usecase.ErrBudgetAddressRequired):
		return validationIssue("address", "budget has no address to quote travel")
	default:
		return mapDistanceError(err)
	}
}
