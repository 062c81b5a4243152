package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fundacoes_backoffice/internal/adapter/http/dto/request"
	response "fundacoes_backoffice/internal/adapter/http/dto/response"
	"fundacoes_backoffice/internal/adapter/http/middleware"
	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

// FieldHandler serves the crew portal. Every route but Login runs behind
// middleware.FieldAuth, which puts the team id in the context.
type FieldHandler struct {
	auth usecase.IFieldAuthUseCase
	jobs usecase.IJobUseCase
}

func NewFieldHandler(auth usecase.IFieldAuthUseCase, jobs usecase.IJobUseCase) *FieldHandler {
	return &FieldHandler{auth: auth, jobs: jobs}
}

func (h *FieldHandler) Login(c *gin.Context) {
	var payload request.FieldLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	session, err := h.auth.Login(c.Request.Context(), payload.TeamID, payload.Team, payload.Password)
	if err != nil {
		writeError(c, mapFieldError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.FromFieldSession(session)))
}

func (h *FieldHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.ListByTeam(c.Request.Context(), middleware.TeamID(c))
	if err != nil {
		writeError(c, mapFieldError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.NonNil(jobs)))
}

func (h *FieldHandler) StartJob(c *gin.Context) {
	h.transition(c, h.jobs.Start)
}

func (h *FieldHandler) CompleteJob(c *gin.Context) {
	h.transition(c, h.jobs.Complete)
}

func (h *FieldHandler) CancelJob(c *gin.Context) {
	var payload request.CancelJobRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, bindError(err))
			return
		}
	}
	h.transition(c, func(ctx context.Context, teamID, jobID string) (entities.Job, error) {
		return h.jobs.Cancel(ctx, teamID, jobID, payload.Reason)
	})
}

func (h *FieldHandler) transition(c *gin.Context, apply func(ctx context.Context, teamID, jobID string) (entities.Job, error)) {
	job, err := apply(c.Request.Context(), middleware.TeamID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapFieldError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(job))
}

func mapFieldError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid team credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidFieldToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
	default:
		return mapJobError(err)
	}
}
