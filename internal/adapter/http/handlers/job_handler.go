package handlers

import (
	"errors"
	"net/http"

	response "fundacoes_backoffice/internal/adapter/http/dto/response"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.NonNil(jobs)))
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotAssignedToTeam):
		return pkg.NewDomainErrorSimple("JOB_NOT_ASSIGNED", "Job not assigned to this team", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidJobTransition):
		return pkg.NewDomainErrorSimple("INVALID_JOB_TRANSITION", "Invalid job status transition", http.StatusConflict).
			WithDetail(detailOf(err, usecase.ErrInvalidJobTransition))
	default:
		return internalError(err)
	}
}
