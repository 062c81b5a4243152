package handlers

import (
	"errors"
	"net/http"

	request "fundacoes_backoffice/internal/adapter/http/dto/request"
	response "fundacoes_backoffice/internal/adapter/http/dto/response"
	"fundacoes_backoffice/internal/usecase"
	"fundacoes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	usecase usecase.ITeamUseCase
}

func NewTeamHandler(uc usecase.ITeamUseCase) *TeamHandler {
	return &TeamHandler{usecase: uc}
}

func (h *TeamHandler) Create(c *gin.Context) {
	var payload request.CreateTeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindError(err))
		return
	}

	team, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Password)
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusCreated, response.Data(response.FromTeam(team)))
}

func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapTeamError(err))
		return
	}
	c.JSON(http.StatusOK, response.Data(response.FromTeams(teams)))
}

func mapTeamError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTeamName):
		return validationIssue("name", "required")
	case errors.Is(err, usecase.ErrInvalidTeamPassword):
		return validationIssue("password", "too short")
	case errors.Is(err, usecase.ErrTeamAlreadyExists):
		return pkg.NewDomainErrorSimple("TEAM_ALREADY_EXISTS", "Team already exists", http.StatusConflict)
	default:
		return internalError(err)
	}
}
