package response

import (
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase"
)

// TeamResponse never carries the operation password or its hash.
type TeamResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromTeam(t entities.Team) TeamResponse {
	return TeamResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func FromTeams(teams []entities.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, FromTeam(t))
	}
	return out
}

type FieldSessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Team      TeamResponse `json:"team"`
}

func FromFieldSession(s usecase.FieldSession) FieldSessionResponse {
	return FieldSessionResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, Team: FromTeam(s.Team)}
}
