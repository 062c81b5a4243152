package request

type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FieldLoginRequest accepts either the team id or its name.
type FieldLoginRequest struct {
	TeamID   string `json:"teamId"`
	Team     string `json:"team"`
	Password string `json:"password"`
}

type CancelJobRequest struct {
	Reason string `json:"reason"`
}
