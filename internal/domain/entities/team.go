package entities

import "time"

// Team is a field crew. Crews authenticate on the field portal with a shared
// password; OperationToken is the legacy plain secret still accepted.
type Team struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	OperationPassHash string    `json:"-"`
	OperationToken    string    `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
