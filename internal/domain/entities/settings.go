package entities

import "time"

// Settings holds company-wide values. It is read per request and handed to
// the services that need it.
type Settings struct {
	HeadquartersAddress string    `json:"headquartersAddress"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
