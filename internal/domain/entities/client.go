package entities

import (
	"strings"
	"time"
)

// ClientAddress is a saved address of a client. Coordinates are optional.
type ClientAddress struct {
	Label        string   `json:"label,omitempty"`
	Street       string   `json:"street"`
	Number       string   `json:"number,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state,omitempty"`
	Zip          string   `json:"zip,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// FullAddress joins the structured fields the way the frontend does,
// using " | " between segments.
func (a ClientAddress) FullAddress() string {
	street := strings.TrimSpace(a.Street)
	if n := strings.TrimSpace(a.Number); n != "" {
		street += ", " + n
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{street, a.Neighborhood, a.City, a.State} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

func (a ClientAddress) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

type Client struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Document  string          `json:"document,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	Email     string          `json:"email,omitempty"`
	Addresses []ClientAddress `json:"addresses"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
