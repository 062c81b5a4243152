package request

import (
	"errors"
	"strings"
	"time"

	"fundacoes_backoffice/internal/domain/entities"
	"fundacoes_backoffice/internal/usecase"
)

var ErrInvalidPlannedDate = errors.New("invalid planned date")

// plannedDateLayouts are tried in order. Layouts without an offset are read
// in the company timezone.
var plannedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

type ServiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
}

type CreateBudgetRequest struct {
	ClientID        string               `json:"clientId"`
	Services        []ServiceItemRequest `json:"services"`
	DiscountPercent float64              `json:"discountPercent"`
	SelectedAddress string               `json:"selectedAddress"`
	Notes           string               `json:"notes"`
}

func (r CreateBudgetRequest) ToInput() usecase.CreateBudgetInput {
	services := make([]entities.ServiceItem, 0, len(r.Services))
	for _, s := range r.Services {
		services = append(services, entities.ServiceItem{
			Description: strings.TrimSpace(s.Description),
			Quantity:    s.Quantity,
			Price:       s.Price,
			Discount:    s.Discount,
		})
	}
	return usecase.CreateBudgetInput{
		ClientID:        strings.TrimSpace(r.ClientID),
		Services:        services,
		DiscountPercent: r.DiscountPercent,
		SelectedAddress: strings.TrimSpace(r.SelectedAddress),
		Notes:           strings.TrimSpace(r.Notes),
	}
}

// RecalculateTravelRequest optionally replaces the budget's selected address.
type RecalculateTravelRequest struct {
	Address string `json:"address"`
}

type ConvertBudgetRequest struct {
	TeamID      string `json:"teamId"`
	Team        string `json:"team"`
	PlannedDate string `json:"plannedDate" binding:"required"`
	Site        string `json:"site"`
	Notes       string `json:"notes"`
}

// ToInput parses PlannedDate in loc. A blank date is passed through as the
// zero time so the use case reports it as missing.
func (r ConvertBudgetRequest) ToInput(loc *time.Location) (usecase.ConvertBudgetInput, error) {
	planned, err := ParsePlannedDate(r.PlannedDate, loc)
	if err != nil {
		return usecase.ConvertBudgetInput{}, err
	}
	return usecase.ConvertBudgetInput{
		TeamID:      strings.TrimSpace(r.TeamID),
		Team:        strings.TrimSpace(r.Team),
		PlannedDate: planned,
		Site:        strings.TrimSpace(r.Site),
		Notes:       strings.TrimSpace(r.Notes),
	}, nil
}

func ParsePlannedDate(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range plannedDateLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidPlannedDate
}
