package request

import (
	"strings"

	"fundacoes_backoffice/internal/domain/entities"
)

type ClientAddressRequest struct {
	Label        string   `json:"label"`
	Street       string   `json:"street"`
	Number       string   `json:"number"`
	Neighborhood string   `json:"neighborhood"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type ClientRequest struct {
	Name      string                 `json:"name"`
	Document  string                 `json:"document"`
	Phone     string                 `json:"phone"`
	Email     string                 `json:"email"`
	Addresses []ClientAddressRequest `json:"addresses"`
}

func (r ClientRequest) ToEntity() entities.Client {
	addresses := make([]entities.ClientAddress, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addresses = append(addresses, entities.ClientAddress{
			Label:        strings.TrimSpace(a.Label),
			Street:       strings.TrimSpace(a.Street),
			Number:       strings.TrimSpace(a.Number),
			Neighborhood: strings.TrimSpace(a.Neighborhood),
			City:         strings.TrimSpace(a.City),
			State:        strings.TrimSpace(a.State),
			Zip:          strings.TrimSpace(a.Zip),
			Latitude:     a.Latitude,
			Longitude:    a.Longitude,
		})
	}
	return entities.Client{
		Name:      strings.TrimSpace(r.Name),
		Document:  strings.TrimSpace(r.Document),
		Phone:     strings.TrimSpace(r.Phone),
		Email:     strings.TrimSpace(r.Email),
		Addresses: addresses,
	}
}
