// Package address turns reverse geocoding results into the structured address
// used by the client and budget forms.
package address

import (
	"regexp"
	"strings"

	"fundacoes_backoffice/internal/domain/entities"
)

// "Rua das Flores, 50 - Centro, Aparecida de Goiânia - GO, 74900-000, Brasil"
var brazilianAddress = regexp.MustCompile(
	`^\s*([^,]+?),\s*([^,-]+?)\s*-\s*([^,]+?),\s*([^,]+?)\s*-\s*([A-Z]{2})(?:,\s*(\d{5}-?\d{3}))?`,
)

var (
	zipPattern       = regexp.MustCompile(`\b(\d{5}-?\d{3})\b`)
	cityStatePattern = regexp.MustCompile(`([^,]+?)\s*-\s*([A-Z]{2})\b`)
)

// FromComponents builds an address from typed geocoder components and fills
// whatever is missing by parsing the formatted address.
func FromComponents(components []entities.AddressComponent, formatted string) entities.GeocodedAddress {
	out := entities.GeocodedAddress{FormattedAddress: formatted}
	for _, c := range components {
		switch {
		case hasType(c, "route"):
			out.Street = c.LongName
		case hasType(c, "street_number"):
			out.Number = c.LongName
		case hasType(c, "sublocality_level_1"), hasType(c, "sublocality"), hasType(c, "neighborhood"):
			if out.Neighborhood == "" {
				out.Neighborhood = c.LongName
			}
		case hasType(c, "administrative_area_level_2"), hasType(c, "locality"):
			if out.City == "" {
				out.City = c.LongName
			}
		case hasType(c, "administrative_area_level_1"):
			out.State = c.ShortName
		case hasType(c, "postal_code"):
			out.Zip = c.LongName
		}
	}

	if out.Street == "" || out.City == "" {
		fill(&out, ParseFormatted(formatted))
	}
	return out
}

// ParseFormatted extracts address fields from a formatted address string.
func ParseFormatted(formatted string) entities.GeocodedAddress {
	out := entities.GeocodedAddress{FormattedAddress: formatted}
	if m := brazilianAddress.FindStringSubmatch(formatted); m != nil {
		out.Street = strings.TrimSpace(m[1])
		out.Number = strings.TrimSpace(m[2])
		out.Neighborhood = strings.TrimSpace(m[3])
		out.City = strings.TrimSpace(m[4])
		out.State = m[5]
		out.Zip = m[6]
		return out
	}

	parts := strings.Split(formatted, ",")
	if len(parts) > 0 {
		out.Street = strings.TrimSpace(parts[0])
	}
	if m := cityStatePattern.FindStringSubmatch(formatted); m != nil {
		out.City = strings.TrimSpace(m[1])
		out.State = m[2]
	}
	if m := zipPattern.FindStringSubmatch(formatted); m != nil {
		out.Zip = m[1]
	}
	return out
}

func fill(dst *entities.GeocodedAddress, src entities.GeocodedAddress) {
	if dst.Street == "" {
		dst.Street = src.Street
	}
	if dst.Number == "" {
		dst.Number = src.Number
	}
	if dst.Neighborhood == "" {
		dst.Neighborhood = src.Neighborhood
	}
	if dst.City == "" {
		dst.City = src.City
	}
	if dst.State == "" {
		dst.State = src.State
	}
	if dst.Zip == "" {
		dst.Zip = src.Zip
	}
}

func hasType(c entities.AddressComponent, t string) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}
