package entities

// Route is the driving distance between two normalized addresses.
type Route struct {
	DistanceMeters  int
	DistanceText    string
	DurationSeconds int
	DurationText    string
}

// DistanceQuote is computed per request and never persisted on its own.
type DistanceQuote struct {
	DistanceKm        float64 `json:"distanceKm"`
	DistanceText      string  `json:"distanceText"`
	DurationSeconds   int     `json:"durationSeconds"`
	DurationText      string  `json:"durationText"`
	TravelPrice       float64 `json:"travelPrice"`
	TravelDescription string  `json:"travelDescription"`
	CompanyAddress    string  `json:"companyAddress"`
	ClientAddress     string  `json:"clientAddress"`
}

// GeocodedAddress is the result of reverse geocoding a coordinate.
type GeocodedAddress struct {
	Street           string `json:"street"`
	Number           string `json:"number"`
	Neighborhood     string `json:"neighborhood"`
	City             string `json:"city"`
	State            string `json:"state"`
	Zip              string `json:"zip"`
	FormattedAddress string `json:"formattedAddress"`
}

// AddressComponent mirrors a typed component returned by the geocoder.
type AddressComponent struct {
	LongName  string
	ShortName string
	Types     []string
}
