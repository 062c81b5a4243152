package request

type CalculateDistanceRequest struct {
	ClientAddress string `json:"clientAddress" binding:"required"`
}

// GeocodeRequest uses pointers so a missing coordinate is told apart from 0.
type GeocodeRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" binding:"required,gte=-180,lte=180"`
}
