package request

type UpdateSettingsRequest struct {
	HeadquartersAddress string `json:"headquartersAddress"`
}
