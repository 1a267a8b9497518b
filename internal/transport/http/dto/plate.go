package dto

// PlateInfo is the pre-fill payload the admin car form gets back from a
// plate lookup. Everything is best-effort; missing upstream fields come back
// empty.
type PlateInfo struct {
	Plate        string `json:"plate"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	ModelYear    string `json:"model_year"`
	Version      string `json:"version"`
	Transmission string `json:"transmission"`
	Doors        string `json:"doors"`
	Fuel         string `json:"fuel"`
	Color        string `json:"color"`
}
