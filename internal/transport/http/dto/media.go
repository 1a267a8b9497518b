package dto

type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
