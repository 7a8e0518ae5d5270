package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
