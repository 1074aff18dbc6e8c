package upload_image

// UploadResponse HTTP response model
type UploadResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}
