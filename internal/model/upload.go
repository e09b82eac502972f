package model

type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	FileID   string `json:"file_id"`
	Size     int64  `json:"size"`
}
