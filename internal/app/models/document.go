package models

import "time"

// Document is an uploaded file attached to a material. FilePath holds the
// stored basename inside the storage root, never a client-supplied path.
type Document struct {
	ID           int64     `json:"id"`
	MaterialID   int64     `json:"materialId"`
	FilePath     string    `json:"filePath"`
	FileType     string    `json:"fileType"`
	OriginalName string    `json:"originalName"`
	CreatedAt    time.Time `json:"createdAt"`
}
