package model

import "time"

// UploadRecord describes a document accepted by the upload endpoint
type UploadRecord struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	Status     string    `json:"status"` // success, failed
	Owner      string    `json:"owner"`
	ObjectName string    `json:"object_name,omitempty"`
	URL        string    `json:"url,omitempty"`
	ErrorMsg   string    `json:"error_msg,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Upload status values
const (
	UploadSuccess = "success"
	UploadFailed  = "failed"
)
