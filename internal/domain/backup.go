package domain

import "time"

// Backup describes a snapshot of all workout records written to object storage.
type Backup struct {
	ObjectKey   string    `json:"objectKey"`   // Key within the bucket
	Records     int       `json:"records"`     // Number of records in the snapshot
	Size        int64     `json:"size"`        // Bytes
	CreatedAt   time.Time `json:"createdAt"`
	DownloadURL string    `json:"downloadUrl,omitempty"` // Presigned, short-lived
}
