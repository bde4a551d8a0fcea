package model

// BroadcastRequest is parsed from the multipart POST /broadcast/send form.
type BroadcastRequest struct {
	Message   string `validate:"required"`
	Type      string `validate:"required,oneof=text photo"`
	PhotoPath string
}

// BroadcastResponse is returned immediately; sending continues in the
// background.
type BroadcastResponse struct {
	Total   int  `json:"total"`
	Started bool `json:"started"`
}

type BroadcastStats struct {
	Audience int64 `json:"audience"`
}

// QRScanEntity represents the qr_scans table entity (attendance log).
type QRScanEntity struct {
	ID        uint64 `db:"id" json:"id"`
	UserID    uint64 `db:"user_id" json:"user_id"`
	ScannedAt string `db:"scanned_at" json:"scanned_at"`
}
