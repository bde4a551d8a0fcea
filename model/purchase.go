package model

import (
	"time"

	"github.com/muhammadheryan/course-platform/constant"
)

// PurchaseEntity represents the purchases table entity
type PurchaseEntity struct {
	ID          uint64                  `db:"id" json:"id"`
	UserID      uint64                  `db:"user_id" json:"user_id"`
	CourseID    uint64                  `db:"course_id" json:"course_id"`
	PaymentType constant.PaymentType    `db:"payment_type" json:"payment_type"`
	Amount      float64                 `db:"amount" json:"amount"`
	Status      constant.PurchaseStatus `db:"status" json:"status"`
	ProofRef    *string                 `db:"proof_ref" json:"proof_ref,omitempty"`
	ProofKind   *constant.ProofKind     `db:"proof_kind" json:"proof_kind,omitempty"`
	ExpiresAt   *time.Time              `db:"expires_at" json:"expires_at,omitempty"`
	CreatedAt   time.Time               `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time              `db:"updated_at" json:"updated_at,omitempty"`
}

// PurchaseDetail is a purchase joined with its course and user, the shape the
// admin panel lists and the moderation flow loads.
type PurchaseDetail struct {
	PurchaseEntity
	CourseTitle  string              `db:"course_title" json:"course_title"`
	CourseType   constant.CourseType `db:"course_type" json:"course_type"`
	TelegramID   int64               `db:"telegram_id" json:"telegram_id"`
	UserFullName *string             `db:"full_name" json:"full_name,omitempty"`
}

// ActivePurchase is one row of a user's "my courses" view: a paid purchase
// whose expiry, if any, has not passed.
type ActivePurchase struct {
	PurchaseEntity
	CourseTitle string              `db:"course_title" json:"course_title"`
	CourseType  constant.CourseType `db:"course_type" json:"course_type"`
}

// DaysLeft returns the remaining days of a monthly purchase, or -1 when the
// purchase does not expire.
func (p *ActivePurchase) DaysLeft(now time.Time) int {
	if p.ExpiresAt == nil {
		return -1
	}
	d := int(p.ExpiresAt.Sub(now).Hours() / 24)
	if d < 0 {
		d = 0
	}
	return d
}

// InsertPurchaseItem carries the fields of a freshly selected purchase.
type InsertPurchaseItem struct {
	UserID      uint64
	CourseID    uint64
	PaymentType constant.PaymentType
	Amount      float64
	Status      constant.PurchaseStatus
	ExpiresAt   *time.Time
}

// AttachProofItem updates proof reference, proof kind and status together.
type AttachProofItem struct {
	PurchaseID uint64
	ProofRef   string
	ProofKind  constant.ProofKind
}

// RejectRequest is the optional body of POST /purchases/{id}/reject.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// ModerationResult reports a confirm/reject outcome. Notified is false when
// the business state changed but the chat notification could not be sent.
type ModerationResult struct {
	PurchaseID uint64 `json:"purchase_id"`
	Status     string `json:"status"`
	Notified   bool   `json:"notified"`
	Warning    string `json:"warning,omitempty"`
}
