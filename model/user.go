package model

import (
	"fmt"
	"time"

	"github.com/muhammadheryan/course-platform/constant"
)

// UserEntity represents the users table entity (one row per telegram identity)
type UserEntity struct {
	ID                   uint64               `db:"id" json:"id"`
	TelegramID           int64                `db:"telegram_id" json:"telegram_id"`
	FullName             *string              `db:"full_name" json:"full_name,omitempty"`
	Username             *string              `db:"username" json:"username,omitempty"`
	Phone                *string              `db:"phone" json:"phone,omitempty"`
	StudentType          *constant.StudentType `db:"student_type" json:"student_type,omitempty"`
	NotificationsEnabled bool                 `db:"notifications_enabled" json:"notifications_enabled"`
	QRToken              *string              `db:"qr_token" json:"qr_token,omitempty"`
	QRGenerated          bool                 `db:"qr_generated" json:"qr_generated"`
	CreatedAt            time.Time            `db:"created_at" json:"created_at"`
}

// DisplayName is the single display-name resolution rule: profile name first,
// then telegram handle, then the raw identity. Never empty.
func (u *UserEntity) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	if u.Username != nil && *u.Username != "" {
		return "@" + *u.Username
	}
	return fmt.Sprintf("ID %d", u.TelegramID)
}

// Registered reports whether onboarding completed for this user.
func (u *UserEntity) Registered() bool {
	return u.FullName != nil && *u.FullName != "" &&
		u.Phone != nil && *u.Phone != "" &&
		u.StudentType != nil
}

// UserFilter for querying users
type UserFilter struct {
	ID         uint64
	TelegramID int64
	QRToken    string
}

// CompleteRegistrationItem is the terminal commit of the registration flow:
// name, phone and classification land in one UPDATE.
type CompleteRegistrationItem struct {
	TelegramID  int64
	FullName    string
	Phone       string
	StudentType constant.StudentType
}
