package model

import "time"

// AdminEntity represents the admins table entity
type AdminEntity struct {
	ID           uint64     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	FullName     *string    `db:"full_name" json:"full_name,omitempty"`
	CreatedBy    *uint64    `db:"created_by" json:"created_by,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
}

type AdminFilter struct {
	ID       uint64
	Username string
}

// LoginRequest for operator login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name,omitempty"`
	Token    string  `json:"token"`
}

// CreateAdminRequest for adding a new operator
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// StatsResponse mirrors the admin dashboard counters.
type StatsResponse struct {
	TotalUsers        int64   `json:"total_users"`
	TotalCourses      int64   `json:"total_courses"`
	PendingPayments   int64   `json:"pending_payments"`
	ConfirmedPayments int64   `json:"confirmed_payments"`
	TotalRevenue      float64 `json:"total_revenue"`
}
