package model

import (
	"time"

	"github.com/muhammadheryan/course-platform/constant"
)

// CompletionRequestEntity represents the completion_requests table entity:
// a user's claim of having finished a course, pending operator review.
type CompletionRequestEntity struct {
	ID         uint64                    `db:"id" json:"id"`
	UserID     uint64                    `db:"user_id" json:"user_id"`
	CourseID   uint64                    `db:"course_id" json:"course_id"`
	Status     constant.CompletionStatus `db:"status" json:"status"`
	Comment    *string                   `db:"comment" json:"comment,omitempty"`
	ReviewedAt *time.Time                `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy *uint64                   `db:"reviewed_by" json:"reviewed_by,omitempty"`
	CreatedAt  time.Time                 `db:"created_at" json:"created_at"`
}

// CompletionDetail joins the request with user and course for the admin list.
type CompletionDetail struct {
	CompletionRequestEntity
	CourseTitle  string  `db:"course_title" json:"course_title"`
	TelegramID   int64   `db:"telegram_id" json:"telegram_id"`
	UserFullName *string `db:"full_name" json:"full_name,omitempty"`
}

// ReviewCompletionRequest is the optional body of approve/reject.
type ReviewCompletionRequest struct {
	Comment string `json:"comment"`
}
