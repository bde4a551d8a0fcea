package model

import (
	"time"

	"github.com/muhammadheryan/course-platform/constant"
)

// CourseEntity represents the courses table entity (courses, books and videos
// share one table, discriminated by Type)
type CourseEntity struct {
	ID           uint64              `db:"id" json:"id"`
	Title        string              `db:"title" json:"title"`
	Description  string              `db:"description" json:"description"`
	Type         constant.CourseType `db:"type" json:"type"`
	LessonsCount int                 `db:"lessons_count" json:"lessons_count"`
	Duration     string              `db:"duration" json:"duration"`
	PriceFull    float64             `db:"price_full" json:"price_full"`
	PriceMonthly float64             `db:"price_monthly" json:"price_monthly"`
	PriceSingle  float64             `db:"price_single" json:"price_single"`
	FileURL      *string             `db:"file_url" json:"file_url,omitempty"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time          `db:"updated_at" json:"updated_at,omitempty"`
}

// PriceFor resolves the charged amount for a payment plan. Zero means the
// plan is not offered for this entry.
func (c *CourseEntity) PriceFor(plan constant.PaymentType) float64 {
	switch plan {
	case constant.PaymentTypeFull:
		return c.PriceFull
	case constant.PaymentTypeMonthly:
		return c.PriceMonthly
	case constant.PaymentTypeSingle:
		if c.Type == constant.CourseTypeCourse {
			return 0
		}
		return c.PriceSingle
	}
	return 0
}

// LessonEntity represents the lessons table entity, ordered child of a course
type LessonEntity struct {
	ID       uint64  `db:"id" json:"id"`
	CourseID uint64  `db:"course_id" json:"course_id"`
	Title    string  `db:"title" json:"title"`
	VideoURL *string `db:"video_url" json:"video_url,omitempty"`
	OrderNum int     `db:"order_num" json:"order_num"`
}

type CourseFilter struct {
	Type constant.CourseType
}

// CourseRequest for creating or updating a catalog entry. Numeric fields
// default to zero when absent.
type CourseRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	Type         string  `json:"type" validate:"required,oneof=course book video"`
	LessonsCount int     `json:"lessons_count"`
	Duration     string  `json:"duration"`
	PriceFull    float64 `json:"price_full"`
	PriceMonthly float64 `json:"price_monthly"`
	PriceSingle  float64 `json:"price_single"`
	FileURL      *string `json:"file_url"`
}

// LessonInput is one element of the admin panel's save-lessons payload.
// A zero ID means insert; a known ID means update; existing rows missing
// from the payload are deleted.
type LessonInput struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title" validate:"required"`
	VideoURL *string `json:"video_url"`
	OrderNum int     `json:"order_num"`
}

type ReplaceLessonsRequest struct {
	Lessons []LessonInput `json:"lessons" validate:"dive"`
}
