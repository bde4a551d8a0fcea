package model_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/course-platform/constant"
	"github.com/muhammadheryan/course-platform/model"
)

func strPtr(s string) *string { return &s }

func TestUserEntity_DisplayName(t *testing.T) {
	st := constant.StudentTypeNew

	tests := []struct {
		name string
		user model.UserEntity
		want string
	}{
		{
			name: "full name wins",
			user: model.UserEntity{TelegramID: 42, FullName: strPtr("Aziz Karimov"), Username: strPtr("aziz")},
			want: "Aziz Karimov",
		},
		{
			name: "handle when the name is missing",
			user: model.UserEntity{TelegramID: 42, Username: strPtr("aziz")},
			want: "@aziz",
		},
		{
			name: "raw identity as last resort",
			user: model.UserEntity{TelegramID: 42},
			want: "ID 42",
		},
		{
			name: "empty strings count as missing",
			user: model.UserEntity{TelegramID: 42, FullName: strPtr(""), Username: strPtr(""), StudentType: &st},
			want: "ID 42",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Fatalf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserEntity_Registered(t *testing.T) {
	st := constant.StudentTypeCompletedBefore
	full := model.UserEntity{
		FullName:    strPtr("Aziz Karimov"),
		Phone:       strPtr("+998901234567"),
		StudentType: &st,
	}
	if !full.Registered() {
		t.Fatal("user with name, phone and classification must be registered")
	}

	partial := full
	partial.StudentType = nil
	if partial.Registered() {
		t.Fatal("missing classification must not count as registered")
	}
}

func TestCourseEntity_PriceFor(t *testing.T) {
	course := model.CourseEntity{
		Type:         constant.CourseTypeCourse,
		PriceFull:    500000,
		PriceMonthly: 100000,
		PriceSingle:  50000,
	}
	book := model.CourseEntity{
		Type:        constant.CourseTypeBook,
		PriceFull:   80000,
		PriceSingle: 80000,
	}

	if got := course.PriceFor(constant.PaymentTypeFull); got != 500000 {
		t.Fatalf("course full = %v, want 500000", got)
	}
	if got := course.PriceFor(constant.PaymentTypeMonthly); got != 100000 {
		t.Fatalf("course monthly = %v, want 100000", got)
	}
	// The single plan never applies to a course, whatever the stored price.
	if got := course.PriceFor(constant.PaymentTypeSingle); got != 0 {
		t.Fatalf("course single = %v, want 0", got)
	}
	if got := book.PriceFor(constant.PaymentTypeSingle); got != 80000 {
		t.Fatalf("book single = %v, want 80000", got)
	}
	if got := book.PriceFor(constant.PaymentTypeMonthly); got != 0 {
		t.Fatalf("book monthly = %v, want 0", got)
	}
}

func TestActivePurchase_DaysLeft(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      int
	}{
		{
			name: "no expiry means unlimited",
			want: -1,
		},
		{
			name:      "ten days remaining",
			expiresAt: timePtr(now.Add(10*24*time.Hour + time.Hour)),
			want:      10,
		},
		{
			name:      "expires later today",
			expiresAt: timePtr(now.Add(3 * time.Hour)),
			want:      0,
		},
		{
			name:      "already past is clamped to zero",
			expiresAt: timePtr(now.Add(-48 * time.Hour)),
			want:      0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := model.ActivePurchase{
				PurchaseEntity: model.PurchaseEntity{ExpiresAt: tt.expiresAt},
			}
			if got := p.DaysLeft(now); got != tt.want {
				t.Fatalf("DaysLeft() = %d, want %d", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
