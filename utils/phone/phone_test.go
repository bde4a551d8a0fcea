package phone_test

import (
	"testing"

	"github.com/muhammadheryan/course-platform/utils/phone"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "bare local number gets country prefix",
			input: "901234567",
			want:  "+998901234567",
			ok:    true,
		},
		{
			name:  "full international form is kept",
			input: "+998901234567",
			want:  "+998901234567",
			ok:    true,
		},
		{
			name:  "country code without plus",
			input: "998901234567",
			want:  "+998901234567",
			ok:    true,
		},
		{
			name:  "separators are stripped",
			input: "+998 (90) 123-45-67",
			want:  "+998901234567",
			ok:    true,
		},
		{
			name:  "too short",
			input: "12345",
			ok:    false,
		},
		{
			name:  "twelve digits with wrong country code",
			input: "997901234567",
			ok:    false,
		},
		{
			name:  "letters are rejected",
			input: "90abc34567",
			ok:    false,
		},
		{
			name:  "empty input",
			input: "",
			ok:    false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, ok := phone.Normalize(tt.input)
			if ok != tt.ok {
				t.Fatalf("Normalize(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
