package handlers

import (
	"strings"
	"testing"
)

func TestContactFormValidate(t *testing.T) {
	valid := contactForm{Name: "Omar", Email: "omar@example.com", Message: "A villa in Palm Jumeirah"}

	tests := []struct {
		name    string
		mutate  func(f *contactForm)
		wantErr string
	}{
		{name: "valid", mutate: func(f *contactForm) {}},
		{name: "short name", mutate: func(f *contactForm) { f.Name = "O" }, wantErr: "name"},
		{name: "two rune name", mutate: func(f *contactForm) { f.Name = "Ré" }},
		{name: "email without at", mutate: func(f *contactForm) { f.Email = "omar.example.com" }, wantErr: "email"},
		{name: "email without domain", mutate: func(f *contactForm) { f.Email = "omar@" }, wantErr: "email"},
		{name: "email with space", mutate: func(f *contactForm) { f.Email = "om ar@example.com" }, wantErr: "email"},
		{name: "short message", mutate: func(f *contactForm) { f.Message = "Hi there" }, wantErr: "10 characters"},
		{name: "long message", mutate: func(f *contactForm) { f.Message = strings.Repeat("x", 5001) }, wantErr: "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			got := f.validate()
			if tt.wantErr == "" {
				if got != "" {
					t.Errorf("unexpected error %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.wantErr) {
				t.Errorf("validate() = %q, want containing %q", got, tt.wantErr)
			}
		})
	}
}

func TestContactFormNormalize(t *testing.T) {
	f := contactForm{Name: "  Omar ", Email: " omar@example.com\n", Message: "\tHello studio team "}
	f.normalize()
	if f.Name != "Omar" || f.Email != "omar@example.com" || f.Message != "Hello studio team" {
		t.Errorf("normalize left whitespace: %+v", f)
	}
}
