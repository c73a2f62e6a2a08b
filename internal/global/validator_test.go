package global

import (
	"testing"
)

type validatedInput struct {
	Name    string `validate:"omitempty,not_blank"`
	Comment string `validate:"omitempty,no_xss"`
}

func TestValidateNotBlank(t *testing.T) {
	InitValidator()

	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"chuỗi bình thường", "Support Hotline", false},
		{"chuỗi chỉ có khoảng trắng", "   ", true},
		{"chuỗi có tab và newline", "\t\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(validatedInput{Name: tc.value})
			if tc.wantErr && err == nil {
				t.Errorf("not_blank phải fail với %q", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("not_blank không được fail với %q: %v", tc.value, err)
			}
		})
	}
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"text bình thường", "xin chào", false},
		{"script tag", "<script>alert(1)</script>", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"event handler", "<img onerror=alert(1)>", true},
		{"chữ hoa vẫn bị chặn", "<SCRIPT>alert(1)</SCRIPT>", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(validatedInput{Comment: tc.value})
			if tc.wantErr && err == nil {
				t.Errorf("no_xss phải fail với %q", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("no_xss không được fail với %q: %v", tc.value, err)
			}
		})
	}
}
