package basehdl

import (
	"errors"
	"testing"

	"call_center_api/internal/common"
	"call_center_api/internal/global"
)

type registerForm struct {
	Name     string `json:"name" validate:"required,not_blank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func fieldErrorsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("lỗi không phải *common.Error: %v", err)
	}
	if appErr.StatusCode != common.StatusUnprocessableEntity {
		t.Fatalf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusUnprocessableEntity)
	}
	details, ok := appErr.Details.(map[string]string)
	if !ok {
		t.Fatalf("Details không phải map[string]string: %T", appErr.Details)
	}
	return details
}

func TestValidationErrorToFieldErrors(t *testing.T) {
	global.InitValidator()

	t.Run("field required bị thiếu map sang can't be blank", func(t *testing.T) {
		input := registerForm{Email: "a@b.de", Password: "longenough"}
		err := global.Validate.Struct(input)
		if err == nil {
			t.Fatal("validate phải fail khi thiếu name")
		}
		details := fieldErrorsOf(t, ValidationErrorToFieldErrors(input, err))
		if details["name"] != common.MsgFieldBlank {
			t.Errorf("details[name] = %q, muốn %q", details["name"], common.MsgFieldBlank)
		}
	})

	t.Run("key của details là json tag", func(t *testing.T) {
		input := registerForm{Name: "a", Email: "khong-phai-email", Password: "longenough"}
		err := global.Validate.Struct(input)
		if err == nil {
			t.Fatal("validate phải fail với email sai định dạng")
		}
		details := fieldErrorsOf(t, ValidationErrorToFieldErrors(input, err))
		if _, ok := details["email"]; !ok {
			t.Errorf("details thiếu key 'email' (theo json tag), có: %v", details)
		}
	})

	t.Run("min map sang message có độ dài tối thiểu", func(t *testing.T) {
		input := registerForm{Name: "a", Email: "a@b.de", Password: "ngan"}
		err := global.Validate.Struct(input)
		if err == nil {
			t.Fatal("validate phải fail với mật khẩu ngắn")
		}
		details := fieldErrorsOf(t, ValidationErrorToFieldErrors(input, err))
		if details["password"] == "" {
			t.Error("details thiếu message cho password")
		}
	})
}
