// Package common - Test hệ thống lỗi: validation error 422, mapping lỗi MongoDB.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestNewValidationError_Status422VoiDetails(t *testing.T) {
	err := NewValidationError(map[string]string{"name": MsgFieldBlank})

	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("NewValidationError phải trả về *Error")
	}
	if appErr.StatusCode != StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, StatusUnprocessableEntity)
	}
	details, ok := appErr.Details.(map[string]string)
	if !ok {
		t.Fatal("Details phải là map[string]string")
	}
	if details["name"] != "can't be blank" {
		t.Errorf("details[name] = %q, muốn %q", details["name"], "can't be blank")
	}
}

func TestConvertMongoError_ErrNoDocuments(t *testing.T) {
	got := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(got, ErrNotFound) {
		t.Errorf("ConvertMongoError(mongo.ErrNoDocuments) = %v, muốn ErrNotFound", got)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, muốn nil", got)
	}
}

func TestConvertMongoError_GiuNguyenLoiHeThong(t *testing.T) {
	// Lỗi đã là lỗi hệ thống thì không được bọc lại
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ConvertMongoError(ErrNotFound) = %v, muốn giữ nguyên ErrNotFound", got)
	}
}

func TestSentinelErrors_StatusCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ErrNotFound", ErrNotFound, StatusNotFound},
		{"ErrForbidden", ErrForbidden, StatusForbidden},
		{"ErrTokenMissing", ErrTokenMissing, StatusUnauthorized},
		{"ErrTokenInvalid", ErrTokenInvalid, StatusUnauthorized},
		{"ErrInvalidCredentials", ErrInvalidCredentials, StatusUnauthorized},
		{"ErrDuplicate", ErrDuplicate, StatusConflict},
	}
	for _, tc := range cases {
		var appErr *Error
		if !errors.As(tc.err, &appErr) {
			t.Errorf("%s không phải *Error", tc.name)
			continue
		}
		if appErr.StatusCode != tc.want {
			t.Errorf("%s.StatusCode = %d, muốn %d", tc.name, appErr.StatusCode, tc.want)
		}
	}
}
