package middleware

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "call_center_api/internal/api/auth/models"
	"call_center_api/internal/common"
)

func TestAuthorizeUser(t *testing.T) {
	t.Run("tài khoản bình thường được đi tiếp", func(t *testing.T) {
		user := models.User{ID: primitive.NewObjectID(), Name: "user"}
		if err := authorizeUser(&user); err != nil {
			t.Errorf("authorizeUser lỗi với tài khoản bình thường: %v", err)
		}
	})

	t.Run("tài khoản bị khóa trả về 401", func(t *testing.T) {
		user := models.User{ID: primitive.NewObjectID(), IsBlock: true, BlockNote: "spam"}
		err := authorizeUser(&user)
		if err == nil {
			t.Fatal("authorizeUser phải chặn tài khoản bị khóa")
		}

		var appErr *common.Error
		if !errors.As(err, &appErr) {
			t.Fatalf("lỗi không phải *common.Error: %v", err)
		}
		// Token của tài khoản bị khóa coi như đã thu hồi, không phải là thiếu quyền
		if appErr.StatusCode != common.StatusUnauthorized {
			t.Errorf("StatusCode = %d, muốn %d", appErr.StatusCode, common.StatusUnauthorized)
		}
		if appErr.Code != common.ErrCodeAuth {
			t.Errorf("Code = %v, muốn %v", appErr.Code, common.ErrCodeAuth)
		}
	})
}
