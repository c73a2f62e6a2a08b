// Package authsvc - Test cấu trúc update thu hồi token.
package authsvc

import (
	"testing"

	models "call_center_api/internal/api/auth/models"
)

func TestLogoutUpdate(t *testing.T) {
	remaining := []models.Token{{Hwid: "device-2", JwtToken: "jwt-2"}}
	update := logoutUpdate(remaining)

	// Token đang hoạt động phải bị xóa hẳn khỏi document, không được set rỗng
	if _, ok := update.Unset["token"]; !ok {
		t.Error("logoutUpdate phải $unset field token")
	}
	if _, ok := update.Set["token"]; ok {
		t.Error("logoutUpdate không được $set token (kể cả chuỗi rỗng)")
	}

	tokens, ok := update.Set["tokens"].([]models.Token)
	if !ok {
		t.Fatalf("Set[tokens] không phải []models.Token: %T", update.Set["tokens"])
	}
	if len(tokens) != 1 || tokens[0].Hwid != "device-2" {
		t.Errorf("tokens của thiết bị khác phải được giữ lại, có: %v", tokens)
	}
}

func TestPasswordChangeUpdate(t *testing.T) {
	update := passwordChangeUpdate("$2a$12$hash-moi")

	if update.Set["password"] != "$2a$12$hash-moi" {
		t.Errorf("Set[password] = %v, muốn hash mới", update.Set["password"])
	}
	if _, ok := update.Unset["token"]; !ok {
		t.Error("đổi mật khẩu phải $unset token đang hoạt động")
	}
	if _, ok := update.Set["token"]; ok {
		t.Error("đổi mật khẩu không được $set token rỗng")
	}
	tokens, ok := update.Set["tokens"].([]models.Token)
	if !ok || len(tokens) != 0 {
		t.Errorf("đổi mật khẩu phải thu hồi toàn bộ tokens, có: %v", update.Set["tokens"])
	}
}
