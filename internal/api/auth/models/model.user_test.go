// Package models - Test wire format JSON của User.
package models

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUser_JSONKhongLoCredential(t *testing.T) {
	user := User{
		ID:       primitive.NewObjectID(),
		Name:     "victim",
		Email:    "victim@example.com",
		Password: "$2a$12$hash",
		Token:    "SECRET-BEARER-TOKEN",
		Tokens: []Token{
			{Hwid: "device-1", JwtToken: "SECRET-DEVICE-TOKEN"},
		},
		IsBlock:   true,
		BlockNote: "spam",
		CreatedAt: 1700000000000,
		UpdatedAt: 1700000000000,
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("json.Marshal lỗi: %v", err)
	}

	// Credential tuyệt đối không được xuất hiện, kể cả qua các route đọc chung
	for _, secret := range []string{"SECRET-BEARER-TOKEN", "SECRET-DEVICE-TOKEN", "$2a$12$hash"} {
		if strings.Contains(string(raw), secret) {
			t.Errorf("JSON chứa credential %q: %s", secret, raw)
		}
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("json.Unmarshal lỗi: %v", err)
	}
	for _, hidden := range []string{"token", "tokens", "password", "isBlock", "blockNote"} {
		if _, ok := m[hidden]; ok {
			t.Errorf("field %q không được xuất hiện trong JSON", hidden)
		}
	}
	for _, visible := range []string{"id", "name", "email", "createdAt", "updatedAt"} {
		if _, ok := m[visible]; !ok {
			t.Errorf("thiếu field %q trong JSON", visible)
		}
	}
}
