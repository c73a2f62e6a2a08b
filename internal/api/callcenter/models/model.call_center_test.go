// Package models - Test wire format JSON của CallCenter.
package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các field client nhìn thấy khi serialize một tổng đài.
var wireFields = []string{
	"id",
	"name",
	"call_center_open",
	"cc_type",
	"trigger_call_active",
	"trigger_call_frequency_in_minutes",
	"trigger_call_phone_number",
	"virtualq_active",
	"deleted_at",
}

func TestCallCenter_JSONWireFormat(t *testing.T) {
	cc := CallCenter{
		ID:             primitive.NewObjectID(),
		Name:           "Hotline",
		CallCenterOpen: true,
		CcType:         "Default",
		VirtualqActive: true,
		CreatedAt:      1700000000000,
		UpdatedAt:      1700000000000,
	}

	raw, err := json.Marshal(cc)
	if err != nil {
		t.Fatalf("json.Marshal lỗi: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("json.Unmarshal lỗi: %v", err)
	}

	if len(m) != len(wireFields) {
		t.Errorf("serialize ra %d field, muốn %d: %v", len(m), len(wireFields), m)
	}
	for _, f := range wireFields {
		if _, ok := m[f]; !ok {
			t.Errorf("thiếu field %q trong JSON", f)
		}
	}

	// Timestamp nội bộ không được lộ ra ngoài
	for _, hidden := range []string{"createdAt", "updatedAt", "created_at", "updated_at"} {
		if _, ok := m[hidden]; ok {
			t.Errorf("field nội bộ %q không được xuất hiện trong JSON", hidden)
		}
	}

	// Field nullable chưa set phải serialize thành null, không được biến mất
	if v, ok := m["deleted_at"]; !ok || v != nil {
		t.Errorf("deleted_at = %v, muốn null", v)
	}
	if v, ok := m["trigger_call_frequency_in_minutes"]; !ok || v != nil {
		t.Errorf("trigger_call_frequency_in_minutes = %v, muốn null", v)
	}
	if v, ok := m["trigger_call_phone_number"]; !ok || v != nil {
		t.Errorf("trigger_call_phone_number = %v, muốn null", v)
	}
}

func TestCallCenter_IsDeleted(t *testing.T) {
	cc := CallCenter{}
	if cc.IsDeleted() {
		t.Error("tổng đài chưa xóa mềm mà IsDeleted = true")
	}
	ts := int64(1700000000000)
	cc.DeletedAt = &ts
	if !cc.IsDeleted() {
		t.Error("tổng đài đã set deletedAt mà IsDeleted = false")
	}
}
