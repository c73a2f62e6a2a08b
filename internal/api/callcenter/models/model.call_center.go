// Package models - model tổng đài (CallCenter) và quan hệ sở hữu user - tổng đài.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CallCenter định nghĩa mô hình tổng đài.
// JSON tags là wire contract với client hiện có (snake_case), giữ nguyên khi đổi model.
// DeletedAt khác nil nghĩa là tổng đài đã bị xóa mềm.
type CallCenter struct {
	ID                            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                          string             `json:"name" bson:"name" index:"single"`
	CallCenterOpen                bool               `json:"call_center_open" bson:"callCenterOpen"`
	CcType                        string             `json:"cc_type" bson:"ccType" default:"Default"`
	TriggerCallActive             bool               `json:"trigger_call_active" bson:"triggerCallActive"`
	TriggerCallFrequencyInMinutes *float64           `json:"trigger_call_frequency_in_minutes" bson:"triggerCallFrequencyInMinutes,omitempty"`
	TriggerCallPhoneNumber        *string            `json:"trigger_call_phone_number" bson:"triggerCallPhoneNumber,omitempty"`
	VirtualqActive                bool               `json:"virtualq_active" bson:"virtualqActive"`
	DeletedAt                     *int64             `json:"deleted_at" bson:"deletedAt,omitempty"`
	CreatedAt                     int64              `json:"-" bson:"createdAt"`
	UpdatedAt                     int64              `json:"-" bson:"updatedAt"`
}

// IsDeleted kiểm tra tổng đài đã bị xóa mềm chưa.
func (c *CallCenter) IsDeleted() bool {
	return c.DeletedAt != nil
}
