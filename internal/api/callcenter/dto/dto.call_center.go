// Package ccdto - input/output cho API tổng đài.
// Body của create/update bọc trong envelope {"data": {"type": ..., "attributes": ...}}
// theo contract của client hiện có.
package ccdto

import (
	"strings"

	models "call_center_api/internal/api/callcenter/models"
	basesvc "call_center_api/internal/api/base/service"
	"call_center_api/internal/common"
)

// ResourceType là giá trị "type" hợp lệ trong envelope.
const ResourceType = "call_centers"

// CallCenterCreateAttributes là attributes khi tạo tổng đài.
// Các field bool dùng con trỏ để phân biệt "client không gửi" (áp default)
// với "client gửi false".
type CallCenterCreateAttributes struct {
	Name                          string   `json:"name"`
	CallCenterOpen                *bool    `json:"call_center_open"`
	CcType                        string   `json:"cc_type"`
	TriggerCallActive             *bool    `json:"trigger_call_active"`
	TriggerCallFrequencyInMinutes *float64 `json:"trigger_call_frequency_in_minutes"`
	TriggerCallPhoneNumber        *string  `json:"trigger_call_phone_number"`
	VirtualqActive                *bool    `json:"virtualq_active"`
}

// CallCenterCreateInput là body tạo tổng đài.
type CallCenterCreateInput struct {
	Data struct {
		Type       string                     `json:"type"`
		Attributes CallCenterCreateAttributes `json:"attributes"`
	} `json:"data"`
}

// Validate kiểm tra envelope và attributes, trả về lỗi 422 kèm detail theo field.
func (input *CallCenterCreateInput) Validate() error {
	details := map[string]string{}
	if input.Data.Type != ResourceType {
		details["type"] = "is invalid"
	}
	if strings.TrimSpace(input.Data.Attributes.Name) == "" {
		details["name"] = common.MsgFieldBlank
	}
	if len(details) > 0 {
		return common.NewValidationError(details)
	}
	return nil
}

// ToModel chuyển attributes thành model, áp default cho các field client không gửi:
// call_center_open=true, virtualq_active=true, trigger_call_active=false, cc_type="Default".
func (input *CallCenterCreateInput) ToModel() models.CallCenter {
	attrs := input.Data.Attributes
	cc := models.CallCenter{
		Name:                          attrs.Name,
		CallCenterOpen:                true,
		CcType:                        attrs.CcType,
		TriggerCallActive:             false,
		TriggerCallFrequencyInMinutes: attrs.TriggerCallFrequencyInMinutes,
		TriggerCallPhoneNumber:        attrs.TriggerCallPhoneNumber,
		VirtualqActive:                true,
	}
	if attrs.CallCenterOpen != nil {
		cc.CallCenterOpen = *attrs.CallCenterOpen
	}
	if attrs.TriggerCallActive != nil {
		cc.TriggerCallActive = *attrs.TriggerCallActive
	}
	if attrs.VirtualqActive != nil {
		cc.VirtualqActive = *attrs.VirtualqActive
	}
	if cc.CcType == "" {
		cc.CcType = "Default"
	}
	return cc
}

// CallCenterUpdateAttributes là attributes khi cập nhật tổng đài.
// Tất cả field đều là con trỏ: chỉ field client gửi mới được cập nhật.
type CallCenterUpdateAttributes struct {
	Name                          *string  `json:"name"`
	CallCenterOpen                *bool    `json:"call_center_open"`
	CcType                        *string  `json:"cc_type"`
	TriggerCallActive             *bool    `json:"trigger_call_active"`
	TriggerCallFrequencyInMinutes *float64 `json:"trigger_call_frequency_in_minutes"`
	TriggerCallPhoneNumber        *string  `json:"trigger_call_phone_number"`
	VirtualqActive                *bool    `json:"virtualq_active"`
}

// CallCenterUpdateInput là body cập nhật tổng đài.
type CallCenterUpdateInput struct {
	Data struct {
		Type       string                     `json:"type"`
		Attributes CallCenterUpdateAttributes `json:"attributes"`
	} `json:"data"`
}

// Validate kiểm tra envelope và attributes khi cập nhật.
// Name chỉ bị bắt lỗi khi client gửi lên giá trị rỗng.
func (input *CallCenterUpdateInput) Validate() error {
	details := map[string]string{}
	if input.Data.Type != ResourceType {
		details["type"] = "is invalid"
	}
	attrs := input.Data.Attributes
	if attrs.Name != nil && strings.TrimSpace(*attrs.Name) == "" {
		details["name"] = common.MsgFieldBlank
	}
	if len(details) > 0 {
		return common.NewValidationError(details)
	}
	return nil
}

// ToUpdateData chuyển các field client gửi thành UpdateData ($set).
func (input *CallCenterUpdateInput) ToUpdateData() *basesvc.UpdateData {
	attrs := input.Data.Attributes
	set := map[string]interface{}{}
	if attrs.Name != nil {
		set["name"] = *attrs.Name
	}
	if attrs.CallCenterOpen != nil {
		set["callCenterOpen"] = *attrs.CallCenterOpen
	}
	if attrs.CcType != nil {
		set["ccType"] = *attrs.CcType
	}
	if attrs.TriggerCallActive != nil {
		set["triggerCallActive"] = *attrs.TriggerCallActive
	}
	if attrs.TriggerCallFrequencyInMinutes != nil {
		set["triggerCallFrequencyInMinutes"] = *attrs.TriggerCallFrequencyInMinutes
	}
	if attrs.TriggerCallPhoneNumber != nil {
		set["triggerCallPhoneNumber"] = *attrs.TriggerCallPhoneNumber
	}
	if attrs.VirtualqActive != nil {
		set["virtualqActive"] = *attrs.VirtualqActive
	}
	return &basesvc.UpdateData{Set: set}
}
