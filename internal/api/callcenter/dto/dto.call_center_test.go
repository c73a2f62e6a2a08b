// Package ccdto - Test validate envelope và resolve default khi tạo/cập nhật tổng đài.
package ccdto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"call_center_api/internal/common"
)

func decodeCreateInput(t *testing.T, body string) CallCenterCreateInput {
	t.Helper()
	var input CallCenterCreateInput
	require.NoError(t, json.Unmarshal([]byte(body), &input))
	return input
}

func TestCreateInput_Validate(t *testing.T) {
	t.Run("envelope hợp lệ", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"call_centers","attributes":{"name":"Hotline"}}}`)
		assert.NoError(t, input.Validate())
	})

	t.Run("type sai trả về 422 kèm detail", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"users","attributes":{"name":"Hotline"}}}`)
		err := input.Validate()
		require.Error(t, err)

		var appErr *common.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, common.StatusUnprocessableEntity, appErr.StatusCode)
		details := appErr.Details.(map[string]string)
		assert.Contains(t, details, "type")
	})

	t.Run("name rỗng trả về can't be blank", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"call_centers","attributes":{"name":"   "}}}`)
		err := input.Validate()
		require.Error(t, err)

		var appErr *common.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, common.StatusUnprocessableEntity, appErr.StatusCode)
		details := appErr.Details.(map[string]string)
		assert.Equal(t, "can't be blank", details["name"])
	})

	t.Run("thiếu attributes cũng báo name blank", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"call_centers"}}`)
		err := input.Validate()
		require.Error(t, err)
	})
}

func TestCreateInput_ToModel_Defaults(t *testing.T) {
	t.Run("field không gửi được áp default", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"call_centers","attributes":{"name":"Hotline"}}}`)
		cc := input.ToModel()

		assert.Equal(t, "Hotline", cc.Name)
		assert.True(t, cc.CallCenterOpen)
		assert.True(t, cc.VirtualqActive)
		assert.False(t, cc.TriggerCallActive)
		assert.Equal(t, "Default", cc.CcType)
		assert.Nil(t, cc.TriggerCallFrequencyInMinutes)
		assert.Nil(t, cc.TriggerCallPhoneNumber)
		assert.Nil(t, cc.DeletedAt)
	})

	t.Run("client gửi false thì giữ false", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"call_centers","attributes":{"name":"Hotline","call_center_open":false,"virtualq_active":false,"trigger_call_active":true}}}`)
		cc := input.ToModel()

		assert.False(t, cc.CallCenterOpen)
		assert.False(t, cc.VirtualqActive)
		assert.True(t, cc.TriggerCallActive)
	})

	t.Run("cc_type client gửi thì giữ nguyên", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"call_centers","attributes":{"name":"Hotline","cc_type":"Premium"}}}`)
		cc := input.ToModel()
		assert.Equal(t, "Premium", cc.CcType)
	})

	t.Run("field nullable được giữ giá trị", func(t *testing.T) {
		input := decodeCreateInput(t, `{"data":{"type":"call_centers","attributes":{"name":"Hotline","trigger_call_frequency_in_minutes":15,"trigger_call_phone_number":"+4930123456"}}}`)
		cc := input.ToModel()

		require.NotNil(t, cc.TriggerCallFrequencyInMinutes)
		assert.Equal(t, float64(15), *cc.TriggerCallFrequencyInMinutes)
		require.NotNil(t, cc.TriggerCallPhoneNumber)
		assert.Equal(t, "+4930123456", *cc.TriggerCallPhoneNumber)
	})
}

func TestUpdateInput_Validate(t *testing.T) {
	t.Run("không gửi name thì không bắt lỗi name", func(t *testing.T) {
		var input CallCenterUpdateInput
		require.NoError(t, json.Unmarshal([]byte(`{"data":{"type":"call_centers","attributes":{"call_center_open":false}}}`), &input))
		assert.NoError(t, input.Validate())
	})

	t.Run("gửi name rỗng thì 422", func(t *testing.T) {
		var input CallCenterUpdateInput
		require.NoError(t, json.Unmarshal([]byte(`{"data":{"type":"call_centers","attributes":{"name":""}}}`), &input))
		err := input.Validate()
		require.Error(t, err)

		var appErr *common.Error
		require.True(t, errors.As(err, &appErr))
		details := appErr.Details.(map[string]string)
		assert.Equal(t, "can't be blank", details["name"])
	})

	t.Run("type sai thì 422", func(t *testing.T) {
		var input CallCenterUpdateInput
		require.NoError(t, json.Unmarshal([]byte(`{"data":{"type":"nope","attributes":{}}}`), &input))
		assert.Error(t, input.Validate())
	})
}

func TestUpdateInput_ToUpdateData(t *testing.T) {
	var input CallCenterUpdateInput
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"type":"call_centers","attributes":{"name":"Neu","virtualq_active":false,"trigger_call_frequency_in_minutes":30}}}`), &input))

	update := input.ToUpdateData()
	require.NotNil(t, update)

	assert.Equal(t, "Neu", update.Set["name"])
	assert.Equal(t, false, update.Set["virtualqActive"])
	assert.Equal(t, float64(30), update.Set["triggerCallFrequencyInMinutes"])

	// Field không gửi thì không được xuất hiện trong $set
	assert.NotContains(t, update.Set, "callCenterOpen")
	assert.NotContains(t, update.Set, "ccType")
	assert.NotContains(t, update.Set, "triggerCallPhoneNumber")
}
