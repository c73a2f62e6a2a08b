// Package cchdl - handler HTTP cho API tổng đài.
package cchdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "call_center_api/internal/api/base/handler"
	ccdto "call_center_api/internal/api/callcenter/dto"
	models "call_center_api/internal/api/callcenter/models"
	ccsvc "call_center_api/internal/api/callcenter/service"
	"call_center_api/internal/common"
	"call_center_api/internal/logger"
)

// CallCenterHandler xử lý các request CRUD tổng đài.
// Thứ tự kiểm tra trên từng resource: xác thực (middleware), tồn tại (404),
// quyền sở hữu (403), rồi mới đến dữ liệu đầu vào (422).
type CallCenterHandler struct {
	*basehdl.BaseHandler[models.CallCenter, ccdto.CallCenterCreateInput, ccdto.CallCenterUpdateInput]
	ccService *ccsvc.CallCenterService
}

// NewCallCenterHandler tạo instance mới của CallCenterHandler
func NewCallCenterHandler() (*CallCenterHandler, error) {
	ccService, err := ccsvc.NewCallCenterService()
	if err != nil {
		return nil, fmt.Errorf("failed to create call center service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.CallCenter, ccdto.CallCenterCreateInput, ccdto.CallCenterUpdateInput](ccService)
	return &CallCenterHandler{
		BaseHandler: baseHandler,
		ccService:   ccService,
	}, nil
}

// HandleList trả về danh sách tổng đài user được quyền quản lý.
func (h *CallCenterHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		items, err := h.ccService.ListManageable(c.Context(), userID)
		h.HandleResponse(c, items, err)
		return nil
	})
}

// HandleShow trả về một tổng đài theo id.
func (h *CallCenterHandler) HandleShow(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		ccID, err := h.callCenterIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		cc, err := h.ccService.GetManageable(c.Context(), userID, ccID)
		h.HandleResponse(c, cc, err)
		return nil
	})
}

// HandleCreate tạo tổng đài mới và gắn quyền sở hữu cho user tạo.
func (h *CallCenterHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input ccdto.CallCenterCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := input.Validate(); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.ccService.CreateWithOwner(c.Context(), userID, input.ToModel())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "call_center", created.ID.Hex(), c, nil)
		return basehdl.SuccessResponse(c, common.StatusCreated, common.MsgCreated, created)
	})
}

// HandleUpdate cập nhật các field client gửi lên của một tổng đài.
func (h *CallCenterHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		ccID, err := h.callCenterIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		// Kiểm tra tồn tại và quyền sở hữu trước khi đụng đến body:
		// body hỏng trên một resource không tồn tại vẫn phải trả về 404
		if _, err := h.ccService.GetManageable(c.Context(), userID, ccID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input ccdto.CallCenterUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := input.Validate(); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.ccService.Update(c.Context(), ccID, input.ToUpdateData())
		if err == nil {
			logger.LogCRUD("update", "call_center", ccID.Hex(), c, nil)
		}
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDestroy xóa mềm một tổng đài, trả về 204 không có body.
func (h *CallCenterHandler) HandleDestroy(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		ccID, err := h.callCenterIDParam(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if _, err := h.ccService.GetManageable(c.Context(), userID, ccID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ccService.SoftDelete(c.Context(), ccID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("delete", "call_center", ccID.Hex(), c, nil)
		return c.SendStatus(common.StatusNoContent)
	})
}

// callCenterIDParam đọc :id từ path. Id không phải ObjectID hợp lệ được xử lý
// như resource không tồn tại.
func (h *CallCenterHandler) callCenterIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrNotFound
	}
	return objID, nil
}

// currentUserID lấy user ID đã xác thực từ context (do AuthMiddleware set).
func (h *CallCenterHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}
