// Package ccsvc - service tổng đài và quan hệ sở hữu user - tổng đài.
package ccsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "call_center_api/internal/api/base/service"
	models "call_center_api/internal/api/callcenter/models"
	"call_center_api/internal/common"
	"call_center_api/internal/global"
	"call_center_api/internal/utility"
)

// CallCenterService là cấu trúc chứa các phương thức liên quan đến tổng đài.
// Mọi thao tác đọc/ghi đều đi qua kiểm tra quyền sở hữu (bản ghi UserCallCenter).
type CallCenterService struct {
	*basesvc.BaseServiceMongoImpl[models.CallCenter]
	ownerships *basesvc.BaseServiceMongoImpl[models.UserCallCenter]
}

// NewCallCenterService tạo mới CallCenterService
func NewCallCenterService() (*CallCenterService, error) {
	ccCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CallCenters)
	if !exist {
		return nil, fmt.Errorf("failed to get call centers collection: %v", common.ErrNotFound)
	}
	uccCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.UserCallCenters)
	if !exist {
		return nil, fmt.Errorf("failed to get user call centers collection: %v", common.ErrNotFound)
	}

	return &CallCenterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CallCenter](ccCollection),
		ownerships:           basesvc.NewBaseServiceMongo[models.UserCallCenter](uccCollection),
	}, nil
}

// ListManageable trả về các tổng đài user được quyền quản lý, bỏ qua tổng đài đã xóa mềm.
func (s *CallCenterService) ListManageable(ctx context.Context, userID primitive.ObjectID) ([]models.CallCenter, error) {
	edges, err := s.ownerships.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []models.CallCenter{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.CallCenterID)
	}

	filter := bson.M{
		"_id":       bson.M{"$in": ids},
		"deletedAt": bson.M{"$exists": false},
	}
	items, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.CallCenter{}
	}
	return items, nil
}

// GetManageable tìm tổng đài theo id và kiểm tra quyền của user.
// Tổng đài không tồn tại hoặc đã xóa mềm trả về ErrNotFound (kiểm tra trước quyền);
// tồn tại nhưng user không có quyền trả về ErrForbidden.
func (s *CallCenterService) GetManageable(ctx context.Context, userID, callCenterID primitive.ObjectID) (*models.CallCenter, error) {
	cc, err := s.FindOneById(ctx, callCenterID)
	if err != nil {
		return nil, err
	}
	if cc.IsDeleted() {
		return nil, common.ErrNotFound
	}

	manageable, err := s.IsManageable(ctx, userID, callCenterID)
	if err != nil {
		return nil, err
	}
	if !manageable {
		return nil, common.ErrForbidden
	}
	return &cc, nil
}

// IsManageable kiểm tra user có bản ghi sở hữu với tổng đài không.
func (s *CallCenterService) IsManageable(ctx context.Context, userID, callCenterID primitive.ObjectID) (bool, error) {
	return s.ownerships.DocumentExists(ctx, bson.M{"userId": userID, "callCenterId": callCenterID})
}

// CreateWithOwner tạo tổng đài mới và gắn quyền sở hữu cho user tạo.
func (s *CallCenterService) CreateWithOwner(ctx context.Context, userID primitive.ObjectID, cc models.CallCenter) (*models.CallCenter, error) {
	created, err := s.InsertOne(ctx, cc)
	if err != nil {
		return nil, err
	}

	_, err = s.ownerships.InsertOne(ctx, models.UserCallCenter{
		UserID:       userID,
		CallCenterID: created.ID,
	})
	if err != nil {
		// Tổng đài đã tạo nhưng gắn quyền thất bại, dọn lại để tránh bản ghi mồ côi
		if delErr := s.DeleteById(ctx, created.ID); delErr != nil && !errors.Is(delErr, common.ErrNotFound) {
			logrus.WithFields(logrus.Fields{"call_center_id": created.ID.Hex(), "error": delErr.Error()}).Error("CreateWithOwner: Lỗi khi dọn tổng đài mồ côi")
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"call_center_id": created.ID.Hex(), "user_id": userID.Hex()}).Info("CreateWithOwner: Tạo tổng đài thành công")
	return &created, nil
}

// Update cập nhật tổng đài theo update data đã dựng sẵn.
// Handler phải gọi GetManageable trước để kiểm tra tồn tại và quyền sở hữu.
func (s *CallCenterService) Update(ctx context.Context, callCenterID primitive.ObjectID, update *basesvc.UpdateData) (*models.CallCenter, error) {
	updated, err := s.UpdateById(ctx, callCenterID, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SoftDelete xóa mềm tổng đài (set deletedAt), bản ghi vẫn còn trong collection.
// Handler phải gọi GetManageable trước để kiểm tra tồn tại và quyền sở hữu.
func (s *CallCenterService) SoftDelete(ctx context.Context, callCenterID primitive.ObjectID) error {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"deletedAt": utility.CurrentTimeInMilli(),
		},
	}
	if _, err := s.UpdateById(ctx, callCenterID, update); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"call_center_id": callCenterID.Hex()}).Info("SoftDelete: Xóa mềm tổng đài thành công")
	return nil
}
