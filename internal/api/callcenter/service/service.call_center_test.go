// Package ccsvc - Integration test cho service tổng đài.
// Cần một MongoDB local (hoặc MONGODB_CONNECTION_URI); không có thì skip.
package ccsvc

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "call_center_api/internal/api/callcenter/models"
	"call_center_api/internal/common"
	"call_center_api/internal/global"
)

const testDBName = "call_center_api_test"

// setupTestService kết nối MongoDB, đăng ký collections vào registry trên
// database test và trả về service. Mỗi lần gọi drop database test để cô lập dữ liệu.
func setupTestService(t *testing.T) *CallCenterService {
	t.Helper()

	uri := os.Getenv("MONGODB_CONNECTION_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		t.Skipf("Bỏ qua: không kết nối được MongoDB (%v)", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database(testDBName)
	if err := db.Drop(context.Background()); err != nil {
		t.Fatalf("không drop được database test: %v", err)
	}

	global.MongoDB_ColNames = global.MongoDB_CollectionName{
		Users:           "auth_users",
		CallCenters:     "call_centers",
		UserCallCenters: "user_call_centers",
	}
	for _, name := range []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.CallCenters,
		global.MongoDB_ColNames.UserCallCenters,
	} {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			t.Fatalf("không đăng ký được collection %s: %v", name, err)
		}
	}

	svc, err := NewCallCenterService()
	if err != nil {
		t.Fatalf("NewCallCenterService lỗi: %v", err)
	}
	return svc
}

func TestCallCenterService_CreateWithOwner(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := svc.CreateWithOwner(ctx, owner, models.CallCenter{
		Name:           "Hotline",
		CallCenterOpen: true,
		CcType:         "Default",
		VirtualqActive: true,
	})
	if err != nil {
		t.Fatalf("CreateWithOwner lỗi: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("tổng đài mới phải có ID")
	}
	if created.CreatedAt <= 0 || created.UpdatedAt <= 0 {
		t.Errorf("timestamp chưa được đóng dấu: createdAt=%d updatedAt=%d", created.CreatedAt, created.UpdatedAt)
	}

	// Tạo xong phải có ngay bản ghi sở hữu cho user tạo
	manageable, err := svc.IsManageable(ctx, owner, created.ID)
	if err != nil {
		t.Fatalf("IsManageable lỗi: %v", err)
	}
	if !manageable {
		t.Error("user tạo tổng đài phải có quyền quản lý ngay sau khi tạo")
	}

	items, err := svc.ListManageable(ctx, owner)
	if err != nil {
		t.Fatalf("ListManageable lỗi: %v", err)
	}
	if len(items) != 1 || items[0].ID != created.ID {
		t.Errorf("ListManageable phải trả về tổng đài vừa tạo, có: %v", items)
	}
}

func TestCallCenterService_GetManageable_ThuTuKiemTra(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	intruder := primitive.NewObjectID()

	created, err := svc.CreateWithOwner(ctx, owner, models.CallCenter{Name: "Hotline", CcType: "Default"})
	if err != nil {
		t.Fatalf("CreateWithOwner lỗi: %v", err)
	}

	t.Run("id không tồn tại trả về not found", func(t *testing.T) {
		_, err := svc.GetManageable(ctx, owner, primitive.NewObjectID())
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("err = %v, muốn ErrNotFound", err)
		}
	})

	t.Run("tồn tại nhưng không có quyền trả về forbidden", func(t *testing.T) {
		_, err := svc.GetManageable(ctx, intruder, created.ID)
		if !errors.Is(err, common.ErrForbidden) {
			t.Errorf("err = %v, muốn ErrForbidden", err)
		}
	})

	t.Run("chủ sở hữu đọc được bản ghi", func(t *testing.T) {
		cc, err := svc.GetManageable(ctx, owner, created.ID)
		if err != nil {
			t.Fatalf("GetManageable lỗi: %v", err)
		}
		if cc.Name != "Hotline" {
			t.Errorf("Name = %q, muốn Hotline", cc.Name)
		}
	})

	t.Run("đã xóa mềm thì not found kể cả với người không có quyền", func(t *testing.T) {
		if err := svc.SoftDelete(ctx, created.ID); err != nil {
			t.Fatalf("SoftDelete lỗi: %v", err)
		}
		// Kiểm tra tồn tại đứng trước kiểm tra quyền
		_, err := svc.GetManageable(ctx, owner, created.ID)
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("chủ sở hữu: err = %v, muốn ErrNotFound", err)
		}
		_, err = svc.GetManageable(ctx, intruder, created.ID)
		if !errors.Is(err, common.ErrNotFound) {
			t.Errorf("người không có quyền: err = %v, muốn ErrNotFound", err)
		}
	})
}

func TestCallCenterService_SoftDelete(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	created, err := svc.CreateWithOwner(ctx, owner, models.CallCenter{Name: "Hotline", CcType: "Default"})
	if err != nil {
		t.Fatalf("CreateWithOwner lỗi: %v", err)
	}

	if err := svc.SoftDelete(ctx, created.ID); err != nil {
		t.Fatalf("SoftDelete lỗi: %v", err)
	}

	// Bản ghi vẫn còn trong collection, chỉ được đánh dấu deletedAt
	stored, err := svc.FindOneById(ctx, created.ID)
	if err != nil {
		t.Fatalf("bản ghi xóa mềm phải còn trong collection: %v", err)
	}
	if stored.DeletedAt == nil || *stored.DeletedAt <= 0 {
		t.Errorf("deletedAt chưa được set: %v", stored.DeletedAt)
	}

	// Danh sách quản lý không được chứa tổng đài đã xóa mềm
	items, err := svc.ListManageable(ctx, owner)
	if err != nil {
		t.Fatalf("ListManageable lỗi: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("ListManageable phải bỏ qua tổng đài đã xóa mềm, có: %v", items)
	}
}
