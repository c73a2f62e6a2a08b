// Package router - Test wire contract của các route tổng đài qua app Fiber.
package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"call_center_api/config"
	authdto "call_center_api/internal/api/auth/dto"
	authsvc "call_center_api/internal/api/auth/service"
	basesvc "call_center_api/internal/api/base/service"
	apirouter "call_center_api/internal/api/router"
	"call_center_api/internal/global"
)

const testDBName = "call_center_api_test"

var testTimeout = fiber.TestConfig{Timeout: 10 * time.Second}

// registerTestCollections gắn 3 collection vào registry từ client cho trước.
func registerTestCollections(t *testing.T, client *mongo.Client) {
	t.Helper()
	global.MongoDB_ServerConfig = &config.Configuration{JwtSecret: "test-secret"}
	global.MongoDB_ColNames = global.MongoDB_CollectionName{
		Users:           "auth_users",
		CallCenters:     "call_centers",
		UserCallCenters: "user_call_centers",
	}
	db := client.Database(testDBName)
	for _, name := range []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.CallCenters,
		global.MongoDB_ColNames.UserCallCenters,
	} {
		if _, err := global.RegistryCollections.Register(name, db.Collection(name)); err != nil {
			t.Fatalf("không đăng ký được collection %s: %v", name, err)
		}
	}
}

// newTestApp dựng app Fiber chỉ với các route tổng đài.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	if err := apirouter.SetupRoutes(app, Register); err != nil {
		t.Fatalf("SetupRoutes lỗi: %v", err)
	}
	return app
}

// TestCallCenterRoutes_Unauthorized kiểm tra cả 5 route đều chặn request
// không có token trước khi đụng tới database (không cần MongoDB chạy).
func TestCallCenterRoutes_Unauthorized(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	registerTestCollections(t, client)

	app := newTestApp(t)
	id := primitive.NewObjectID().Hex()

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/call_centers"},
		{"GET", "/api/v1/call_centers/" + id},
		{"POST", "/api/v1/call_centers"},
		{"PATCH", "/api/v1/call_centers/" + id},
		{"DELETE", "/api/v1/call_centers/" + id},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path+" không có token", func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			resp, err := app.Test(req, testTimeout)
			require.NoError(t, err)
			assert.Equal(t, 401, resp.StatusCode)
		})
	}

	t.Run("token không phải JWT hợp lệ bị chặn trước khi tra database", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/call_centers", nil)
		req.Header.Set("Authorization", "Bearer khong-phai-jwt")
		resp, err := app.Test(req, testTimeout)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

// --- phần dưới cần MongoDB local (hoặc MONGODB_CONNECTION_URI), không có thì skip ---

// envelope là phần response body các test cần đọc.
// Không decode field code vì nó là int khi thành công và string khi lỗi.
type envelope struct {
	Message string                 `json:"message"`
	Status  string                 `json:"status"`
	Data    json.RawMessage        `json:"data"`
	Details map[string]interface{} `json:"details"`
}

func doRequest(t *testing.T, app *fiber.App, method, path, token, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, testTimeout)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp.StatusCode, env
}

func setupLiveMongo(t *testing.T) *mongo.Client {
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

	if err := client.Database(testDBName).Drop(context.Background()); err != nil {
		t.Fatalf("không drop được database test: %v", err)
	}
	registerTestCollections(t, client)
	return client
}

// registerTestUser tạo user mới qua service đăng ký và trả về bearer token đã cấp.
func registerTestUser(t *testing.T, email string) (primitive.ObjectID, string) {
	t.Helper()
	userSvc, err := authsvc.NewUserService()
	require.NoError(t, err)
	user, err := userSvc.Register(context.Background(), &authdto.UserRegisterInput{
		Name:     "Người dùng test",
		Email:    email,
		Password: "matkhau-du-dai",
		Hwid:     "test-device",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.Token)
	return user.ID, user.Token
}

func TestCallCenterRoutes_WireContract(t *testing.T) {
	setupLiveMongo(t)
	app := newTestApp(t)

	_, ownerToken := registerTestUser(t, "owner@example.com")
	_, intruderToken := registerTestUser(t, "intruder@example.com")

	// CREATE: 201, áp default và gắn quyền sở hữu cho người tạo
	var ccID string
	t.Run("POST tạo tổng đài trả về 201", func(t *testing.T) {
		status, env := doRequest(t, app, "POST", "/api/v1/call_centers", ownerToken,
			`{"data":{"type":"call_centers","attributes":{"name":"Hotline"}}}`)
		require.Equal(t, 201, status)

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		ccID, _ = data["id"].(string)
		require.NotEmpty(t, ccID)
		assert.Equal(t, true, data["call_center_open"])
		assert.Equal(t, true, data["virtualq_active"])
		assert.Equal(t, false, data["trigger_call_active"])
		assert.Equal(t, "Default", data["cc_type"])
	})

	t.Run("POST sai type trả về 422", func(t *testing.T) {
		status, env := doRequest(t, app, "POST", "/api/v1/call_centers", ownerToken,
			`{"data":{"type":"users","attributes":{"name":"Hotline"}}}`)
		assert.Equal(t, 422, status)
		assert.Contains(t, env.Details, "type")
	})

	t.Run("GET danh sách chỉ chứa tổng đài của mình", func(t *testing.T) {
		status, env := doRequest(t, app, "GET", "/api/v1/call_centers", ownerToken, "")
		require.Equal(t, 200, status)
		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, ccID, items[0]["id"])

		status, env = doRequest(t, app, "GET", "/api/v1/call_centers", intruderToken, "")
		require.Equal(t, 200, status)
		require.NoError(t, json.Unmarshal(env.Data, &items))
		assert.Len(t, items, 0)
	})

	t.Run("GET theo id: 200 cho chủ, 403 cho người khác, 404 khi không tồn tại", func(t *testing.T) {
		status, _ := doRequest(t, app, "GET", "/api/v1/call_centers/"+ccID, ownerToken, "")
		assert.Equal(t, 200, status)

		status, _ = doRequest(t, app, "GET", "/api/v1/call_centers/"+ccID, intruderToken, "")
		assert.Equal(t, 403, status)

		status, _ = doRequest(t, app, "GET", "/api/v1/call_centers/"+primitive.NewObjectID().Hex(), ownerToken, "")
		assert.Equal(t, 404, status)

		// Id không phải ObjectID cũng coi như không tồn tại
		status, _ = doRequest(t, app, "GET", "/api/v1/call_centers/khong-hop-le", ownerToken, "")
		assert.Equal(t, 404, status)
	})

	t.Run("PATCH body hỏng trên id không tồn tại vẫn trả về 404", func(t *testing.T) {
		status, _ := doRequest(t, app, "PATCH", "/api/v1/call_centers/"+primitive.NewObjectID().Hex(), ownerToken,
			`{"data": hong`)
		assert.Equal(t, 404, status)
	})

	t.Run("PATCH name rỗng trả về 422 kèm detail", func(t *testing.T) {
		status, env := doRequest(t, app, "PATCH", "/api/v1/call_centers/"+ccID, ownerToken,
			`{"data":{"type":"call_centers","attributes":{"name":""}}}`)
		require.Equal(t, 422, status)
		assert.Equal(t, "can't be blank", env.Details["name"])
	})

	t.Run("PATCH hợp lệ trả về bản ghi đã cập nhật", func(t *testing.T) {
		status, env := doRequest(t, app, "PATCH", "/api/v1/call_centers/"+ccID, ownerToken,
			`{"data":{"type":"call_centers","attributes":{"name":"Hotline mới","call_center_open":false}}}`)
		require.Equal(t, 200, status)
		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Hotline mới", data["name"])
		assert.Equal(t, false, data["call_center_open"])

		status, _ = doRequest(t, app, "PATCH", "/api/v1/call_centers/"+ccID, intruderToken,
			`{"data":{"type":"call_centers","attributes":{"name":"chiếm"}}}`)
		assert.Equal(t, 403, status)
	})

	t.Run("DELETE xóa mềm: 204 rỗng, sau đó đọc lại ra 404", func(t *testing.T) {
		status, _ := doRequest(t, app, "DELETE", "/api/v1/call_centers/"+ccID, intruderToken, "")
		assert.Equal(t, 403, status)

		req := httptest.NewRequest("DELETE", "/api/v1/call_centers/"+ccID, nil)
		req.Header.Set("Authorization", "Bearer "+ownerToken)
		resp, err := app.Test(req, testTimeout)
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, raw, "204 phải không có body")

		status, _ = doRequest(t, app, "GET", "/api/v1/call_centers/"+ccID, ownerToken, "")
		assert.Equal(t, 404, status)
		status, _ = doRequest(t, app, "DELETE", "/api/v1/call_centers/"+ccID, ownerToken, "")
		assert.Equal(t, 404, status)
	})
}

// TestCallCenterRoutes_TaiKhoanBiKhoa kiểm tra token của tài khoản bị khóa bị coi như đã thu hồi.
func TestCallCenterRoutes_TaiKhoanBiKhoa(t *testing.T) {
	setupLiveMongo(t)
	app := newTestApp(t)

	userID, token := registerTestUser(t, "blocked@example.com")

	userSvc, err := authsvc.NewUserService()
	require.NoError(t, err)
	_, err = userSvc.UpdateById(context.Background(), userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"isBlock": true, "blockNote": "spam"},
	})
	require.NoError(t, err)

	status, _ := doRequest(t, app, "GET", "/api/v1/call_centers", token, "")
	assert.Equal(t, 401, status)
}
