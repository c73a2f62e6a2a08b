package middleware

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	models "call_center_api/internal/api/auth/models"
	authsvc "call_center_api/internal/api/auth/service"
	"call_center_api/internal/common"
	"call_center_api/internal/global"
	"call_center_api/internal/logger"
	"call_center_api/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			panic(err)
		}
		authManagerInstance = &AuthManager{UserCRUD: userService}
	})
	return authManagerInstance
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực chữ ký JWT trước, tìm user theo bearer token, lưu user_id và user vào context.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác thực chữ ký và định dạng JWT trước khi tra database.
		// Token giả hoặc hỏng bị chặn ở đây, không tốn một lần query.
		if _, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Invalid token signature")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		authManager := GetAuthManager()

		// Tìm user có token.
		// Ưu tiên query field "token" (token mới nhất) vì nó được cập nhật mỗi lần login.
		// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid).
		user, err := authManager.UserCRUD.FindOne(context.Background(), bson.M{"token": token}, nil)
		if err != nil {
			user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"tokens.jwtToken": token}, nil)
		}
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra trạng thái tài khoản
		if err := authorizeUser(&user); err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		return c.Next()
	}
}

// authorizeUser kiểm tra trạng thái tài khoản sau khi tra được token.
// Tài khoản bị khóa coi như token đã bị thu hồi: trả về 401, không phân biệt
// với token không tồn tại để tránh lộ trạng thái tài khoản.
func authorizeUser(user *models.User) error {
	if user.IsBlock {
		return common.NewError(
			common.ErrCodeAuth,
			"Tài khoản đã bị khóa: "+user.BlockNote,
			common.StatusUnauthorized,
			nil,
		)
	}
	return nil
}
