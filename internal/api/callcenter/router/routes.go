// Package router đăng ký các route thuộc domain tổng đài.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cchdl "call_center_api/internal/api/callcenter/handler"
	"call_center_api/internal/api/middleware"
	apirouter "call_center_api/internal/api/router"
)

// Register đăng ký các route tổng đài lên v1. Toàn bộ route đều yêu cầu xác thực.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	ccHandler, err := cchdl.NewCallCenterHandler()
	if err != nil {
		return fmt.Errorf("failed to create call center handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	auth := []fiber.Handler{authMiddleware}
	apirouter.RegisterRouteWithMiddleware(v1, "/call_centers", "GET", "/", auth, ccHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/call_centers", "POST", "/", auth, ccHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/call_centers", "GET", "/:id", auth, ccHandler.HandleShow)
	apirouter.RegisterRouteWithMiddleware(v1, "/call_centers", "PATCH", "/:id", auth, ccHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/call_centers", "DELETE", "/:id", auth, ccHandler.HandleDestroy)
	return nil
}
