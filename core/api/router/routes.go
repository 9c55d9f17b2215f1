package router

import (
	"github.com/gofiber/fiber/v3"

	"msa_center/core/api/handler"
	"msa_center/core/api/middleware"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 KHÔNG gọi middleware nếu truyền trực tiếp trong route:
//
// ❌ CÁCH SAI:  router.Get("/path", middleware.AuthMiddleware(true), handler)
// ✅ CÁCH ĐÚNG: registerRouteWithMiddleware(router, "/prefix", "GET", "/path",
//               []fiber.Handler{authMiddleware}, handler)
//
// Mọi route trong file này phải đi qua registerRouteWithMiddleware
// ============================================================================

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: "/api"}
}

// Router quản lý việc định tuyến cho gateway
type Router struct {
	app    *fiber.App
	prefix RoutePrefix
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app:    app,
		prefix: NewRoutePrefix(),
	}
}

// registerRouteWithMiddleware đăng ký route với middleware qua .Use() method
// (cách duy nhất hoạt động đúng trong Fiber v3)
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, h fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, h)
	case "POST":
		routeGroup.Post(path, h)
	case "PUT":
		routeGroup.Put(path, h)
	case "PATCH":
		routeGroup.Patch(path, h)
	case "DELETE":
		routeGroup.Delete(path, h)
	}
}

// SetupRoutes đăng ký toàn bộ route của gateway
// Route đọc dashboard cho phép request không có token (user_id vẫn được set
// nếu có); mọi mutation bắt buộc JWT hợp lệ
func (r *Router) SetupRoutes(
	dashboard *handler.DashboardHandler,
	requests *handler.RequestHandler,
	auth *handler.AuthHandler,
	audit *handler.AuditHandler,
) {
	optionalAuth := middleware.AuthMiddleware(false)
	requireAuth := middleware.AuthMiddleware(true)

	// Health check cho load balancer, không prefix, không auth
	r.app.Get("/health", dashboard.HandleHealth)

	base := r.prefix.Base

	// Dashboard đọc
	registerRouteWithMiddleware(r.app, base, "GET", "/events", []fiber.Handler{optionalAuth}, dashboard.HandleGetEvents)
	registerRouteWithMiddleware(r.app, base, "POST", "/events/refresh", []fiber.Handler{optionalAuth}, dashboard.HandleRefreshEvents)
	registerRouteWithMiddleware(r.app, base, "GET", "/events/summary", []fiber.Handler{optionalAuth}, dashboard.HandleGetSummary)
	registerRouteWithMiddleware(r.app, base, "GET", "/stats", []fiber.Handler{optionalAuth}, dashboard.HandleGetStats)
	registerRouteWithMiddleware(r.app, base, "GET", "/cycle-info", []fiber.Handler{optionalAuth}, dashboard.HandleGetCycleInfo)
	registerRouteWithMiddleware(r.app, base, "GET", "/cycle/highlight", []fiber.Handler{optionalAuth}, dashboard.HandleCycleHighlight)

	// Requests - route tĩnh đăng ký trước route có param để match đúng
	reqPrefix := base + "/requests"
	registerRouteWithMiddleware(r.app, reqPrefix, "GET", "/my-requests", []fiber.Handler{requireAuth}, requests.HandleListMine)
	registerRouteWithMiddleware(r.app, reqPrefix, "GET", "/count-by-department", []fiber.Handler{optionalAuth}, requests.HandleCountByDepartment)
	registerRouteWithMiddleware(r.app, reqPrefix, "GET", "/status/:status", []fiber.Handler{optionalAuth}, requests.HandleListByStatus)
	registerRouteWithMiddleware(r.app, reqPrefix, "GET", "/requester/:userId", []fiber.Handler{optionalAuth}, requests.HandleListByRequester)
	registerRouteWithMiddleware(r.app, reqPrefix, "GET", "/assignee/:userId", []fiber.Handler{optionalAuth}, requests.HandleListByAssignee)
	registerRouteWithMiddleware(r.app, reqPrefix, "GET", "/:channelId", []fiber.Handler{optionalAuth}, requests.HandleGetByChannel)
	registerRouteWithMiddleware(r.app, reqPrefix, "POST", "", []fiber.Handler{requireAuth}, requests.HandleCreate)
	registerRouteWithMiddleware(r.app, reqPrefix, "PUT", "/:channelId", []fiber.Handler{requireAuth}, requests.HandleUpdate)
	registerRouteWithMiddleware(r.app, reqPrefix, "DELETE", "/:channelId", []fiber.Handler{requireAuth}, requests.HandleDelete)
	registerRouteWithMiddleware(r.app, reqPrefix, "PATCH", "/:channelId/assign", []fiber.Handler{requireAuth}, requests.HandleAssign)
	registerRouteWithMiddleware(r.app, reqPrefix, "PATCH", "/:channelId/status", []fiber.Handler{requireAuth}, requests.HandleUpdateStatus)
	registerRouteWithMiddleware(r.app, reqPrefix, "PATCH", "/:channelId/advance", []fiber.Handler{requireAuth}, requests.HandleAdvance)
	registerRouteWithMiddleware(r.app, reqPrefix, "PATCH", "/:channelId/department", []fiber.Handler{requireAuth}, requests.HandleUpdateDepartment)

	// Auth
	authPrefix := base + "/auth"
	registerRouteWithMiddleware(r.app, authPrefix, "GET", "/login-url", nil, auth.HandleLoginURL)
	registerRouteWithMiddleware(r.app, authPrefix, "POST", "/token", nil, auth.HandleSetToken)
	registerRouteWithMiddleware(r.app, authPrefix, "GET", "/user", []fiber.Handler{optionalAuth}, auth.HandleGetCurrentUser)
	registerRouteWithMiddleware(r.app, authPrefix, "GET", "/membership", []fiber.Handler{optionalAuth}, auth.HandleCheckMembership)
	registerRouteWithMiddleware(r.app, authPrefix, "POST", "/logout", []fiber.Handler{optionalAuth}, auth.HandleLogout)

	// Audit - chỉ đọc qua gateway, ghi tự động sau mutation
	auditPrefix := base + "/audit"
	registerRouteWithMiddleware(r.app, auditPrefix, "GET", "/daterange", []fiber.Handler{requireAuth}, audit.HandleListByDateRange)
	registerRouteWithMiddleware(r.app, auditPrefix, "GET", "/entity/:entityType/:entityId", []fiber.Handler{requireAuth}, audit.HandleListByEntity)
	registerRouteWithMiddleware(r.app, auditPrefix, "GET", "/type/:eventType", []fiber.Handler{requireAuth}, audit.HandleListByType)
	registerRouteWithMiddleware(r.app, auditPrefix, "GET", "/user/:userId", []fiber.Handler{requireAuth}, audit.HandleListByUser)
	registerRouteWithMiddleware(r.app, auditPrefix, "GET", "/:id", []fiber.Handler{requireAuth}, audit.HandleGetByID)
	registerRouteWithMiddleware(r.app, auditPrefix, "GET", "", []fiber.Handler{requireAuth}, audit.HandleList)
}
