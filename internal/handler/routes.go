package handler

import "github.com/gin-gonic/gin"

// Handlers groups every HTTP handler mounted under the API prefix.
type Handlers struct {
	Sessions    *SessionHandler
	Candidates  *CandidateHandler
	Attendance  *AttendanceHandler
	Dashboard   *DashboardHandler
	Alerts      *AlertHandler
	Commissions *CommissionHandler
	Payroll     *PayrollHandler
	Exports     *ExportHandler
	Shop        *ShopHandler
}

// RegisterRoutes mounts the API on group. Session creation sits outside the
// session middleware so it never allocates a throwaway session first.
func RegisterRoutes(group *gin.RouterGroup, h Handlers, sessionMW gin.HandlerFunc) {
	group.POST("/sessions", h.Sessions.Create)
	group.GET("/visa-statuses", h.Candidates.VisaStatuses)
	group.GET("/shop/products", h.Shop.Products)

	scoped := group.Group("")
	scoped.Use(sessionMW)

	scoped.DELETE("/sessions/current", h.Sessions.End)

	scoped.GET("/candidates", h.Candidates.List)
	scoped.POST("/candidates", h.Candidates.Create)
	scoped.GET("/candidates/:id", h.Candidates.Get)
	scoped.PATCH("/candidates/:id/status", h.Candidates.UpdateStatus)

	scoped.GET("/attendance", h.Attendance.List)
	scoped.POST("/attendance", h.Attendance.Mark)

	scoped.GET("/dashboard", h.Dashboard.Summary)
	scoped.GET("/alerts/expiry", h.Alerts.Expiry)
	scoped.GET("/commissions", h.Commissions.Rollup)
	scoped.GET("/commissions/:agent", h.Commissions.Agent)
	scoped.POST("/payroll", h.Payroll.Calculate)
	scoped.GET("/exports/:report", h.Exports.Download)

	scoped.GET("/shop/cart", h.Shop.Cart)
	scoped.POST("/shop/cart/items", h.Shop.AddItem)
	scoped.POST("/shop/cart/checkout", h.Shop.Checkout)
}
