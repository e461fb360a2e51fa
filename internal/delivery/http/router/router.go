// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"horeca/internal/delivery/http/middleware"
	"horeca/internal/delivery/http/router/handler"
	"horeca/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	MerchantHandler   *handler.MerchantHandler
	LocationHandler   *handler.LocationHandler
	MembershipHandler *handler.MembershipHandler
	InvitationHandler *handler.InvitationHandler
	PermissionHandler *handler.PermissionHandler
	PageHandler       *handler.PageHandler
	AuthMiddleware    *middleware.AuthMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/login/identity", p.AuthHandler.LoginWithIdentity)
		authGroup.POST("/refresh", p.AuthHandler.RefreshToken)
		authGroup.POST("/logout", p.AuthHandler.Logout)
		authGroup.POST("/logout/all", p.AuthHandler.LogoutAllDevices, p.AuthMiddleware.Authenticate)
	}

	// API routes that require authentication. Role checks happen inside the
	// use cases through the authorization resolver.
	apiGroup := e.Group("/api", p.AuthMiddleware.Authenticate)
	{
		apiGroup.GET("/me/permissions", p.PermissionHandler.GetMyPermissions)
		apiGroup.GET("/me/memberships", p.MembershipHandler.GetMyMemberships)

		apiGroup.POST("/merchants", p.MerchantHandler.CreateMerchant)
		apiGroup.GET("/merchants/:merchantID", p.MerchantHandler.GetMerchant)
		apiGroup.PUT("/merchants/:merchantID", p.MerchantHandler.UpdateMerchant)
		apiGroup.DELETE("/merchants/:merchantID", p.MerchantHandler.DeleteMerchant)

		apiGroup.GET("/merchants/:merchantID/locations", p.LocationHandler.ListLocations)
		apiGroup.POST("/merchants/:merchantID/locations", p.LocationHandler.AddLocation)
		apiGroup.GET("/locations/:locationID", p.LocationHandler.GetLocation)
		apiGroup.PUT("/locations/:locationID", p.LocationHandler.UpdateLocation)
		apiGroup.DELETE("/locations/:locationID", p.LocationHandler.DeleteLocation)
		apiGroup.POST("/locations/:locationID/assets", p.LocationHandler.UploadLocationAsset)

		apiGroup.GET("/merchants/:merchantID/members", p.MembershipHandler.ListMembers)
		apiGroup.PUT("/merchants/:merchantID/members/:membershipID", p.MembershipHandler.UpdateMembership)
		apiGroup.DELETE("/merchants/:merchantID/members/:membershipID", p.MembershipHandler.RemoveMembership)

		apiGroup.POST("/merchants/:merchantID/invitations", p.InvitationHandler.CreateInvitation)
		apiGroup.GET("/merchants/:merchantID/invitations", p.InvitationHandler.ListInvitations)
		apiGroup.GET("/merchants/:merchantID/invitations/:invitationID/qr", p.InvitationHandler.GetInvitationQR)
		apiGroup.POST("/invitations/accept", p.InvitationHandler.AcceptInvitation)
	}

	// Platform administration API, restricted to super_admin personnel.
	adminGroup := e.Group("/api/admin", p.AuthMiddleware.Authenticate, p.AuthMiddleware.RequirePlatformAdmin)
	{
		adminGroup.GET("/merchants", p.MerchantHandler.ListMerchants)
		adminGroup.GET("/merchants/search", p.MerchantHandler.SearchMerchants)
	}

	// Console pages behind the route guard: /dashboard needs a session,
	// /admin additionally needs the platform-admin override.
	dashboardGroup := e.Group(constants.DashboardPathPrefix, p.GuardMiddleware.Guard)
	{
		dashboardGroup.GET("", p.PageHandler.Dashboard)
		dashboardGroup.GET("/*", p.PageHandler.Dashboard)
	}

	adminPagesGroup := e.Group(constants.AdminPathPrefix, p.GuardMiddleware.Guard)
	{
		adminPagesGroup.GET("", p.PageHandler.AdminConsole)
		adminPagesGroup.GET("/*", p.PageHandler.AdminConsole)
	}
}
