package api

import (
	"github.com/gin-gonic/gin"

	"shepherd/internal/api/controllers"
	"shepherd/internal/models/db_models"
	mem "shepherd/pkg/memcache"
	"shepherd/pkg/middleware"
)

// Controllers bundles every HTTP controller the router mounts.
type Controllers struct {
	Auth       *controllers.AuthController
	Member     *controllers.MemberController
	Family     *controllers.FamilyController
	Donation   *controllers.DonationController
	Event      *controllers.EventController
	Group      *controllers.GroupController
	Attendance *controllers.AttendanceController
	Volunteer  *controllers.VolunteerController
}

func NewRouter(ctrl Controllers, revoked mem.RevokedTokenStore) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, ctrl, revoked)

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers, revoked mem.RevokedTokenStore) {

	staff := []string{db_models.RoleAdmin, db_models.RolePastor, db_models.RoleStaff}
	staffAndVolunteers := append([]string{db_models.RoleVolunteer}, staff...)

	auth := r.Group("/api/auth")
	auth.POST("/login", ctrl.Auth.Login)
	auth.POST("/refresh", ctrl.Auth.Refresh)

	authed := auth.Group("", middleware.JWTAuthMiddleware(revoked))
	// Accounts are created by an administrator, never self-service.
	authed.POST("/register", middleware.RequireRoles(db_models.RoleAdmin), ctrl.Auth.Register)
	authed.GET("/me", ctrl.Auth.Me)
	authed.POST("/logout", ctrl.Auth.Logout)

	members := r.Group("/api/members", middleware.JWTAuthMiddleware(revoked))
	members.GET("", middleware.RequireRoles(staffAndVolunteers...), ctrl.Member.GetActiveMembers)
	members.GET("/search", middleware.RequireRoles(staffAndVolunteers...), ctrl.Member.SearchMembers)
	members.GET("/joined", middleware.RequireRoles(staffAndVolunteers...), ctrl.Member.GetMembersByMembershipDateRange)
	members.GET("/email/:email", middleware.RequireRoles(staffAndVolunteers...), ctrl.Member.GetMemberByEmail)
	members.GET("/family/:familyId", middleware.RequireRoles(staffAndVolunteers...), ctrl.Member.GetMembersByFamily)
	members.GET("/:id", middleware.RequireRoles(staffAndVolunteers...), ctrl.Member.GetMemberById)
	members.POST("", middleware.RequireRoles(staff...), ctrl.Member.CreateMember)
	members.PUT("/:id", middleware.RequireRoles(staff...), ctrl.Member.UpdateMember)
	members.DELETE("/:id", middleware.RequireRoles(db_models.RoleAdmin), ctrl.Member.DeleteMember)

	families := r.Group("/api/families", middleware.JWTAuthMiddleware(revoked))
	families.GET("", middleware.RequireRoles(staffAndVolunteers...), ctrl.Family.GetAllFamilies)
	families.GET("/:id", middleware.RequireRoles(staffAndVolunteers...), ctrl.Family.GetFamilyById)
	families.POST("", middleware.RequireRoles(staff...), ctrl.Family.CreateFamily)
	families.PUT("/:id", middleware.RequireRoles(staff...), ctrl.Family.UpdateFamily)
	families.DELETE("/:id", middleware.RequireRoles(db_models.RoleAdmin), ctrl.Family.DeleteFamily)

	// Giving records stay staff-only, including reads.
	donations := r.Group("/api/donations", middleware.JWTAuthMiddleware(revoked))
	donations.GET("", middleware.RequireRoles(staff...), ctrl.Donation.GetAllDonations)
	donations.GET("/statistics", middleware.RequireRoles(staff...), ctrl.Donation.GetStatistics)
	donations.GET("/member/:memberId", middleware.RequireRoles(staff...), ctrl.Donation.GetDonationsByMember)
	donations.GET("/member/:memberId/total", middleware.RequireRoles(staff...), ctrl.Donation.GetTotalByMember)
	donations.GET("/:id", middleware.RequireRoles(staff...), ctrl.Donation.GetDonationById)
	donations.POST("", middleware.RequireRoles(staff...), ctrl.Donation.CreateDonation)
	donations.PUT("/:id", middleware.RequireRoles(staff...), ctrl.Donation.UpdateDonation)
	donations.DELETE("/:id", middleware.RequireRoles(db_models.RoleAdmin), ctrl.Donation.DeleteDonation)

	events := r.Group("/api/events", middleware.JWTAuthMiddleware(revoked))
	events.GET("", ctrl.Event.GetAllEvents)
	events.GET("/:id", ctrl.Event.GetEventById)
	events.POST("/:id/register", ctrl.Event.RegisterMember)
	events.POST("", middleware.RequireRoles(staff...), ctrl.Event.CreateEvent)
	events.PUT("/:id", middleware.RequireRoles(staff...), ctrl.Event.UpdateEvent)
	events.DELETE("/:id", middleware.RequireRoles(db_models.RoleAdmin), ctrl.Event.DeleteEvent)

	groups := r.Group("/api/groups", middleware.JWTAuthMiddleware(revoked))
	groups.GET("", ctrl.Group.GetActiveGroups)
	groups.GET("/:id", ctrl.Group.GetGroupById)
	groups.GET("/:id/members", middleware.RequireRoles(staffAndVolunteers...), ctrl.Group.GetGroupMembers)
	groups.POST("", middleware.RequireRoles(staff...), ctrl.Group.CreateGroup)
	groups.PUT("/:id", middleware.RequireRoles(staff...), ctrl.Group.UpdateGroup)
	groups.DELETE("/:id", middleware.RequireRoles(db_models.RoleAdmin), ctrl.Group.DeleteGroup)
	groups.POST("/:id/members", middleware.RequireRoles(staff...), ctrl.Group.AddMember)
	groups.DELETE("/:id/members/:memberId", middleware.RequireRoles(staff...), ctrl.Group.RemoveMember)

	attendance := r.Group("/api/attendance", middleware.JWTAuthMiddleware(revoked))
	attendance.POST("", middleware.RequireRoles(staffAndVolunteers...), ctrl.Attendance.RecordAttendance)
	attendance.GET("/event/:eventId", middleware.RequireRoles(staffAndVolunteers...), ctrl.Attendance.GetAttendanceByEvent)
	attendance.GET("/member/:memberId", middleware.RequireRoles(staffAndVolunteers...), ctrl.Attendance.GetAttendanceByMember)

	volunteers := r.Group("/api/volunteers", middleware.JWTAuthMiddleware(revoked))
	volunteers.GET("", middleware.RequireRoles(staff...), ctrl.Volunteer.GetActiveVolunteers)
	volunteers.GET("/ministry/:area", middleware.RequireRoles(staff...), ctrl.Volunteer.GetVolunteersByMinistryArea)
	volunteers.GET("/:id", middleware.RequireRoles(staff...), ctrl.Volunteer.GetVolunteerById)
	volunteers.POST("", middleware.RequireRoles(staff...), ctrl.Volunteer.CreateVolunteer)
	volunteers.PUT("/:id", middleware.RequireRoles(staff...), ctrl.Volunteer.UpdateVolunteer)
	volunteers.DELETE("/:id", middleware.RequireRoles(db_models.RoleAdmin), ctrl.Volunteer.DeactivateVolunteer)
}
