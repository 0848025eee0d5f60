package controllers_fx

import (
	"go.uber.org/fx"

	"shepherd/internal/api"
	"shepherd/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewFamilyController),
	fx.Provide(controllers.NewDonationController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewGroupController),
	fx.Provide(controllers.NewAttendanceController),
	fx.Provide(controllers.NewVolunteerController),
	fx.Provide(provideControllers))

func provideControllers(
	auth *controllers.AuthController,
	member *controllers.MemberController,
	family *controllers.FamilyController,
	donation *controllers.DonationController,
	event *controllers.EventController,
	group *controllers.GroupController,
	attendance *controllers.AttendanceController,
	volunteer *controllers.VolunteerController,
) api.Controllers {
	return api.Controllers{
		Auth:       auth,
		Member:     member,
		Family:     family,
		Donation:   donation,
		Event:      event,
		Group:      group,
		Attendance: attendance,
		Volunteer:  volunteer,
	}
}
