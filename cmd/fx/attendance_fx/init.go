package attendance_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shepherd/internal/repositories"
	"shepherd/internal/services"
)

var Module = fx.Provide(
	provideAttendanceService, provideAttendanceRepo)

func provideAttendanceRepo(db *gorm.DB) repositories.AttendanceRepository {
	return repositories.NewAttendanceRepository(db)
}

func provideAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	eventRepo repositories.EventRepository,
	memberRepo repositories.MemberRepository,
) services.AttendanceServiceInterface {
	return services.NewAttendanceService(attendanceRepo, eventRepo, memberRepo)
}
