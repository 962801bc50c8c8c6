package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/config"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/fixtures"
	appHTTP "github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/handler/http"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/clock"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/cron"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/database"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/jwt"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/pkg/location"
	"github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/repository/postgresql"
	attendanceService "github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/service/attendance"
	authService "github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/service/auth"
	dashboardService "github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/service/dashboard"
	employeeService "github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/service/employee"
	leaveService "github.com/ab-rar-6024/Attendance-System-Mobile-v1/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	civilClock := clock.NewCivilClock()
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, civilClock, location.StaticProvider{})
	leaveSvc := leaveService.NewLeaveService(leaveRepo, attendanceRepo, civilClock)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	authSvc := authService.NewAuthService(adminRepo, employeeRepo, jwtService)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, civilClock)

	if cfg.App.Env == "development" {
		if err := fixtures.SeedDefaultAdmin(context.Background(), db); err != nil {
			fmt.Println("Error seeding default admin:", err)
			return
		}
	}

	// End-of-day sweep: employees with no record get an absent row.
	sweep := cron.NewAbsenceSweep(attendanceRepo, attendanceSvc, civilClock)
	scheduler := cron.NewScheduler(clock.CivilLocation())
	scheduler.Register("absence-sweep", 23, 55, sweep.Run)
	scheduler.Start()
	defer scheduler.Stop()

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
