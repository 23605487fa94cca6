package router

import (
	"time"

	"github.com/redis/go-redis/v9"

	"school/backend/foundation/web"
	"school/backend/internal/auth"
	"school/backend/internal/middleware"
	"school/backend/internal/pkg/repository/postgresql"
	"school/backend/internal/repository/postgres/attendance"
	"school/backend/internal/repository/postgres/parent"
	"school/backend/internal/repository/postgres/student"
	"school/backend/internal/repository/postgres/teacher"
	"school/backend/internal/repository/postgres/teacherattendance"
	"school/backend/internal/repository/postgres/user"
	calendar_service "school/backend/internal/service/calendar"

	attendance_controller "school/backend/internal/controller/http/v1/attendance"
	auth_controller "school/backend/internal/controller/http/v1/auth"
	calendar_controller "school/backend/internal/controller/http/v1/calendar"
	parent_controller "school/backend/internal/controller/http/v1/parent"
	student_controller "school/backend/internal/controller/http/v1/student"
	teacher_controller "school/backend/internal/controller/http/v1/teacher"
	teacherattendance_controller "school/backend/internal/controller/http/v1/teacherattendance"
	user_controller "school/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	calendar   *calendar_service.Client
	port       string
	auth       *auth.Auth
	jwtKey     string
	location   *time.Location
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	calendar *calendar_service.Client,
	port string,
	auth *auth.Auth,
	jwtKey string,
	location *time.Location,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		calendar,
		port,
		auth,
		jwtKey,
		location,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	studentPostgres := student.NewRepository(r.postgresDB)
	teacherPostgres := teacher.NewRepository(r.postgresDB)
	parentPostgres := parent.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB, r.redisDB, r.location)
	teacherAttendancePostgres := teacherattendance.NewRepository(r.postgresDB, r.location)

	// controller
	authController := auth_controller.NewController(userPostgres, r.jwtKey)
	userController := user_controller.NewController(userPostgres)
	studentController := student_controller.NewController(studentPostgres)
	teacherController := teacher_controller.NewController(teacherPostgres)
	parentController := parent_controller.NewController(parentPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	teacherAttendanceController := teacherattendance_controller.NewController(teacherAttendancePostgres)
	calendarController := calendar_controller.NewController(r.calendar)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #user
	r.Post("/api/v1/user/create", userController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #student
	r.Get("/api/v1/student/list", studentController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleTeacher))
	r.Post("/api/v1/student/create", studentController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/student/:id", studentController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/student/:id", studentController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/student/:id/qrcode", studentController.GetQrCode, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #teacher
	r.Get("/api/v1/teacher/list", teacherController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher/:id", teacherController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/teacher/create", teacherController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/teacher/:id", teacherController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/teacher/:id", teacherController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #parent
	r.Get("/api/v1/parent/list", parentController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/parent/count", parentController.Count, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/parent/:id", parentController.GetWithChildren, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/parent/create", parentController.CreateWithChildren, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/parent/:id/children", parentController.AddChild, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Post("/api/v1/attendance/mark", attendanceController.MarkBatch, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleTeacher))
	r.Get("/api/v1/attendance/summary", attendanceController.GetMonthlySummary, middleware.Authenticate(r.auth, auth.RoleStudent))
	r.Get("/api/v1/attendance/children", attendanceController.GetChildrenSummaries, middleware.Authenticate(r.auth, auth.RoleParent))
	r.Get("/api/v1/attendance/export", attendanceController.ExportMonthly, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleTeacher))
	r.Get("/api/v1/attendance/daily", attendanceController.GetDailySummary, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleTeacher))
	r.Get("/api/v1/attendance/daily/export", attendanceController.ExportDailySummaryPDF, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #teacher attendance
	r.Post("/api/v1/teacher-attendance/mark", teacherAttendanceController.MarkBatch, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher-attendance/list", teacherAttendanceController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/teacher-attendance/:id", teacherAttendanceController.Update, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/teacher-attendance/:id", teacherAttendanceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher-attendance/missing", teacherAttendanceController.GetWithoutAttendance, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher-attendance/daily", teacherAttendanceController.GetDailySummary, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher-attendance/period", teacherAttendanceController.GetPeriodSummary, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher-attendance/report", teacherAttendanceController.GetMonthlyReport, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher-attendance/statistics", teacherAttendanceController.GetStatistics, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/teacher-attendance/my/summary", teacherAttendanceController.GetMySummary, middleware.Authenticate(r.auth, auth.RoleTeacher))
	r.Get("/api/v1/teacher-attendance/my/history", teacherAttendanceController.GetMyHistory, middleware.Authenticate(r.auth, auth.RoleTeacher))
	r.Get("/api/v1/teacher-attendance/my/today", teacherAttendanceController.GetToday, middleware.Authenticate(r.auth, auth.RoleTeacher))

	// #calendar
	r.Get("/api/v1/calendar/status", calendarController.GetStatus, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/calendar/events", calendarController.ListEvents, middleware.Authenticate(r.auth))
	r.Post("/api/v1/calendar/events", calendarController.CreateEvent, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Put("/api/v1/calendar/events/:id", calendarController.UpdateEvent, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/calendar/events/:id", calendarController.DeleteEvent, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
