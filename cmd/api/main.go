package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/staffing-backend-go/internal/config"
	appHTTP "github.com/shiftwise/staffing-backend-go/internal/handler/http"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/cron"
	"github.com/shiftwise/staffing-backend-go/internal/pkg/database"
	"github.com/shiftwise/staffing-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftwise/staffing-backend-go/internal/service/attendance"
	payrollService "github.com/shiftwise/staffing-backend-go/internal/service/payroll"
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	transactor := postgresql.NewTransactor(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	inviteRepo := postgresql.NewInviteRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	clockinRepo := postgresql.NewClockinRepository(db)
	employerRepo := postgresql.NewEmployerRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	employeePaymentRepo := postgresql.NewEmployeePaymentRepository(db)

	attendanceSvc := attendanceService.NewService(
		transactor,
		shiftRepo,
		inviteRepo,
		applicationRepo,
		clockinRepo,
		logger,
	)
	payrollSvc := payrollService.NewService(
		transactor,
		periodRepo,
		paymentRepo,
		employeePaymentRepo,
		clockinRepo,
		shiftRepo,
		employerRepo,
		workerRepo,
		logger,
		cfg.Payroll.PayShortClockedHours,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler, cfg.Jobs.SweepInterval)
	cron.NewPayrollJobs(payrollSvc, employerRepo).RegisterJobs(scheduler, cfg.Jobs.GenerateInterval)
	scheduler.Start()
	defer scheduler.Stop()

	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(tokenAuth, attendanceHandler, payrollHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
