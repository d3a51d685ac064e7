package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kintai-app/kintai-backend-go/internal/config"
	appHTTP "github.com/kintai-app/kintai-backend-go/internal/handler/http"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/database"
	"github.com/kintai-app/kintai-backend-go/internal/pkg/jwt"
	"github.com/kintai-app/kintai-backend-go/internal/repository/jsonfile"
	"github.com/kintai-app/kintai-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kintai-app/kintai-backend-go/internal/service/attendance"
	reportService "github.com/kintai-app/kintai-backend-go/internal/service/report"
	requestService "github.com/kintai-app/kintai-backend-go/internal/service/request"
	settingsService "github.com/kintai-app/kintai-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	entryRepo := postgresql.NewEntryRepository(db)
	requestRepo := postgresql.NewRequestRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	settingsStore, err := jsonfile.NewSettingsStore(cfg.Settings.FilePath)
	if err != nil {
		log.Fatal("Failed to initialize settings store:", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	entrySvc := attendanceService.NewEntryService(entryRepo)
	requestSvc := requestService.NewRequestService(requestRepo)
	settingsSvc := settingsService.NewSettingsService(settingsStore)
	reportSvc := reportService.NewReportService(reportRepo, settingsStore)

	attendanceHandler := appHTTP.NewAttendanceHandler(entrySvc)
	requestHandler := appHTTP.NewRequestHandler(requestSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		requestHandler,
		settingsHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
