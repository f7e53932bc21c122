package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"coachboard/config"
	"coachboard/database"
	"coachboard/router"

	checkinCtrlImp "coachboard/pkg/checkin/controllerImp"
	checkinRepoImp "coachboard/pkg/checkin/repositoryImp"

	programCtrlImp "coachboard/pkg/program/controllerImp"
	programRepoImp "coachboard/pkg/program/repositoryImp"
	programSvcImp "coachboard/pkg/program/serviceImp"

	summaryCtrlImp "coachboard/pkg/summary/controllerImp"
	summaryRepoImp "coachboard/pkg/summary/repositoryImp"
	summarySvcImp "coachboard/pkg/summary/serviceImp"

	healthCtrlImp "coachboard/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Repos
	ciRepo := checkinRepoImp.New(db)
	prRepo := programRepoImp.New(db)
	suRepo := summaryRepoImp.New(db)

	// 5) Services
	prSvc := programSvcImp.New(prRepo)
	suSvc := summarySvcImp.New(suRepo, ciRepo, prRepo)

	// 6) Controllers
	ciCtrl := checkinCtrlImp.New(ciRepo)
	prCtrl := programCtrlImp.New(prSvc)
	suCtrl := summaryCtrlImp.New(suSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, ciCtrl, prCtrl, suCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
