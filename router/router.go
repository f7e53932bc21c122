package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	checkinCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	programCtrl interface {
		Get(echo.Context) error
		Update(echo.Context) error
	},
	summaryCtrl interface {
		Get(echo.Context) error
		Save(echo.Context) error
		Delete(echo.Context) error
		Export(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/clients")
	api.POST("/:id/checkins", checkinCtrl.Create)
	api.GET("/:id/checkins", checkinCtrl.List)

	api.GET("/:id/program", programCtrl.Get)
	api.PUT("/:id/program", programCtrl.Update)

	api.GET("/:id/weeks/:start/summary", summaryCtrl.Get)
	api.POST("/:id/weeks/:start/summary", summaryCtrl.Save)
	api.DELETE("/:id/weeks/:start/summary", summaryCtrl.Delete)
	api.GET("/:id/weeks/:start/summary.xlsx", summaryCtrl.Export)

	return e
}
