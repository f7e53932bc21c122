package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"coachboard/entities"
	repo "coachboard/pkg/checkin/repository"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CheckInCtrl struct{ repo repo.CheckInRepository }

func New(repo repo.CheckInRepository) *CheckInCtrl { return &CheckInCtrl{repo} }

type checkinReq struct {
	Date               string   `json:"date"`
	Weight             *float64 `json:"weight"`
	CaloriesDaily      *float64 `json:"caloriesDaily"`
	ProteinDaily       *float64 `json:"proteinDaily"`
	FiberDaily         *float64 `json:"fiberDaily"`
	StepsActual        *int     `json:"stepsActual"`
	WaistCircumference *float64 `json:"waistCircumference"`
	Mood               string   `json:"mood"`
	Notes              string   `json:"notes"`
}

func (h *CheckInCtrl) Create(c echo.Context) error {
	clientID := c.Param("id")
	var req checkinReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	day := time.Now().Format("2006-01-02")
	if req.Date != "" {
		d, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date"})
		}
		day = d.Format("2006-01-02")
	}
	ci := &entities.DailyCheckIn{
		CustomerID:         clientID,
		Date:               day,
		Weight:             req.Weight,
		CaloriesDaily:      req.CaloriesDaily,
		ProteinDaily:       req.ProteinDaily,
		FiberDaily:         req.FiberDaily,
		StepsActual:        req.StepsActual,
		WaistCircumference: req.WaistCircumference,
		Mood:               req.Mood,
		Notes:              req.Notes,
	}
	if err := h.repo.Create(ci); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "check-in already exists for " + day})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ci)
}

func (h *CheckInCtrl) List(c echo.Context) error {
	out, err := h.repo.ListRange(c.Param("id"), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
