package controllerImp

import (
	"net/http"
	"strconv"

	"coachboard/entities"
	"coachboard/pkg/summary/service"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

type SummaryCtrl struct{ svc service.SummaryService }

func New(svc service.SummaryService) *SummaryCtrl { return &SummaryCtrl{svc} }

func (h *SummaryCtrl) Get(c echo.Context) error {
	s, err := h.svc.Get(c.Param("id"), c.Param("start"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if s == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no summary for week"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SummaryCtrl) Save(c echo.Context) error {
	var form service.Form
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s, err := h.svc.Save(c.Param("id"), c.Param("start"), form)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SummaryCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("id"), c.Param("start")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

// Export streams the week's summary as an xlsx download.
func (h *SummaryCtrl) Export(c echo.Context) error {
	s, err := h.svc.Get(c.Param("id"), c.Param("start"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if s == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no summary for week"})
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Weekly Summary"
	f.SetSheetName("Sheet1", sheet)

	rows := summaryRows(s)
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="summary-`+s.ClientID+`-`+s.WeekStartDate+`.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func summaryRows(s *entities.WeeklySummary) [][]any {
	return [][]any{
		{"Client", s.ClientID},
		{"Week", s.WeekStartDate + " – " + s.WeekEndDate},
		{},
		{"Metric", "Target", "Actual"},
		{"Calories", cellNum(s.TargetCalories), cellNum(s.ActualCaloriesAvg)},
		{"Protein (g)", cellNum(s.TargetProtein), cellNum(s.ActualProteinAvg)},
		{"Fiber (g)", cellNum(s.TargetFiberMin), cellNum(s.ActualFiberAvg)},
		{"Steps", cellInt(s.TargetSteps), cellNum(s.ActualStepsAvg)},
		{"Waist (cm)", "", cellNum(s.ActualWaistAvg)},
		{"Weight (kg)", "", cellNum(s.WeeklyAvgWeight)},
		{},
		{"Trainer summary", s.TrainerSummary},
		{"Action plan", s.ActionPlan},
	}
}

func cellNum(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func cellInt(v *int) any {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
