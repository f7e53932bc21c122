package controllerImp

import (
	"errors"
	"net/http"

	"coachboard/pkg/program/service"

	"github.com/labstack/echo/v4"
)

type ProgramCtrl struct{ svc service.ProgramService }

func New(svc service.ProgramService) *ProgramCtrl { return &ProgramCtrl{svc} }

func (h *ProgramCtrl) Get(c echo.Context) error {
	p, err := h.svc.Active(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if p == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no active program"})
	}
	return c.JSON(http.StatusOK, p)
}

type updateReq struct {
	Fields        map[string]any    `json:"fields"`
	TemplateNames map[string]string `json:"templateNames"`
}

// Update patches the active assignment and echoes the reconstructed change
// list so the dashboard can render "what changed" without re-diffing.
func (h *ProgramCtrl) Update(c echo.Context) error {
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(req.Fields) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no fields"})
	}
	p, changes, err := h.svc.Update(c.Param("id"), req.Fields, req.TemplateNames)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveProgram) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"assignment": p, "changes": changes})
}
