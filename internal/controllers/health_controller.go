// internal/controllers/health_controller.go
package controllers

import (
	"net/http"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/app"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	if err := c.app.Ping(r.Context()); err != nil {
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Dependency check failed", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
