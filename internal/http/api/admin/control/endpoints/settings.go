package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/control/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/middleware"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

type SettingsController struct {
	store db.Store
}

// SettingsModule mounts the sign settings endpoints.
func SettingsModule(store db.Store) api.Module {
	ctl := &SettingsController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/sign/settings", ctl.getSettings)
		c.PUT("/sign/settings", ctl.saveSettings)
	})
}

func (s *SettingsController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.store.GetSignSettings()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	return settings, nil
}

// saveSettings validates the rotation interval before persisting so the
// sign never spins faster than once per five seconds. Zero means "use the
// default"; any other sub-floor value is the admin asking for something we
// refuse to save.
func (s *SettingsController) saveSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SignSettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	interval := request.RotationIntervalSeconds
	if interval == 0 {
		interval = model.DefaultRotationInterval
	}
	if interval < model.MinRotationInterval {
		return nil, &api.APIError{
			Code:    http.StatusBadRequest,
			Message: "rotation interval must be at least 5 seconds",
		}
	}

	saved, err := s.store.SaveSignSettings(model.SignSettings{
		ID:                      model.SignSettingsID,
		MaxAnnouncements:        request.MaxAnnouncements,
		ShowDescriptions:        request.ShowDescriptions,
		ShowImages:              request.ShowImages,
		RotationIntervalSeconds: interval,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}

	middleware.PublishRefreshAll()
	return saved, nil
}
