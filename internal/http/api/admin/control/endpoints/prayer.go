package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/control/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/middleware"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

type IqamahController struct {
	store db.Store
}

// IqamahModule mounts authenticated iqamah time management.
func IqamahModule(store db.Store) api.Module {
	ctl := &IqamahController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/iqamah", ctl.listIqamahTimes)
		c.PUT("/iqamah", ctl.updateIqamahTime)
	})
}

func (i *IqamahController) listIqamahTimes(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	rows, err := i.store.ListIqamahTimes()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list iqamah times"}
	}
	return rows, nil
}

func (i *IqamahController) updateIqamahTime(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.IqamahUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !model.ValidPrayerName(request.PrayerName) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown prayer name"}
	}
	if _, _, ok := sign.ParseClock(request.IqamahTime); !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "iqamah time must be HH:MM"}
	}

	if err := i.store.UpsertIqamahTime(request.PrayerName, request.IqamahTime); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save iqamah time"}
	}

	middleware.PublishRefreshAll()
	return gin.H{"updated": request.PrayerName}, nil
}
