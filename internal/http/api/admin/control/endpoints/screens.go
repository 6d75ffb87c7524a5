package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/control/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/middleware"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/redis"
)

type ScreenController struct {
	store db.Store
}

// ScreenModule mounts kiosk screen management, including pairing by the
// short code a kiosk displays after registering.
func ScreenModule(store db.Store) api.Module {
	ctl := &ScreenController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/screens", ctl.listScreens)
		c.GET("/screens/:id", ctl.getScreen)
		c.POST("/screens", ctl.createScreen)
		c.PUT("/screens/:id", ctl.updateScreen)
		c.POST("/screens/:id/pair", ctl.pairScreen)
		c.POST("/screens/:id/unpair", ctl.unpairScreen)
		c.DELETE("/screens/:id", ctl.deleteScreen)
	})
}

func screenResponse(s model.Screen) packets.ScreenResponse {
	return packets.ScreenResponse{
		ID:       s.ID,
		DeviceID: s.DeviceID,
		Name:     s.Name,
		Location: s.Location,
		Paired:   s.Paired,
	}
}

func (s *ScreenController) listScreens(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	screens, err := s.store.ListScreens()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list screens"}
	}
	out := make([]packets.ScreenResponse, 0, len(screens))
	for _, sc := range screens {
		out = append(out, screenResponse(sc))
	}
	return out, nil
}

func (s *ScreenController) getScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	screen, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	return screenResponse(screen), nil
}

func (s *ScreenController) createScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	created, err := s.store.CreateScreen(request.Name, request.Location)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create screen"}
	}
	return screenResponse(created), nil
}

func (s *ScreenController) updateScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.UpdateScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := s.store.UpdateScreen(id, request.Name, request.Location); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update screen"}
	}
	updated, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	return screenResponse(updated), nil
}

// pairScreen exchanges the pairing code the kiosk registered in Redis for
// its device ID and claims it for this screen record.
func (s *ScreenController) pairScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	var request packets.PairScreenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := s.store.GetScreenByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}

	deviceID, err := redis.Get(ctx, pairingKey(request.PairingCode))
	if err != nil {
		if redis.IsNil(err) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code not found or expired"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not look up pairing code"}
	}

	if err := s.store.PairScreen(id, deviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not pair screen"}
	}
	_ = redis.Delete(ctx, pairingKey(request.PairingCode))

	if err := middleware.PublishRefresh(deviceID); err != nil {
		log.Warn().Err(err).Str("device_id", deviceID).Msg("pair refresh publish failed")
	}

	paired, err := s.store.GetScreenByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load paired screen"}
	}
	return screenResponse(paired), nil
}

func (s *ScreenController) unpairScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if _, err := s.store.GetScreenByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "screen not found"}
	}
	if err := s.store.UnpairScreen(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not unpair screen"}
	}
	return gin.H{"unpaired": id}, nil
}

func (s *ScreenController) deleteScreen(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := s.store.DeleteScreen(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete screen"}
	}
	return gin.H{"deleted": id}, nil
}

func pairingKey(code string) string {
	return "pairing:" + code
}
