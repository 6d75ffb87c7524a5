package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/sign/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/redis"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

const pairingCodeTTL = 10 * time.Minute

type SignController struct {
	store     db.Store
	scheduler *sign.Scheduler
}

// SignModule mounts the kiosk-facing endpoints. Kiosks authenticate by
// device ID after pairing, never by JWT.
func SignModule(store db.Store, scheduler *sign.Scheduler) api.Module {
	ctl := &SignController{store: store, scheduler: scheduler}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/register", ctl.registerPairingCode)
		c.PUBLIC_GET("/state", ctl.getState)
		c.PUBLIC_POST("/audio_done", ctl.audioDone)
	})
}

// registerPairingCode stores the kiosk's short code in Redis so an admin
// can claim it. Already-paired devices are rejected.
func (s *SignController) registerPairingCode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	paired, err := s.store.IsScreenPairedByDeviceID(request.DeviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not check pairing state"}
	}
	if paired {
		log.Warn().Str("device_id", request.DeviceID).Msg("register from already paired device")
		return nil, &api.APIError{Code: http.StatusConflict, Message: "device is already paired"}
	}

	if err := redis.Set(ctx, pairingKey(request.PairingCode), request.DeviceID, pairingCodeTTL); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store pairing code"}
	}

	return gin.H{"device_id": request.DeviceID}, nil
}

// getState serves the full sign snapshot to a paired kiosk.
func (s *SignController) getState(ctx *gin.Context) (any, *api.APIError) {
	deviceID := ctx.Query("device_id")
	if deviceID == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "device_id is required"}
	}

	paired, err := s.store.IsScreenPairedByDeviceID(deviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not check pairing state"}
	}
	if !paired {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "device is not paired"}
	}

	return s.scheduler.State(), nil
}

// audioDone clears the adhan overlay after natural playback completion.
func (s *SignController) audioDone(ctx *gin.Context) (any, *api.APIError) {
	var request packets.AudioDoneRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	paired, err := s.store.IsScreenPairedByDeviceID(request.DeviceID)
	if err != nil || !paired {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "device is not paired"}
	}

	s.scheduler.AudioFinished()
	return gin.H{"ok": true}, nil
}

func pairingKey(code string) string {
	return "pairing:" + code
}
