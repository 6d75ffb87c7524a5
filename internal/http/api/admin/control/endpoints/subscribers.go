package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/control/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

type SubscriberController struct {
	store db.Store
}

// SubscriberModule mounts the mailing list admin endpoints.
func SubscriberModule(store db.Store) api.Module {
	ctl := &SubscriberController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/subscribers", ctl.listSubscribers)
		c.POST("/subscribers", ctl.createSubscriber)
		c.DELETE("/subscribers/:id", ctl.deleteSubscriber)
	})
}

func (s *SubscriberController) listSubscribers(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	out, err := s.store.ListSubscribers()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list subscribers"}
	}
	return out, nil
}

func (s *SubscriberController) createSubscriber(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SubscriberRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	created, err := s.store.CreateSubscriber(request.Email, request.Name)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not add subscriber"}
	}
	return created, nil
}

func (s *SubscriberController) deleteSubscriber(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	if err := s.store.DeleteSubscriber(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not remove subscriber"}
	}
	return gin.H{"deleted": id}, nil
}
