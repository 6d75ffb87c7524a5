package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/control/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/middleware"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

type DowntimeController struct {
	store db.Store
}

// DowntimeModule mounts downtime rule management.
func DowntimeModule(store db.Store) api.Module {
	ctl := &DowntimeController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/sign/downtime", ctl.listRules)
		c.POST("/sign/downtime", ctl.createRule)
		c.PUT("/sign/downtime/:id", ctl.updateRule)
		c.DELETE("/sign/downtime/:id", ctl.deleteRule)
	})
}

func (d *DowntimeController) listRules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	rules, err := d.store.ListDowntimeRules(false)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list downtime rules"}
	}
	return rules, nil
}

func ruleFromRequest(request packets.DowntimeRuleRequest) (model.DowntimeRule, *api.APIError) {
	rule := model.DowntimeRule{
		RuleType:            request.RuleType,
		DaysOfWeek:          pq.StringArray(request.DaysOfWeek),
		IsActive:            true,
		StartTime:           request.StartTime,
		EndTime:             request.EndTime,
		PrayerName:          request.PrayerName,
		MinutesBeforeIqamah: request.MinutesBeforeIqamah,
		MinutesAfterIqamah:  request.MinutesAfterIqamah,
	}
	if request.IsActive != nil {
		rule.IsActive = *request.IsActive
	}

	switch request.RuleType {
	case model.DowntimeTimeRange:
		if request.StartTime == nil || request.EndTime == nil {
			return rule, &api.APIError{Code: http.StatusBadRequest, Message: "time_range rule needs start_time and end_time"}
		}
		for _, t := range []string{*request.StartTime, *request.EndTime} {
			if _, _, ok := sign.ParseClock(t); !ok {
				return rule, &api.APIError{Code: http.StatusBadRequest, Message: "times must be HH:MM"}
			}
		}
		rule.PrayerName = nil
		rule.MinutesBeforeIqamah = nil
		rule.MinutesAfterIqamah = nil
	case model.DowntimePrayerIqamah:
		if request.PrayerName == nil || request.MinutesBeforeIqamah == nil || request.MinutesAfterIqamah == nil {
			return rule, &api.APIError{Code: http.StatusBadRequest, Message: "prayer_iqamah rule needs prayer_name and minute offsets"}
		}
		if !model.ValidPrayerName(*request.PrayerName) {
			return rule, &api.APIError{Code: http.StatusBadRequest, Message: "unknown prayer name"}
		}
		if *request.MinutesBeforeIqamah < 0 || *request.MinutesAfterIqamah < 0 {
			return rule, &api.APIError{Code: http.StatusBadRequest, Message: "minute offsets must not be negative"}
		}
		rule.StartTime = nil
		rule.EndTime = nil
	}
	return rule, nil
}

func (d *DowntimeController) createRule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.DowntimeRuleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	rule, apiErr := ruleFromRequest(request)
	if apiErr != nil {
		return nil, apiErr
	}

	created, err := d.store.CreateDowntimeRule(rule)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create downtime rule"}
	}

	middleware.PublishRefreshAll()
	return created, nil
}

func (d *DowntimeController) updateRule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.DowntimeRuleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	rule, apiErr := ruleFromRequest(request)
	if apiErr != nil {
		return nil, apiErr
	}
	rule.ID = id

	if _, err := d.store.GetDowntimeRule(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "downtime rule not found"}
	}

	updated, err := d.store.UpdateDowntimeRule(rule)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update downtime rule"}
	}

	middleware.PublishRefreshAll()
	return updated, nil
}

func (d *DowntimeController) deleteRule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := d.store.GetDowntimeRule(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "downtime rule not found"}
	}
	if err := d.store.DeleteDowntimeRule(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete downtime rule"}
	}

	middleware.PublishRefreshAll()
	return gin.H{"deleted": id}, nil
}
