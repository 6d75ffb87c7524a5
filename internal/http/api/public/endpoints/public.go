package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api/public/packets"
	"github.com/isevvweb/ISE-Website-sub000/internal/mail"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

// websiteAnnouncementLimit caps the public listing, which is separate
// from the sign's max_announcements setting.
const websiteAnnouncementLimit = 50

type PublicController struct {
	store      db.Store
	src        sign.DataSource
	mailer     mail.Service
	adminEmail string
	loc        *time.Location
}

// PublicModule mounts the unauthenticated website endpoints.
func PublicModule(store db.Store, src sign.DataSource, mailer mail.Service, adminEmail string, loc *time.Location) api.Module {
	ctl := &PublicController{store: store, src: src, mailer: mailer, adminEmail: adminEmail, loc: loc}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/prayer-times", ctl.getPrayerTimes)
		c.PUBLIC_GET("/announcements", ctl.listAnnouncements)
		c.PUBLIC_GET("/events", ctl.listEvents)
		c.PUBLIC_GET("/causes", ctl.listCauses)
		c.PUBLIC_GET("/board", ctl.listBoard)
		c.PUBLIC_GET("/trustees", ctl.listTrustees)
		c.PUBLIC_GET("/youth", ctl.listYouth)
		c.PUBLIC_GET("/reports", ctl.listReports)

		c.PUBLIC_POST("/contact", ctl.submitContact)
		c.PUBLIC_POST("/quran-request", ctl.submitQuranRequest)
		c.PUBLIC_POST("/membership", ctl.submitMembership)
		c.PUBLIC_POST("/subscribe", ctl.subscribe)
		c.PUBLIC_POST("/unsubscribe", ctl.unsubscribe)
	})
}

func (p *PublicController) now() time.Time {
	return time.Now().In(p.loc)
}

func (p *PublicController) getPrayerTimes(ctx *gin.Context) (any, *api.APIError) {
	schedule, err := p.src.PrayerSchedule(ctx, p.now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "prayer times are temporarily unavailable"}
	}
	return schedule, nil
}

func (p *PublicController) listAnnouncements(ctx *gin.Context) (any, *api.APIError) {
	out, err := p.store.ListEligibleAnnouncements(p.now(), websiteAnnouncementLimit)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list announcements"}
	}
	return out, nil
}

func (p *PublicController) listEvents(ctx *gin.Context) (any, *api.APIError) {
	events, err := p.src.UpcomingEvents(ctx, p.now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusServiceUnavailable, Message: "events are temporarily unavailable"}
	}
	return events, nil
}

func (p *PublicController) listCauses(ctx *gin.Context) (any, *api.APIError) {
	out, err := p.store.ListDonationCauses(true)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list donation causes"}
	}
	return out, nil
}

func (p *PublicController) listBoard(ctx *gin.Context) (any, *api.APIError) {
	out, err := p.store.ListBoardMembers()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list board members"}
	}
	return out, nil
}

func (p *PublicController) listTrustees(ctx *gin.Context) (any, *api.APIError) {
	out, err := p.store.ListTrustees()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list trustees"}
	}
	return out, nil
}

func (p *PublicController) listYouth(ctx *gin.Context) (any, *api.APIError) {
	out, err := p.store.ListYouthPrograms()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list youth programs"}
	}
	return out, nil
}

func (p *PublicController) listReports(ctx *gin.Context) (any, *api.APIError) {
	out, err := p.store.ListAnnualReports()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list annual reports"}
	}
	return out, nil
}

// Form submissions are acknowledged immediately; delivery is
// fire-and-forget through the mail service.

func (p *PublicController) submitContact(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ContactRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	p.mailer.SendMessages(mail.ContactFormMessage(p.adminEmail, request.Name, request.Email, request.Phone, request.Message))
	return gin.H{"received": true}, nil
}

func (p *PublicController) submitQuranRequest(ctx *gin.Context) (any, *api.APIError) {
	var request packets.QuranRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	p.mailer.SendMessages(mail.QuranRequestMessage(p.adminEmail, request.Name, request.Email, request.Address))
	return gin.H{"received": true}, nil
}

func (p *PublicController) submitMembership(ctx *gin.Context) (any, *api.APIError) {
	var request packets.MembershipRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	p.mailer.SendMessages(mail.MembershipMessage(p.adminEmail, request.Name, request.Email, request.Phone, request.FamilyMembers))
	return gin.H{"received": true}, nil
}

func (p *PublicController) subscribe(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SubscribeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if _, err := p.store.CreateSubscriber(request.Email, request.Name); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not subscribe"}
	}
	return gin.H{"subscribed": true}, nil
}

func (p *PublicController) unsubscribe(ctx *gin.Context) (any, *api.APIError) {
	var request packets.UnsubscribeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if err := p.store.DeleteSubscriberByEmail(request.Email); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not unsubscribe"}
	}
	return gin.H{"unsubscribed": true}, nil
}
