package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/middleware"
	"github.com/isevvweb/ISE-Website-sub000/internal/mail"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/storage"
)

type AnnouncementController struct {
	store   db.Store
	storage storage.Storage
	mailer  mail.Service
}

// AnnouncementModule mounts announcement management. Create and update
// accept multipart forms so an image can ride along.
func AnnouncementModule(store db.Store, storage storage.Storage, mailer mail.Service) api.Module {
	ctl := &AnnouncementController{store: store, storage: storage, mailer: mailer}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/announcements", ctl.listAnnouncements)
		c.GET("/announcements/:id", ctl.getAnnouncement)
		c.POST("/announcements", ctl.createAnnouncement)
		c.PUT("/announcements/:id", ctl.updateAnnouncement)
		c.DELETE("/announcements/:id", ctl.deleteAnnouncement)
	})
}

func (a *AnnouncementController) listAnnouncements(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := a.store.ListAnnouncements()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list announcements"}
	}
	return all, nil
}

func (a *AnnouncementController) getAnnouncement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	found, err := a.store.GetAnnouncementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "announcement not found"}
	}
	return found, nil
}

// announcementFromForm reads the multipart fields shared by create and
// update. Image upload happens here too.
func (a *AnnouncementController) announcementFromForm(ctx *gin.Context) (model.Announcement, *api.APIError) {
	var ann model.Announcement

	ann.Title = ctx.PostForm("title")
	if ann.Title == "" {
		return ann, &api.APIError{Code: http.StatusBadRequest, Message: "title is required"}
	}
	ann.Description = ctx.PostForm("description")

	ann.AnnouncementDate = time.Now()
	if raw := ctx.PostForm("announcement_date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ann, &api.APIError{Code: http.StatusBadRequest, Message: "announcement_date must be YYYY-MM-DD"}
		}
		ann.AnnouncementDate = d
	}

	if raw := ctx.PostForm("expiration_date"); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ann, &api.APIError{Code: http.StatusBadRequest, Message: "expiration_date must be YYYY-MM-DD"}
		}
		ann.ExpirationDate = &d
	}

	ann.IsActive = true
	if raw := ctx.PostForm("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return ann, &api.APIError{Code: http.StatusBadRequest, Message: "is_active must be a boolean"}
		}
		ann.IsActive = active
	}

	if fileHeader, err := ctx.FormFile("image"); err == nil {
		url, err := a.storage.SaveFile(fileHeader, fileHeader.Filename)
		if err != nil {
			log.Error().Err(err).Msg("announcement image upload failed")
			return ann, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store image"}
		}
		ann.ImageURL = &url
	}

	return ann, nil
}

func (a *AnnouncementController) createAnnouncement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	ann, apiErr := a.announcementFromForm(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	created, err := a.store.CreateAnnouncement(ann)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create announcement"}
	}

	if notify, _ := strconv.ParseBool(ctx.PostForm("notify_subscribers")); notify {
		emails, err := a.store.ListSubscriberEmails()
		if err == nil && len(emails) > 0 {
			a.mailer.SendMessages(mail.AnnouncementBlast(emails, created.Title, created.Description)...)
		}
	}

	middleware.PublishRefreshAll()
	return created, nil
}

func (a *AnnouncementController) updateAnnouncement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	existing, err := a.store.GetAnnouncementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "announcement not found"}
	}

	ann, apiErr := a.announcementFromForm(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	ann.ID = id
	if ann.ImageURL == nil {
		ann.ImageURL = existing.ImageURL
	}

	updated, err := a.store.UpdateAnnouncement(ann)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update announcement"}
	}

	middleware.PublishRefreshAll()
	return updated, nil
}

func (a *AnnouncementController) deleteAnnouncement(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	existing, err := a.store.GetAnnouncementByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "announcement not found"}
	}

	if err := a.store.DeleteAnnouncement(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete announcement"}
	}

	if existing.ImageURL != nil {
		if err := a.storage.DeleteFile(*existing.ImageURL); err != nil {
			log.Warn().Err(err).Int("announcement_id", id).Msg("announcement image cleanup failed")
		}
	}

	middleware.PublishRefreshAll()
	return gin.H{"deleted": id}, nil
}
