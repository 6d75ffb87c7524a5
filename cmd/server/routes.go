package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	adminapi "github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/control/endpoints"
	authapi "github.com/isevvweb/ISE-Website-sub000/internal/http/api/admin/auth/endpoints"
	publicapi "github.com/isevvweb/ISE-Website-sub000/internal/http/api/public/endpoints"
	signapi "github.com/isevvweb/ISE-Website-sub000/internal/http/api/sign/endpoints"
	"github.com/isevvweb/ISE-Website-sub000/internal/mail"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
	"github.com/isevvweb/ISE-Website-sub000/internal/storage"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	storageSystem storage.Storage,
	mailer mail.Service,
	scheduler *sign.Scheduler,
	src sign.DataSource,
	loc *time.Location,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
		adminapi.IqamahModule(store),
		adminapi.SettingsModule(store),
		adminapi.DowntimeModule(store),
		adminapi.AnnouncementModule(store, storageSystem, mailer),
		adminapi.EntityModule(store, storageSystem),
		adminapi.SubscriberModule(store),
		adminapi.ScreenModule(store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/sign",
	},
		signapi.SignModule(store, scheduler),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/public",
	},
		publicapi.PublicModule(store, src, mailer, env.AdminEmail, loc),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
