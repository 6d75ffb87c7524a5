package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// GetSignSettings loads the singleton settings row. When no row exists yet
// defaults are returned. The rotation floor is re-applied on read as
// defense against rows written before validation existed.
func GetSignSettings() (model.SignSettings, error) {
	var s model.SignSettings
	const q = `
	SELECT id, max_announcements, show_descriptions, show_images,
	       rotation_interval_seconds, updated_at
	  FROM sign_settings
	 WHERE id = $1;`
	err := DB.Get(&s, q, model.SignSettingsID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SignSettings{
			ID:                      model.SignSettingsID,
			MaxAnnouncements:        3,
			ShowDescriptions:        true,
			ShowImages:              true,
			RotationIntervalSeconds: model.DefaultRotationInterval,
		}, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("GetSignSettings failed")
		return model.SignSettings{}, err
	}
	if s.RotationIntervalSeconds < model.MinRotationInterval {
		s.RotationIntervalSeconds = model.MinRotationInterval
	}
	return s, nil
}

// SaveSignSettings upserts the singleton row, creating it on first save.
func SaveSignSettings(s model.SignSettings) (model.SignSettings, error) {
	var out model.SignSettings
	const q = `
	INSERT INTO sign_settings
	  (id, max_announcements, show_descriptions, show_images, rotation_interval_seconds, updated_at)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (id) DO UPDATE SET
	  max_announcements = EXCLUDED.max_announcements,
	  show_descriptions = EXCLUDED.show_descriptions,
	  show_images = EXCLUDED.show_images,
	  rotation_interval_seconds = EXCLUDED.rotation_interval_seconds,
	  updated_at = now()
	RETURNING id, max_announcements, show_descriptions, show_images,
	          rotation_interval_seconds, updated_at;`
	err := DB.Get(&out, q,
		model.SignSettingsID,
		s.MaxAnnouncements,
		s.ShowDescriptions,
		s.ShowImages,
		s.RotationIntervalSeconds,
	)
	if err != nil {
		log.Error().Err(err).Msg("SaveSignSettings failed")
		return model.SignSettings{}, err
	}
	return out, nil
}
