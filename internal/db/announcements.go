package db

import (
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

const announcementColumns = `
	id, title, description, announcement_date, image_url,
	is_active, posted_at, expiration_date`

func CreateAnnouncement(a model.Announcement) (model.Announcement, error) {
	var out model.Announcement
	const q = `
	INSERT INTO announcements
	  (title, description, announcement_date, image_url, is_active, posted_at, expiration_date)
	VALUES ($1, $2, $3, $4, $5, now(), $6)
	RETURNING ` + announcementColumns + `;`
	err := DB.Get(&out, q,
		a.Title, a.Description, a.AnnouncementDate, a.ImageURL, a.IsActive, a.ExpirationDate)
	if err != nil {
		log.Error().Err(err).Msg("CreateAnnouncement failed")
		return model.Announcement{}, err
	}
	return out, nil
}

func GetAnnouncementByID(id int) (model.Announcement, error) {
	var a model.Announcement
	err := DB.Get(&a, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("announcement_id", id).Msg("GetAnnouncementByID failed")
	}
	return a, err
}

// ListAnnouncements returns every announcement for the admin panel, newest
// first.
func ListAnnouncements() ([]model.Announcement, error) {
	var out []model.Announcement
	const q = `SELECT ` + announcementColumns + ` FROM announcements ORDER BY posted_at DESC;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListAnnouncements failed")
		return nil, err
	}
	return out, nil
}

// ListEligibleAnnouncements returns active, unexpired announcements in
// descending posted_at order, capped at limit.
func ListEligibleAnnouncements(today time.Time, limit int) ([]model.Announcement, error) {
	var out []model.Announcement
	const q = `
	SELECT ` + announcementColumns + `
	  FROM announcements
	 WHERE is_active = true
	   AND (expiration_date IS NULL OR expiration_date >= $1)
	 ORDER BY posted_at DESC
	 LIMIT $2;`
	if err := DB.Select(&out, q, today.Format("2006-01-02"), limit); err != nil {
		log.Error().Err(err).Msg("ListEligibleAnnouncements failed")
		return nil, err
	}
	return out, nil
}

func UpdateAnnouncement(a model.Announcement) (model.Announcement, error) {
	var out model.Announcement
	const q = `
	UPDATE announcements SET
	  title = $2,
	  description = $3,
	  announcement_date = $4,
	  image_url = $5,
	  is_active = $6,
	  expiration_date = $7
	WHERE id = $1
	RETURNING ` + announcementColumns + `;`
	err := DB.Get(&out, q,
		a.ID, a.Title, a.Description, a.AnnouncementDate, a.ImageURL, a.IsActive, a.ExpirationDate)
	if err != nil {
		log.Error().Err(err).Int("announcement_id", a.ID).Msg("UpdateAnnouncement failed")
		return model.Announcement{}, err
	}
	return out, nil
}

func DeleteAnnouncement(id int) error {
	_, err := DB.Exec(`DELETE FROM announcements WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("announcement_id", id).Msg("DeleteAnnouncement failed")
	}
	return err
}
