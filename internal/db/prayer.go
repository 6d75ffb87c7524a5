package db

import (
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// ListIqamahTimes returns all stored iqamah times in daily prayer order,
// with Jumuah last.
func ListIqamahTimes() ([]model.IqamahTime, error) {
	var out []model.IqamahTime
	const q = `
	SELECT prayer_name, iqamah_time, updated_at
	  FROM iqamah_times
	 ORDER BY CASE prayer_name
	     WHEN 'Fajr' THEN 1
	     WHEN 'Dhuhr' THEN 2
	     WHEN 'Asr' THEN 3
	     WHEN 'Maghrib' THEN 4
	     WHEN 'Isha' THEN 5
	     WHEN 'Jumuah' THEN 6
	     ELSE 7 END;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListIqamahTimes failed")
		return nil, err
	}
	return out, nil
}

// GetIqamahMap returns prayer name -> iqamah "HH:MM" for every stored row.
// Malformed values are returned as-is; callers treat them as inert.
func GetIqamahMap() (map[string]string, error) {
	rows, err := ListIqamahTimes()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.PrayerName] = r.IqamahTime
	}
	return out, nil
}

// UpsertIqamahTime stores the iqamah time for one prayer, creating the row
// on first save.
func UpsertIqamahTime(prayerName, iqamahTime string) error {
	_, err := DB.Exec(`
	INSERT INTO iqamah_times (prayer_name, iqamah_time, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (prayer_name)
	DO UPDATE SET iqamah_time = EXCLUDED.iqamah_time, updated_at = now();`,
		prayerName, iqamahTime)
	if err != nil {
		log.Error().Err(err).Str("prayer", prayerName).Msg("UpsertIqamahTime failed")
	}
	return err
}
