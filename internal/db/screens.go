package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

const screenColumns = `id, device_id, name, location, paired, created_at, updated_at`

func GetScreenByID(id int) (model.Screen, error) {
	var screen model.Screen
	err := DB.Get(&screen, `SELECT `+screenColumns+` FROM screens WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("GetScreenByID failed")
	}
	return screen, err
}

func GetScreenByDeviceID(deviceID string) (model.Screen, error) {
	var screen model.Screen
	err := DB.Get(&screen, `SELECT `+screenColumns+` FROM screens WHERE device_id = $1;`, deviceID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Str("device_id", deviceID).Msg("GetScreenByDeviceID failed")
	}
	return screen, err
}

// IsScreenPairedByDeviceID reports whether a kiosk device has been claimed
// by an admin. Unknown devices are simply unpaired, not errors.
func IsScreenPairedByDeviceID(deviceID string) (bool, error) {
	var paired bool
	err := DB.Get(&paired, `SELECT paired FROM screens WHERE device_id = $1;`, deviceID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Str("device_id", deviceID).Msg("IsScreenPairedByDeviceID failed")
		return false, err
	}
	return paired, nil
}

func ListScreens() ([]model.Screen, error) {
	var screens []model.Screen
	err := DB.Select(&screens, `SELECT `+screenColumns+` FROM screens ORDER BY id;`)
	if err != nil {
		log.Error().Err(err).Msg("ListScreens failed")
		return nil, err
	}
	return screens, nil
}

func CreateScreen(name string, location *string) (model.Screen, error) {
	var s model.Screen
	const q = `
	INSERT INTO screens (name, location, paired, created_at, updated_at)
	VALUES ($1, $2, false, now(), now())
	RETURNING ` + screenColumns + `;`
	if err := DB.Get(&s, q, name, location); err != nil {
		log.Error().Err(err).Msg("CreateScreen failed")
		return model.Screen{}, err
	}
	return s, nil
}

func UpdateScreen(id int, name, location *string) error {
	_, err := DB.Exec(`
	UPDATE screens
	   SET name = COALESCE($2, name),
	       location = COALESCE($3, location),
	       updated_at = now()
	 WHERE id = $1;`, id, name, location)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("UpdateScreen failed")
	}
	return err
}

// PairScreen claims a registered device for a screen record.
func PairScreen(id int, deviceID string) error {
	_, err := DB.Exec(`
	UPDATE screens
	   SET device_id = $2,
	       paired = true,
	       updated_at = now()
	 WHERE id = $1;`, id, deviceID)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("PairScreen failed")
	}
	return err
}

func UnpairScreen(id int) error {
	_, err := DB.Exec(`
	UPDATE screens
	   SET device_id = NULL,
	       paired = false,
	       updated_at = now()
	 WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("UnpairScreen failed")
	}
	return err
}

func DeleteScreen(id int) error {
	_, err := DB.Exec(`DELETE FROM screens WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("screen_id", id).Msg("DeleteScreen failed")
	}
	return err
}
