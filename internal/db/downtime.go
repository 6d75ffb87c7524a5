package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

const downtimeColumns = `
	id, rule_type, days_of_week, is_active,
	start_time, end_time,
	prayer_name, minutes_before_iqamah, minutes_after_iqamah,
	created_at, updated_at`

// ListDowntimeRules returns downtime rules, optionally only active ones.
func ListDowntimeRules(activeOnly bool) ([]model.DowntimeRule, error) {
	var out []model.DowntimeRule
	q := `SELECT ` + downtimeColumns + ` FROM downtime_rules`
	if activeOnly {
		q += ` WHERE is_active = true`
	}
	q += ` ORDER BY id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListDowntimeRules failed")
		return nil, err
	}
	return out, nil
}

func GetDowntimeRule(id int) (model.DowntimeRule, error) {
	var r model.DowntimeRule
	err := DB.Get(&r, `SELECT `+downtimeColumns+` FROM downtime_rules WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("rule_id", id).Msg("GetDowntimeRule failed")
	}
	return r, err
}

// CreateDowntimeRule inserts a rule. Exactly one payload shape must be
// populated; callers validate before reaching here, and the table CHECK
// constraint backstops them.
func CreateDowntimeRule(r model.DowntimeRule) (model.DowntimeRule, error) {
	var out model.DowntimeRule
	const q = `
	INSERT INTO downtime_rules
	  (rule_type, days_of_week, is_active,
	   start_time, end_time,
	   prayer_name, minutes_before_iqamah, minutes_after_iqamah,
	   created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	RETURNING ` + downtimeColumns + `;`
	err := DB.Get(&out, q,
		r.RuleType, pq.StringArray(r.DaysOfWeek), r.IsActive,
		r.StartTime, r.EndTime,
		r.PrayerName, r.MinutesBeforeIqamah, r.MinutesAfterIqamah,
	)
	if err != nil {
		log.Error().Err(err).Msg("CreateDowntimeRule failed")
		return model.DowntimeRule{}, err
	}
	return out, nil
}

func UpdateDowntimeRule(r model.DowntimeRule) (model.DowntimeRule, error) {
	var out model.DowntimeRule
	const q = `
	UPDATE downtime_rules SET
	  rule_type = $2,
	  days_of_week = $3,
	  is_active = $4,
	  start_time = $5,
	  end_time = $6,
	  prayer_name = $7,
	  minutes_before_iqamah = $8,
	  minutes_after_iqamah = $9,
	  updated_at = now()
	WHERE id = $1
	RETURNING ` + downtimeColumns + `;`
	err := DB.Get(&out, q,
		r.ID, r.RuleType, pq.StringArray(r.DaysOfWeek), r.IsActive,
		r.StartTime, r.EndTime,
		r.PrayerName, r.MinutesBeforeIqamah, r.MinutesAfterIqamah,
	)
	if err != nil {
		log.Error().Err(err).Int("rule_id", r.ID).Msg("UpdateDowntimeRule failed")
		return model.DowntimeRule{}, err
	}
	return out, nil
}

func DeleteDowntimeRule(id int) error {
	_, err := DB.Exec(`DELETE FROM downtime_rules WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("rule_id", id).Msg("DeleteDowntimeRule failed")
	}
	return err
}
