package db

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

func ListSubscribers() ([]model.Subscriber, error) {
	var out []model.Subscriber
	err := DB.Select(&out, `
	SELECT id, email, name, subscribed_at FROM subscribers ORDER BY subscribed_at DESC;`)
	if err != nil {
		log.Error().Err(err).Msg("ListSubscribers failed")
		return nil, err
	}
	return out, nil
}

// ListSubscriberEmails returns just the addresses for a blast.
func ListSubscriberEmails() ([]string, error) {
	var out []string
	err := DB.Select(&out, `SELECT email FROM subscribers ORDER BY id;`)
	if err != nil {
		log.Error().Err(err).Msg("ListSubscriberEmails failed")
		return nil, err
	}
	return out, nil
}

// CreateSubscriber adds an address to the list. Duplicate emails are a
// no-op so the public subscribe form is idempotent.
func CreateSubscriber(email string, name *string) (model.Subscriber, error) {
	var s model.Subscriber
	const q = `
	INSERT INTO subscribers (email, name, subscribed_at)
	VALUES ($1, $2, now())
	ON CONFLICT (email) DO UPDATE SET name = COALESCE(EXCLUDED.name, subscribers.name)
	RETURNING id, email, name, subscribed_at;`
	if err := DB.Get(&s, q, email, name); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			log.Error().Err(err).Str("pq_code", string(pqErr.Code)).Msg("CreateSubscriber failed")
		} else {
			log.Error().Err(err).Msg("CreateSubscriber failed")
		}
		return model.Subscriber{}, err
	}
	return s, nil
}

func DeleteSubscriber(id int) error {
	_, err := DB.Exec(`DELETE FROM subscribers WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("subscriber_id", id).Msg("DeleteSubscriber failed")
	}
	return err
}

// DeleteSubscriberByEmail supports one-click unsubscribe links.
func DeleteSubscriberByEmail(email string) error {
	_, err := DB.Exec(`DELETE FROM subscribers WHERE email = $1;`, email)
	if err != nil {
		log.Error().Err(err).Msg("DeleteSubscriberByEmail failed")
	}
	return err
}
