package main

import (
	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/storage"
)

// InitStorage selects and returns the configured storage backend
func InitStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesCDNURL,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("cdn", env.SpacesCDNURL).Msg("using DigitalOcean Spaces storage")
		return spacesStorage
	}

	local := storage.NewLocalStorage("./uploads")
	log.Info().Msg("using local file storage in ./uploads")
	return local
}
