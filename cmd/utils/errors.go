package utils

import (
	"errors"
	"net/http"

	"github.com/KAsare1/donation-server/cmd/schema"
	"github.com/KAsare1/donation-server/db"
	"github.com/rs/zerolog"
)

// RespondWithError maps errors shared by every entity handler to a response.
// entity names the resource in not-found messages, e.g. "Campaign".
func RespondWithError(w http.ResponseWriter, r *http.Request, log zerolog.Logger, entity string, err error) {
	var serr *schema.Error
	switch {
	case errors.As(err, &serr):
		RespondWithDetail(w, http.StatusUnprocessableEntity, serr.Detail())
	case errors.Is(err, db.ErrNotFound):
		RespondWithDetail(w, http.StatusNotFound, entity+" not found")
	default:
		log.Error().
			Err(err).
			Str("request_id", GetRequestIDFromContext(r.Context())).
			Str("entity", entity).
			Msg("request failed")
		RespondWithInternalError(w)
	}
}
