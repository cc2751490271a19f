package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// HTTPError is the body of every error response. Detail is usually a
// message string, or a list of field errors for rejected payloads.
type HTTPError struct {
	Detail interface{} `json:"detail"`
}

func RespondWithDetail(w http.ResponseWriter, code int, detail interface{}) {
	RespondWithJSON(w, code, HTTPError{Detail: detail})
}

func RespondWithInternalError(w http.ResponseWriter) {
	RespondWithDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ParseID reads the numeric {id} path variable.
func ParseID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
