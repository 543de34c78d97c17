package handlers

import (
	"errors"
	"log"
	"net/http"

	"phaseplan/internal/reducer"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	http.Error(w, userMsg, status)
}

// respondWithStateError maps a failed state transition onto a status code
func respondWithStateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reducer.ErrIndexOutOfRange):
		respondWithError(w, http.StatusNotFound, err.Error(), "", nil)
	case errors.Is(err, reducer.ErrNoSuggestion):
		respondWithError(w, http.StatusConflict, err.Error(), "", nil)
	case errors.Is(err, reducer.ErrUnknownField):
		respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error applying state change", err)
	}
}
