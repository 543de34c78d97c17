package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON+": "+err.Error(), "", nil)
		return false
	}
	return true
}

// pathIndex parses the named path segment as a position
func pathIndex(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	i, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidIndex+": "+name, "", nil)
		return 0, false
	}
	return i, true
}
