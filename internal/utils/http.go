package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBody caps request bodies accepted by [DecodeJSON].
const maxJSONBody = 1 << 20

// ErrEmptyBody is returned by [DecodeJSON] for a request without a body.
var ErrEmptyBody = errors.New("empty request body")

// WriteJSON serializes data to JSON, sets "Content-Type: application/json"
// and writes statusCode followed by the body. On a marshaling failure it
// answers 500 and returns the wrapped error.
//
// Example usage:
//
//	utils.WriteJSON(w, models.RegistrationResponse{RegistrationToken: t}, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes the body of r into v. Unknown fields are rejected and
// the body is limited to 1 MiB.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}
