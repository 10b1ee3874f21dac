package utils

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/komachi-dev/komachi/internal/errors"
	"github.com/komachi-dev/komachi/internal/logger"
)

// UnknownAddress is the sentinel used when no usable address can be
// extracted from the request. It is still a valid posterid input.
const UnknownAddress = "unknown"

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		writeErrorJSON(w, e.StatusCode, e.Message, string(e.Kind))
		return
	}
	// default error is 500; do not leak internals to the client
	writeErrorJSON(w, http.StatusInternalServerError, "Internal server error", "internal")
}

func writeErrorJSON(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}

// SubmitterAddress extracts the address used for poster id derivation.
// Order: first X-Forwarded-For entry, then RemoteAddr host, then the
// "unknown" sentinel. The value is never taken from the request body.
func SubmitterAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return UnknownAddress
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid request body", "err", err)
		return errors.Validation("Body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "err", err)
		return errors.Validation("Required fields missing or invalid")
	}
	return nil
}
