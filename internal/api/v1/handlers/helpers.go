package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather-service/internal/apperrors"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithAppError maps err onto its status code. 5xx answers are logged as errors.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.TypeOf(err) == apperrors.ErrorTypeUnknown &&
		(errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
		err = apperrors.NewUpstreamError("request timed out", err)
	}

	code := apperrors.HTTPStatus(err)

	logger := hlog.FromRequest(r)
	if code >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("error_type", apperrors.TypeOf(err).String()).Msg("request failed")
	} else {
		logger.Debug().Err(err).Str("error_type", apperrors.TypeOf(err).String()).Msg("request rejected")
	}

	respondWithError(w, code, apperrors.PublicMessage(err))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// pathParam returns the decoded route parameter. chi routes on RawPath when
// it is set, and only then is the parameter still escaped.
func pathParam(r *http.Request, name string) string {
	param := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return param
	}
	if decoded, err := url.PathUnescape(param); err == nil {
		return decoded
	}
	return param
}
