package handlers

import (
	"encoding/json"
	"net/http"

	"iot-site-backend/errors"
	"iot-site-backend/models"

	log "github.com/sirupsen/logrus"
)

// writeJSONResponse writes a JSON response with the given status code
func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Error("Failed to encode JSON response")
	}
}

// writeErrorResponse writes an error response with the given status code
func writeErrorResponse(w http.ResponseWriter, statusCode int, message, details string) {
	errorResp := models.APIError{
		Type:    "error",
		Code:    http.StatusText(statusCode),
		Message: message,
		Details: details,
	}

	writeJSONResponse(w, statusCode, errorResp)
}

// writeAppErrorResponse writes an AppError as HTTP response
func writeAppErrorResponse(w http.ResponseWriter, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		apiError := models.APIError{
			Type:    string(appErr.Type),
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}

		writeJSONResponse(w, appErr.GetHTTPStatusCode(), apiError)

		log.WithFields(log.Fields{
			"code":  appErr.Code,
			"cause": appErr.Cause,
		}).Warn(appErr.Message)
		return
	}

	// Fallback for non-AppError
	log.WithError(err).Error("Unexpected error type")
	writeErrorResponse(w, http.StatusInternalServerError, "Internal server error", err.Error())
}
