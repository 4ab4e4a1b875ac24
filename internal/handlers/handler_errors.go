package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/avibhor77/rent-sub001/internal/apperrors"
	"github.com/avibhor77/rent-sub001/pkg/utils"
)

// writeError maps service errors to the HTTP surface: validation -> 400,
// missing records -> 404, everything else -> logged 500 with a generic
// message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		utils.Error(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("[Handler] internal error: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
