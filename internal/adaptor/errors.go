package adaptor

import (
	"net/http"

	"gym-booking/pkg/apperr"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError maps service error kinds to HTTP status codes.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindConflict:
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case apperr.KindValidation:
		log.Warn(operation+" failed - invalid input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case apperr.KindDeliveryFailure:
		log.Error(operation+" failed - delivery",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
