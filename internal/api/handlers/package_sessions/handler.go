package package_sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/service/ledger"
)

const (
	msgInvalidPackageID = "некорректный ID пакета"
	msgNotFound         = "пакет не найден"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/packages/{packageId}/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageIDStr := vars["packageId"]

	packageID, err := strconv.ParseInt(packageIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /packages/{id}/sessions - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	result, err := h.service.PackageSessions(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrPackageNotFound):
			h.logger.Warn("GET /packages/{id}/sessions - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /packages/{id}/sessions - Failed to get sessions: package_id=%d, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /packages/{id}/sessions - Sessions retrieved: package_id=%d, count=%d",
		packageID, len(result.Sessions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
