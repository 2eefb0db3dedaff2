package delete_package

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
	msgIncomplete       = "пакет нельзя удалить, пока не израсходованы все сессии"
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

// Handle DELETE /api/v1/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	packageIDStr := vars["packageId"]

	packageID, err := strconv.ParseInt(packageIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	err = h.service.DeletePackage(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrPackageNotFound):
			h.logger.Warn("DELETE /packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ledger.ErrPackageIncomplete):
			h.logger.Warn("DELETE /packages/{id} - Package incomplete: package_id=%d", packageID)
			handlers.RespondConflict(w, msgIncomplete)

		default:
			h.logger.Error("DELETE /packages/{id} - Failed to delete package: package_id=%d, error=%v",
				packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /packages/{id} - Package deleted: package_id=%d", packageID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
