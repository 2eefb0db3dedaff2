package get_active_package

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/service/ledger"
)

const (
	msgInvalidClientName = "некорректное имя клиента"
	msgNoActivePackage   = "у клиента нет активного пакета"
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

// Handle GET /api/v1/clients/{clientName}/active-package
// Возвращает пакет, из которого будет списана следующая сессия клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientName := strings.TrimSpace(vars["clientName"])

	if clientName == "" {
		h.logger.Warn("GET /clients/{name}/active-package - Empty client name")
		handlers.RespondBadRequest(w, msgInvalidClientName)
		return
	}

	result, err := h.service.ActivePackageFor(r.Context(), clientName)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrNoActivePackage):
			h.logger.Info("GET /clients/{name}/active-package - No active package: client=%s", clientName)
			handlers.RespondNotFound(w, msgNoActivePackage)

		default:
			h.logger.Error("GET /clients/{name}/active-package - Failed to get active package: client=%s, error=%v",
				clientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{name}/active-package - Active package: client=%s, package_id=%d, used=%d/%d",
		clientName, result.ID, result.Used, result.Size)
	handlers.RespondJSON(w, http.StatusOK, result)
}
