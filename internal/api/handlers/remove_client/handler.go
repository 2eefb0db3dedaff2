package remove_client

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
	msgNotFound          = "клиент не найден"
	msgHasActivePackages = "у клиента есть незавершённые пакеты"
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

// Handle DELETE /api/v1/clients/{clientName}
// Удаляет клиента из справочника вместе с его завершёнными пакетами.
// История бронирований остаётся в календаре
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientName := strings.TrimSpace(vars["clientName"])

	if clientName == "" {
		h.logger.Warn("DELETE /clients/{name} - Empty client name")
		handlers.RespondBadRequest(w, msgInvalidClientName)
		return
	}

	err := h.service.RemoveClient(r.Context(), clientName)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrClientNotFound):
			h.logger.Warn("DELETE /clients/{name} - Client not found: client=%s", clientName)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, ledger.ErrClientHasActivePackages):
			h.logger.Warn("DELETE /clients/{name} - Client has active packages: client=%s", clientName)
			handlers.RespondConflict(w, msgHasActivePackages)

		default:
			h.logger.Error("DELETE /clients/{name} - Failed to remove client: client=%s, error=%v",
				clientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/{name} - Client removed: client=%s", clientName)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
