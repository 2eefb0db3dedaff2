package get_client_bookings

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
)

const msgInvalidClientName = "некорректное имя клиента"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientName}/bookings
// История клиента без пакетов: пустой список для неизвестного имени
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientName := strings.TrimSpace(vars["clientName"])

	if clientName == "" {
		h.logger.Warn("GET /clients/{name}/bookings - Empty client name")
		handlers.RespondBadRequest(w, msgInvalidClientName)
		return
	}

	bookings, err := h.service.ClientBookings(r.Context(), clientName)
	if err != nil {
		h.logger.Error("GET /clients/{name}/bookings - Failed to list bookings: client=%s, error=%v",
			clientName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{name}/bookings - Bookings retrieved: client=%s, count=%d",
		clientName, len(bookings))
	handlers.RespondJSON(w, http.StatusOK, bookings)
}
