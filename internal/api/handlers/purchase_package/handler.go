package purchase_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	"github.com/m04kA/PT-ScheduleService/internal/service/ledger"
	"github.com/m04kA/PT-ScheduleService/internal/service/ledger/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пакета"
	msgIncompleteExists   = "у клиента уже есть незавершённый пакет"
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

// Handle POST /api/v1/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PurchasePackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.PurchasePackage(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidInput):
			h.logger.Warn("POST /packages - Invalid input: clients=%v, size=%d", req.ClientNames, req.Size)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, ledger.ErrIncompletePackageExists):
			h.logger.Warn("POST /packages - Incomplete package exists: clients=%v", req.ClientNames)
			handlers.RespondConflict(w, msgIncompleteExists)

		default:
			h.logger.Error("POST /packages - Failed to purchase package: clients=%v, error=%v",
				req.ClientNames, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages - Package purchased: package_id=%d, clients=%v, size=%d",
		result.ID, result.ClientNames, result.Size)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
