package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PT-ScheduleService/internal/api/handlers"
	createBooking "github.com/m04kA/PT-ScheduleService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgEmptyClient        = "имя клиента не указано"
	msgNoActivePackage    = "у клиента нет активного пакета тренировок"
	msgSlotOccupied       = "выбранный слот уже занят"
	msgCapacityExceeded   = "в пакете не осталось сессий"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEmptyClient):
			h.logger.Warn("POST /bookings - Empty client name")
			handlers.RespondBadRequest(w, msgEmptyClient)

		case errors.Is(err, createBooking.ErrNoActivePackage):
			h.logger.Warn("POST /bookings - No active package: client=%s", req.ClientName)
			handlers.RespondError(w, http.StatusConflict, msgNoActivePackage)

		case errors.Is(err, createBooking.ErrSlotOccupied):
			h.logger.Warn("POST /bookings - Slot occupied: date=%s, hour=%d", req.Date, req.Hour)
			handlers.RespondConflict(w, msgSlotOccupied)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Package capacity exceeded: client=%s", req.ClientName)
			handlers.RespondConflict(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: date=%s, hour=%d, client=%s",
				req.Date, req.Hour, req.ClientName)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client=%s, error=%v",
				req.ClientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, client=%s, date=%s, hour=%d, session=%d/%d",
		result.ID, result.ClientName, req.Date, result.Hour, result.SessionNumber, result.PackageSize)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
