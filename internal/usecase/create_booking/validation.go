package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Возвращает нормализованное имя клиента
func validateRequest(req *Request, grid domain.ScheduleGrid) (string, error) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return "", ErrEmptyClient
	}

	if len(name) > domain.MaxClientNameLength {
		return "", fmt.Errorf("%w: client name is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Новые бронирования принимаются только в пределах сетки;
	// записи вне диапазона могут существовать лишь как импортированная история
	if !grid.ContainsHour(req.Hour) {
		return "", fmt.Errorf("%w: hour %d is outside the bookable range %02d..%02d",
			ErrInvalidInput, req.Hour, grid.DayStartHour, grid.DayEndHour)
	}

	return name, nil
}
