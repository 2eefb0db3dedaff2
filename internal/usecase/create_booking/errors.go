package create_booking

import "errors"

var (
	// ErrEmptyClient возвращается, когда имя клиента не указано
	ErrEmptyClient = errors.New("create_booking: client name is empty")

	// ErrNoActivePackage возвращается, когда у клиента нет пакета
	// с незакрытым счётчиком сессий
	ErrNoActivePackage = errors.New("create_booking: client has no active package")

	// ErrSlotOccupied возвращается, когда слот (дата, час) уже занят
	// любым клиентом — один тренер, одно место в сетке
	ErrSlotOccupied = errors.New("create_booking: slot is already occupied")

	// ErrCapacityExceeded возвращается, когда счётчик пакета уже на размере
	ErrCapacityExceeded = errors.New("create_booking: package capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
