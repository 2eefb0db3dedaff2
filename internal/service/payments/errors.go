package payments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустое имя, неположительная сумма, день вне 1..31)
	ErrInvalidInput = errors.New("payments: invalid input data")

	// ErrPaymentNotFound возвращается, когда платёж не найден
	ErrPaymentNotFound = errors.New("payments: payment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments: internal error")
)
