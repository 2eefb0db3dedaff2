package ledger

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустое имя, размер вне разрешённого списка)
	ErrInvalidInput = errors.New("ledger: invalid input data")

	// ErrIncompletePackageExists возвращается при попытке купить пакет
	// клиенту, у которого уже есть незавершённый пакет
	ErrIncompletePackageExists = errors.New("ledger: client already has an incomplete package")

	// ErrNoActivePackage возвращается, когда у клиента нет пакета
	// с незакрытым счётчиком
	ErrNoActivePackage = errors.New("ledger: client has no active package")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("ledger: package not found")

	// ErrPackageIncomplete возвращается при попытке удалить пакет,
	// у которого used < size
	ErrPackageIncomplete = errors.New("ledger: package is not fully used")

	// ErrClientNotFound возвращается, когда у клиента нет ни одного пакета
	ErrClientNotFound = errors.New("ledger: client not found")

	// ErrClientHasActivePackages возвращается при попытке удалить клиента
	// с незавершёнными пакетами
	ErrClientHasActivePackages = errors.New("ledger: client has active packages")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ledger: internal error")
)
