package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Date       time.Time // дата бронирования (без времени)
	Hour       int       // час начала в базовом часовом поясе
	ClientName string    // имя клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	ClientName    string    // имя клиента
	Date          time.Time // дата бронирования
	Hour          int       // час начала
	PackageID     int64     // пакет, из которого списана сессия
	SessionNumber int       // номер сессии внутри пакета
	PackageUsed   int       // израсходовано сессий после списания
	PackageSize   int       // размер пакета

	CreatedAt time.Time // время создания
}
