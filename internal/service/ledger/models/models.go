package models

import (
	"github.com/m04kA/PT-ScheduleService/internal/domain"
)

// Request модели

// PurchasePackageRequest запрос на покупку пакета
// Несколько имен — общий пакет для группы клиентов
type PurchasePackageRequest struct {
	ClientNames []string `json:"clientNames"`
	Size        int      `json:"size"`
}

// Response модели

// PackageResponse ответ с данными пакета
type PackageResponse struct {
	ID          int64    `json:"id"`
	ClientNames []string `json:"clientNames"`
	Size        int      `json:"size"`
	Used        int      `json:"used"`
	Shared      bool     `json:"shared"`
	Complete    bool     `json:"complete"`
	PurchasedAt string   `json:"purchasedAt"` // "2025-10-15"
}

// ClientResponse клиент справочника с его пакетами
// Клиент без незавершённых пакетов неактивен, но из справочника
// автоматически не исчезает
type ClientResponse struct {
	Name     string            `json:"name"`
	Active   bool              `json:"active"`
	Packages []PackageResponse `json:"packages"`
}

// ClientListResponse ответ со справочником клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// SessionResponse одна сессия в истории пакета
type SessionResponse struct {
	BookingID     int64  `json:"bookingId"`
	SessionNumber int    `json:"sessionNumber"`
	ClientName    string `json:"clientName"`
	Date          string `json:"date"` // "2025-10-15"
	Hour          int    `json:"hour"`
}

// PackageSessionsResponse история сессий пакета
type PackageSessionsResponse struct {
	PackageID int64             `json:"packageId"`
	Size      int               `json:"size"`
	Used      int               `json:"used"`
	Sessions  []SessionResponse `json:"sessions"`
}

// Методы конвертации

// FromDomainPackage конвертирует domain модель пакета в DTO
func FromDomainPackage(p *domain.Package) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:          p.ID,
		ClientNames: p.ClientNames,
		Size:        p.Size,
		Used:        p.Used,
		Shared:      p.IsShared(),
		Complete:    p.IsComplete(),
		PurchasedAt: p.PurchasedAt.Format(domain.DateFormat),
	}
}

// FromDomainSessions конвертирует бронирования пакета в историю сессий
func FromDomainSessions(pkg *domain.Package, bookings []*domain.Booking) *PackageSessionsResponse {
	resp := &PackageSessionsResponse{
		PackageID: pkg.ID,
		Size:      pkg.Size,
		Used:      pkg.Used,
		Sessions:  make([]SessionResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Sessions = append(resp.Sessions, SessionResponse{
			BookingID:     b.ID,
			SessionNumber: b.SessionNumber,
			ClientName:    b.ClientName,
			Date:          b.Date.Format(domain.DateFormat),
			Hour:          b.Hour,
		})
	}
	return resp
}
