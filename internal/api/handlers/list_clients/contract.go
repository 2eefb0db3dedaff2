package list_clients

import (
	"context"

	"github.com/m04kA/PT-ScheduleService/internal/service/ledger/models"
)

type LedgerService interface {
	ListClients(ctx context.Context) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
