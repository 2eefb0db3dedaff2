package get_active_package

import (
	"context"

	"github.com/m04kA/PT-ScheduleService/internal/service/ledger/models"
)

type LedgerService interface {
	ActivePackageFor(ctx context.Context, clientName string) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
