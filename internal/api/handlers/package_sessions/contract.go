package package_sessions

import (
	"context"

	"github.com/m04kA/PT-ScheduleService/internal/service/ledger/models"
)

type LedgerService interface {
	PackageSessions(ctx context.Context, packageID int64) (*models.PackageSessionsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
