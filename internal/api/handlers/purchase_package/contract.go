package purchase_package

import (
	"context"

	"github.com/m04kA/PT-ScheduleService/internal/service/ledger/models"
)

type LedgerService interface {
	PurchasePackage(ctx context.Context, req *models.PurchasePackageRequest) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
