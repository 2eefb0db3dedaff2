package get_week

import (
	"context"
	"time"

	"github.com/m04kA/PT-ScheduleService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, anchor time.Time) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
