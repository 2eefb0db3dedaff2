package remove_client

import "context"

type LedgerService interface {
	RemoveClient(ctx context.Context, clientName string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
