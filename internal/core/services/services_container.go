package services

import (
	"log/slog"

	"github.com/sokonihub/sokoni_gateway/internal/core/ports"
	portssvc "github.com/sokonihub/sokoni_gateway/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(kv ports.LocalKV, provider ports.RateProvider, logger *slog.Logger, currencyOpts ...CurrencyOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(kv, provider, logger, currencyOpts...),
		Notifier: NewOrderNotifier(logger),
	}
}
