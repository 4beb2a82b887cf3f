package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/signal_pulse/app/display/internal/data"
	"github.com/iWorld-y/signal_pulse/app/display/internal/service"
	"github.com/iWorld-y/signal_pulse/app/display/internal/usecase"
)

// ProviderSet 是展示服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,
	NewPulseEngine,

	// Data providers
	data.NewQuerier,

	// UseCase providers
	usecase.NewPulseUseCase,

	// Service providers
	service.NewPulseService,
)
