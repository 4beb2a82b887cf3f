package repo

import (
	"context"

	"github.com/iWorld-y/signal_pulse/app/display/internal/domain"
)

// Querier 实时查询引擎接口
type Querier interface {
	// Query format 为空时使用引擎配置的默认格式
	Query(ctx context.Context, query, format string) (*domain.Briefing, error)
}
