package usecase

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/signal_pulse/app/display/internal/domain"
	"github.com/iWorld-y/signal_pulse/app/display/internal/repo"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
)

var (
	ErrEmptyQuery        = errors.BadRequest("EMPTY_QUERY", "query is empty")
	ErrEngineUnavailable = errors.ServiceUnavailable("ENGINE_UNAVAILABLE", "live query engine is not configured")
)

// PulseUseCase 解析与实时查询业务逻辑
type PulseUseCase struct {
	querier repo.Querier
	log     *log.Helper
}

// NewPulseUseCase 创建业务逻辑实例，querier 可以为 nil
func NewPulseUseCase(querier repo.Querier, logger log.Logger) *PulseUseCase {
	return &PulseUseCase{querier: querier, log: log.NewHelper(logger)}
}

// Blocks 按行分类标记文本
func (uc *PulseUseCase) Blocks(ctx context.Context, text string) []block.Block {
	blocks := block.ClassifyLines(text)
	uc.log.WithContext(ctx).Debugf("classified %d lines", len(blocks))
	return blocks
}

// Report 解析报告，已恢复的问题只记录日志
func (uc *PulseUseCase) Report(ctx context.Context, raw string) report.Document {
	doc := report.Parse(raw)
	l := uc.log.WithContext(ctx)
	for _, issue := range doc.Issues {
		l.Warnf("report issue: %s", issue)
	}
	return doc
}

// Query 执行一次实时查询
func (uc *PulseUseCase) Query(ctx context.Context, query, format string) (*domain.Briefing, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if uc.querier == nil {
		return nil, ErrEngineUnavailable
	}

	b, err := uc.querier.Query(ctx, query, format)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("query %q failed: %v", query, err)
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("query %q done: run=%s origin=%s attempts=%d", query, b.ID, b.Document.Origin, b.Attempts)
	return b, nil
}
