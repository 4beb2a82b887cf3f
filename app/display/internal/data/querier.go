package data

import (
	"context"
	stderrors "errors"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/signal_pulse/app/display/internal/domain"
	"github.com/iWorld-y/signal_pulse/app/display/internal/repo"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/engine"
)

// Engine 引擎对外能力，便于替换
type Engine interface {
	Query(ctx context.Context, opts engine.QueryOptions) (*engine.Result, error)
}

type engineQuerier struct {
	eng Engine
}

// NewQuerier 将引擎适配为 repo.Querier。eng 为 nil 时返回 nil，表示未启用实时查询
func NewQuerier(eng *engine.Engine) repo.Querier {
	if eng == nil {
		return nil
	}
	return &engineQuerier{eng: eng}
}

func (q *engineQuerier) Query(ctx context.Context, query, format string) (*domain.Briefing, error) {
	var f engine.Format
	if format != "" {
		parsed, err := engine.ParseFormat(format)
		if err != nil {
			return nil, errors.BadRequest("INVALID_FORMAT", err.Error())
		}
		f = parsed
	}

	res, err := q.eng.Query(ctx, engine.QueryOptions{Query: query, Format: f})
	if err != nil {
		if stderrors.Is(err, engine.ErrEmptyQuery) {
			return nil, errors.BadRequest("EMPTY_QUERY", err.Error())
		}
		if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.GatewayTimeout("QUERY_TIMEOUT", err.Error())
		}
		return nil, errors.New(502, "MODEL_FAILED", err.Error())
	}

	return &domain.Briefing{
		ID:       res.ID,
		Query:    res.Query,
		Format:   string(res.Format),
		Attempts: res.Attempts,
		Raw:      res.Raw,
		Evidence: res.Evidence,
		Document: res.Document,
		Blocks:   res.Blocks,
	}, nil
}
