package domain

import (
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/search"
)

// Briefing 一次实时查询的结果
type Briefing struct {
	ID       string
	Query    string
	Format   string
	Attempts int
	Raw      string
	Evidence []search.Result
	Document report.Document
	// Blocks 行标记格式的分类结果，json 格式下为兜底时的原文分类
	Blocks []block.Block
}
