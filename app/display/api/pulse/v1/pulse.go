package v1

import (
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/search"
)

type ParseBlocksRequest struct {
	Text string `json:"text"`
}

type ParseBlocksReply struct {
	Blocks []block.View `json:"blocks"`
}

type ParseReportRequest struct {
	Raw string `json:"raw"`
}

type ParseReportReply struct {
	report.Snapshot
}

type QueryRequest struct {
	Query string `json:"query"`
	// Format json 或 markup，为空时使用服务端配置
	Format string `json:"format"`
}

type QueryReply struct {
	Id       string          `json:"id"`
	Query    string          `json:"query"`
	Format   string          `json:"format"`
	Attempts int32           `json:"attempts"`
	Raw      string          `json:"raw"`
	Evidence []search.Result `json:"evidence"`
	report.Snapshot
	// Markup 行标记格式下的分类结果
	Markup []block.View `json:"markup"`
}
