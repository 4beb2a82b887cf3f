package v1

import (
	context "context"

	http "github.com/go-kratos/kratos/v2/transport/http"
	binding "github.com/go-kratos/kratos/v2/transport/http/binding"
)

// This is a compile-time assertion to ensure that this file
// is compatible with the kratos package it is being compiled against.
var _ = new(context.Context)
var _ = binding.EncodeURL

const _ = http.SupportPackageIsVersion1

const OperationPulseParseBlocks = "/api.pulse.v1.Pulse/ParseBlocks"
const OperationPulseParseReport = "/api.pulse.v1.Pulse/ParseReport"
const OperationPulseQuery = "/api.pulse.v1.Pulse/Query"

type PulseHTTPServer interface {
	// ParseBlocks 按行分类标记文本
	ParseBlocks(context.Context, *ParseBlocksRequest) (*ParseBlocksReply, error)
	// ParseReport 解析 JSON 报告信封
	ParseReport(context.Context, *ParseReportRequest) (*ParseReportReply, error)
	// Query 检索实时证据并生成报告
	Query(context.Context, *QueryRequest) (*QueryReply, error)
}

func RegisterPulseHTTPServer(s *http.Server, srv PulseHTTPServer) {
	r := s.Route("/")
	r.POST("/v1/blocks", _Pulse_ParseBlocks0_HTTP_Handler(srv))
	r.POST("/v1/report", _Pulse_ParseReport0_HTTP_Handler(srv))
	r.POST("/v1/query", _Pulse_Query0_HTTP_Handler(srv))
}

func _Pulse_ParseBlocks0_HTTP_Handler(srv PulseHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ParseBlocksRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationPulseParseBlocks)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ParseBlocks(ctx, req.(*ParseBlocksRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ParseBlocksReply)
		return ctx.Result(200, reply)
	}
}

func _Pulse_ParseReport0_HTTP_Handler(srv PulseHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in ParseReportRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationPulseParseReport)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.ParseReport(ctx, req.(*ParseReportRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*ParseReportReply)
		return ctx.Result(200, reply)
	}
}

func _Pulse_Query0_HTTP_Handler(srv PulseHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in QueryRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationPulseQuery)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Query(ctx, req.(*QueryRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*QueryReply)
		return ctx.Result(200, reply)
	}
}
