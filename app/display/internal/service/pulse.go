package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	pb "github.com/iWorld-y/signal_pulse/app/display/api/pulse/v1"
	"github.com/iWorld-y/signal_pulse/app/display/internal/usecase"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
)

type PulseService struct {
	uc  *usecase.PulseUseCase
	log *log.Helper
}

var _ pb.PulseHTTPServer = (*PulseService)(nil)

func NewPulseService(uc *usecase.PulseUseCase, logger log.Logger) *PulseService {
	return &PulseService{
		uc:  uc,
		log: log.NewHelper(logger),
	}
}

func (s *PulseService) ParseBlocks(ctx context.Context, req *pb.ParseBlocksRequest) (*pb.ParseBlocksReply, error) {
	return &pb.ParseBlocksReply{Blocks: block.EncodeAll(s.uc.Blocks(ctx, req.Text))}, nil
}

func (s *PulseService) ParseReport(ctx context.Context, req *pb.ParseReportRequest) (*pb.ParseReportReply, error) {
	return &pb.ParseReportReply{Snapshot: s.uc.Report(ctx, req.Raw).Snapshot()}, nil
}

func (s *PulseService) Query(ctx context.Context, req *pb.QueryRequest) (*pb.QueryReply, error) {
	b, err := s.uc.Query(ctx, req.Query, req.Format)
	if err != nil {
		return nil, err
	}
	return &pb.QueryReply{
		Id:       b.ID,
		Query:    b.Query,
		Format:   b.Format,
		Attempts: int32(b.Attempts),
		Raw:      b.Raw,
		Evidence: b.Evidence,
		Snapshot: b.Document.Snapshot(),
		Markup:   block.EncodeAll(b.Blocks),
	}, nil
}
