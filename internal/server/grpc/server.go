package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/moodlog/internal/analytics"
	"github.com/dmitrijs2005/moodlog/internal/logging"
	"github.com/dmitrijs2005/moodlog/internal/server/models"
	"github.com/dmitrijs2005/moodlog/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type EntryService interface {
	Create(ctx context.Context, e models.NewEntry) services.Result[*models.Entry]
	List(ctx context.Context, entryType models.EntryType) services.Result[[]*models.Entry]
	Update(ctx context.Context, id int64, patch models.EntryPatch) services.Result[*models.Entry]
	Delete(ctx context.Context, id int64) services.Result[*models.Entry]
	DeleteAll(ctx context.Context, entryType models.EntryType) services.Result[bool]
}

type OverviewService interface {
	Get(ctx context.Context) services.Result[analytics.Overview]
}

type FeedbackService interface {
	ActivityFeedback(ctx context.Context) (*models.ActivityFeedback, error)
	ThoughtsFeedback(ctx context.Context) (*models.ThoughtsFeedback, error)
	DailyAchievements(ctx context.Context) (*models.DailyAchievements, error)
}

type GRPCServer struct {
	address   string
	entries   EntryService
	overview  OverviewService
	feedback  FeedbackService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, es EntryService, ovs OverviewService, fs FeedbackService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		entries:   es,
		overview:  ovs,
		feedback:  fs,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.loggingInterceptor,
		s.accessTokenInterceptor,
	))

	RegisterJournalServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(JournalServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
