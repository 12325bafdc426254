// Package grpc exposes the marketplace services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/gerich15/TemplateHub/internal/logging"
	pb "github.com/gerich15/TemplateHub/internal/proto"
	"github.com/gerich15/TemplateHub/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedMarketplaceServiceServer
	address   string
	users     *services.UserService
	catalog   *services.CatalogService
	purchases *services.PurchaseService
	logger    logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, cs *services.CatalogService, ps *services.PurchaseService) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		catalog:   cs,
		purchases: ps,
	}
}

// newServer builds the grpc.Server with interceptors and the service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterMarketplaceServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, l net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", l.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(l); err != nil {
		return err
	}

	return nil
}
