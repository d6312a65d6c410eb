// Package grpc exposes the messagely services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/messagely/internal/logging"
	pb "github.com/dmitrijs2005/messagely/internal/proto"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type authSvc interface {
	Login(ctx context.Context, username, password string) (string, error)
	RegisterAndLogin(ctx context.Context, r models.Registration) (string, error)
}

type userSvc interface {
	List(ctx context.Context) ([]models.UserSummary, error)
	Get(ctx context.Context, username string) (*models.UserDetail, error)
}

type messageSvc interface {
	MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error)
	MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
	Send(ctx context.Context, from, to, body string) (*models.Message, error)
	Get(ctx context.Context, caller, id string) (*models.MessageDetail, error)
	MarkRead(ctx context.Context, caller, id string) (*models.MessageDetail, error)
}

type tokenVerifier interface {
	Verify(token string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedMessagelyServer
	address  string
	auth     authSvc
	users    userSvc
	messages messageSvc
	tokens   tokenVerifier
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as authSvc, us userSvc, ms messageSvc, tv tokenVerifier) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		auth:     as,
		users:    us,
		messages: ms,
		tokens:   tv,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterMessagelyServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	<-stopped
	return nil
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "request",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
