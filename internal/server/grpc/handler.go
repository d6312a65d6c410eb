package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	pb "github.com/dmitrijs2005/messagely/internal/proto"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.TokenResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.Username)

	token, err := s.auth.RegisterAndLogin(ctx, models.Registration{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.TokenResponse{Token: token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {

	token, err := s.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.TokenResponse{Token: token}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, _ *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	list, err := s.users.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.User, 0, len(list))
	for _, u := range list {
		out = append(out, toPBUser(u))
	}
	return &pb.ListUsersResponse{Users: out}, nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.UserResponse, error) {

	if err := s.requireSelf(ctx, req.Username); err != nil {
		return nil, err
	}

	u, err := s.users.Get(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.UserResponse{User: &pb.UserDetail{
		User: &pb.User{
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Phone:     u.Phone,
		},
		JoinAt:      timestamppb.New(u.JoinedAt),
		LastLoginAt: timestamppb.New(u.LastLoginAt),
	}}, nil
}

func (s *GRPCServer) MessagesFrom(ctx context.Context, req *pb.MessagesRequest) (*pb.MessagesResponse, error) {

	if err := s.requireSelf(ctx, req.Username); err != nil {
		return nil, err
	}

	list, err := s.messages.MessagesFrom(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Message, 0, len(list))
	for _, m := range list {
		out = append(out, &pb.Message{
			Id:     m.ID,
			ToUser: toPBUser(m.ToUser),
			Body:   m.Body,
			SentAt: timestamppb.New(m.SentAt),
			ReadAt: toTimestamp(m.ReadAt),
		})
	}
	return &pb.MessagesResponse{Messages: out}, nil
}

func (s *GRPCServer) MessagesTo(ctx context.Context, req *pb.MessagesRequest) (*pb.MessagesResponse, error) {

	if err := s.requireSelf(ctx, req.Username); err != nil {
		return nil, err
	}

	list, err := s.messages.MessagesTo(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Message, 0, len(list))
	for _, m := range list {
		out = append(out, &pb.Message{
			Id:       m.ID,
			FromUser: toPBUser(m.FromUser),
			Body:     m.Body,
			SentAt:   timestamppb.New(m.SentAt),
			ReadAt:   toTimestamp(m.ReadAt),
		})
	}
	return &pb.MessagesResponse{Messages: out}, nil
}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageResponse, error) {

	caller, ok := callerFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	m, err := s.messages.Send(ctx, caller, req.ToUsername, req.Body)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	// the sender's own view; fetching the joined detail would cost a round trip
	return &pb.MessageResponse{Message: &pb.Message{
		Id:       m.ID,
		FromUser: &pb.User{Username: m.FromUsername},
		ToUser:   &pb.User{Username: m.ToUsername},
		Body:     m.Body,
		SentAt:   timestamppb.New(m.SentAt),
		ReadAt:   toTimestamp(m.ReadAt),
	}}, nil
}

func (s *GRPCServer) GetMessage(ctx context.Context, req *pb.MessageRequest) (*pb.MessageResponse, error) {

	caller, ok := callerFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	m, err := s.messages.Get(ctx, caller, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.MessageResponse{Message: toPBMessage(m)}, nil
}

func (s *GRPCServer) MarkRead(ctx context.Context, req *pb.MessageRequest) (*pb.MessageResponse, error) {

	caller, ok := callerFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthenticated")
	}

	m, err := s.messages.MarkRead(ctx, caller, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.MessageResponse{Message: toPBMessage(m)}, nil
}

// requireSelf lets callers read only their own profile and mailboxes.
func (s *GRPCServer) requireSelf(ctx context.Context, username string) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "unauthenticated")
	}
	if caller != username {
		return status.Error(codes.PermissionDenied, common.ErrForbidden.Error())
	}
	return nil
}

// toStatus maps service errors onto gRPC codes. Storage and other
// unexpected failures are logged and reported without their detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUser):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, common.ErrUserNotFound), errors.Is(err, common.ErrMessageNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	s.logger.Error(ctx, "request failed", "err", err)
	return status.Error(codes.Internal, "internal error")
}

func toPBUser(u models.UserSummary) *pb.User {
	return &pb.User{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

func toPBMessage(m *models.MessageDetail) *pb.Message {
	return &pb.Message{
		Id:       m.ID,
		FromUser: toPBUser(m.FromUser),
		ToUser:   toPBUser(m.ToUser),
		Body:     m.Body,
		SentAt:   timestamppb.New(m.SentAt),
		ReadAt:   toTimestamp(m.ReadAt),
	}
}

// toTimestamp leaves unset times unset so clients can tell unread messages apart.
func toTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
