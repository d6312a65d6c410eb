package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/messagely/internal/client/models"
	"github.com/dmitrijs2005/messagely/internal/common"
	pb "github.com/dmitrijs2005/messagely/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.MessagelyClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewMessagelyClientService connects lazily to endpointURL. Extra dial
// options are appended after the defaults.
func NewMessagelyClientService(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewMessagelyClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Register(ctx context.Context, r *models.Registration) (string, error) {

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{
		Username:  r.Username,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	})
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetToken())
	return resp.GetToken(), nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetToken())
	return resp.GetToken(), nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.User, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		out = append(out, *fromPBUser(u))
	}
	return out, nil
}

func (s *GRPCClient) GetUser(ctx context.Context, username string) (*models.UserDetail, error) {
	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}

	d := resp.GetUser()
	u := &models.UserDetail{
		JoinedAt:    fromTimestamp(d.GetJoinAt()),
		LastLoginAt: fromTimestamp(d.GetLastLoginAt()),
	}
	if pu := fromPBUser(d.GetUser()); pu != nil {
		u.User = *pu
	}
	return u, nil
}

func (s *GRPCClient) MessagesFrom(ctx context.Context, username string) ([]models.Message, error) {
	resp, err := s.client.MessagesFrom(ctx, &pb.MessagesRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBMessages(resp.GetMessages()), nil
}

func (s *GRPCClient) MessagesTo(ctx context.Context, username string) ([]models.Message, error) {
	resp, err := s.client.MessagesTo(ctx, &pb.MessagesRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBMessages(resp.GetMessages()), nil
}

func (s *GRPCClient) Send(ctx context.Context, to, body string) (*models.Message, error) {
	resp, err := s.client.SendMessage(ctx, &pb.SendMessageRequest{ToUsername: to, Body: body})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBMessage(resp.GetMessage()), nil
}

func (s *GRPCClient) GetMessage(ctx context.Context, id string) (*models.Message, error) {
	resp, err := s.client.GetMessage(ctx, &pb.MessageRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBMessage(resp.GetMessage()), nil
}

func (s *GRPCClient) MarkRead(ctx context.Context, id string) (*models.Message, error) {
	resp, err := s.client.MarkRead(ctx, &pb.MessageRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBMessage(resp.GetMessage()), nil
}

func fromPBUser(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		Username:  u.GetUsername(),
		FirstName: u.GetFirstName(),
		LastName:  u.GetLastName(),
		Phone:     u.GetPhone(),
	}
}

func fromPBMessage(m *pb.Message) *models.Message {
	if m == nil {
		return &models.Message{}
	}
	out := &models.Message{
		ID:     m.GetId(),
		From:   fromPBUser(m.GetFromUser()),
		To:     fromPBUser(m.GetToUser()),
		Body:   m.GetBody(),
		SentAt: fromTimestamp(m.GetSentAt()),
	}
	if m.GetReadAt() != nil {
		t := fromTimestamp(m.GetReadAt())
		out.ReadAt = &t
	}
	return out
}

func fromPBMessages(list []*pb.Message) []models.Message {
	out := make([]models.Message, 0, len(list))
	for _, m := range list {
		out = append(out, *fromPBMessage(m))
	}
	return out
}

// fromTimestamp returns the zero time for an unset timestamp.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)

	var kind error
	switch st.Code() {
	case codes.Unauthenticated:
		kind = ErrUnauthorized
	case codes.PermissionDenied:
		kind = ErrForbidden
	case codes.NotFound:
		kind = ErrNotFound
	case codes.AlreadyExists:
		kind = ErrAlreadyExists
	case codes.InvalidArgument:
		kind = ErrInvalidInput
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", kind, st.Message())
}
