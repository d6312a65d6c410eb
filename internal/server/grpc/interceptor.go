package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/messagely/internal/common"
	pb "github.com/dmitrijs2005/messagely/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const UsernameKey ctxKey = "username"

var publicMethods = map[string]bool{
	pb.Messagely_Register_FullMethodName: true,
	pb.Messagely_Login_FullMethodName:    true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	username, err := s.tokens.Verify(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, UsernameKey, username)

	return handler(ctx, req)
}

// callerFrom returns the username the interceptor authenticated.
func callerFrom(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(UsernameKey).(string)
	return u, ok && u != ""
}
