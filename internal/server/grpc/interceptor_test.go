package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/messagely/internal/common"
	pb "github.com/dmitrijs2005/messagely/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethods_AllowWithoutToken(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeUsers{}, &fakeMessages{})

	for _, m := range []string{pb.Messagely_Register_FullMethodName, pb.Messagely_Login_FullMethodName} {
		info := &grpc.UnaryServerInfo{FullMethod: m}
		handlerCalled := false
		h := func(ctx context.Context, req any) (any, error) {
			handlerCalled = true
			return "ok", nil
		}

		resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		if !handlerCalled || resp != "ok" {
			t.Fatalf("%s: handler not called", m)
		}
	}
}

func TestInterceptor_Rejects(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeUsers{}, &fakeMessages{})
	info := &grpc.UnaryServerInfo{FullMethod: pb.Messagely_ListUsers_FullMethodName}

	tests := []struct {
		name string
		ctx  context.Context
		msg  string
	}{
		{"missing", context.Background(), "missing token"},
		{"invalid", withToken("not-a-valid-jwt"), "invalid token"},
		{"expired", withToken("expired"), "token expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := func(ctx context.Context, req any) (any, error) {
				t.Fatal("handler should not be called")
				return nil, nil
			}

			_, err := s.accessTokenInterceptor(tt.ctx, nil, info, h)
			if status.Code(err) != codes.Unauthenticated {
				t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
			}
			if status.Convert(err).Message() != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, status.Convert(err).Message())
			}
		})
	}
}

func TestInterceptor_ValidToken_SetsUsername(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeUsers{}, &fakeMessages{})
	info := &grpc.UnaryServerInfo{FullMethod: pb.Messagely_MessagesTo_FullMethodName}

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got, _ = callerFrom(ctx)
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(withToken("tok-u1"), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "u1" {
		t.Fatalf("username not propagated in context: got %q", got)
	}
}
