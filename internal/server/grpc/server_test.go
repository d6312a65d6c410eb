package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	pb "github.com/dmitrijs2005/messagely/internal/proto"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := newServer(&fakeAuth{}, &fakeUsers{}, &fakeMessages{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := newServer(&fakeAuth{}, &fakeUsers{}, &fakeMessages{})
	srv.address = "127.0.0.1:99999"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func startBufconn(t *testing.T, s *GRPCServer) pb.MessagelyClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewMessagelyClient(conn)
}

func authed(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
}

func TestServe_EndToEnd(t *testing.T) {
	m := &fakeMessages{
		to: []models.ReceivedMessage{{ID: "m1", FromUser: models.UserSummary{Username: "u2", FirstName: "Two"}, Body: "hi", SentAt: t0}},
	}
	client := startBufconn(t, newServer(&fakeAuth{token: "tok-u1"}, &fakeUsers{}, m))
	ctx := context.Background()

	_, err := client.MessagesTo(ctx, &pb.MessagesRequest{Username: "u1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated without token, got %v", status.Code(err))
	}

	tok, err := client.Login(ctx, &pb.LoginRequest{Username: "u1", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	resp, err := client.MessagesTo(authed(ctx, tok.Token), &pb.MessagesRequest{Username: "u1"})
	if err != nil {
		t.Fatalf("MessagesTo error: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].GetFromUser().GetFirstName() != "Two" || !resp.Messages[0].GetSentAt().AsTime().Equal(t0) {
		t.Fatalf("unexpected messages: %+v", resp.Messages)
	}

	_, err = client.MessagesTo(authed(ctx, tok.Token), &pb.MessagesRequest{Username: "u2"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}
}
