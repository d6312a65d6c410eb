package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	pb "github.com/dmitrijs2005/messagely/internal/proto"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestToStatus(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeUsers{}, &fakeMessages{})

	tests := []struct {
		err  error
		want codes.Code
	}{
		{fmt.Errorf("%w: username is required", common.ErrValidation), codes.InvalidArgument},
		{common.ErrDuplicateUser, codes.AlreadyExists},
		{common.ErrInvalidCredentials, codes.Unauthenticated},
		{common.ErrInvalidToken, codes.Unauthenticated},
		{common.ErrTokenExpired, codes.Unauthenticated},
		{common.ErrForbidden, codes.PermissionDenied},
		{common.ErrUserNotFound, codes.NotFound},
		{common.ErrMessageNotFound, codes.NotFound},
		{fmt.Errorf("%w: error listing users: connection refused", common.ErrStorage), codes.Internal},
		{errors.New("anything else"), codes.Internal},
		{fmt.Errorf("error hashing password: %w", context.Canceled), codes.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			got := s.toStatus(context.Background(), tt.err)
			if status.Code(got) != tt.want {
				t.Fatalf("want %v, got %v", tt.want, status.Code(got))
			}
		})
	}
}

func TestToStatus_HidesStorageDetail(t *testing.T) {
	s := newServer(&fakeAuth{}, &fakeUsers{}, &fakeMessages{})
	err := s.toStatus(context.Background(), fmt.Errorf("%w: pq: password authentication failed", common.ErrStorage))
	if msg := status.Convert(err).Message(); msg != "internal error" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestRegister_PassesFields(t *testing.T) {
	a := &fakeAuth{token: "T"}
	s := newServer(a, &fakeUsers{}, &fakeMessages{})

	resp, err := s.Register(context.Background(), &pb.RegisterRequest{
		Username: "u1", Password: "pw1", FirstName: "F", LastName: "L", Phone: "P",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if resp.Token != "T" {
		t.Fatalf("unexpected token %q", resp.Token)
	}
	want := models.Registration{Username: "u1", Password: "pw1", FirstName: "F", LastName: "L", Phone: "P"}
	if diff := cmp.Diff(want, a.gotReg); diff != "" {
		t.Fatalf("registration mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	s := newServer(&fakeAuth{err: common.ErrDuplicateUser}, &fakeUsers{}, &fakeMessages{})
	_, err := s.Register(context.Background(), &pb.RegisterRequest{Username: "u1", Password: "pw1"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}

func TestLogin_OKAndRejected(t *testing.T) {
	s := newServer(&fakeAuth{token: "T"}, &fakeUsers{}, &fakeMessages{})
	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "u1", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.Token != "T" {
		t.Fatalf("unexpected token %q", resp.Token)
	}

	s2 := newServer(&fakeAuth{err: common.ErrInvalidCredentials}, &fakeUsers{}, &fakeMessages{})
	_, err = s2.Login(context.Background(), &pb.LoginRequest{Username: "u1", Password: "bad"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestListUsers(t *testing.T) {
	u := &fakeUsers{list: []models.UserSummary{{Username: "u1", FirstName: "F"}, {Username: "u2"}}}
	s := newServer(&fakeAuth{}, u, &fakeMessages{})

	resp, err := s.ListUsers(asCaller("u1"), &pb.ListUsersRequest{})
	if err != nil {
		t.Fatalf("ListUsers error: %v", err)
	}
	want := []*pb.User{{Username: "u1", FirstName: "F"}, {Username: "u2"}}
	if diff := cmp.Diff(want, resp.Users, protocmp.Transform()); diff != "" {
		t.Fatalf("users mismatch (-want +got):\n%s", diff)
	}
}

func TestGetUser_SelfOnly(t *testing.T) {
	u := &fakeUsers{detail: &models.UserDetail{Username: "u1", FirstName: "F", JoinedAt: t0, LastLoginAt: t0}}
	s := newServer(&fakeAuth{}, u, &fakeMessages{})

	resp, err := s.GetUser(asCaller("u1"), &pb.GetUserRequest{Username: "u1"})
	if err != nil {
		t.Fatalf("GetUser error: %v", err)
	}
	if resp.User.GetUser().GetUsername() != "u1" || !resp.User.GetJoinAt().AsTime().Equal(t0) {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	_, err = s.GetUser(asCaller("u2"), &pb.GetUserRequest{Username: "u1"})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}

	_, err = s.GetUser(context.Background(), &pb.GetUserRequest{Username: "u1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", status.Code(err))
	}
}

func TestMessagesFromAndTo(t *testing.T) {
	m := &fakeMessages{
		from: []models.SentMessage{{ID: "m1", ToUser: models.UserSummary{Username: "u2"}, Body: "hi", SentAt: t0}},
		to:   []models.ReceivedMessage{{ID: "m2", FromUser: models.UserSummary{Username: "u3"}, Body: "yo", SentAt: t0}},
	}
	s := newServer(&fakeAuth{}, &fakeUsers{}, m)
	ctx := asCaller("u1")

	from, err := s.MessagesFrom(ctx, &pb.MessagesRequest{Username: "u1"})
	if err != nil {
		t.Fatalf("MessagesFrom error: %v", err)
	}
	wantFrom := []*pb.Message{{Id: "m1", ToUser: &pb.User{Username: "u2"}, Body: "hi", SentAt: timestamppb.New(t0)}}
	if diff := cmp.Diff(wantFrom, from.Messages, protocmp.Transform()); diff != "" {
		t.Fatalf("from mismatch (-want +got):\n%s", diff)
	}

	to, err := s.MessagesTo(ctx, &pb.MessagesRequest{Username: "u1"})
	if err != nil {
		t.Fatalf("MessagesTo error: %v", err)
	}
	wantTo := []*pb.Message{{Id: "m2", FromUser: &pb.User{Username: "u3"}, Body: "yo", SentAt: timestamppb.New(t0)}}
	if diff := cmp.Diff(wantTo, to.Messages, protocmp.Transform()); diff != "" {
		t.Fatalf("to mismatch (-want +got):\n%s", diff)
	}

	if _, err := s.MessagesTo(ctx, &pb.MessagesRequest{Username: "u2"}); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}
}

func TestSendMessage_UsesCaller(t *testing.T) {
	m := &fakeMessages{sent: &models.Message{ID: "m1", FromUsername: "u1", ToUsername: "u2", Body: "hi", SentAt: t0}}
	s := newServer(&fakeAuth{}, &fakeUsers{}, m)

	resp, err := s.SendMessage(asCaller("u1"), &pb.SendMessageRequest{ToUsername: "u2", Body: "hi"})
	if err != nil {
		t.Fatalf("SendMessage error: %v", err)
	}
	if m.gotFrom != "u1" {
		t.Fatalf("sender not taken from token: %q", m.gotFrom)
	}
	if resp.Message.GetId() != "m1" || resp.Message.GetToUser().GetUsername() != "u2" {
		t.Fatalf("unexpected message: %+v", resp.Message)
	}

	m.err = common.ErrUserNotFound
	if _, err := s.SendMessage(asCaller("u1"), &pb.SendMessageRequest{ToUsername: "ghost", Body: "hi"}); status.Code(err) != codes.NotFound {
		t.Fatalf("want NotFound, got %v", status.Code(err))
	}
}

func TestGetMessageAndMarkRead(t *testing.T) {
	readAt := t0.Add(1)
	m := &fakeMessages{detail: &models.MessageDetail{
		ID: "m1", FromUser: models.UserSummary{Username: "u1"}, ToUser: models.UserSummary{Username: "u2"},
		Body: "hi", SentAt: t0, ReadAt: &readAt,
	}}
	s := newServer(&fakeAuth{}, &fakeUsers{}, m)

	resp, err := s.GetMessage(asCaller("u2"), &pb.MessageRequest{Id: "m1"})
	if err != nil {
		t.Fatalf("GetMessage error: %v", err)
	}
	if m.gotCaller != "u2" || resp.Message.GetFromUser().GetUsername() != "u1" || resp.Message.GetToUser().GetUsername() != "u2" {
		t.Fatalf("unexpected result: caller=%q msg=%+v", m.gotCaller, resp.Message)
	}

	resp, err = s.MarkRead(asCaller("u2"), &pb.MessageRequest{Id: "m1"})
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if resp.Message.ReadAt == nil || !resp.Message.ReadAt.AsTime().Equal(readAt) {
		t.Fatalf("unexpected read_at: %v", resp.Message.ReadAt)
	}

	m.err = common.ErrForbidden
	if _, err := s.MarkRead(asCaller("u3"), &pb.MessageRequest{Id: "m1"}); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("want PermissionDenied, got %v", status.Code(err))
	}
}

func TestMessagesFrom_UnreadHasNoReadAt(t *testing.T) {
	readAt := t0.Add(time.Minute)
	m := &fakeMessages{from: []models.SentMessage{
		{ID: "m1", ToUser: models.UserSummary{Username: "u2"}, Body: "a", SentAt: t0},
		{ID: "m2", ToUser: models.UserSummary{Username: "u2"}, Body: "b", SentAt: t0, ReadAt: &readAt},
	}}
	s := newServer(&fakeAuth{}, &fakeUsers{}, m)

	resp, err := s.MessagesFrom(asCaller("u1"), &pb.MessagesRequest{Username: "u1"})
	if err != nil {
		t.Fatalf("MessagesFrom error: %v", err)
	}
	if resp.Messages[0].ReadAt != nil {
		t.Fatalf("unread message carries read_at: %v", resp.Messages[0].ReadAt)
	}
	if !resp.Messages[1].GetReadAt().AsTime().Equal(readAt) {
		t.Fatalf("unexpected read_at: %v", resp.Messages[1].GetReadAt())
	}
}
