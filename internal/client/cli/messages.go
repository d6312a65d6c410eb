package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/messagely/internal/client/models"
)

const timeLayout = "2006-01-02 15:04:05"

func (a *App) Users(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	users, err := a.client.ListUsers(ctx)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users")
		return nil
	}
	for _, u := range users {
		fmt.Fprintf(a.out, "%-20s %s\n", u.Username, displayName(u))
	}
	return nil
}

func (a *App) User(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.client.GetUser(ctx, a.userName)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Username:   %s\n", u.Username)
	fmt.Fprintf(a.out, "Name:       %s %s\n", u.FirstName, u.LastName)
	fmt.Fprintf(a.out, "Phone:      %s\n", u.Phone)
	fmt.Fprintf(a.out, "Joined:     %s\n", formatTime(u.JoinedAt))
	fmt.Fprintf(a.out, "Last login: %s\n", formatTime(u.LastLoginAt))
	return nil
}

func (a *App) From(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.client.MessagesFrom(ctx, a.userName)
	if err != nil {
		return err
	}
	printMessages(a.out, list)
	return nil
}

func (a *App) To(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.client.MessagesTo(ctx, a.userName)
	if err != nil {
		return err
	}
	printMessages(a.out, list)
	return nil
}

// Send takes the recipient from args or asks for it, then reads the body.
func (a *App) Send(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var to string
	if len(args) > 0 {
		to = args[0]
	} else {
		var err error
		if to, err = GetSimpleText(a.reader, "Recipient", a.out); err != nil {
			return err
		}
	}

	body, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	m, err := a.client.Send(ctx, to, body)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Sent %s\n", m.ID)
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	m, err := a.client.GetMessage(ctx, args[0])
	if err != nil {
		return err
	}
	printMessage(a.out, *m)
	return nil
}

func (a *App) Read(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: read <id>")
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	m, err := a.client.MarkRead(ctx, args[0])
	if err != nil {
		return err
	}
	printMessage(a.out, *m)
	return nil
}

func printMessages(w io.Writer, list []models.Message) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No messages")
		return
	}
	for _, m := range list {
		printMessage(w, m)
	}
}

func printMessage(w io.Writer, m models.Message) {
	fmt.Fprintf(w, "[%s] %s\n", m.ID, formatTime(m.SentAt))
	if m.From != nil {
		fmt.Fprintf(w, "  from: %s (%s)\n", m.From.Username, displayName(*m.From))
	}
	if m.To != nil {
		fmt.Fprintf(w, "  to:   %s (%s)\n", m.To.Username, displayName(*m.To))
	}
	if m.ReadAt != nil {
		fmt.Fprintf(w, "  read: %s\n", formatTime(*m.ReadAt))
	} else {
		fmt.Fprintln(w, "  unread")
	}
	fmt.Fprintf(w, "  %s\n", m.Body)
}

func displayName(u models.User) string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.LastName
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
