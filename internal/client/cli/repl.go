package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/messagely/internal/client/client"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Users(ctx context.Context) error
	User(ctx context.Context) error
	From(ctx context.Context) error
	To(ctx context.Context) error
	Send(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Read(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: users, user, from, to, send [user], show <id>, read <id>, logout, exit"
)

// runREPL reads commands line by line from r and dispatches them to a until
// EOF, "exit" or "quit". Command errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "messagely %s> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "users":
			cmdErr = a.Users(ctx)
		case "user":
			cmdErr = a.User(ctx)
		case "from":
			cmdErr = a.From(ctx)
		case "to":
			cmdErr = a.To(ctx)
		case "send":
			cmdErr = a.Send(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "read":
			cmdErr = a.Read(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(w, "Error:", cmdErr)
			if errors.Is(cmdErr, client.ErrUnauthorized) && a.isLoggedIn() {
				fmt.Fprintln(w, "Your session may have expired; please login again.")
			}
		}
	}
}
