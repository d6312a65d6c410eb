package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/messagely/internal/client/client"
	"github.com/dmitrijs2005/messagely/internal/client/config"
	"github.com/dmitrijs2005/messagely/internal/client/repositories/metadata"
)

const (
	sessionUserKey  = "username"
	sessionTokenKey = "access_token"
)

type App struct {
	config   *config.Config
	client   client.Client
	session  metadata.Repository
	db       *sql.DB
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.SessionFile)
	if err != nil {
		log.Printf("error initializing session store: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewMessagelyClientService(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(c, apiClient, metadata.NewSQLiteRepository(db), os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

func newApp(c *config.Config, cl client.Client, session metadata.Repository, in io.Reader, out io.Writer) *App {
	return &App{
		config:  c,
		client:  cl,
		session: session,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.close()

	if err := a.restoreSession(ctx); err != nil {
		log.Printf("could not restore session: %v", err)
	}

	fmt.Fprintln(a.out, "Welcome to messagely CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) close() {
	if err := a.client.Close(); err != nil {
		log.Printf("error closing connection: %v", err)
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

// withTimeout bounds a single server call.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) restoreSession(ctx context.Context) error {
	user, err := a.session.Get(ctx, sessionUserKey)
	if err != nil {
		return err
	}
	token, err := a.session.Get(ctx, sessionTokenKey)
	if err != nil {
		return err
	}
	if len(user) == 0 || len(token) == 0 {
		return nil
	}

	a.client.SetAccessToken(string(token))
	a.userName = string(user)
	return nil
}

func (a *App) saveSession(ctx context.Context, username, token string) error {
	a.client.SetAccessToken(token)
	a.userName = username

	if err := a.session.Set(ctx, sessionUserKey, []byte(username)); err != nil {
		return err
	}
	return a.session.Set(ctx, sessionTokenKey, []byte(token))
}

func (a *App) clearSession(ctx context.Context) error {
	a.client.SetAccessToken("")
	a.userName = ""

	if err := a.session.Delete(ctx, sessionUserKey); err != nil {
		return err
	}
	return a.session.Delete(ctx, sessionTokenKey)
}
