package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/session"
)

// sessionClient is the part of client.GRPCClient the commands use.
type sessionClient interface {
	Register(ctx context.Context, identity string, password []byte, name string) (*models.Principal, error)
	Login(ctx context.Context, identity string, password []byte) (string, error)
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*models.Principal, error)
	Tokens() models.Tokens
	Close() error
}

type sessionStore interface {
	Save(ctx context.Context, s *session.Session) error
	Load(ctx context.Context) (*session.Session, error)
	Clear(ctx context.Context) error
	Close() error
}

var ErrUsage = errors.New("usage: gophauth-client [-a addr] [-t seconds] [-f session file] <register|login|refresh|whoami|logout>")

type App struct {
	config      *config.Config
	client      sessionClient
	store       sessionStore
	principalID string
	saved       models.Tokens
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the session file and connects with the saved token pair.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	store, err := session.Open(ctx, c.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("error opening session file: %w", err)
	}

	var principalID string
	var tokens models.Tokens
	if s, err := store.Load(ctx); err == nil {
		principalID, tokens = s.PrincipalID, s.Tokens
	} else if !errors.Is(err, session.ErrNoSession) {
		_ = store.Close()
		return nil, err
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, client.WithTokens(tokens))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		config:      c,
		client:      apiClient,
		store:       store,
		principalID: principalID,
		saved:       tokens,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return errors.Join(a.client.Close(), a.store.Close())
}

// Run executes the command in args and saves whatever pair the client
// holds afterwards, since a protected call may have rotated it.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	timeout := a.config.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var err error
	switch args[0] {
	case "register":
		err = a.register(cmdCtx, args[1:])
	case "login":
		err = a.login(cmdCtx, args[1:])
	case "refresh":
		err = a.refresh(cmdCtx)
	case "whoami":
		err = a.whoami(cmdCtx)
	case "logout":
		err = a.logout(cmdCtx)
	case "help":
		fmt.Fprintln(a.out, ErrUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], ErrUsage)
	}

	if errors.Is(err, client.ErrSessionExpired) {
		return errors.Join(err, a.store.Clear(ctx))
	}
	return errors.Join(err, a.persist(ctx))
}

func (a *App) persist(ctx context.Context) error {
	tokens := a.client.Tokens()
	if tokens == a.saved {
		return nil
	}
	a.saved = tokens

	if tokens.RefreshToken == "" {
		return a.store.Clear(ctx)
	}
	return a.store.Save(ctx, &session.Session{PrincipalID: a.principalID, Tokens: tokens})
}
