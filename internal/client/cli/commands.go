package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

func (a *App) identity(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, "Enter email", a.out)
}

func (a *App) register(ctx context.Context, args []string) error {

	identity, err := a.identity(args)
	if err != nil {
		return err
	}

	var name string
	if len(args) > 1 {
		name = args[1]
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	p, err := a.client.Register(ctx, identity, password, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (id %s, role %s)\n", p.Email, p.ID, p.Role)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {

	identity, err := a.identity(args)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.client.Login(ctx, identity, password)
	if err != nil {
		return err
	}
	a.principalID = id

	fmt.Fprintf(a.out, "Logged in as %s, session valid until %s\n", id, formatTime(a.client.Tokens().RefreshTokenExpiresAt))
	return nil
}

func (a *App) refresh(ctx context.Context) error {
	if err := a.client.Refresh(ctx); err != nil {
		return err
	}

	t := a.client.Tokens()
	fmt.Fprintf(a.out, "Tokens rotated, access until %s, refresh until %s\n",
		formatTime(t.AccessTokenExpiresAt), formatTime(t.RefreshTokenExpiresAt))
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	p, err := a.client.WhoAmI(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id:      %s\nemail:   %s\nrole:    %s\n", p.ID, p.Email, p.Role)
	if p.Name != "" {
		fmt.Fprintf(a.out, "name:    %s\n", p.Name)
	}
	fmt.Fprintf(a.out, "created: %s\n", formatTime(p.CreatedAt))
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.RFC1123)
}
