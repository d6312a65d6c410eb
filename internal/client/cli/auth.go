package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/client/models"
)

var errNotLoggedIn = errors.New("not logged in; use 'login' or 'register'")

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	firstName, err := GetSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := GetSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	token, err := a.client.Register(ctx, &models.Registration{
		Username:  userName,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err != nil {
		return err
	}

	if err := a.saveSession(ctx, userName, token); err != nil {
		return fmt.Errorf("registered, but could not save session: %w", err)
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s\n", userName)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	token, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return err
	}

	if err := a.saveSession(ctx, userName, token); err != nil {
		return fmt.Errorf("logged in, but could not save session: %w", err)
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	if err := a.clearSession(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
