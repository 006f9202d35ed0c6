package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carregistry/internal/auth"
)

// tokenValidity bounds how long a minted token is accepted by the server.
const tokenValidity = 12 * time.Hour

var ErrNotLoggedIn = errors.New("you must log in first")

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login asks for an account id and the signing secret, mints an access token
// locally and attaches it to the API client. The secret is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	account, err := getSimpleText(a.reader, "Enter account id", a.out)
	if err != nil {
		return err
	}
	if account == "" {
		return errors.New("account id must not be empty")
	}

	secret, err := getPassword("Enter signing secret", a.out)
	if err != nil {
		return err
	}
	defer clear(secret)

	token, err := auth.GenerateToken(account, secret, tokenValidity)
	if err != nil {
		return fmt.Errorf("token error: %w", err)
	}

	a.client.SetToken(token)
	a.account = account
	fmt.Fprintf(a.out, "Logged in as %s\n", account)
	return nil
}

// Logout drops the token; read-only commands keep working.
func (a *App) Logout(ctx context.Context) error {
	a.client.SetToken("")
	a.account = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return ErrNotLoggedIn
	}
	return nil
}
