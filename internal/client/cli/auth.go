package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/stitchdesk/stitchdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the backend. On
// success the token is persisted by the auth service and the user name is
// shown in the prompt. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			log.Printf("Server unavailable, try again later")
			a.setMode(ModeOffline)
			return err
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = user.Name
	a.setMode(ModeOnline)
	log.Printf("Login successful")
	return nil
}

// Register prompts for a name, email and password and creates a new account.
// A successful registration leaves the user logged in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	a.userName = user.Name
	log.Printf("Success!")
	return nil
}

// Logout ends the session. The local token is always cleared, even when the
// backend call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	log.Printf("Logged out")
	return nil
}

// Ping reports backend reachability.
func (a *App) Ping(ctx context.Context) error {
	if err := a.auth.Ping(ctx); err != nil {
		log.Printf("Backend unreachable: %s", err.Error())
		a.setMode(ModeOffline)
		return err
	}
	log.Printf("Backend is up")
	a.setMode(ModeOnline)
	return nil
}
