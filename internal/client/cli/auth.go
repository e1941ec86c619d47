package cli

import (
	"context"
	"errors"
	"os"

	"github.com/fahadsheikh/rescuepoint/internal/client/api"
	"github.com/fahadsheikh/rescuepoint/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a phone number or email plus password and attempts to
// authenticate. A rejected attempt prints the server's reason and leaves
// the current session untouched.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter phone number or email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, identifier, string(password)); err != nil {
		var ae *api.AuthError
		if errors.As(err, &ae) {
			printlnFn(ae.Reason)
			return nil
		}
		printlnFn("Login failed, please try again.")
		return err
	}

	printlnFn("Signed in.")
	return nil
}

// Register prompts for a profile and password and attempts to create an
// account. Failures follow the same surfacing rules as Login.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number (optional)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reg := api.Registration{Name: name, Phone: phone, Email: email}
	if err := a.session.Register(ctx, reg, string(password)); err != nil {
		var ae *api.AuthError
		if errors.As(err, &ae) {
			printlnFn(ae.Reason)
			return nil
		}
		printlnFn("Registration failed, please try again.")
		return err
	}

	printlnFn("Account created.")
	return nil
}

// Guest switches to guest browsing without touching any stored session.
func (a *App) Guest(context.Context) error {
	a.session.ContinueAsGuest()
	printlnFn("Browsing as guest.")
	return nil
}

// Logout clears the session and its persisted shadow.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Signed out.")
	return nil
}
