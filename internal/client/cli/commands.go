package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portalauth/internal/client/services"
	"github.com/dmitrijs2005/portalauth/internal/strength"
)

// getSimpleText, getPassword, getYesNo and getMultiline are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getYesNo      = GetYesNo
	getMultiline  = GetMultiline
)

// SignUp collects the sign-up form field by field and submits it.
// Validation and the outcome banner are handled by the AuthService.
func (a *App) SignUp(ctx context.Context) error {
	var form services.SignUpForm
	var err error

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &form.FirstName},
		{"Last name", &form.LastName},
		{"Email", &form.Email},
		{"Phone", &form.Phone},
	}
	for _, f := range fields {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}

	if form.Password, err = getPassword(a.out, "Password"); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.out, "Confirm password"); err != nil {
		return err
	}
	if form.AgreeTerms, err = getYesNo(a.reader, "I agree to the Terms of Service and Privacy Policy", a.out); err != nil {
		return err
	}

	_, err = a.authService.SignUp(ctx, form)
	return err
}

// Login prompts for credentials and the remember-me choice. A remembered
// session survives restarts; otherwise it lives in the volatile tier.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}

	remember, err := getYesNo(a.reader, "Remember me?", a.out)
	if err != nil {
		return err
	}

	_, err = a.authService.Login(ctx, email, password, remember)
	return err
}

func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	return nil
}

// WhoAmI re-validates the stored session, so an expired one is dropped here
// rather than on the next restart.
func (a *App) WhoAmI(ctx context.Context) error {
	sess, ok := a.authService.Restore(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	kind := "this session only"
	if sess.Persistent {
		kind = "remembered"
	}
	fmt.Fprintf(a.out, "%s <%s>, signed in %s (%s)\n",
		sess.User.DisplayName(), sess.User.Email, sess.CreatedAt.Format("2006-01-02 15:04:05"), kind)
	return nil
}

// Strength rates a password without storing it.
func (a *App) Strength(ctx context.Context) error {
	password, err := getPassword(a.out, "Password to check")
	if err != nil {
		return err
	}
	score := strength.Score(password)
	fmt.Fprintf(a.out, "Strength: %s (%d/5)\n", strength.Classify(score), score)
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	return a.authService.ForgotPassword(ctx, email)
}

func (a *App) Contact(ctx context.Context) error {
	var form services.ContactForm
	var err error

	if form.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Subject, err = getSimpleText(a.reader, "Subject", a.out); err != nil {
		return err
	}
	if form.Message, err = getMultiline(a.reader, "Message", a.out); err != nil {
		return err
	}

	return a.authService.SubmitContact(ctx, form)
}
