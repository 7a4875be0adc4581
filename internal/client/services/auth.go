// Package services contains the form controllers of the portal client.
// This file defines the authentication service: sign-up, login with
// remember-me, logout, startup session restore, and the password-reset and
// contact forms. Every outcome is reported to a ui.Presenter.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/portalauth/internal/client/ui"
	"github.com/dmitrijs2005/portalauth/internal/logging"
	"github.com/dmitrijs2005/portalauth/internal/models"
	"github.com/dmitrijs2005/portalauth/internal/session"
	"github.com/dmitrijs2005/portalauth/internal/strength"
	"github.com/dmitrijs2005/portalauth/internal/transport"
	"github.com/dmitrijs2005/portalauth/internal/users"
)

// SignUpForm mirrors the fields of the sign-up form.
type SignUpForm struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

// ContactForm mirrors the fields of the contact form.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// AuthService defines the form flows of the portal.
//
// Contract:
//   - SignUp: validate the form, then register the user. No session is created.
//   - Login: authenticate and persist a session in the tier picked by rememberMe.
//   - Logout: drop the session from both tiers.
//   - Restore: startup check deciding which navigation to render.
//   - ForgotPassword / SubmitContact: acknowledge only, no state change.
//
// Errors are returned for the caller's information; the user has already
// been told through the Presenter.
type AuthService interface {
	SignUp(ctx context.Context, form SignUpForm) (*models.User, error)
	Login(ctx context.Context, email, password string, rememberMe bool) (*session.Session, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context) (*session.Session, bool)
	ForgotPassword(ctx context.Context, email string) error
	SubmitContact(ctx context.Context, form ContactForm) error
}

type authService struct {
	users     *users.Directory
	sessions  *session.Store
	transport *transport.Simulator
	ui        ui.Presenter
	log       logging.Logger
}

// NewAuthService wires the service to its collaborators.
func NewAuthService(dir *users.Directory, sessions *session.Store, tr *transport.Simulator,
	presenter ui.Presenter, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{
		users:     dir,
		sessions:  sessions,
		transport: tr,
		ui:        presenter,
		log:       log.With("component", "auth"),
	}
}

// validateSignUp applies the checks in the order the form reports them and
// returns the banner text along with the error.
func validateSignUp(form SignUpForm) (string, error) {
	if form.Password != form.ConfirmPassword {
		return "Passwords do not match.", ErrPasswordMismatch
	}
	if !strength.Acceptable(form.Password) {
		return "Password is too weak. Please choose a stronger password.", ErrWeakPassword
	}
	if !form.AgreeTerms {
		return "Please agree to the Terms of Service and Privacy Policy.", ErrTermsNotAgreed
	}
	return "", nil
}

func (a *authService) SignUp(ctx context.Context, form SignUpForm) (*models.User, error) {
	if msg, err := validateSignUp(form); err != nil {
		a.ui.ShowBanner(msg, ui.Danger)
		return nil, err
	}

	var created *models.User
	err := a.transport.Call(ctx, "signup", func(ctx context.Context) error {
		u, err := a.users.Register(ctx, users.Candidate{
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Email:     form.Email,
			Phone:     form.Phone,
			Password:  form.Password,
		})
		created = u
		return err
	})

	switch {
	case errors.Is(err, users.ErrEmailTaken):
		a.ui.ShowBanner("An account with this email already exists.", ui.Danger)
		return nil, err
	case err != nil:
		a.log.Error(ctx, "signup failed", "email", form.Email, "err", err)
		a.ui.ShowBanner("Account creation failed. Please try again later.", ui.Danger)
		return nil, err
	}

	a.ui.ShowBanner("Account created successfully! Please log in.", ui.Success)
	return created, nil
}

func (a *authService) Login(ctx context.Context, email, password string, rememberMe bool) (*session.Session, error) {
	var found *models.User
	err := a.transport.Call(ctx, "login", func(ctx context.Context) error {
		u, err := a.users.Authenticate(ctx, email, password)
		found = u
		return err
	})
	if err != nil {
		a.log.Error(ctx, "login failed", "email", email, "err", err)
		a.ui.ShowBanner("Login failed. Please try again later.", ui.Danger)
		return nil, err
	}

	if found == nil {
		a.log.Info(ctx, "login rejected", "email", email)
		a.ui.ShowBanner("Invalid email or password. Please try again.", ui.Danger)
		return nil, ErrInvalidCredentials
	}

	sess, ok := a.sessions.Create(ctx, *found, rememberMe)
	if !ok {
		a.ui.ShowBanner("Login failed. Please try again later.", ui.Danger)
		return nil, ErrSessionNotSaved
	}

	a.log.Info(ctx, "login succeeded", "email", email, "remember_me", rememberMe)
	a.ui.ShowBanner("Login successful! Welcome back.", ui.Success)
	a.ui.RenderLoggedInNav(sess.User)
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.sessions.Invalidate(ctx)
	a.ui.ShowBanner("You have been logged out successfully.", ui.Info)
	a.ui.RenderLoggedOutNav()
}

func (a *authService) Restore(ctx context.Context) (*session.Session, bool) {
	sess, ok := a.sessions.Validate(ctx)
	if !ok {
		a.ui.RenderLoggedOutNav()
		return nil, false
	}
	a.ui.RenderLoggedInNav(sess.User)
	return sess, true
}

func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		a.ui.ShowBanner("Please enter your email address first.", ui.Info)
		return ErrEmailRequired
	}
	a.log.Info(ctx, "password reset requested", "email", email)
	a.ui.ShowBanner("Password reset instructions have been sent to your email.", ui.Info)
	return nil
}

func (a *authService) SubmitContact(ctx context.Context, form ContactForm) error {
	err := a.transport.Call(ctx, "contact", func(ctx context.Context) error {
		a.log.Info(ctx, "contact message received", "email", form.Email, "subject", form.Subject)
		return nil
	})
	if err != nil {
		a.log.Error(ctx, "contact form failed", "err", err)
		a.ui.ShowBanner("Failed to send message. Please try again later.", ui.Danger)
		return err
	}
	a.ui.ShowBanner("Thank you for your message! We'll get back to you within 24 hours.", ui.Success)
	return nil
}
