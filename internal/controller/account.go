package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"service-booking-api/internal/auth"
	"service-booking-api/internal/model"
	"service-booking-api/internal/notify"
	"service-booking-api/internal/store"
	"service-booking-api/internal/validate"
)

const (
	msgShortName     = "Name must be at least 2 characters"
	msgMismatch      = "Passwords do not match"
	msgTerms         = "You must agree to the Terms & Conditions"
	msgEmailTaken    = "This email is already registered. Please sign in or use a different email."
	msgBadLogin      = "Invalid email or password"
	msgEmailFirst    = "Please enter your email address first"
	msgLoggedOut     = "You have been logged out"
	msgLoggedOutAll  = "You have been logged out on every device"
	msgNoSuchProfile = "Account not found"
)

type SignUpInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

type SignInInput struct {
	Email    string
	Password string
}

// AuthResult is a signed-in user with a fresh session token.
type AuthResult struct {
	Token   string
	User    model.User
	Session model.Session
	Notice  notify.Notice
}

func (c *Controller) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	aud := Audience(ctx)
	name := strings.TrimSpace(in.Name)
	email := store.NormalizeEmail(in.Email)
	password := strings.TrimSpace(in.Password)
	confirm := strings.TrimSpace(in.ConfirmPassword)

	a, err := c.start(aud, FormSignUp,
		validate.Rule{Field: "form", Message: msgRequired, OK: func() bool {
			return validate.Required(name, email, password, confirm)
		}},
		validate.Rule{Field: "name", Message: msgShortName, OK: func() bool { return validate.Name(name) }},
		validate.Rule{Field: "email", Message: msgBadEmail, OK: func() bool { return c.emailOK(email) }},
		validate.Rule{Field: "password", Message: msgShortPassword, OK: func() bool { return validate.Password(password) }},
		validate.Rule{Field: "confirmPassword", Message: msgMismatch, OK: func() bool { return password == confirm }},
		validate.Rule{Field: "terms", Message: msgTerms, OK: func() bool { return in.AcceptTerms }},
	)
	if err != nil {
		return nil, err
	}

	// reject known emails before the delay; the insert below settles races
	switch _, err := c.store.UserByEmail(ctx, email); {
	case err == nil:
		a.finish(Failed)
		return nil, c.fail(aud, FormSignUp, &Failure{Code: CodeConflict, Field: "email", Message: msgEmailTaken})
	case !errors.Is(err, store.ErrNotFound):
		a.finish(Failed)
		return nil, c.failure(aud, FormSignUp, "sign up lookup", err)
	}

	return submit(ctx, c, a, "sign up", func(ctx context.Context) (*AuthResult, error) {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		u := model.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    c.now().UTC(),
		}
		if err := c.store.InsertUser(ctx, &u); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return nil, &Failure{Code: CodeConflict, Field: "email", Message: msgEmailTaken, Err: err}
			}
			return nil, err
		}
		res, err := c.openSession(ctx, u)
		if err != nil {
			return nil, err
		}
		res.Notice = c.report(aud, FormSignUp, notify.Success,
			fmt.Sprintf("Account created successfully! Welcome, %s!", u.Name))
		return res, nil
	})
}

func (c *Controller) SignIn(ctx context.Context, in SignInInput) (*AuthResult, error) {
	aud := Audience(ctx)
	email := store.NormalizeEmail(in.Email)
	password := strings.TrimSpace(in.Password)

	a, err := c.start(aud, FormSignIn,
		validate.Rule{Field: "form", Message: msgRequired, OK: func() bool { return validate.Required(email, password) }},
		validate.Rule{Field: "email", Message: msgBadEmail, OK: func() bool { return c.emailOK(email) }},
		validate.Rule{Field: "password", Message: msgShortPassword, OK: func() bool { return validate.Password(password) }},
	)
	if err != nil {
		return nil, err
	}

	return submit(ctx, c, a, "sign in", func(ctx context.Context) (*AuthResult, error) {
		u, err := c.store.UserByEmail(ctx, email)
		if errors.Is(err, store.ErrNotFound) {
			return nil, &Failure{Code: CodeUnauthenticated, Message: msgBadLogin}
		}
		if err != nil {
			return nil, err
		}
		if !auth.CheckPassword(u.PasswordHash, password) {
			return nil, &Failure{Code: CodeUnauthenticated, Message: msgBadLogin}
		}
		res, err := c.openSession(ctx, *u)
		if err != nil {
			return nil, err
		}
		res.Notice = c.report(aud, FormSignIn, notify.Success, fmt.Sprintf("Welcome back, %s!", u.Email))
		return res, nil
	})
}

func (c *Controller) openSession(ctx context.Context, u model.User) (*AuthResult, error) {
	raw, hash, err := auth.NewSessionID()
	if err != nil {
		return nil, err
	}
	sess, err := c.store.CreateSession(ctx, hash, u.Email, c.sessionTTL)
	if err != nil {
		return nil, err
	}
	tok, err := auth.MakeToken(raw, u.Email, c.secret, c.sessionTTL)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return &AuthResult{Token: tok, User: u, Session: *sess}, nil
}

// Authenticate resolves a bearer token to its live session.
func (c *Controller) Authenticate(ctx context.Context, token string) (*model.Session, error) {
	claims, err := auth.ParseToken(token, c.secret)
	if err != nil {
		return nil, &Failure{Code: CodeUnauthenticated, Message: msgSignInFirst, Err: err}
	}
	sess, err := c.store.GetSession(ctx, auth.HashSessionID(claims.SessionID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, &Failure{Code: CodeUnauthenticated, Message: msgSignInFirst, Err: err}
	}
	if err != nil {
		c.log.Error("session lookup", zap.Error(err))
		return nil, &Failure{Code: CodeInternal, Message: msgInternal, Err: err}
	}
	if sess.Email != store.NormalizeEmail(claims.Subject) {
		return nil, &Failure{Code: CodeUnauthenticated, Message: msgSignInFirst, Err: auth.ErrBadToken}
	}
	return sess, nil
}

// Logout ends the caller's session.
func (c *Controller) Logout(ctx context.Context) (notify.Notice, error) {
	sess, err := c.requireSession(ctx, "")
	if err != nil {
		return notify.Notice{}, err
	}
	if err := c.store.DeleteSession(ctx, sess.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return notify.Notice{}, c.failure(Audience(ctx), "", "logout", err)
	}
	return c.notes.Toast(Audience(ctx), notify.Success, msgLoggedOut), nil
}

// LogoutAll ends every session of the caller's account, this one included.
func (c *Controller) LogoutAll(ctx context.Context) (notify.Notice, error) {
	sess, err := c.requireSession(ctx, "")
	if err != nil {
		return notify.Notice{}, err
	}
	n, err := c.store.DeleteUserSessions(ctx, sess.Email)
	if err != nil {
		return notify.Notice{}, c.failure(Audience(ctx), "", "logout all", err)
	}
	c.log.Info("sessions ended", zap.String("email", sess.Email), zap.Int("count", n))
	return c.notes.Toast(Audience(ctx), notify.Success, msgLoggedOutAll), nil
}

// ForgotPassword only acknowledges; no mail is sent.
func (c *Controller) ForgotPassword(ctx context.Context, email string) (notify.Notice, error) {
	aud := Audience(ctx)
	email = store.NormalizeEmail(email)

	a, err := c.start(aud, FormForgot,
		validate.Rule{Field: "email", Message: msgEmailFirst, OK: func() bool { return validate.Required(email) }},
		validate.Rule{Field: "email", Message: msgBadEmail, OK: func() bool { return c.emailOK(email) }},
	)
	if err != nil {
		return notify.Notice{}, err
	}
	a.finish(Succeeded)
	return c.report(aud, FormForgot, notify.Success,
		fmt.Sprintf("Password reset link sent to %s. Check your inbox!", email)), nil
}

// Profile returns the signed-in user without the password hash.
func (c *Controller) Profile(ctx context.Context) (*model.User, error) {
	sess, err := c.requireSession(ctx, "")
	if err != nil {
		return nil, err
	}
	u, err := c.store.UserByEmail(ctx, sess.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, c.fail(Audience(ctx), "", &Failure{Code: CodeNotFound, Message: msgNoSuchProfile, Err: err})
	}
	if err != nil {
		return nil, c.failure(Audience(ctx), "", "profile", err)
	}
	u.PasswordHash = ""
	return u, nil
}
