// Package controller implements the form flows of the booking site: every
// submit is validated, run as a delayed task against the store, and reported
// to the caller's notice feed.
package controller

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"service-booking-api/internal/catalog"
	"service-booking-api/internal/model"
	"service-booking-api/internal/notify"
	"service-booking-api/internal/store"
	"service-booking-api/internal/task"
	"service-booking-api/internal/validate"
)

type Code int

const (
	CodeInvalid Code = iota + 1
	CodeConflict
	CodeUnauthenticated
	CodeNotFound
	CodeBusy
	CodeInternal
)

func (c Code) String() string {
	switch c {
	case CodeInvalid:
		return "invalid"
	case CodeConflict:
		return "conflict"
	case CodeUnauthenticated:
		return "unauthenticated"
	case CodeNotFound:
		return "not_found"
	case CodeBusy:
		return "busy"
	case CodeInternal:
		return "internal"
	}
	return "unknown"
}

// Failure is what a form reports when it does not succeed. Message is the
// user-facing text; Notice is the notice that was posted for it.
type Failure struct {
	Code    Code
	Field   string
	Message string
	Notice  notify.Notice
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

// CodeOf returns the failure code carried by err, or CodeInternal.
func CodeOf(err error) Code {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return CodeInternal
}

const (
	msgRequired      = "Please fill in all fields"
	msgRequiredAll   = "Please fill in all required fields"
	msgBadEmail      = "Please enter a valid email address"
	msgShortPassword = "Password must be at least 6 characters"
	msgSignInFirst   = "Please sign in first"
	msgBusy          = "Your previous request is still processing"
	msgInternal      = "Something went wrong. Please try again."
)

type Controller struct {
	store   *store.Store
	notes   *notify.Notifier
	catalog *catalog.Catalog
	secret  string
	forms   *forms
	log     *zap.Logger

	latency     time.Duration
	sessionTTL  time.Duration
	strictEmail bool
	loc         *time.Location
	now         func() time.Time
}

type Option func(*Controller)

// WithLatency sets how long a submission waits before it runs.
func WithLatency(d time.Duration) Option {
	return func(c *Controller) { c.latency = d }
}

func WithSessionTTL(d time.Duration) Option {
	return func(c *Controller) { c.sessionTTL = d }
}

func WithStrictEmail(on bool) Option {
	return func(c *Controller) { c.strictEmail = on }
}

// WithLocation sets the zone calendar days are counted in.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) { c.loc = loc }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithStateHook observes every form state change.
func WithStateHook(fn func(audience string, form Form, s State)) Option {
	return func(c *Controller) { c.forms.hook = fn }
}

func New(st *store.Store, notes *notify.Notifier, cat *catalog.Catalog, secret string, opts ...Option) *Controller {
	c := &Controller{
		store:      st,
		notes:      notes,
		catalog:    cat,
		secret:     secret,
		forms:      newForms(),
		log:        zap.NewNop(),
		latency:    1500 * time.Millisecond,
		sessionTTL: 24 * time.Hour,
		loc:        time.Local,
		now:        time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.Named("controller")
	return c
}

func (c *Controller) clock() time.Time {
	return c.now().In(c.loc)
}

// FormState reports where a form of an audience currently is.
func (c *Controller) FormState(audience string, form Form) State {
	return c.forms.get(audience, form)
}

// Notices returns the caller's live notices, oldest first.
func (c *Controller) Notices(ctx context.Context) []notify.Notice {
	return c.notes.Pending(Audience(ctx))
}

func (c *Controller) DismissNotice(ctx context.Context, id string) bool {
	return c.notes.Dismiss(Audience(ctx), id)
}

func (c *Controller) emailOK(s string) bool {
	if c.strictEmail {
		return validate.StrictEmail(s)
	}
	return validate.Email(s)
}

func (c *Controller) report(aud string, form Form, kind notify.Kind, msg string) notify.Notice {
	if modalForms[form] {
		return c.notes.Modal(aud, kind, msg)
	}
	return c.notes.Toast(aud, kind, msg)
}

// fail posts the failure notice and returns f.
func (c *Controller) fail(aud string, form Form, f *Failure) *Failure {
	f.Notice = c.report(aud, form, notify.Error, f.Message)
	return f
}

// failure turns any error into a reported Failure.
func (c *Controller) failure(aud string, form Form, op string, err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		if f.Notice.ID == "" {
			c.fail(aud, form, f)
		}
		return f
	}
	var ve *validate.Error
	if errors.As(err, &ve) {
		return c.fail(aud, form, &Failure{Code: CodeInvalid, Field: ve.Field, Message: ve.Message, Err: err})
	}
	c.log.Error(op, zap.String("form", string(form)), zap.Error(err))
	return c.fail(aud, form, &Failure{Code: CodeInternal, Message: msgInternal, Err: err})
}

// start opens an attempt for form and validates. A nil attempt means the
// returned error has already been reported.
func (c *Controller) start(aud string, form Form, rules ...validate.Rule) (*attempt, error) {
	a, ok := c.forms.begin(aud, form)
	if !ok {
		return nil, c.fail(aud, form, &Failure{Code: CodeBusy, Message: msgBusy})
	}
	if err := validate.Check(rules...); err != nil {
		a.finish(Rejected)
		return nil, c.failure(aud, form, "validate", err)
	}
	return a, nil
}

// submit runs fn as a delayed task. The outcome is reported and the form
// released when the task lands, even if the caller stopped waiting.
func submit[T any](ctx context.Context, c *Controller, a *attempt, op string, fn func(context.Context) (T, error)) (T, error) {
	a.set(Submitting)
	fut := task.Run(ctx, c.latency, func(ctx context.Context) (T, error) {
		v, err := fn(ctx)
		if err != nil {
			f := c.failure(a.key.audience, a.key.form, op, err)
			a.finish(Failed)
			return v, f
		}
		a.finish(Succeeded)
		return v, nil
	})
	return fut.Await(ctx)
}

// requireSession returns the caller's session or a reported Unauthenticated failure.
func (c *Controller) requireSession(ctx context.Context, form Form) (*model.Session, error) {
	sess := SessionFrom(ctx)
	if sess == nil {
		return nil, c.fail(Audience(ctx), form, &Failure{Code: CodeUnauthenticated, Message: msgSignInFirst})
	}
	return sess, nil
}
