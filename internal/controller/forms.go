package controller

import "sync"

type Form string

const (
	FormSignIn     Form = "signin"
	FormSignUp     Form = "signup"
	FormForgot     Form = "forgot"
	FormBooking    Form = "booking"
	FormCancel     Form = "cancel"
	FormReschedule Form = "reschedule"
)

// auth forms answer with modals, the rest with toasts
var modalForms = map[Form]bool{
	FormSignIn: true,
	FormSignUp: true,
	FormForgot: true,
}

type State int

const (
	Idle State = iota
	Validating
	Rejected
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Rejected:
		return "rejected"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "success"
	case Failed:
		return "failure"
	}
	return "unknown"
}

type formKey struct {
	audience string
	form     Form
}

// forms tracks the submit state of every (audience, form) pair.
// A pair that is not Idle refuses a second submit.
type forms struct {
	mu    sync.Mutex
	state map[formKey]State
	hook  func(audience string, form Form, s State)
}

func newForms() *forms {
	return &forms{state: make(map[formKey]State)}
}

func (f *forms) get(audience string, form Form) State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state[formKey{audience, form}]
}

// begin moves the pair to Validating. ok is false if it is already busy.
func (f *forms) begin(audience string, form Form) (a *attempt, ok bool) {
	a = &attempt{f: f, key: formKey{audience, form}}
	// anonymous callers cannot be told apart, so they are never locked out
	if audience == "" {
		a.f = nil
		return a, true
	}
	f.mu.Lock()
	if f.state[a.key] != Idle {
		f.mu.Unlock()
		return nil, false
	}
	f.state[a.key] = Validating
	f.mu.Unlock()
	f.notify(a.key, Validating)
	return a, true
}

func (f *forms) notify(k formKey, s State) {
	if f.hook != nil {
		f.hook(k.audience, k.form, s)
	}
}

type attempt struct {
	f    *forms
	key  formKey
	once sync.Once
}

func (a *attempt) set(s State) {
	if a.f == nil {
		return
	}
	a.f.mu.Lock()
	a.f.state[a.key] = s
	a.f.mu.Unlock()
	a.f.notify(a.key, s)
}

// finish records the terminal state and releases the pair back to Idle.
func (a *attempt) finish(s State) {
	a.once.Do(func() {
		if a.f == nil {
			return
		}
		a.f.notify(a.key, s)
		a.f.mu.Lock()
		delete(a.f.state, a.key)
		a.f.mu.Unlock()
		a.f.notify(a.key, Idle)
	})
}
