// Package form implements the create/edit form controller: a small state
// machine owning the in-progress candidate record, its per-field errors,
// and the submission lifecycle against the orchestration layer.
package form

import (
	"context"
	"errors"
	"sync"

	"github.com/vrocha/admincli/internal/client/models"
	"github.com/vrocha/admincli/internal/client/validation"
)

// Mode selects which schema and use-case a submission goes through.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// State is the controller lifecycle state.
type State int

const (
	StateClosed State = iota
	StateOpenCreate
	StateOpenEdit
	StateSubmitting
)

var (
	// ErrNotOpen is returned by Submit when the form is closed.
	ErrNotOpen = errors.New("formulário não está aberto")

	// ErrSubmitInFlight is returned when a submission is already running;
	// at most one submission may be in flight per open form.
	ErrSubmitInFlight = errors.New("já existe um envio em andamento")

	errCreateUnavailable = errors.New("CreateUserUseCase não está disponível")
	errUpdateUnavailable = errors.New("UpdateUserUseCase não está disponível")
)

// creator and updater are the slices of the use-case layer the controller
// needs; the concrete types in internal/client/usecase satisfy them.
type creator interface {
	Execute(ctx context.Context, in models.UserInput) (*models.User, error)
}

type updater interface {
	Execute(ctx context.Context, id string, in models.UserInput) (*models.User, error)
}

// Controller drives the user create/edit form.
//
// Locking: all state lives behind mu. The gateway call happens with the lock
// released; every submission is tagged with the generation current at its
// start, and a response whose generation no longer matches (the form was
// reopened meanwhile) is discarded without side effects.
type Controller struct {
	create creator
	update updater

	onSuccess func(*models.User)
	onError   func(string)

	mu         sync.Mutex
	state      State
	mode       Mode
	generation uint64
	candidate  models.UserInput
	fieldErrs  []validation.FieldError
	rootErr    string
}

// NewController builds a closed controller. The callbacks may be nil; the
// use-cases may individually be nil, in which case submitting in the
// corresponding mode surfaces a root-level configuration message instead of
// panicking (mirrors the fail-fast check in the use-case constructors).
func NewController(create creator, update updater, onSuccess func(*models.User), onError func(string)) *Controller {
	return &Controller{
		create:    create,
		update:    update,
		onSuccess: onSuccess,
		onError:   onError,
	}
}

// Open transitions to OpenCreate or OpenEdit, discarding any previous
// candidate and errors. In edit mode the candidate is prefilled from
// initial — except the password, which is never prefilled. Opening bumps
// the generation so a submission still in flight from an earlier session
// can no longer apply its result.
func (c *Controller) Open(mode Mode, initial *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.mode = mode
	c.fieldErrs = nil
	c.rootErr = ""
	c.candidate = models.UserInput{}

	if mode == ModeEdit {
		c.state = StateOpenEdit
		if initial != nil {
			c.candidate = models.UserInput{
				ID:    string(initial.ID),
				Name:  initial.Name,
				Email: initial.Email,
				CPF:   initial.CPF,
			}
		}
	} else {
		c.state = StateOpenCreate
	}
}

// Close dismisses the form, discarding the candidate without any gateway
// call. It reports whether the form actually closed: closing is refused
// while a submission is in flight and is a no-op when already closed.
func (c *Controller) Close() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateOpenCreate && c.state != StateOpenEdit {
		return false
	}
	c.state = StateClosed
	c.candidate = models.UserInput{}
	c.fieldErrs = nil
	c.rootErr = ""
	return true
}

// Submit runs the full validate → delegate → notify pipeline for in.
//
// Schema violations keep the form open with per-field errors and never reach
// the network. A gateway (or orchestration) failure re-opens the form with a
// single root-level message, preserving the typed input for correction. On
// success the form closes and OnSuccess fires exactly once. A result
// arriving after the form was reopened is dropped entirely.
func (c *Controller) Submit(ctx context.Context, in models.UserInput) error {
	c.mu.Lock()

	switch c.state {
	case StateClosed:
		c.mu.Unlock()
		return ErrNotOpen
	case StateSubmitting:
		c.mu.Unlock()
		return ErrSubmitInFlight
	}

	mode := c.mode
	if mode == ModeEdit && in.ID == "" {
		// The hidden id travels with the prefilled candidate.
		in.ID = c.candidate.ID
	}
	c.candidate = in
	c.rootErr = ""

	if verr := c.validateLocked(mode, in); verr != nil {
		c.fieldErrs = verr.Fields
		c.mu.Unlock()
		return verr
	}

	c.fieldErrs = nil
	c.state = StateSubmitting
	gen := c.generation
	c.mu.Unlock()

	user, err := c.dispatch(ctx, mode, in)

	c.mu.Lock()
	if c.generation != gen {
		// The form was reopened while this call was in flight; the
		// response belongs to a dead session.
		c.mu.Unlock()
		return nil
	}

	if err != nil {
		if mode == ModeEdit {
			c.state = StateOpenEdit
		} else {
			c.state = StateOpenCreate
		}

		var verr *validation.Error
		if errors.As(err, &verr) {
			// Defense in depth: the use-case re-validates; surface any
			// violation it caught next to the fields.
			c.fieldErrs = verr.Fields
			c.mu.Unlock()
			return err
		}

		msg := err.Error()
		c.rootErr = msg
		cb := c.onError
		c.mu.Unlock()
		if cb != nil {
			cb(msg)
		}
		return err
	}

	c.state = StateClosed
	c.candidate = models.UserInput{}
	cb := c.onSuccess
	c.mu.Unlock()
	if cb != nil {
		cb(user)
	}
	return nil
}

func (c *Controller) validateLocked(mode Mode, in models.UserInput) *validation.Error {
	if mode == ModeEdit {
		return validation.ValidateUpdate(in)
	}
	return validation.ValidateCreate(in)
}

func (c *Controller) dispatch(ctx context.Context, mode Mode, in models.UserInput) (*models.User, error) {
	if mode == ModeEdit {
		if c.update == nil {
			return nil, errUpdateUnavailable
		}
		return c.update.Execute(ctx, in.ID, in)
	}
	if c.create == nil {
		return nil, errCreateUnavailable
	}
	return c.create.Execute(ctx, in)
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mode returns the mode of the current (or last) session.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Candidate returns a copy of the in-progress candidate record.
func (c *Controller) Candidate() models.UserInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.candidate
}

// FieldErrors returns the per-field violations from the last submission
// attempt, in schema order.
func (c *Controller) FieldErrors() []validation.FieldError {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]validation.FieldError, len(c.fieldErrs))
	copy(out, c.fieldErrs)
	return out
}

// RootError returns the root-level failure message from the last submission
// attempt, or "" when there is none.
func (c *Controller) RootError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rootErr
}
