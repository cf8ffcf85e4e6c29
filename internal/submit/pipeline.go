// Package submit drives a contact submission through its two calls: the required insert into
// contact_messages and the best-effort notification relay. A failed notification never undoes
// the insert; it only softens the success copy.
package submit

import (
	"context"
	"errors"
	"log/slog"

	"github.com/andresaoe/portafolio/internal/contact"
)

var (
	ErrBackendUnavailable = errors.New("submit: persistence backend unavailable")
	ErrSubmissionInFlight = errors.New("submit: a submission is already in flight")
)

// Notifier forwards a stored submission to the notification relay.
type Notifier interface {
	Notify(ctx context.Context, s contact.Submission) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, s contact.Submission) error

func (f NotifierFunc) Notify(ctx context.Context, s contact.Submission) error {
	return f(ctx, s)
}

// PersistResult is the outcome of the required insert.
type PersistResult struct {
	Err error
}

func (r PersistResult) OK() bool { return r.Err == nil }

// NotifyResult is the outcome of the best-effort relay call. Attempted is false when no
// notifier is configured or the insert failed.
type NotifyResult struct {
	Attempted bool
	Err       error
}

func (r NotifyResult) Delivered() bool { return r.Attempted && r.Err == nil }

// Outcome of one run. Status is what the visitor sees.
type Outcome struct {
	Submission contact.Submission
	Persist    PersistResult
	Notify     NotifyResult
	Status     Status
}

type Pipeline struct {
	backend  Backend
	notifier Notifier
	rules    ErrorRules
	logger   *slog.Logger
}

type Option func(*Pipeline)

// WithNotifier sets the relay client. A nil notifier leaves the step unattempted.
func WithNotifier(n Notifier) Option {
	return func(p *Pipeline) {
		p.notifier = n
	}
}

func WithErrorRules(rules ErrorRules) Option {
	return func(p *Pipeline) {
		p.rules = rules
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

func NewPipeline(backend Backend, opts ...Option) *Pipeline {
	p := &Pipeline{
		backend: backend,
		rules:   DefaultErrorRules(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.backend == nil {
		p.backend = Unavailable{Reason: "no backend"}
	}
	return p
}

// Available reports whether a persistence client was configured.
func (p *Pipeline) Available() bool {
	_, ok := p.backend.(Available)
	return ok
}

// Prepare validates raw input and checks the backend gate. When ok is false the returned
// status is final and neither call may run.
func (p *Pipeline) Prepare(raw contact.Submission) (contact.Submission, Status, bool) {
	s, err := contact.ValidateForm(raw)
	if err != nil {
		return contact.Submission{}, failed(ValidationMessage(err)), false
	}
	if u, ok := p.backend.(Unavailable); ok {
		p.logger.Error("contact form has no persistence backend", slog.String("reason", u.Reason))
		return contact.Submission{}, failed(MsgNotConfigured), false
	}
	return s, Status{State: StateSending}, true
}

// Persist inserts one row.
func (p *Pipeline) Persist(ctx context.Context, s contact.Submission) PersistResult {
	switch b := p.backend.(type) {
	case Available:
		if err := b.Store.Insert(ctx, s); err != nil {
			p.logger.ErrorContext(ctx, "failed to store contact message", slog.Any("error", err))
			return PersistResult{Err: err}
		}
		return PersistResult{}
	case Unavailable:
		return PersistResult{Err: ErrBackendUnavailable}
	}
	return PersistResult{Err: ErrBackendUnavailable}
}

// Notify calls the relay. Errors are reported in the result and logged, never returned.
func (p *Pipeline) Notify(ctx context.Context, s contact.Submission) NotifyResult {
	if p.notifier == nil {
		return NotifyResult{}
	}
	if err := p.notifier.Notify(ctx, s); err != nil {
		p.logger.WarnContext(ctx, "contact notification failed", slog.Any("error", err))
		return NotifyResult{Attempted: true, Err: err}
	}
	return NotifyResult{Attempted: true}
}

// Execute runs both calls on a prepared submission. afterPersist, when set, runs once the
// insert succeeded and before the relay is called.
func (p *Pipeline) Execute(ctx context.Context, s contact.Submission, afterPersist func()) Outcome {
	out := Outcome{Submission: s}

	out.Persist = p.Persist(ctx, s)
	if !out.Persist.OK() {
		out.Status = failed(p.rules.Friendly(out.Persist.Err))
		return out
	}
	if afterPersist != nil {
		afterPersist()
	}

	out.Notify = p.Notify(ctx, s)
	out.Status = Status{State: StateSuccess, Message: MsgSent}
	if !out.Notify.Delivered() {
		out.Status.Message = MsgSentFallback
	}
	return out
}

// Run is Prepare followed by Execute.
func (p *Pipeline) Run(ctx context.Context, raw contact.Submission) Outcome {
	s, status, ok := p.Prepare(raw)
	if !ok {
		return Outcome{Status: status}
	}
	return p.Execute(ctx, s, nil)
}
