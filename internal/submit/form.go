package submit

import (
	"context"
	"sync"

	"github.com/andresaoe/portafolio/internal/contact"
)

// Form holds the three contact fields and the status shown next to them. Only one
// submission may be in flight at a time.
type Form struct {
	pipeline *Pipeline

	mu     sync.Mutex
	fields contact.Submission
	status Status
}

func NewForm(p *Pipeline) *Form {
	return &Form{
		pipeline: p,
		status:   idle(),
	}
}

func (f *Form) SetName(v string)    { f.edit(func(s *contact.Submission) { s.Name = v }) }
func (f *Form) SetEmail(v string)   { f.edit(func(s *contact.Submission) { s.Email = v }) }
func (f *Form) SetMessage(v string) { f.edit(func(s *contact.Submission) { s.Message = v }) }

// edit applies a field change; editing after an error returns the form to idle.
func (f *Form) edit(apply func(*contact.Submission)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	apply(&f.fields)
	if f.status.IsError() {
		f.status = idle()
	}
}

func (f *Form) Fields() contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// CanSubmit is false while a submission is in flight.
func (f *Form) CanSubmit() bool {
	return !f.Status().IsSending()
}

// Submit runs the current fields through the pipeline. Fields are cleared as soon as the
// insert succeeds; a failed insert keeps them for the visitor to fix and resend.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.status.IsSending() {
		f.mu.Unlock()
		return Outcome{}, ErrSubmissionInFlight
	}

	s, status, ok := f.pipeline.Prepare(f.fields)
	f.status = status
	f.mu.Unlock()
	if !ok {
		return Outcome{Status: status}, nil
	}

	out := f.pipeline.Execute(ctx, s, func() {
		f.mu.Lock()
		f.fields = contact.Submission{}
		f.mu.Unlock()
	})

	f.mu.Lock()
	f.status = out.Status
	f.mu.Unlock()
	return out, nil
}
