package form

import (
	"context"

	"github.com/employee-intake/intake-service/internal/core/domain"
	"github.com/employee-intake/intake-service/internal/intake/notify"
	"github.com/employee-intake/intake-service/internal/intake/submission"
)

// Submitter sends one validated record. *submission.Client satisfies it.
type Submitter interface {
	Submit(ctx context.Context, e domain.Employee) submission.Outcome
}

// SubmitResult describes what OnSubmit did.
type SubmitResult struct {
	// Blocked is true when a rule failed and no request was issued.
	Blocked bool
	Errors  []FieldError
	Outcome submission.Outcome
}

// Controller wires the form to a submitter and a notifier.
type Controller struct {
	form      *Form
	submitter Submitter
	notifier  notify.Notifier
}

func NewController(f *Form, s Submitter, n notify.Notifier) *Controller {
	return &Controller{form: f, submitter: s, notifier: n}
}

// OnSubmit gates and performs one submission:
//  1. any empty field blocks submission;
//  2. any failing format rule blocks submission, every failure is notified;
//  3. otherwise exactly one request is issued and its outcome notified. On
//     success the form is cleared.
func (c *Controller) OnSubmit(ctx context.Context) SubmitResult {
	if missing := c.form.Missing(); len(missing) > 0 {
		c.notifyAll(missing)
		return SubmitResult{Blocked: true, Errors: missing}
	}

	record := c.form.Record()
	if errs := Validate(record); len(errs) > 0 {
		c.notifyAll(errs)
		return SubmitResult{Blocked: true, Errors: errs}
	}

	out := c.submitter.Submit(ctx, record)
	if out.Success {
		c.notifier.Notify(out.Message, notify.SeveritySuccess)
		c.form.Reset()
	} else {
		c.notifier.Notify(out.Message, notify.SeverityError)
	}
	return SubmitResult{Outcome: out}
}

func (c *Controller) notifyAll(errs []FieldError) {
	for _, e := range errs {
		c.notifier.Notify(e.Message, notify.SeverityError)
	}
}
