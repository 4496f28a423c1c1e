package core

import (
	"fmt"

	"github.com/santiagomed/politica/logger"
	"github.com/santiagomed/politica/policy"
)

// FailureMessage is the only text shown to the user when generation fails.
const FailureMessage = "Falha ao gerar a política. Verifique sua chave de API e tente novamente."

type Status int

const (
	Idle Status = iota
	Submitting
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ViewKind selects which of the mutually exclusive result views is shown.
type ViewKind int

const (
	ViewEmpty ViewKind = iota
	ViewLoading
	ViewError
	ViewText
)

// Submission is the snapshot handed to the generation client.
type Submission struct {
	Seq     uint64
	Request policy.Request
}

// Form owns the session's request record and result state.
// It is not safe for concurrent use; the UI loop is its only writer.
type Form struct {
	request *policy.Request
	status  Status
	result  string
	errMsg  string
	seq     uint64

	copied    bool
	copyToken uint64

	logger logger.Logger
}

func NewForm(req *policy.Request, l logger.Logger) *Form {
	if req == nil {
		req = policy.DefaultRequest()
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &Form{request: req, logger: l}
}

func (f *Form) Request() *policy.Request { return f.request }
func (f *Form) Status() Status           { return f.status }
func (f *Form) Result() string           { return f.result }
func (f *Form) ErrorMessage() string     { return f.errMsg }
func (f *Form) Copied() bool             { return f.copied }

// Submitting reports whether a generation is in flight; the submit trigger is disabled meanwhile.
func (f *Form) Submitting() bool { return f.status == Submitting }

// SetField replaces a single field of the record. The status is unchanged.
func (f *Form) SetField(name, value string) error {
	return f.request.SetField(name, value)
}

// Toggle flips a catalog entry in the named group. The status is unchanged.
func (f *Form) Toggle(group, label string) error {
	return f.request.Toggle(group, label)
}

// Submit validates the record and moves to Submitting, clearing any previous
// result, error and copy feedback. The returned Submission carries the
// sequence number that Resolve must be called with.
func (f *Form) Submit() (Submission, error) {
	if err := f.request.Validate(); err != nil {
		return Submission{}, err
	}

	f.seq++
	f.status = Submitting
	f.result = ""
	f.errMsg = ""
	f.copied = false

	f.logger.Info(fmt.Sprintf("Submitting request %d for %q", f.seq, f.request.StoreName))
	return Submission{Seq: f.seq, Request: f.request.Clone()}, nil
}

// Resolve records the outcome of submission seq. Outcomes of submissions
// superseded by a later Submit are dropped and Resolve returns false.
func (f *Form) Resolve(seq uint64, text string, err error) bool {
	if seq != f.seq || f.status != Submitting {
		f.logger.Debug(fmt.Sprintf("Dropping superseded result for request %d (latest %d)", seq, f.seq))
		return false
	}

	if err != nil {
		f.logger.WithField("request", seq).Error(fmt.Sprintf("Policy generation failed: %v", err))
		f.status = Failed
		f.errMsg = FailureMessage
		return true
	}

	f.logger.Info(fmt.Sprintf("Request %d generated %d bytes", seq, len(text)))
	f.status = Succeeded
	f.result = text
	return true
}

// View picks the result view for the current state.
func (f *Form) View() ViewKind {
	switch {
	case f.status == Submitting:
		return ViewLoading
	case f.errMsg != "":
		return ViewError
	case f.result == "":
		return ViewEmpty
	default:
		return ViewText
	}
}

// MarkCopied raises the copied flag and returns the token that clears it.
func (f *Form) MarkCopied() uint64 {
	f.copyToken++
	f.copied = true
	return f.copyToken
}

// ResetCopied lowers the copied flag unless a newer copy happened after token was issued.
func (f *Form) ResetCopied(token uint64) {
	if token == f.copyToken {
		f.copied = false
	}
}
