package commands

// ActionResult is the uniform outcome returned by every command. Business
// failures are reported through Errors/Warnings, never as Go errors; Go
// errors are reserved for infrastructure faults and programmer misuse.
type ActionResult[T any] struct {
	Success  bool     `json:"success"`
	Result   T        `json:"result,omitempty"`
	Messages []string `json:"messages,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	// Delete tells the caller to remove the aggregate instead of
	// persisting it.
	Delete bool `json:"-"`
}

func Successful[T any](result T, messages ...string) *ActionResult[T] {
	return &ActionResult[T]{
		Success:  true,
		Result:   result,
		Messages: messages,
	}
}

func Unsuccessful[T any](errors ...string) *ActionResult[T] {
	return &ActionResult[T]{Errors: errors}
}

// absorb folds a sub-operation's outcome into r. Success only survives
// when every absorbed outcome succeeded.
func (r *ActionResult[T]) absorb(success bool, messages, warnings, errors []string) {
	r.Success = r.Success && success
	r.Messages = append(r.Messages, messages...)
	r.Warnings = append(r.Warnings, warnings...)
	r.Errors = append(r.Errors, errors...)
}

// As rewraps an outcome around a different result value, keeping the
// messages. Used when a parent command reports a sub-command's outcome.
func As[TOut any, TIn any](r *ActionResult[TIn], result TOut) *ActionResult[TOut] {
	return &ActionResult[TOut]{
		Success:  r.Success,
		Result:   result,
		Messages: r.Messages,
		Warnings: r.Warnings,
		Errors:   r.Errors,
		Delete:   r.Delete,
	}
}
