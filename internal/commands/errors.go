package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped command errors so host applications can
// react to doclint failures without string-matching messages.
const (
	textCodeValidation      = "DOCLINT_CMD_VALIDATION"
	textCodeCanceled        = "DOCLINT_CMD_CANCELED"
	textCodeTimeout         = "DOCLINT_CMD_TIMEOUT"
	textCodeContextFailure  = "DOCLINT_CMD_CONTEXT_FAILURE"
	textCodeExecutionFailed = "DOCLINT_CMD_EXECUTION_FAILED"
)

// wrapValidationError grades message validation failures. Errors already
// wrapped by go-errors pass through untouched so categories assigned closer
// to the failure win.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "doclint command rejected invalid message").
		WithTextCode(textCodeValidation)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "doclint command canceled").
			WithTextCode(textCodeCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "doclint command timed out").
			WithTextCode(textCodeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "doclint command context failed").
			WithTextCode(textCodeContextFailure)
	}
}

func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "doclint command execution failed").
		WithTextCode(textCodeExecutionFailed)
}
