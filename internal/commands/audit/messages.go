package auditcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	scanDirectoryMessageType = "doclint.audit.scan_directory"
	verifyLinksMessageType   = "doclint.audit.verify_links"
)

// ScanDirectoryCommand triggers a full corpus scan under the provided
// Directory, evaluating every registered rule and recording the run unless
// DryRun is set.
type ScanDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) holding the corpus.
	Directory string `json:"directory"`
	// Rules restricts the scan to the named rule IDs. Empty means all registered rules.
	Rules []string `json:"rules,omitempty"`
	// FailOn sets the severity threshold that marks the run failed. Defaults to error.
	FailOn string `json:"fail_on,omitempty"`
	// DryRun skips persisting the run to the store.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (ScanDirectoryCommand) Type() string { return scanDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ScanDirectoryCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("doclint.audit.scan_directory.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.FailOn, validation.In("", "error", "warning", "notice")),
	)
	if err != nil {
		return err
	}
	return nil
}

// VerifyLinksCommand runs only the reference rules for the provided Directory,
// suitable for fast pre-commit or CI checks.
type VerifyLinksCommand struct {
	// Directory selects the filesystem path (relative or absolute) holding the corpus.
	Directory string `json:"directory"`
	// FailOn sets the severity threshold that marks the run failed. Defaults to error.
	FailOn string `json:"fail_on,omitempty"`
}

// Type implements command.Message.
func (VerifyLinksCommand) Type() string { return verifyLinksMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd VerifyLinksCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("doclint.audit.verify_links.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.FailOn, validation.In("", "error", "warning", "notice")),
	)
	if err != nil {
		return err
	}
	return nil
}
