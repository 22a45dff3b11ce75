package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/minecraft"
)

// CliError is an error that might get displayed to the user
type CliError struct {
	Text        string
	Code        string
	Suggestions []string
	Help        string
	// Err is the underlying error, if any
	Err error
}

func (e *CliError) Error() string {
	return e.Text
}

func (e *CliError) Unwrap() error {
	return e.Err
}

func (e *CliError) RichError() string {
	rendered := ErrorBox(e.Text, e.Help)
	if len(e.Suggestions) != 0 {
		suggestionText := "Suggestion:\n"
		if len(e.Suggestions) > 1 {
			suggestionText = "Suggestions:\n"
		}
		suggestionText = Emoji("📎 ") + suggestionText
		for _, s := range e.Suggestions {
			suggestionText += " ⦁ " + s + "\n"
		}
		rendered = lipgloss.JoinVertical(lipgloss.Left, rendered, styleHelpBox.Render(suggestionText))
	}
	return rendered
}

// Explain turns errors of the resolver into a CliError with suggestions.
// Other errors are returned unchanged
func Explain(err error) error {
	var (
		cliErr     *CliError
		notFound   *minecraft.VersionNotFoundError
		malformed  *minecraft.MalformedDescriptorError
		invalidZip *minecraft.InvalidArchiveError
		netErr     *downloadmgr.NetworkError
		mismatch   *downloadmgr.HashMismatchError
		ioErr      *downloadmgr.IOError
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &cliErr):
		return cliErr
	case errors.As(err, &notFound):
		return &CliError{
			Text:        fmt.Sprintf("Minecraft version %q does not exist", notFound.ID),
			Code:        "version-not-found",
			Suggestions: []string{"Run \"mclaunch versions\" to list all versions", "Run \"mclaunch versions --refresh\" if the version was released recently"},
			Err:         err,
		}
	case errors.As(err, &malformed):
		return &CliError{
			Text:        err.Error(),
			Code:        "malformed-descriptor",
			Suggestions: []string{fmt.Sprintf("Delete %s and try again", malformed.Source)},
			Err:         err,
		}
	case errors.As(err, &invalidZip):
		return &CliError{
			Text:        err.Error(),
			Code:        "invalid-archive",
			Suggestions: []string{fmt.Sprintf("Delete %s and try again", invalidZip.Path)},
			Err:         err,
		}
	case errors.As(err, &netErr):
		return &CliError{
			Text: err.Error(),
			Code: "network",
			Suggestions: []string{
				"Check your internet connection",
				"Check the \"proxy\" setting with \"mclaunch config get proxy\"",
			},
			Help: "Everything downloaded so far was kept. Run the same command again to continue.",
			Err:  err,
		}
	case errors.As(err, &mismatch):
		return &CliError{
			Text:        err.Error(),
			Code:        "hash-mismatch",
			Suggestions: []string{"Try again, the corrupt file was deleted"},
			Err:         err,
		}
	case errors.As(err, &ioErr):
		return &CliError{
			Text:        err.Error(),
			Code:        "io",
			Suggestions: []string{"Check the permissions of " + ioErr.Path, "Check that your disk is not full"},
			Err:         err,
		}
	}
	return err
}
