package status

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about patch runs
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎨 PatchOutcome represents the outcome of a patch run on the target file
type PatchOutcome int

const (
	OutcomeFixed    PatchOutcome = iota // file was modified and rewritten
	OutcomeClean                        // no occurrences found, file untouched
	OutcomeWouldFix                     // check only: the patch would modify the file
	OutcomeError                        // the run failed
)

// 🖼️ PatchEvent represents the result of one patch run
type PatchEvent struct {
	Outcome PatchOutcome
	Path    string
	Patches int
	Err     error
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogPatchEvent logs a patch run with appropriate emoji and formatting
func (u *UserLogger) LogPatchEvent(event PatchEvent) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch event.Outcome {
	case OutcomeFixed:
		prefix = "✨"
		action = "Fixed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeClean:
		prefix = "👍"
		action = "Already clean"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeWouldFix:
		prefix = "⟳"
		action = "Would fix"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, event.Path)
	if event.Patches > 0 {
		msg += fmt.Sprintf(" (%d substitutions)", event.Patches)
	}

	if event.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(event.Err)
		u.log.Error().Err(event.Err).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg) // Also log to zerolog for debugging
	}
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
	} else {
		if err != nil {
			pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
			pterm.Error.Println(err)
			u.log.Error().Err(err).Msg(description)
		} else {
			pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
			u.log.Warn().Msg(description)
		}
	}
}
