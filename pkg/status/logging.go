package status

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about migration progress.
// Per-file "Updated" lines go to the console writer in processing order;
// skips and deletions are debug-level only, matching the tool's contract
// that updated-file lines are the sole progress signal.
type UserLogger struct {
	console   io.Writer
	formatter FileFormatter
	log       zerolog.Logger
	mu        sync.Mutex
}

// 🎯 NewUserLogger creates a new user logger writing to console
func NewUserLogger(ctx context.Context, console io.Writer, formatter FileFormatter) *UserLogger {
	if formatter == nil {
		formatter = NewDefaultFileFormatter()
	}
	return &UserLogger{
		console:   console,
		formatter: formatter,
		log:       *zerolog.Ctx(ctx),
	}
}

// 📝 LogFileUpdated prints the per-file progress line
func (u *UserLogger) LogFileUpdated(name string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.console, u.formatter.FormatUpdated(name))
	u.log.Info().Str("file", name).Msg("updated file")
}

// ⏭️ LogFileSkipped records a skipped file without console output
func (u *UserLogger) LogFileSkipped(name, reason string) {
	u.log.Debug().Str("file", name).Str("reason", reason).Msg("skipped file")
}

// 🗑️ LogFileDeleted records a deleted file without console output
func (u *UserLogger) LogFileDeleted(path string) {
	u.log.Debug().Str("file", path).Msg("deleted file")
}

// 🔍 LogValidation reports the final outcome of a run
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	if err != nil {
		u.mu.Lock()
		fmt.Fprintln(u.console, u.formatter.FormatError(err))
		u.mu.Unlock()
		u.log.Error().Err(err).Msg(description)
		return
	}
	u.log.Warn().Msg(description)
}
