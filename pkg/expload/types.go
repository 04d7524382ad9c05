package expload

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ABKind is the AB-parameter document kind, appended to every field name
// written by the ab-params subcommand.
type ABKind string

const (
	ABKindFill  ABKind = "fill"
	ABKindShow  ABKind = "show"
	ABKindClick ABKind = "click"
)

// ParseABKind converts a --type flag value into an ABKind.
func ParseABKind(s string) (ABKind, error) {
	switch ABKind(s) {
	case ABKindFill, ABKindShow, ABKindClick:
		return ABKind(s), nil
	}
	return "", fmt.Errorf("invalid ab-params type %q (expected fill, show or click): %w", s, ErrInvalidConfig)
}

// SignalType is the range-signal file type. The range-signal subcommand
// accepts these but has no implemented behavior yet.
type SignalType string

const (
	SignalTemptClick SignalType = "tempt-click"
	SignalFillRate   SignalType = "fill-rate"
	SignalShowRate   SignalType = "show-rate"
	SignalClickRate  SignalType = "click-rate"
)

// ParseSignalType converts a --type flag value into a SignalType.
func ParseSignalType(s string) (SignalType, error) {
	switch SignalType(s) {
	case SignalTemptClick, SignalFillRate, SignalShowRate, SignalClickRate:
		return SignalType(s), nil
	}
	return "", fmt.Errorf("invalid range-signal type %q (expected tempt-click, fill-rate, show-rate or click-rate): %w", s, ErrInvalidConfig)
}

// LoadConfig contains all parameters needed for one load invocation.
type LoadConfig struct {
	// RedisAddr is the host:port of the target Redis server.
	RedisAddr string

	// RedisPassword is the AUTH credential. Empty means no AUTH.
	RedisPassword string

	// FilePath is the input file to load.
	FilePath string

	// WebhookURL, when non-empty, receives a notification message after a
	// successful load. Must be an absolute URL.
	WebhookURL string

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.RedisAddr == "" {
		errs = append(errs, fmt.Errorf("redis address is required: %w", ErrInvalidConfig))
	}

	if c.FilePath == "" {
		errs = append(errs, fmt.Errorf("input file path is required: %w", ErrInvalidConfig))
	}

	if c.WebhookURL != "" {
		u, err := url.Parse(c.WebhookURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			errs = append(errs, fmt.Errorf("webhook URL %q is not a valid absolute URL: %w", c.WebhookURL, ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// Summary describes the outcome of a successful load.
type Summary struct {
	// RunID uniquely identifies this invocation.
	RunID string

	// Command is the subcommand that produced the summary.
	Command string

	// FilePath is the input file that was loaded.
	FilePath string

	// Records is the number of input records parsed successfully.
	Records int

	// Fields is the number of hash fields written to the store.
	Fields int

	// Skipped is the number of malformed lines skipped (ab-params only;
	// every other loader aborts on the first malformed line).
	Skipped int

	// Duration is the wall-clock time of the load.
	Duration time.Duration
}
