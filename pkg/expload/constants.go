package expload

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Load completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or flags
	ExitConnectionError  = 11 // Failed to connect to Redis
	ExitFileAccessError  = 12 // Input file missing or unreadable
	ExitWriteFailed      = 13 // Store write failed
	ExitMalformedRecord  = 14 // Input line violated key=value shape
	ExitValueDecodeError = 15 // Value was not a JSON numeric array
	ExitNotImplemented   = 16 // Subcommand has no implementation yet
)

const (
	// DefaultRedisAddr is the Redis address used when no flag, environment
	// variable, or config file provides one.
	DefaultRedisAddr = "127.0.0.1:6379"

	// EnvRedisAddr overrides the default Redis address.
	EnvRedisAddr = "EXPLOAD_REDIS_ADDR"

	// EnvRedisPassword overrides the Redis password.
	EnvRedisPassword = "EXPLOAD_REDIS_PWD"

	// EnvWebhookURL overrides the notification webhook URL.
	EnvWebhookURL = "EXPLOAD_WEBHOOK_URL"
)
