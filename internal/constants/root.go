package constants

import "time"

// SessionState represents the current state of the board TUI
type SessionState int

// NoticeLevel represents the severity of a transient operator notice
type NoticeLevel int

const (
	AppName            = "dispatch"
	DefaultKeyringUser = "api-token"
	DefaultConfigDir   = "~/.config/dispatch"
	Version            = "v0.3.1"

	// TokenEnvVar overrides the keyring-stored API token when set
	TokenEnvVar = "DISPATCH_API_TOKEN"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the standard clock format used in slot labels (HH:MM)
	ClockFormat = "15:04"

	// TimestampFormat is the wire format for booking start/end times
	TimestampFormat = "2006-01-02T15:04:05"

	// DefaultRequestTimeout bounds every backend call
	DefaultRequestTimeout = 15 * time.Second

	// HistoryDBName is the local command journal file under the config dir
	HistoryDBName = "history.db"
)

// Session States
const (
	StateBoard SessionState = iota
	StateDetails
	StateConfirmAssign
	StateConfirmDelete
)

// Notice levels
const (
	NoticeInfo NoticeLevel = iota
	NoticeWarning
	NoticeError
)

// DefaultSlots is the static slot catalog used when the config file does not
// override it. Labels partition a cleaner's working day into fixed windows.
var DefaultSlots = []string{
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
}
