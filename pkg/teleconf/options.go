package teleconf

// Options selects which credentials a resolution pass requests.
// Requested fields are reused from the config file when stored,
// prompted for otherwise, and persisted (phone number excepted);
// unrequested fields are dropped from the file.
type Options struct {
	APIID       bool
	APIHash     bool
	BotToken    bool
	PhoneNumber bool

	// ForceUpdate re-prompts every requested field even when the
	// config file already holds a value.
	ForceUpdate bool
}

// DefaultOptions requests only the bot token, the common case for a
// Bot API application.
func DefaultOptions() Options {
	return Options{BotToken: true}
}
