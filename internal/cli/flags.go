package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	Text        string
	File        string
	Sep         string
	Debug       bool
	Dict        string
	CompileDict string

	// Set by the root command from pflag change tracking, so an explicitly
	// empty --text "" still counts as text mode.
	HasText bool
	HasFile bool

	// Provider flags
	Provider    string
	OpenAIModel string
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Sep:         " ",
		Provider:    "goruut",
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}
