package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	Target     string
	Source     string
	BatchFile  string
	Analyze    bool
	ListModels bool
	GUIMode    bool

	// Backend selection
	Backend string

	// NLLB flags
	NLLBURL   string
	NLLBModel string
	Beams     int

	// OpenAI flags
	OpenAIModel string

	// Gemini flags
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Target:      "English",
		Source:      "auto",
		Backend:     "nllb",
		NLLBURL:     "http://localhost:8000",
		NLLBModel:   "facebook/nllb-200-distilled-600M",
		Beams:       12,
		OpenAIModel: "gpt-4o-mini",
		GeminiModel: "gemini-2.0-flash",
	}
}
