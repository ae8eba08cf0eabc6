package processor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"codeberg.org/snonux/polyglot/internal/batch"
	"codeberg.org/snonux/polyglot/internal/cli"
	"codeberg.org/snonux/polyglot/internal/detect"
	"codeberg.org/snonux/polyglot/internal/gui"
	"codeberg.org/snonux/polyglot/internal/language"
	"codeberg.org/snonux/polyglot/internal/translate"
)

// Processor handles the main translation logic
type Processor struct {
	flags    *cli.Flags
	detector *detect.Detector
	service  *translate.Service
}

// NewProcessor creates a new translation processor
func NewProcessor(flags *cli.Flags) *Processor {
	detector := detect.New()
	return &Processor{
		flags:    flags,
		detector: detector,
		service:  translate.NewService(buildConfig(flags), detector),
	}
}

// buildConfig assembles the backend configuration from command line
// flags and viper config. The flag values are bound to viper keys, so
// reading through viper gives the right precedence: an explicitly set
// flag wins over environment and config file, which win over the flag
// default.
func buildConfig(flags *cli.Flags) *translate.Config {
	config := translate.DefaultProviderConfig()
	config.Backend = configString("backend.name", flags.Backend)
	config.NLLBBaseURL = configString("backend.nllb_url", flags.NLLBURL)
	config.NLLBModel = configString("backend.nllb_model", flags.NLLBModel)
	config.Decoding.NumBeams = configInt("backend.beams", flags.Beams)
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = configString("backend.openai_model", flags.OpenAIModel)
	config.GeminiKey = cli.GetGeminiKey()
	config.GeminiModel = configString("backend.gemini_model", flags.GeminiModel)

	// Config file values not represented as flags
	if viper.IsSet("backend.timeout_seconds") {
		config.Timeout = time.Duration(viper.GetInt("backend.timeout_seconds")) * time.Second
	}

	return config
}

// configString reads a bound viper key, falling back to the flag value
// when the key is absent (unit tests construct flags without a bound
// command).
func configString(key, fallback string) string {
	if viper.IsSet(key) {
		if v := viper.GetString(key); v != "" {
			return v
		}
	}
	return fallback
}

func configInt(key string, fallback int) int {
	if viper.IsSet(key) {
		if v := viper.GetInt(key); v != 0 {
			return v
		}
	}
	return fallback
}

// targetName resolves the target language name from flag or config.
func (p *Processor) targetName() string {
	return configString("translate.target", p.flags.Target)
}

// sourceName resolves the source language name from flag or config.
func (p *Processor) sourceName() string {
	return configString("translate.source", p.flags.Source)
}

// TranslateText translates a single utterance from the command line
// and prints the result.
func (p *Processor) TranslateText(text string) error {
	target, err := language.FromName(p.targetName())
	if err != nil {
		return err
	}
	source, err := p.resolveSource(p.sourceName())
	if err != nil {
		return err
	}

	result, err := p.service.Translate(context.Background(), text, source, target)
	if err != nil {
		return err
	}

	if result.Warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", result.Warning)
	}
	if p.flags.Analyze {
		printAnalysis(result.Analysis)
	}
	if source == language.Auto && result.Source != language.Unknown {
		fmt.Fprintf(os.Stderr, "Detected source: %s\n", language.Name(result.Source))
	}

	fmt.Println(result.Text)
	return nil
}

// ProcessBatch translates multiple utterances from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	target, err := language.FromName(p.targetName())
	if err != nil {
		return err
	}

	// Track statistics
	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Fprintf(os.Stderr, "Translating %d/%d: %s\n", i+1, len(entries), entry.Text)

		sourceName := entry.Source
		if sourceName == "" {
			sourceName = p.sourceName()
		}
		source, err := p.resolveSource(sourceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in entry %d: %v\n", i+1, err)
			errorCount++
			continue
		}

		result, err := p.service.Translate(context.Background(), entry.Text, source, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error translating %q: %v\n", entry.Text, err)
			errorCount++
			// Continue with next entry
			continue
		}

		fmt.Println(result.Text)
		processedCount++
	}

	// Print summary
	fmt.Fprintf(os.Stderr, "\n=== Batch Translation Summary ===\n")
	fmt.Fprintf(os.Stderr, "Total entries: %d\n", len(entries))
	fmt.Fprintf(os.Stderr, "Translated: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Fprintf(os.Stderr, "Errors: %d\n", errorCount)
	}
	fmt.Fprintf(os.Stderr, "=================================\n")

	if errorCount > 0 && processedCount == 0 {
		return fmt.Errorf("all %d batch entries failed", errorCount)
	}
	return nil
}

// RunGUIMode launches the GUI application
func (p *Processor) RunGUIMode() error {
	guiConfig := &gui.Config{
		DefaultTarget: p.targetName(),
		DefaultSource: p.sourceName(),
		Backend:       configString("backend.name", p.flags.Backend),
	}

	app := gui.New(p.service, guiConfig)
	app.Run()

	return nil
}

// resolveSource maps a source language name to its tag. "auto" (any
// case) selects automatic detection.
func (p *Processor) resolveSource(name string) (language.Tag, error) {
	if strings.EqualFold(name, string(language.Auto)) {
		return language.Auto, nil
	}
	return language.FromName(name)
}

// printAnalysis writes the word-level language breakdown to stderr.
func printAnalysis(analysis detect.Analysis) {
	for _, w := range analysis.Words {
		if w.Punct {
			continue
		}
		fmt.Fprintf(os.Stderr, "  %-20s %s\n", w.Word, language.Name(w.Tag))
	}
	if len(analysis.Languages) > 0 {
		parts := make([]string, 0, len(analysis.Languages))
		for _, tag := range analysis.Languages {
			parts = append(parts, language.Name(tag))
		}
		fmt.Fprintf(os.Stderr, "Languages: %s\n", strings.Join(parts, ", "))
	}
}
