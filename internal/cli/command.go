package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/polyglot/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "polyglot [text]",
		Short: "Mixed-Language Translator",
		Long: `polyglot translates text that may mix several languages in a single
sentence, using a pretrained NLLB-200 class model behind a local
inference server (or an OpenAI/Gemini backend).

Examples:
  polyglot                                  # Launch interactive GUI (default)
  polyglot --target Arabic "Hello, كيف حالك؟"
  polyglot --source French --target English "bonjour tout le monde"
  polyglot --batch utterances.txt --target German
  polyglot --list-models                    # List usable OpenAI chat models`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.polyglot.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Target, "target", "t", flags.Target, "Target language name (e.g. Arabic, English)")
	cmd.Flags().StringVarP(&flags.Source, "source", "s", flags.Source, "Source language name, or 'auto' to detect")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate utterances from file (one per line)")
	cmd.Flags().BoolVar(&flags.Analyze, "analyze", false, "Print word-level language analysis of the input")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.GUIMode, "gui", false, "Launch the GUI even when text is given")

	// Backend flags
	cmd.Flags().StringVar(&flags.Backend, "backend", flags.Backend, "Translation backend: nllb, openai or gemini")
	cmd.Flags().StringVar(&flags.NLLBURL, "nllb-url", flags.NLLBURL, "Base URL of the NLLB inference server")
	cmd.Flags().StringVar(&flags.NLLBModel, "nllb-model", flags.NLLBModel, "Model identifier the NLLB server should load")
	cmd.Flags().IntVar(&flags.Beams, "beams", flags.Beams, "Beam count for NLLB decoding")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for the openai backend")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for the gemini backend")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.target", cmd.Flags().Lookup("target"))
	viper.BindPFlag("translate.source", cmd.Flags().Lookup("source"))
	viper.BindPFlag("backend.name", cmd.Flags().Lookup("backend"))
	viper.BindPFlag("backend.nllb_url", cmd.Flags().Lookup("nllb-url"))
	viper.BindPFlag("backend.nllb_model", cmd.Flags().Lookup("nllb-model"))
	viper.BindPFlag("backend.beams", cmd.Flags().Lookup("beams"))
	viper.BindPFlag("backend.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("backend.gemini_model", cmd.Flags().Lookup("gemini-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".polyglot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".polyglot")
	}

	// Environment variables
	viper.SetEnvPrefix("POLYGLOT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("backend.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("backend.gemini_key")
}
