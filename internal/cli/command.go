package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/text2ipa/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "text2ipa",
		Short: "English to IPA Transcription",
		Long: `text2ipa converts English text into International Phonetic Alphabet
transcription strings.

A primary converter is tried first: the in-process goruut phonemizer by
default, or an OpenAI/Gemini model via --provider. When it is unavailable
or fails, each word is looked up in a CMU pronunciation dictionary and its
ARPAbet phones are translated to IPA one by one. Words missing from the
dictionary keep their original spelling.

Examples:
  text2ipa --text "best kept secret of"   # Convert a single phrase
  text2ipa --file phrases.txt             # Convert each non-blank line
  text2ipa --text cat --provider none     # Force the dictionary fallback`,
		Args:         cobra.NoArgs,
		Version:      internal.Version,
		SilenceUsage: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.text2ipa.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.Text, "text", "", "Phrase to convert")
	cmd.Flags().StringVar(&flags.File, "file", "", "Read phrases from file (one per line, blank lines ignored)")
	cmd.Flags().StringVar(&flags.Sep, "sep", flags.Sep, "Separator between words in the output")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Debug output to stderr")
	cmd.Flags().StringVar(&flags.Dict, "dict", "", "Pronunciation dictionary (CMUdict text or compiled .db, default: built-in)")
	cmd.Flags().StringVar(&flags.CompileDict, "compile-dict", "", "Compile the dictionary into a SQLite file and exit")

	// Provider flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Primary converter: goruut, openai, gemini or none")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for --provider openai")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for --provider gemini")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.separator", cmd.Flags().Lookup("sep"))
	viper.BindPFlag("dictionary.path", cmd.Flags().Lookup("dict"))
	viper.BindPFlag("converter.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("converter.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("converter.gemini_model", cmd.Flags().Lookup("gemini-model"))
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

		// Search config in home directory with name ".text2ipa" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".text2ipa")
	}

	// Environment variables
	viper.SetEnvPrefix("TEXT2IPA")
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
	return viper.GetString("converter.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("converter.gemini_key")
}

// DictPath resolves the pronunciation dictionary path: flag, then
// environment, then config file. Empty means the built-in dictionary.
func DictPath(flags *Flags) string {
	if flags.Dict != "" {
		return flags.Dict
	}
	if path := os.Getenv("TEXT2IPA_DICT"); path != "" {
		return path
	}
	return viper.GetString("dictionary.path")
}
