package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/floh1695/diceware/internal/duration"
	"github.com/floh1695/diceware/internal/logging"
	"github.com/floh1695/diceware/internal/phrase"
	"github.com/floh1695/diceware/internal/version"
	"github.com/floh1695/diceware/internal/wordlist"
)

var (
	wordlistPath string
	wordCount    int
	separator    string
	phraseCount  int
	maxAgeStr    string
	logLevelStr  string
	quiet        bool
)

var rootCmd = &cobra.Command{
	Use:   "diceware",
	Short: "Generate diceware passphrases from a wordlist",
	Long: `diceware

Generates passphrases by drawing words uniformly at random from a wordlist.
Wordlists may be plain text or gzip/zstd/xz compressed; lines may carry a
leading dice index. Randomness comes from the operating system CSPRNG.
`,
	RunE:    run,
	Version: version.Print(),
}

func init() {
	rootCmd.Flags().StringVarP(&wordlistPath, "wordlist", "W", "", "Path to the wordlist file, plain or gzip/zstd/xz compressed (required)")
	rootCmd.Flags().IntVarP(&wordCount, "words", "w", 6, "Number of words per passphrase")
	rootCmd.Flags().StringVarP(&separator, "separator", "s", " ", "String placed between words")
	rootCmd.Flags().IntVarP(&phraseCount, "count", "n", 1, "Number of passphrases to generate")
	rootCmd.Flags().StringVar(&maxAgeStr, "max-age", "", `Warn when the wordlist file is older than this (e.g. "90 days", "1 year", "2160h")`)
	rootCmd.Flags().StringVarP(&logLevelStr, "log-level", "l", "info", "Log cutoff: trace, debug, info, warn or error")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print passphrases (raises the log cutoff to error)")

	rootCmd.MarkFlagRequired("wordlist")

	// Silence usage output for runtime errors, but show it for flag errors
	// SilenceErrors is true so we can control error output format in main()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Show usage only when there's a flag parsing error
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return err
	})
}

// ExecuteContext runs the root command
func ExecuteContext(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Show usage for required flag errors (not caught by SetFlagErrorFunc)
		if strings.Contains(err.Error(), "required flag") {
			_ = rootCmd.Usage()
		}
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cutoff, err := logging.ParseLevel(logLevelStr)
	if err != nil {
		return fmt.Errorf("invalid --log-level value: %w", err)
	}
	if quiet {
		cutoff = logging.LevelError
	}
	log := logging.New(cutoff, func(line string) { fmt.Fprintln(os.Stderr, line) })
	ctx := logging.WithContext(cmd.Context(), log)

	if wordCount <= 0 {
		return fmt.Errorf("--words must be positive, got %d", wordCount)
	}
	if phraseCount <= 0 {
		return fmt.Errorf("--count must be positive, got %d", phraseCount)
	}

	var maxAge duration.Spec
	checkAge := maxAgeStr != ""
	if checkAge {
		maxAge, err = duration.ParseAny(maxAgeStr)
		if err != nil {
			return fmt.Errorf("invalid --max-age value: %w", err)
		}
	}

	list, err := wordlist.Load(ctx, wordlistPath)
	if err != nil {
		return err
	}
	log.Debug("loaded", humanize.Comma(int64(list.Len())), "words from", list.Path,
		fmt.Sprintf("(%s)", humanize.IBytes(uint64(list.Size))))

	if checkAge && time.Since(list.ModTime) > maxAge.Std() {
		log.Warn("wordlist was last updated", humanize.Time(list.ModTime), "- consider refreshing it")
	}

	log.Info(fmt.Sprintf("%d-word passphrase carries about %.1f bits of entropy",
		wordCount, phrase.Entropy(list.Len(), wordCount)))

	for i := 0; i < phraseCount; i++ {
		p, err := phrase.Generate(list.Words, wordCount, separator)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}

	return nil
}
