package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	ladderlogic "github.com/Ritiksuman07/ladderlogic-gen"
	"github.com/Ritiksuman07/ladderlogic-gen/internal/ladder"
	"github.com/Ritiksuman07/ladderlogic-gen/internal/logic"
)

var (
	inputPath   string
	outputPath  string
	platform    string
	formatsPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "ladgen",
	Short: "Ladder logic generator for PLCs",
	Long: `ladgen translates line-oriented conditional logic descriptions
(IF <expression> THEN <outputs>) into textual relay ladder diagrams,
with vendor-specific timer/counter formatting.

Supported platforms: siemens, allen-bradley, mitsubishi, omron.`,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a ladder diagram from a logic description file",
	RunE:  runBuild,
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List known target platforms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range ladder.Builtin().Platforms() {
			fmt.Println(name)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ladgen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ladderlogic.Version())
	},
}

func init() {
	buildCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input logic description file")
	buildCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output ladder file (default: input with .ld extension)")
	buildCmd.Flags().StringVarP(&platform, "platform", "p", "", "target PLC platform")
	buildCmd.Flags().StringVar(&formatsPath, "formats", "", "platform format override file (.toml, .yaml or .yml)")
	buildCmd.MarkFlagRequired("input")
	buildCmd.MarkFlagRequired("platform")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	table := ladder.Builtin()
	if formatsPath != "" {
		var err error
		table, err = ladder.LoadTable(formatsPath)
		if err != nil {
			return fmt.Errorf("loading formats: %w", err)
		}
	}
	if _, ok := table[strings.ToLower(platform)]; !ok {
		return fmt.Errorf("unknown platform %q (see 'ladgen platforms')", platform)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	prog, diags := logic.Parse(data)
	for _, d := range diags {
		logger.Warn("skipping malformed line",
			slog.Int("line", d.Line),
			slog.String("text", d.Text),
			slog.String("error", d.Err.Error()),
		)
	}

	out := ladder.Render(prog, ladder.Config{Platform: platform, Formats: table})

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".ld"
	}
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	logger.Debug("build complete",
		slog.Int("statements", len(prog.Statements)),
		slog.Int("skipped", len(diags)),
	)
	fmt.Printf("Ladder logic generated for %s and saved to %s\n", platform, outputPath)
	return nil
}
