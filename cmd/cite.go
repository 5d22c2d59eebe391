// Package cmd — cite command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → format → render → write.
//
// It handles flag validation and renderer selection.
package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/webcite/core"
	"github.com/gaurav-prasanna/webcite/core/output"
	"github.com/gaurav-prasanna/webcite/core/render"
)

// Flag variables.
var (
	flagPDF      bool
	flagMarkdown bool
	flagJSON     bool
	flagHTML     bool
)

var citeCmd = &cobra.Command{
	Use:   "cite <url>",
	Short: "Print a citation for a URL",
	Long: `Cite fetches a webpage, extracts its bibliographic metadata and prints the
citation as plain text, or in the selected output format.

Examples:
  webcite cite https://example.com/article
  webcite cite https://example.com/article --markdown
  webcite cite https://example.com/article --json --output_dir ./out
  webcite cite https://example.com/article --pdf --output_dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func init() {
	rootCmd.AddCommand(citeCmd)

	// Output format flags (mutually exclusive; plain text when none is set).
	citeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	citeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	citeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	citeCmd.Flags().BoolVar(&flagHTML, "html", false, "Output HTML")

	// Output directory.
	citeCmd.Flags().String("output_dir", "", "Write to a file in this directory instead of stdout")

	// Fetch settings.
	citeCmd.Flags().Duration("timeout", 0, "HTTP timeout for the page fetch (default 30s)")
	citeCmd.Flags().String("user_agent", "", "User-Agent header sent with the fetch")

	bindFlag("output.dir", citeCmd.Flags().Lookup("output_dir"))
	bindFlag("fetch.timeout", citeCmd.Flags().Lookup("timeout"))
	bindFlag("fetch.user_agent", citeCmd.Flags().Lookup("user_agent"))
}

func runCite(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	// --- Validate flags ---
	if err := validateFlags(); err != nil {
		return err
	}

	// Validate URL.
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	res, err := newPipeline().Run(cmd.Context(), rawURL)
	if err != nil {
		return err
	}

	data, err := renderer.Render(res.Citation, res.Metadata)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if cfg.Output.Dir == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	writer, err := output.New(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(rawURL, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}

// validateFlags checks that at most one output format is chosen.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagPDF, flagMarkdown, flagJSON, flagHTML} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagMarkdown:
		return render.ByName("markdown")
	case flagJSON:
		return render.ByName("json")
	case flagPDF:
		return render.ByName("pdf")
	case flagHTML:
		return render.ByName("html")
	default:
		return render.ByName("text")
	}
}
