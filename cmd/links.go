// Package cmd — links command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → normalize → chunk → links → render → write.
//
// It handles flag validation, renderer selection, and the URL / --file sources.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/linkpipe/config"
	"github.com/gaurav-prasanna/linkpipe/core"
	"github.com/gaurav-prasanna/linkpipe/core/chunk"
	"github.com/gaurav-prasanna/linkpipe/core/extract"
	"github.com/gaurav-prasanna/linkpipe/core/fetch"
	"github.com/gaurav-prasanna/linkpipe/core/links"
	"github.com/gaurav-prasanna/linkpipe/core/llm"
	"github.com/gaurav-prasanna/linkpipe/core/node"
	"github.com/gaurav-prasanna/linkpipe/core/normalize"
	"github.com/gaurav-prasanna/linkpipe/core/output"
	"github.com/gaurav-prasanna/linkpipe/core/progress"
	"github.com/gaurav-prasanna/linkpipe/core/render"
	"github.com/gaurav-prasanna/linkpipe/logger"
)

// State keys the links command populates.
const (
	stateDoc      = "doc"
	stateURL      = "url"
	stateLocalDir = "local_dir"
	stateLinks    = "relevant_links"
)

// linksInput is the selector handed to the link node.
const linksInput = "doc & (url | local_dir)"

// linksOptions holds the links command's own flags. Flags that map onto
// configuration keys are read back through config.Config.
type linksOptions struct {
	markdown  bool
	json      bool
	pdf       bool
	file      string
	outputDir string
}

func newLinksCmd(global *globalOptions) *cobra.Command {
	opts := &linksOptions{}

	cmd := &cobra.Command{
		Use:   "links [url]",
		Short: "Extract candidate links from a webpage or local file",
		Long: `Links fetches a webpage, extracts its main content, normalizes it to Markdown,
splits it into chunks and collects every http(s) link found, in order.
Chunks that are not text are sent to the configured language model instead.

Examples:
  linkpipe links https://example.com
  linkpipe links https://example.com --json --output_dir ./out
  linkpipe links https://example.com --pdf --keep_nav
  linkpipe links --file notes.md --output_dir -
  linkpipe links https://example.com --provider ollama --model llama3 --prompt "find pricing pages"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd, args, global, opts)
		},
	}

	// Output format flags (mutually exclusive, Markdown by default).
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Output a Markdown list (default)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output structured JSON")
	cmd.Flags().BoolVar(&opts.pdf, "pdf", false, "Output PDF")

	// Source and destination.
	cmd.Flags().StringVar(&opts.file, "file", "", "Read a local Markdown, text or HTML file instead of fetching a URL")
	cmd.Flags().StringVar(&opts.outputDir, "output_dir", "", `Output directory (default: current directory, "-" for stdout)`)

	// Pipeline flags, bound to configuration keys.
	cmd.Flags().Int("chunk_size", chunk.DefaultSize, "Words per chunk")
	cmd.Flags().Bool("keep_nav", false, "Keep links from nav, header, footer and sidebars")
	cmd.Flags().Duration("timeout", 30*time.Second, "Fetch timeout")
	cmd.Flags().String("prompt", "", "The task the links should be relevant to (used by the language model)")

	// Language model flags.
	cmd.Flags().String("provider", llm.ProviderOpenAI, "Language model provider: openai or ollama")
	cmd.Flags().String("model", "", "Language model name")
	cmd.Flags().String("base_url", "", "Language model endpoint (OpenAI-compatible server or Ollama)")

	return cmd
}

func runLinks(cmd *cobra.Command, args []string, global *globalOptions, opts *linksOptions) error {
	// --- Validate flags ---
	if err := validateFlags(args, opts); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, global)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	renderer, err := selectRenderer(opts)
	if err != nil {
		return err
	}

	model, err := llm.New(cfg.LLM)
	if err != nil {
		return err
	}

	nodeOpts := []links.Option{links.WithLogger(log)}
	if cfg.Verbose {
		nodeOpts = append(nodeOpts, links.WithProgress(progress.New(cmd.ErrOrStderr(), "Processing chunks")))
	}
	linkNode, err := links.New(linksInput, []string{stateLinks}, links.Config{
		LLM:        model,
		Verbose:    cfg.Verbose,
		UserPrompt: cfg.UserPrompt,
	}, nodeOpts...)
	if err != nil {
		return err
	}

	writer, err := newWriter(cmd, opts.outputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1-4. Gather chunks from the page or file.
	var state core.State
	var meta core.PageMetadata
	if opts.file != "" {
		state, meta, err = loadFile(opts.file, cfg)
	} else {
		state, meta, err = loadURL(ctx, args[0], cfg, log)
	}
	if err != nil {
		return err
	}

	// 5. Extract links.
	state, err = node.Run(ctx, state, linkNode)
	if err != nil {
		return err
	}
	found, _ := state[stateLinks].([]string)
	log.Info("links extracted", logger.String("source", meta.URL), logger.Int("chunks", meta.Chunks), logger.Int("links", len(found)))

	// 6. Render and write.
	data, err := renderer.Render(found, meta)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path, err := writer.Write(meta.URL, data, renderer.Extension())
	if err != nil {
		return err
	}
	if path != "stdout" {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s (%d links)\n", path, len(found))
	}
	return nil
}

// loadURL runs a URL through fetch → extract → normalize → chunk.
func loadURL(ctx context.Context, rawURL string, cfg *config.Config, log logger.Logger) (core.State, core.PageMetadata, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, core.PageMetadata{}, fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	log.Debug("fetching page", logger.String("url", rawURL))
	result, err := fetch.New(cfg.Fetch.Timeout).Fetch(ctx, rawURL)
	if err != nil {
		return nil, core.PageMetadata{}, fmt.Errorf("fetch: %w", err)
	}

	markdown, err := htmlToMarkdown(result.HTML, rawURL, cfg.Fetch.KeepNavigation)
	if err != nil {
		return nil, core.PageMetadata{}, err
	}

	docs := chunk.New(cfg.Chunk.Size).Documents(rawURL, markdown)
	meta := core.PageMetadata{
		URL:       rawURL,
		Domain:    parsed.Host,
		Path:      parsed.Path,
		Title:     extract.Title(result.HTML),
		Chunks:    len(docs),
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return core.State{stateDoc: docs, stateURL: rawURL}, meta, nil
}

// loadFile chunks a local file. HTML files go through extract and normalize first.
func loadFile(path string, cfg *config.Config) (core.State, core.PageMetadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, core.PageMetadata{}, fmt.Errorf("reading %s: %w", path, err)
	}

	text := string(raw)
	title := ""
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		title = extract.Title(text)
		text, err = htmlToMarkdown(text, "", cfg.Fetch.KeepNavigation)
		if err != nil {
			return nil, core.PageMetadata{}, err
		}
	}

	docs := chunk.New(cfg.Chunk.Size).Documents(path, text)
	meta := core.PageMetadata{
		URL:       path,
		Path:      path,
		Title:     title,
		Chunks:    len(docs),
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return core.State{stateDoc: docs, stateLocalDir: filepath.Dir(path)}, meta, nil
}

func htmlToMarkdown(html, pageURL string, keepNav bool) (string, error) {
	var extractor core.Extractor = extract.New()
	if keepNav {
		extractor = extract.New(extract.WithNavigation())
	}
	content, err := extractor.Extract(html)
	if err != nil {
		return "", fmt.Errorf("extract: %w", err)
	}

	var normalizer core.Normalizer = normalize.New()
	if pageURL != "" {
		normalizer = normalize.NewForPage(pageURL)
	}
	markdown, err := normalizer.Normalize(content)
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}
	return markdown, nil
}

func newWriter(cmd *cobra.Command, dir string) (*output.Writer, error) {
	if dir == output.Stdout {
		return output.NewStream(cmd.OutOrStdout()), nil
	}
	return output.New(dir)
}

// validateFlags checks that at most one output format is chosen and that
// exactly one source is given.
func validateFlags(args []string, opts *linksOptions) error {
	switch {
	case opts.file != "" && len(args) > 0:
		return fmt.Errorf("give either a URL or --file, not both")
	case opts.file == "" && len(args) == 0:
		return fmt.Errorf("a URL or --file is required")
	}

	formatCount := 0
	for _, set := range []bool{opts.markdown, opts.json, opts.pdf} {
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
func selectRenderer(opts *linksOptions) (core.Renderer, error) {
	switch {
	case opts.json:
		return render.NewJSONRenderer(), nil
	case opts.pdf:
		return render.NewPDFRenderer(), nil
	default:
		return render.NewMarkdownRenderer(), nil
	}
}
