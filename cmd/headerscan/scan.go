package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Bahjat/header-insight-tool/internal/analyzer"
	"github.com/Bahjat/header-insight-tool/internal/headers"
	"github.com/Bahjat/header-insight-tool/internal/platform/config"
	"github.com/Bahjat/header-insight-tool/internal/platform/logger"
	"github.com/Bahjat/header-insight-tool/internal/remediation"
	"github.com/Bahjat/header-insight-tool/internal/report"
	"github.com/spf13/cobra"
)

var (
	errNoTargets     = errors.New("no URLs given: pass them as arguments or with --list")
	errTargetsFailed = errors.New("some targets could not be analyzed")
)

type scanOptions struct {
	format       string
	listFile     string
	configPath   string
	concurrency  int
	noAI         bool
	allowPrivate bool
}

// NewScanCmd creates the scan subcommand.
func NewScanCmd() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan [url...]",
		Short: "Analyze the security headers of one or more URLs",
		Example: `  headerscan scan https://example.com
  headerscan scan -f markdown https://example.com https://example.org > report.md
  headerscan scan --list urls.txt --concurrency 8 --no-ai
  cat urls.txt | headerscan scan --list - -f json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.format, "format", "f", string(report.FormatText), fmt.Sprintf("Output format %v", report.Formats()))
	f.StringVarP(&opts.listFile, "list", "l", "", `File with one URL per line ("-" reads stdin)`)
	f.StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")
	f.IntVarP(&opts.concurrency, "concurrency", "c", 0, "URLs analyzed in parallel (default from config)")
	f.BoolVar(&opts.noAI, "no-ai", false, "Skip the AI remediation summary")
	f.BoolVar(&opts.allowPrivate, "allow-private", false, "Allow targets on loopback and private networks")

	return cmd
}

func runScan(cmd *cobra.Command, opts *scanOptions, args []string) error {
	urls, err := collectURLs(cmd.InOrStdin(), args, opts.listFile)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return errNoTargets
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}

	writer, err := report.NewWriter(report.Format(opts.format), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "DEBUG"
	}
	log := logger.New(cmd.ErrOrStderr(), level)

	concurrency := cfg.ScanConcurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = opts.concurrency
	}

	inspector := headers.NewInspector(headers.NewHTTPClient(headers.ClientOptions{AllowPrivate: opts.allowPrivate}))
	var summarizer analyzer.Summarizer
	if !opts.noAI {
		summarizer = remediation.NewClient(cfg.GroqAPIKey, cfg.GroqEndpoint)
	}
	svc := analyzer.NewService(inspector, summarizer, log)

	results, batchErr := svc.AnalyzeBatch(cmd.Context(), urls, concurrency)
	if err := writer.Write(results); err != nil {
		return err
	}
	if batchErr != nil {
		return batchErr
	}

	var failed int
	for _, r := range results {
		if r.Response == nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errTargetsFailed, failed, len(results))
	}
	return nil
}

// collectURLs merges positional URLs with those read from listFile. Blank
// lines and lines starting with # are skipped.
func collectURLs(stdin io.Reader, args []string, listFile string) ([]string, error) {
	urls := append([]string(nil), args...)
	if listFile == "" {
		return urls, nil
	}

	var r io.Reader = stdin
	if listFile != "-" {
		f, err := os.Open(listFile) //nolint:gosec // user-provided list path is intentional
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", listFile, err)
	}
	return urls, nil
}
