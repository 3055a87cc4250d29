// cmd/bucketx/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bucketx/internal/adapters/output"
	"bucketx/internal/adapters/probe"
	"bucketx/internal/adapters/wordlist"
	"bucketx/internal/core/ports"
	"bucketx/internal/core/usecases"
	"bucketx/internal/platform/config"
	"bucketx/internal/platform/errors"
	"bucketx/internal/platform/httpclient"
	"bucketx/internal/platform/logx"
	"bucketx/internal/platform/paths"
	"bucketx/internal/platform/ui"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Config centralizada (help y version se resuelven dentro)
	cfg, err := config.Load(version, commit, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try: bucketx -h for help")
		return exitConfig
	}

	// 2. Logger compartido
	logger := logx.NewWithLevel(logx.ParseLevel(cfg.UI.LogLevel))
	logger.Info("bucketx starting", "version", version, "commit", commit, "config", cfg.String())

	// 3. Rutas: wordlist y artefactos relativos al directorio del programa
	programDir, err := paths.ProgramDir()
	if err != nil {
		logger.Err(err, "phase", "paths")
		return exitConfig
	}
	wordlistPath := paths.Resolve(programDir, cfg.Core.Wordlist)
	outDir := programDir
	if cfg.Output.Dir != "" {
		outDir = cfg.Output.Dir
	}
	artifacts := paths.ArtifactsFor(outDir, wordlistPath)

	// 4. Candidates
	list, err := wordlist.Load(wordlistPath, wordlist.Options{Dedupe: cfg.Core.Dedupe}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}

	// 5. Cliente HTTP y prober
	client, err := httpclient.New(httpclient.Config{
		Timeout:   cfg.Probe.Timeout,
		UserAgent: cfg.Probe.UserAgent,
		RateLimit: cfg.Probe.RateLimit,
		ProxyURL:  cfg.Probe.ProxyURL,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitConfig
	}
	logger.Debug("http client ready", "client", client.String())
	prober := probe.NewHTTPProber(client, cfg.Probe.Host, logger)

	// 6. Sink: txt y csv siempre, el resto opcional
	opts := output.Options{
		TextPath: artifacts.Text,
		CSVPath:  artifacts.CSV,
		DBPath:   cfg.Output.DB,
		ScanID:   fmt.Sprintf("scan-%d", time.Now().Unix()),
	}
	if cfg.Output.XLSX {
		opts.XLSXPath = artifacts.XLSX
	}
	if cfg.Output.JSONL {
		opts.JSONLPath = artifacts.JSONL
	}
	sink, err := output.Open(opts, logger)
	if err != nil {
		logger.Err(err, "phase", "output-open")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailed
	}

	// 7. Presenter
	presenter := ui.New(ui.Mode(cfg.UI.Mode))
	defer presenter.Close()

	presenter.Start(ui.ScanInfo{
		Version:    version,
		Wordlist:   wordlistPath,
		Candidates: len(list.Candidates),
		Workers:    cfg.Core.Workers,
		Host:       cfg.Probe.Host,
		Timeout:    cfg.Probe.Timeout,
		RateLimit:  cfg.Probe.RateLimit,
		Proxy:      cfg.Probe.ProxyURL != "",
		Artifacts:  artifactNames(opts),
	})
	if n := len(list.NonConforming); n > 0 {
		presenter.Warning(fmt.Sprintf("%d candidates are not valid bucket names and will likely fail", n))
	}

	// 8. Contexto con señales: una interrupción deja de despachar
	ctx, cancel := rootContextWithSignals()
	defer cancel()

	scanner := usecases.NewScanner(usecases.ScannerOptions{
		Prober:    prober,
		Sink:      sink,
		Observers: []ports.Observer{ui.AsObserver(presenter)},
		Workers:   cfg.Core.Workers,
		Logger:    logger,
	})

	stats, runErr := scanner.Run(ctx, list.Candidates)

	// 9. Cerrar artefactos antes de reportar
	if closeErr := sink.Close(); closeErr != nil {
		logger.Err(closeErr, "phase", "output-close")
		if runErr == nil {
			runErr = closeErr
		}
	}

	switch {
	case runErr == nil:
		presenter.Finish(stats)
		logger.Info("bucketx finished", "stats", stats.String(), "elapsed_ms", stats.Duration().Milliseconds())
		return exitOK

	case errors.IsCanceled(runErr):
		presenter.Finish(stats)
		presenter.Warning("scan interrupted; results recorded so far were saved")
		logger.Warn("scan interrupted", "stats", stats.String())
		return exitFailed

	default:
		presenter.Error(fmt.Sprintf("scan aborted: %v", runErr))
		logger.Err(runErr, "phase", "run", "stats", stats.String())
		return exitFailed
	}
}

func artifactNames(opts output.Options) []string {
	var names []string
	for _, p := range []string{opts.TextPath, opts.CSVPath, opts.XLSXPath, opts.DBPath, opts.JSONLPath} {
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

// rootContextWithSignals creates a root context canceled on SIGINT/SIGTERM.
// There is no global timeout: each probe carries its own.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanupCancel := func() {
		signal.Stop(ch)
		baseCancel()
	}

	return base, cleanupCancel
}
