package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/soap-notes/internal/config"
	"github.com/nguyentantai21042004/soap-notes/internal/logger"
	"github.com/nguyentantai21042004/soap-notes/internal/media"
	"github.com/nguyentantai21042004/soap-notes/internal/pipeline"
	"github.com/nguyentantai21042004/soap-notes/internal/segmenter"
	"github.com/nguyentantai21042004/soap-notes/internal/soap"
	"github.com/nguyentantai21042004/soap-notes/internal/store"
	"github.com/nguyentantai21042004/soap-notes/internal/transcriber"
	"github.com/nguyentantai21042004/soap-notes/internal/watcher"
	"github.com/nguyentantai21042004/soap-notes/pkg/executor"
)

func main() {
	var (
		configPath string
		inputPath  string
		watchMode  bool
		listMode   bool
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file")
	flag.StringVar(&inputPath, "input", "", "Media file to convert into a SOAP record")
	flag.BoolVar(&watchMode, "watch", false, "Process new files dropped into paths.input until interrupted")
	flag.BoolVar(&listMode, "list", false, "Print the records in the store and exit")
	flag.Parse()

	if modes := countTrue(inputPath != "", watchMode, listMode); modes != 1 {
		fmt.Fprintln(os.Stderr, "exactly one of -input, -watch or -list is required")
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := store.New(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		log.Error(ctx, "Failed to open record store: %v", err)
		os.Exit(1)
	}

	if listMode {
		if err := listRecords(ctx, st); err != nil {
			log.Error(ctx, "Failed to list records: %v", err)
			os.Exit(1)
		}
		return
	}

	// Initialize dependencies
	exec := executor.New()
	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to create transcriber: %v", err)
		os.Exit(1)
	}
	proc := pipeline.New(cfg.Paths, pipeline.Deps{
		Loader:      media.New(cfg.FFmpeg.BinaryPath, cfg.FFmpeg.ProbePath, cfg.Paths.Work, exec, log),
		Transcriber: tr,
		Segmenter:   segmenter.New(),
		Classifier: soap.NewClassifier(soap.KeywordSets{
			Subjective: cfg.SOAP.Subjective,
			Objective:  cfg.SOAP.Objective,
			Assessment: cfg.SOAP.Assessment,
			Plan:       cfg.SOAP.Plan,
		}),
		Store: st,
	}, log)

	log.Info(ctx, "Transcriber: %s, store: %s (%s)", cfg.Transcriber.Backend, cfg.Store.Path, cfg.Store.Driver)

	if inputPath != "" {
		runCtx := logger.WithRunID(ctx, uuid.NewString())
		if err := proc.Process(runCtx, inputPath); err != nil {
			log.Error(runCtx, "Run failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create input directory: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, path string) error {
		return proc.Process(logger.WithRunID(ctx, uuid.NewString()), path)
	}
	w, err := watcher.New(cfg.Paths.Input, handler, log, time.Duration(cfg.Watch.SettleDelayMS)*time.Millisecond)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	log.Info(ctx, "Drop recordings into %s, press Ctrl+C to stop", cfg.Paths.Input)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "SOAP note watcher stopped")
}

func listRecords(ctx context.Context, st store.RecordStore) error {
	rows, err := st.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%d record(s) in %s\n", len(rows), st.Path())
	for _, r := range rows {
		fmt.Printf("\n%s (%d sec)\n  Summary:    %s\n  Subjective: %s\n  Objective:  %s\n  Assessment: %s\n  Plan:       %s\n",
			r.FileName, r.DurationSec, r.Summary, r.Subjective, r.Objective, r.Assessment, r.Plan)
	}
	return nil
}

func countTrue(vals ...bool) int {
	n := 0
	for _, v := range vals {
		if v {
			n++
		}
	}
	return n
}
