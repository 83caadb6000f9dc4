// Package main is the entry point for the notion-lint CLI tool.
//
// notion-lint decodes JSON or YAML documents as Notion API objects and
// reports validation findings: unknown discriminators, payloads that
// disagree with their type tag, malformed UUIDs, URLs, and emails. It
// can also emit the JSON Schema for an object kind, and re-lint files
// on change with -watch.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	notion "github.com/notionkit/go-notion"
	"github.com/notionkit/go-notion/schema"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "notion-lint: %v\n", err)
		os.Exit(1)
	}
}

var errFindings = errors.New("validation findings")

func mainImpl() error {
	kind := flag.String("kind", "", "Object kind to decode as (page, database, block, user, comment, list); default: auto-detect from the object field")
	schemaKind := flag.String("schema", "", "Print the JSON Schema for an object kind and exit")
	watch := flag.Bool("watch", false, "Re-lint files when they change")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	ll := &slog.LevelVar{}
	if err := ll.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", *logLevel, err)
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:   ll,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	if *schemaKind != "" {
		s, err := schema.ForKind(*schemaKind)
		if err != nil {
			return err
		}
		data, err := schema.MarshalIndent(s)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	paths := flag.Args()
	if len(paths) == 0 {
		return errors.New("no input files (usage: notion-lint [flags] file.json ...)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	failed := false
	for _, p := range paths {
		if err := lintFile(p, *kind); err != nil {
			failed = true
			slog.Error("invalid", "file", p, "err", err)
		} else {
			slog.Info("ok", "file", p)
		}
	}

	if *watch {
		return watchFiles(ctx, paths, *kind)
	}
	if failed {
		return errFindings
	}
	return nil
}

// lintFile decodes one document and validates it.
func lintFile(path, kind string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// YAML inputs are converted to JSON before decoding so both
	// formats go through the same wire path.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
		if raw, err = json.Marshal(doc); err != nil {
			return fmt.Errorf("failed to convert YAML to JSON: %w", err)
		}
	}

	if kind == "" {
		if kind, err = detectKind(raw); err != nil {
			return err
		}
	}
	return lintDocument(raw, kind)
}

// detectKind reads the top-level object field of a document.
func detectKind(raw []byte) (string, error) {
	var envelope struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("failed to parse document: %w", err)
	}
	if envelope.Object == "" {
		return "", errors.New(`document has no "object" field; pass -kind`)
	}
	return envelope.Object, nil
}

// lintDocument decodes raw as the given kind and validates it.
func lintDocument(raw []byte, kind string) error {
	var v notion.Validatable
	switch kind {
	case "page":
		v = &notion.Page{}
	case "database":
		v = &notion.Database{}
	case "block":
		v = &notion.Block{}
	case "user":
		v = &notion.User{}
	case "comment":
		v = &notion.Comment{}
	case "error":
		// Error objects carry no invariants beyond their shape.
		var e notion.APIError
		if err := json.Unmarshal(raw, &e); err != nil {
			return fmt.Errorf("failed to decode error: %w", err)
		}
		return nil
	case "list":
		v = &notion.PaginatedList[json.RawMessage]{}
	default:
		return fmt.Errorf("unknown object kind %q", kind)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", kind, err)
	}
	return v.Validate()
}

// watchFiles re-lints files whenever they are written.
func watchFiles(ctx context.Context, paths []string, kind string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		// Watch the directory: editors often replace files on save,
		// which would drop a direct file watch.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}
	slog.Info("watching", "files", len(watched))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if err := lintFile(ev.Name, kind); err != nil {
				slog.Error("invalid", "file", ev.Name, "err", err)
			} else {
				slog.Info("ok", "file", ev.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}
