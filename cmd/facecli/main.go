// facecli is the terminal client for the face analysis proxy: it keeps
// the API key between runs and submits images for verification, age,
// emotion or gender analysis.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aliyevorkhan/face-recognition-frontend/internal/client"
	"github.com/aliyevorkhan/face-recognition-frontend/internal/credstore"
	"github.com/aliyevorkhan/face-recognition-frontend/internal/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	server := flag.String("server", "http://localhost:3000", "Proxy base URL")
	key := flag.String("key", "", "API key for this invocation (overrides the stored one)")
	configDir := flag.String("config-dir", "", "Credential store directory (defaults to the user config dir)")
	detail := flag.Bool("detail", false, "Print the raw error payload on failure")
	raw := flag.Bool("raw", false, "Print only the raw JSON result")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return errors.New("missing command")
	}

	store, err := credstore.Open(*configDir)
	if err != nil {
		return err
	}

	if args[0] == "key" {
		return runKey(store, args[1:])
	}

	kind, err := domain.ParseKind(args[0])
	if err != nil {
		usage()
		return fmt.Errorf("unknown command: %s", args[0])
	}
	return runAnalysis(kind, store, *server, *key, *detail, *raw, args[1:])
}

func runKey(store *credstore.Store, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: facecli key save <value> | show | remove")
	}

	switch args[0] {
	case "save":
		if len(args) < 2 || args[1] == "" {
			return errors.New("usage: facecli key save <value>")
		}
		if err := store.Save(args[1]); err != nil {
			return err
		}
		fmt.Println("API key saved")

	case "show":
		key, err := store.Load()
		if err != nil {
			return err
		}
		if key == "" {
			fmt.Println("No API key stored")
			return nil
		}
		fmt.Println(key)

	case "remove":
		if err := store.Remove(); err != nil {
			return err
		}
		fmt.Println("API key removed")

	default:
		return fmt.Errorf("unknown key action: %s (use: save, show, remove)", args[0])
	}

	return nil
}

func runAnalysis(kind domain.Kind, store *credstore.Store, server, keyOverride string, detail, raw bool, args []string) error {
	// One -<field> path flag per image the kind requires: -img1/-img2
	// for verify, -image for the rest.
	fs := flag.NewFlagSet(kind.String(), flag.ContinueOnError)
	paths := make(map[string]*string, 2)
	for _, field := range kind.ImageFields() {
		paths[field] = fs.String(field, "", "Path to the "+field+" file")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	form, err := client.NewForm(kind, client.Config{
		BaseURL: server,
		Store:   store,
	})
	if err != nil {
		return err
	}

	if keyOverride != "" {
		form.SetKey(keyOverride)
	}

	for _, field := range kind.ImageFields() {
		path := *paths[field]
		if path == "" {
			return fmt.Errorf("-%s is required", field)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := form.Attach(field, filepath.Base(path), data); err != nil {
			return err
		}
	}

	result, err := form.Submit(context.Background())
	if err != nil {
		var failure *client.Failure
		if detail && errors.As(err, &failure) && failure.Detail != "" {
			return fmt.Errorf("%s\n%s", failure.Message, failure.Detail)
		}
		return err
	}

	if raw {
		fmt.Println(result.Dump())
		return nil
	}

	fmt.Println(result.Summary())
	fmt.Println()
	fmt.Println(result.Dump())
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `facecli is a terminal client for the face analysis proxy.

Usage:
  facecli [flags] verify -img1 <path> -img2 <path>
  facecli [flags] age -image <path>
  facecli [flags] emotion -image <path>
  facecli [flags] gender -image <path>
  facecli [flags] key save <value>
  facecli [flags] key show
  facecli [flags] key remove

Flags:
`)
	flag.PrintDefaults()
}
