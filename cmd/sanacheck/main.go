/*
Sanacheck is an interactive CLI for checking Finnish words against a
VFST dictionary bundle.

Words given as arguments are checked in one batch:

	sanacheck -dict ./fi koira kisssa

Without arguments it reads words from stdin one per line:

	sanacheck -dict ./fi
	> koiralle
	ok

The -a flag prints the morphological analyses for each word too.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/louhiala/sanakko/internal/cli"
	"github.com/louhiala/sanakko/pkg/config"
	"github.com/louhiala/sanakko/pkg/dict"
	"github.com/louhiala/sanakko/pkg/sanakko"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	configPath := flag.String("config", "", "Path to config.toml")
	dictPath := flag.String("dict", "", "Directory containing the dictionary files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	showAnalyses := flag.Bool("a", false, "Print morphological analyses")
	limit := flag.Int("limit", 0, "Max suggestions per word (0 uses config)")
	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, _, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dictDir := *dictPath
	if dictDir == "" {
		dictDir = cfg.Dictionary.Path
	}
	if dictDir == "" {
		log.Fatal("No dictionary directory: pass -dict or set dictionary.path in config")
	}

	d, err := dict.Open(dictDir)
	if err != nil {
		log.Fatalf("Failed to open dictionary: %v", err)
	}
	defer d.Close()

	handle, err := sanakko.New(d)
	if err != nil {
		log.Fatalf("Failed to build handle: %v", err)
	}

	max := *limit
	if max <= 0 {
		max = cfg.Suggest.MaxSuggestions
	}
	handle.SetMaxSuggestions(max)

	checker := cli.NewChecker(handle, max, *showAnalyses)
	if args := flag.Args(); len(args) > 0 {
		checker.Run(args)
		return
	}
	if err := checker.Start(); err != nil {
		log.Fatalf("Input: %v", err)
	}
}
