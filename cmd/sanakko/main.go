/*
Sanakko server: spell checking, correction suggestions and morphological
analysis for Finnish over msgpack IPC.

The server loads a VFST dictionary bundle, applies the TOML config and
then answers spell/suggest/analyze requests on stdin/stdout until the
client closes the stream or sends quit.

	sanakko -dict /usr/share/sanakko/fi

A custom config path overrides the default lookup under ~/.config:

	sanakko -dict ./fi -config ./sanakko.toml

Debug logging goes to stderr so it never corrupts the IPC stream.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/louhiala/sanakko/pkg/config"
	"github.com/louhiala/sanakko/pkg/dict"
	"github.com/louhiala/sanakko/pkg/sanakko"
	"github.com/louhiala/sanakko/pkg/server"
	"github.com/louhiala/sanakko/pkg/userdict"
)

const (
	AppName = "sanakko"
	gh      = "https://github.com/louhiala/sanakko"
)

// sigHandler is a simple handler for OS signals to exit normally.
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

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml")
	dictPath := flag.String("dict", "", "Directory containing the dictionary files")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, cfgPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfgPath != "" {
		log.Debugf("Using config file: (%s)", cfgPath)
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
	applyConfig(handle, cfg)

	showStartupInfo(dictDir)

	if err := server.NewServer(handle).Serve(); err != nil {
		log.Fatalf("Server: %v", err)
	}
}

// applyConfig pushes the config file settings into the handle.
func applyConfig(handle *sanakko.Handle, cfg *config.Config) {
	sp := cfg.Speller
	handle.SetIgnoreDot(sp.IgnoreDot)
	handle.SetIgnoreNumbers(sp.IgnoreNumbers)
	handle.SetIgnoreUppercase(sp.IgnoreUppercase)
	handle.SetIgnoreNonwords(sp.IgnoreNonwords)
	handle.SetAcceptFirstUppercase(sp.AcceptFirstUppercase)
	handle.SetAcceptAllUppercase(sp.AcceptAllUppercase)
	handle.SetAcceptMissingHyphens(sp.AcceptMissingHyphens)
	handle.SetAcceptExtraHyphens(sp.AcceptExtraHyphens)
	if err := handle.SetCacheSize(sp.CacheSize); err != nil {
		log.Warnf("Invalid cache size %d: %v", sp.CacheSize, err)
	}

	handle.SetMaxSuggestions(cfg.Suggest.MaxSuggestions)
	handle.SetSuggestionBudgets(cfg.Suggest.TypingBudget, cfg.Suggest.OCRBudget)
	if cfg.Suggest.Strategy == "ocr" {
		if err := handle.SetSuggestionStrategy(sanakko.StrategyOCR); err != nil {
			log.Warnf("Suggestion strategy: %v", err)
		}
	}

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		ud := userdict.New(userdict.NewRedisStore(client, cfg.Redis.Key))
		if err := ud.Load(); err != nil {
			log.Warnf("Failed to load user dictionary from redis: %v", err)
		} else {
			handle.SetUserDictionary(ud)
			log.Debugf("User dictionary loaded: %d words", ud.Len())
		}
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Sanakko ] Finnish spell checking and morphology")
	logger.Print("", "version", sanakko.Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictDir string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" Sanakko ")
	println("=========")
	log.Infof("Version: %s", sanakko.Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("dictionary: ( %s )", dictDir)
	log.Info("status: ready")
	println("=========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
