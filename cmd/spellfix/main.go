// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spellfix interactive spell checker, lookup CLI
and correction server.

spellfix reads a dictionary file, builds a case-insensitive word trie from it
and corrects words with one of three policies: adjacent swaps, Levenshtein
distance one, or a fixed correction table.

# Usage

Check a document interactively. Prompts are written to stderr and answers are
read from stdin; the corrected document goes to -out or stdout:

	spellfix -dict words.txt -in essay.txt -out essay.fixed.txt -corrector LEV

Use a correction table of misspelling,correction lines instead:

	spellfix -dict words.txt -in essay.txt -corrector fixes.csv

Run in CLI mode to look up single words:

	spellfix -c -dict words.txt

Serve corrections as MessagePack IPC over stdin/stdout:

	spellfix -serve -dict words.txt

# Configuration

Defaults come from a TOML file created on first run under the user config
dir, or from -config:

	[dict]
	path = "dictionary.txt"
	validate = true

	[corrector]
	kind = "swap"
	table_path = ""

	[server]
	max_word_len = 64
	max_suggestions = 32

	[cli]
	show_count = true

SPELLFIX_DICT, SPELLFIX_CORRECTOR and SPELLFIX_TABLE from the environment or
a .env file override the file. Command line flags override both.

# IPC Protocol

Send a correction request:

	{"id": "req1", "w": "Teh"}

Receive case-matched suggestions:

	{"id": "req1", "s": ["Eh", "The"], "c": 2, "t": 41, "k": false}

See package server for the remaining actions.

# Command Line Flags

	-dict string
	    Dictionary file (default from config)
	-in string
	    Document to check
	-out string
	    Where to write the corrected document (default stdout)
	-corrector string
	    SWAP, LEV or a correction table path (default from config)
	-c  Run CLI lookup mode
	-serve
	    Run the MessagePack IPC server
	-config string
	    Path to a config file
	-env string
	    Path to a .env file (default ".env")
	-d  Enable debug mode with detailed logging
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/spellfix/internal/cli"
	"github.com/bastiangx/spellfix/internal/logger"
	"github.com/bastiangx/spellfix/internal/utils"
	"github.com/bastiangx/spellfix/pkg/checker"
	"github.com/bastiangx/spellfix/pkg/config"
	"github.com/bastiangx/spellfix/pkg/corrector"
	"github.com/bastiangx/spellfix/pkg/dictionary"
	"github.com/bastiangx/spellfix/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

const (
	Version = "0.3.0"
	AppName = "spellfix"
	gh      = "https://github.com/bastiangx/spellfix"
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

// main only manages the flow between config, dictionary, corrector and the
// selected mode.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- look up single words")
	serveMode := flag.Bool("serve", false, "Run the MessagePack IPC server on stdin/stdout")
	dictPath := flag.String("dict", "", "Dictionary file (default from config)")
	inPath := flag.String("in", "", "Document to check")
	outPath := flag.String("out", "", "Where to write the corrected document (default stdout)")
	corrKind := flag.String("corrector", "", "SWAP, LEV or a correction table path (default from config)")
	configPath := flag.String("config", "", "Path to a config file")
	envFile := flag.String("env", ".env", "Path to a .env file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	appConfig, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedConfig))
	if err := appConfig.ApplyEnv(*envFile); err != nil {
		log.Fatalf("Failed to load env file %s: %v", *envFile, err)
	}
	if *dictPath != "" {
		appConfig.Dict.Path = *dictPath
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	dict, err := loadDictionary(pathResolver, appConfig.Dict)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	corrName := *corrKind
	if corrName == "" {
		corrName = appConfig.CorrectorName()
	}
	corr, err := makeCorrector(pathResolver, corrName, dict)
	if err != nil {
		log.Fatalf("Failed to create corrector %q: %v", corrName, err)
	}
	log.Debugf("Corrector ready: %s (%T)", corrName, corr)

	switch {
	case *cliMode:
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(corr, dict, appConfig.Server.MaxWordLen, appConfig.CLI.ShowCount, os.Stdout)
		if err := inputHandler.Start(os.Stdin); err != nil {
			log.Fatalf("CLI error: %v", err)
		}

	case *serveMode:
		log.Debug("spawning IPC")
		srv, err := server.NewServer(corr, dict, corrName, appConfig.Server, os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("Failed to create server: %v", err)
		}
		showStartupInfo(appConfig.Dict.Path, dict.NumWords(), corrName)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	default:
		if *inPath == "" {
			fmt.Fprintln(os.Stderr, "Usage: spellfix -dict <file> -in <document> [-out <file>] [-corrector SWAP|LEV|<table>]")
			flag.PrintDefaults()
			os.Exit(2)
		}
		if err := checkDocument(corr, dict, *inPath, *outPath); err != nil {
			log.Fatalf("Checking %s: %v", *inPath, err)
		}
	}
}

func loadDictionary(pr *utils.PathResolver, cfg config.DictConfig) (*dictionary.Dictionary, error) {
	path, err := pr.ResolveFile(cfg.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Validate {
		if err := dictionary.ValidateDictionaryFile(path); err != nil {
			return nil, err
		}
	}
	dict, err := dictionary.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %s words from %s", humanize.Comma(int64(dict.NumWords())), path)
	return dict, nil
}

// makeCorrector resolves a table path before handing it to corrector.New.
func makeCorrector(pr *utils.PathResolver, corrName string, dict *dictionary.Dictionary) (corrector.Corrector, error) {
	if strings.EqualFold(corrName, corrector.KindSwap) || strings.EqualFold(corrName, corrector.KindLevenshtein) {
		return corrector.New(corrName, dict)
	}
	path, err := pr.ResolveFile(corrName)
	if err != nil {
		return nil, err
	}
	if err := dictionary.ValidateFileFormat(path, dictionary.FormatTable); err != nil {
		return nil, err
	}
	return corrector.New(path, dict)
}

func checkDocument(corr corrector.Corrector, dict *dictionary.Dictionary, inPath, outPath string) (err error) {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, createErr := os.Create(outPath)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	chk, err := checker.New(corr, dict, os.Stderr)
	if err != nil {
		return err
	}
	report, err := chk.CheckDocument(in, os.Stdin, out)
	if err != nil {
		return err
	}
	log.Debug("Document checked",
		"tokens", humanize.Comma(int64(report.Tokens)),
		"words", humanize.Comma(int64(report.Words)),
		"misspelled", report.Misspelled,
		"replaced", report.Replaced)
	return nil
}

func printVersion() {
	versionLogger := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	versionLogger.SetStyles(styles)

	versionLogger.Print("")
	versionLogger.Print("[ spellfix ] Interactive spelling correction")
	versionLogger.Print("", "version", Version)
	versionLogger.Print("")
	versionLogger.Print("use -h or --help to see available options")
	versionLogger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(dictPath string, words int, corr string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("dictionary: ( %s ) %s words", dictPath, humanize.Comma(int64(words)))
	log.Infof("corrector: %s", corr)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
