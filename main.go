package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"chordquiz/internal/cli"
	"chordquiz/internal/config"
	"chordquiz/internal/logs"
	"chordquiz/internal/tui"
)

func main() {
	// Parse CLI flags
	filterFlag := flag.String("filter", "", "Chord qualities to ask: major, minor or all")
	seedFlag := flag.Int64("seed", 0, "Random seed (0: random)")
	logDirFlag := flag.String("log-dir", "", "Directory for debug.log")
	flag.Parse()

	cliFlags := config.CLIFlags{
		Filter: *filterFlag,
		Seed:   *seedFlag,
		LogDir: *logDirFlag,
	}

	// Load configuration
	cfg, err := config.Load(cliFlags)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		logs.Logger.Printf("Warning: could not create config file: %v", err)
	}

	// Reinitialize logger
	if err := logs.Initialize(cfg.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		exitCode := cli.Run(args, cfg)
		logs.Close()
		os.Exit(exitCode)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		logs.Close()
		os.Exit(1)
	}
}
