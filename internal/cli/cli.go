package cli

import (
	"fmt"
	"io"
	"os"

	"chordquiz/internal/config"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the CLI with the given arguments.
// The first argument is the command name.
func Run(args []string, cfg *config.Config) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "chords", "ls":
		return runChords(cmdArgs, cfg)
	case "show":
		return runShow(cmdArgs)
	case "check":
		return runCheck(cmdArgs)
	case "cheatsheet":
		return runCheatsheet(cmdArgs, cfg)
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(stdout, `chordquiz - Name the notes of a chord

Usage: chordquiz [flags] [command] [arguments]

Commands:
  chords, ls  List the chords that can be asked
              chordquiz chords -filter minor
  show        Show the notes of a chord
              chordquiz show Bbm
  check       Check an answer, notes in any order and spelling
              chordquiz check Db C# F Ab
  cheatsheet  Print a chord reference (Markdown, or HTML with -html)
  help        Show this help message

Flags:
  -filter <major|minor|all>  Chord qualities to ask
  -seed <n>                  Random seed (0: random)
  -log-dir <dir>             Directory for debug.log

Running chordquiz without a command launches the interactive quiz.`)
}
