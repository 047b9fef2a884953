package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sheikhrachel/go-gol-seed/model"
	"github.com/sheikhrachel/go-gol-seed/utils"
)

const (
	seedPrompt   = "Please enter the filename of a valid seed file [Default for autosave]: "
	commandHint  = "[Enter=Continue, Save ~filepath=Save current seed to file, \"exit\"=Quit]"
	unknownReply = "I don't know that command..."
)

type commandKind int

const (
	cmdStep commandKind = iota
	cmdSave
	cmdExit
	cmdUnknown
)

type command struct {
	kind commandKind
	path string
	raw  string
}

// parseCommand interprets one line of user input
func parseCommand(line string) command {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return command{kind: cmdStep}
	case trimmed == "exit":
		return command{kind: cmdExit}
	case trimmed == "save" || strings.HasPrefix(trimmed, "save "):
		return command{kind: cmdSave, path: strings.TrimSpace(strings.TrimPrefix(trimmed, "save")), raw: trimmed}
	}
	return command{kind: cmdUnknown, raw: trimmed}
}

// resolveSeedPath falls back to the configured default when the user enters nothing
func resolveSeedPath(input string, config utils.Config) string {
	if path := strings.TrimSpace(input); path != "" {
		return path
	}
	return config.DefaultSeedPath
}

// gameStatus describes the latest generation for the status line
func gameStatus(history *model.History) string {
	switch {
	case history.Latest().CountLivingCells() == 0:
		return "Extinct"
	case history.IsStagnant():
		return "Stable"
	}
	return "Active"
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, history *model.History, stats *utils.Stats) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Avg Pop: %.1f | Status: %s | Runtime: %.1fs\n",
		stats.TotalGenerations, stats.Population, stats.AveragePopulation,
		gameStatus(history), stats.Runtime().Seconds())
}
