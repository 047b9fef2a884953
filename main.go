package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-seed/model"
	"github.com/sheikhrachel/go-gol-seed/utils"
)

const configFile = "config.json"

// game owns the timeline and everything needed to drive it from user input
type game struct {
	config   utils.Config
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   *utils.Logger
	out      io.Writer
}

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	logger := utils.NewLogger(os.Stderr, config.LogLevel)
	if err != nil {
		logger.Debugf("using default configuration: %v", err)
		config = utils.DefaultConfig()
	}

	if err = run(context.Background(), os.Stdin, os.Stdout, config, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// run prompts for a seed, drives the command loop until exit, end of input or
// a termination signal, then autosaves the latest generation
func run(ctx context.Context, in io.Reader, out io.Writer, config utils.Config, logger *utils.Logger) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, seedPrompt)
	var input string
	if scanner.Scan() {
		input = scanner.Text()
	}
	seedPath := resolveSeedPath(input, config)

	seed, report, err := model.Load(seedPath)
	if err != nil {
		return err
	}
	if report.Short() {
		logger.Warnf("Not all cells were given! Setting rest to 0 (%d of %d cells read from %s)",
			report.Cells, model.Width*model.Height, seedPath)
	}
	logger.Infof("loaded seed %s with %d living cells", seedPath, seed.CountLivingCells())

	g := &game{
		config:   config,
		history:  model.NewHistory(seed),
		renderer: model.NewTerminalRenderer(out),
		stats:    utils.NewStats(),
		logger:   logger,
		out:      out,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go readLines(ctx, scanner, lines)

	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			logger.Infof("received %v, shutting down", sig)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		return g.loop(ctx, lines)
	})

	loopErr := eg.Wait()

	if err = model.Save(config.AutosavePath, g.history.Latest()); err != nil {
		return errors.Wrap(err, "[run] autosave failed")
	}
	logger.Infof("autosaved generation %d to %s", g.history.Generation(), config.AutosavePath)

	return loopErr
}

// readLines forwards scanned lines until input ends or ctx is done
func readLines(ctx context.Context, scanner *bufio.Scanner, lines chan<- string) {
	defer close(lines)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

// loop renders the latest generation and applies commands until exit
func (g *game) loop(ctx context.Context, lines <-chan string) error {
	g.render(false)

	for {
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			g.logger.Debugf("end of input")
			return nil
		}

		cmd := parseCommand(line)
		switch cmd.kind {
		case cmdExit:
			return nil
		case cmdStep:
			g.history.Advance()
			g.render(true)
		case cmdSave:
			g.save(cmd.path)
			g.render(false)
		default:
			fmt.Fprintf(g.out, "%s\n\n", unknownReply)
			g.logger.Debugf("unknown command %q", cmd.raw)
			g.render(false)
		}
	}
}

// save writes the latest generation to path, reporting rather than failing
func (g *game) save(path string) {
	if path == "" {
		fmt.Fprintln(g.out, "Error: usage: save <filepath>")
		return
	}

	if err := model.Save(path, g.history.Latest()); err != nil {
		var ioErr *model.IoError
		if errors.As(err, &ioErr) {
			g.logger.Errorf("save to %s failed: %v", ioErr.Path, errors.Cause(ioErr))
		}
		fmt.Fprintf(g.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(g.out, "Saved generation %d to %s\n", g.history.Generation(), path)
}

// render shows the latest generation, optionally clearing the screen first
func (g *game) render(clear bool) {
	if clear && g.config.ClearScreen {
		if err := g.renderer.Clear(); err != nil {
			g.logger.Warnf("%v", err)
		}
	}

	latest := g.history.Latest()
	g.stats.Update(g.history.Generation(), latest.CountLivingCells())
	if g.config.ShowStats {
		displayGameStatus(g.out, g.history, g.stats)
	}

	if err := g.renderer.Display(latest); err != nil {
		g.logger.Errorf("%v", err)
	}
	fmt.Fprintln(g.out, commandHint)
}
