package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atomicstack/tiledeck/internal/app"
	"github.com/atomicstack/tiledeck/internal/config"
	"github.com/atomicstack/tiledeck/internal/format/table"
	"github.com/atomicstack/tiledeck/internal/logging"
	"github.com/atomicstack/tiledeck/internal/logging/events"
	"github.com/atomicstack/tiledeck/internal/store"
	"github.com/atomicstack/tiledeck/internal/tiles"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "tiledeck",
		Short:        "Keyboard-driven tile launcher",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad(cmd.Flags())
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			traceStartup(cfg)
			return app.Run(appConfig(cfg))
		},
	}

	flags := root.PersistentFlags()
	flags.String("deck", "", "path to the deck document")
	flags.String("router", "", "handler command for view routes")
	flags.String("shell", "", "shell used to launch tile commands")
	flags.String("device", "", "evdev keyboard device for real key releases")
	flags.Int("hold-ms", 0, "press duration that turns a tap into a hold")
	flags.Int("watchdog-ms", 0, "release watchdog interval")
	flags.Int("toast-ms", 0, "notification display duration")
	flags.Int("poll-ms", 0, "deck file poll interval")
	flags.Bool("footer", false, "show the key hint footer")
	flags.Bool("verbose", false, "surface successful command results")
	flags.Bool("trace", false, "emit structured trace logs")
	flags.String("log-file", "", "log destination")

	root.AddCommand(newListCommand())
	return root
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the deck without starting the launcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad(cmd.Flags())
			deckPath, err := app.ResolveDeckPath(cfg.Deck)
			if err != nil {
				return fmt.Errorf("resolve deck path: %w", err)
			}
			persisted, err := store.New(deckPath).Load()
			if err != nil {
				if errors.Is(err, store.ErrNoDeck) {
					fmt.Fprintln(cmd.OutOrStdout(), "No deck at "+deckPath)
					return nil
				}
				return err
			}
			for _, line := range formatDeck(tiles.Build(persisted)) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

// formatDeck renders the persisted tiles as aligned columns, one row per
// tile. Transient system tiles are skipped.
func formatDeck(tree *tiles.Tree) []string {
	rows := [][]string{{"#", "CATEGORY", "TILE", "COMMAND"}}
	for _, cat := range tree.Categories {
		for i, tile := range cat.Tiles {
			if tile.Transient {
				continue
			}
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				cat.Name,
				tile.Name,
				tile.Command,
			})
		}
	}
	return table.Format(rows, []table.Alignment{table.AlignRight})
}

func appConfig(cfg config.Config) app.Config {
	return app.Config{
		Deck:             cfg.Deck,
		Router:           cfg.Router,
		Shell:            cfg.Shell,
		Device:           cfg.Device,
		HoldThreshold:    cfg.HoldThreshold,
		WatchdogInterval: cfg.WatchdogInterval,
		ToastTTL:         cfg.ToastTTL,
		PollInterval:     cfg.PollInterval,
		ShowFooter:       cfg.ShowFooter,
		Verbose:          cfg.Verbose,
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{})
	for k, v := range cfg.Flags() {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":   os.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
