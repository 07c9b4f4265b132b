package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/strider/internal/assets"
	"github.com/arcadelab/strider/internal/audio"
	"github.com/arcadelab/strider/internal/config"
	"github.com/arcadelab/strider/internal/core"
	"github.com/arcadelab/strider/internal/game"
	"github.com/arcadelab/strider/internal/platform/tui"
	"github.com/arcadelab/strider/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run.

Controls:
  Space/Up/W - Jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  strider play
  strider play --seed 42
  strider play --mute
  strider play --config ./my-strider.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	sprites, err := assets.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(1)
	}

	// The engine falls back to a silent mode when no audio device is
	// available, so this never blocks playing.
	engine := audio.NewEngine(!flagMute && cfg.Audio.Enabled)
	defer engine.Close()
	clips := engine.LoadClips()

	g := game.New(cfg, sprites, engine, game.SoundClips{
		Jump:     clips.Jump,
		GameOver: clips.GameOver,
	})

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
