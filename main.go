// trophydash is a single-screen platformer: reach the trophy without touching
// the patrolling enemies.
//
// Usage:
//
//	trophydash [--config path] [--seed n] [--debug] [--watch] [--no-music] [--no-sound]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/config"
	"github.com/milk9111/trophydash/ecs/render"
	"github.com/milk9111/trophydash/mixer"
	"github.com/milk9111/trophydash/prefabs"
	"github.com/milk9111/trophydash/session"
	"github.com/spf13/cobra"
)

type cliFlags struct {
	configPath string
	seed       int64
	debug      bool
	watch      bool
	noMusic    bool
	noSound    bool
}

var flags cliFlags

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "trophydash",
	Short:         "Trophy Dash - a single-screen platformer",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		applyFlags(&cfg, flags, cmd.Flags().Changed)
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a config file (default: ./"+config.LocalPath+" or built-in)")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "RNG seed for patrol directions (0 = random based on time)")
	rootCmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable debug logging and the FPS overlay")
	rootCmd.Flags().BoolVar(&flags.watch, "watch", false, "Reload edited prefabs and scripts from ./prefabs")
	rootCmd.Flags().BoolVar(&flags.noMusic, "no-music", false, "Start with music off")
	rootCmd.Flags().BoolVar(&flags.noSound, "no-sound", false, "Start with sound effects off")
}

// applyFlags overrides cfg with the flags the user actually set.
func applyFlags(cfg *config.Config, f cliFlags, changed func(string) bool) {
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	if changed("watch") {
		cfg.Watch = f.watch
	}
	if f.noMusic {
		cfg.Audio.MusicOn = false
	}
	if f.noSound {
		cfg.Audio.SoundOn = false
	}
}

func resolveSeed(seed int64, now func() time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return now().UnixNano()
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "trophydash",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func run(cfg config.Config) error {
	log.SetDefault(newLogger(cfg.Debug))

	seed := resolveSeed(cfg.Seed, time.Now)
	log.Info("starting", "seed", seed, "music", cfg.Audio.MusicOn, "sound", cfg.Audio.SoundOn)

	if err := render.LoadAtlas(); err != nil {
		return fmt.Errorf("load atlas: %w", err)
	}

	mix, err := mixer.New(cfg.Audio.MusicVolume, cfg.Audio.SoundVolume)
	if err != nil {
		return err
	}
	defer func() {
		if err := mix.Close(); err != nil {
			log.Warn("closing mixer", "err", err)
		}
	}()

	sess, err := session.New(session.Options{
		MusicOn: cfg.Audio.MusicOn,
		SoundOn: cfg.Audio.SoundOn,
		Seed:    seed,
	}, mix)
	if err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if cfg.Watch {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			return fmt.Errorf("watch prefabs: %w", err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowSize(int(common.BaseWidth*cfg.Window.Scale), int(common.BaseHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(common.TicksPerSecond)

	game := NewGame(sess, watcher, cfg.Debug)
	if err := ebiten.RunGame(game); err != nil {
		return err
	}
	log.Info("bye")
	return nil
}
