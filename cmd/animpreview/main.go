// animpreview plays one animation state of a prefab using the frame atlas.
//
// Usage:
//
//	animpreview --prefab hero.yaml --state walk-right
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/ecs/component"
	"github.com/milk9111/trophydash/ecs/render"
	"github.com/milk9111/trophydash/prefabs"
	"github.com/spf13/cobra"
)

const previewSize = 256

var (
	flagPrefab string
	flagState  string
	flagScale  float64
)

type previewGame struct {
	anim   *component.Animation
	states []string
	scale  float64
	canvas *render.Canvas
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && len(g.states) > 1 {
		next := 0
		for i, s := range g.states {
			if s == g.anim.Current {
				next = (i + 1) % len(g.states)
				break
			}
		}
		g.anim.SetState(g.states[next])
	}
	g.anim.Advance(common.Step)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen)
	g.canvas.Clear()
	g.canvas.DrawImage(g.anim.CurrentFrame(), previewSize/2, previewSize/2, g.scale, g.scale)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s [%d] %s\nTab: next state", g.anim.Current, g.anim.Frame, g.anim.CurrentFrame()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// loadAnimation builds the prefab's animation positioned at state.
func loadAnimation(prefab, state string) (*component.Animation, []string, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return nil, nil, err
	}
	raw, ok := spec.Components["animation"]
	if !ok {
		return nil, nil, fmt.Errorf("prefab %s has no animation", prefab)
	}
	animSpec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return nil, nil, err
	}
	if state == "" {
		state = animSpec.Current
	}
	frames, ok := animSpec.States[state]
	if !ok || len(frames) == 0 {
		return nil, nil, fmt.Errorf("prefab %s has no frames for state %q", prefab, state)
	}

	states := make([]string, 0, len(animSpec.States))
	for s := range animSpec.States {
		states = append(states, s)
	}
	sort.Strings(states)

	return &component.Animation{
		Defs:    animSpec.States,
		Current: state,
		Cadence: animSpec.Cadence,
		Image:   frames[0],
	}, states, nil
}

var rootCmd = &cobra.Command{
	Use:          "animpreview",
	Short:        "Preview a prefab animation",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		anim, states, err := loadAnimation(flagPrefab, flagState)
		if err != nil {
			return err
		}
		if err := render.LoadAtlas(); err != nil {
			return err
		}
		log.Info("previewing", "prefab", flagPrefab, "state", anim.Current, "states", states)

		ebiten.SetWindowSize(previewSize*2, previewSize*2)
		ebiten.SetWindowTitle("Animation Preview: " + flagPrefab)
		return ebiten.RunGame(&previewGame{anim: anim, states: states, scale: flagScale, canvas: render.NewCanvas()})
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagPrefab, "prefab", "hero.yaml", "Prefab file with an animation component")
	rootCmd.Flags().StringVar(&flagState, "state", "", "Animation state to start on (default: the prefab's current state)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 2, "Draw scale")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("animpreview", "err", err)
		os.Exit(1)
	}
}
