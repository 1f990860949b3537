// Package session runs one game: it owns the world, the mode and audio
// flags, and the fixed level, and dispatches update, click and draw calls.
package session

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
	"github.com/milk9111/trophydash/ecs/entity"
	"github.com/milk9111/trophydash/ecs/system"
)

type Options struct {
	MusicOn bool
	SoundOn bool
	Seed    int64
}

type Session struct {
	world *ecs.World
	state *component.GameState
	rng   *rand.Rand
	held  heldKeys

	patrol *system.PatrolSystem
	menu   *system.MenuSystem
	play   *ecs.Scheduler
	audio  *ecs.Scheduler
	render *system.RenderSystem
}

// heldKeys feeds the input snapshot of the current frame to the InputSystem.
type heldKeys struct {
	in component.Input
}

func (h *heldKeys) Poll() component.Input {
	return h.in
}

// New builds the session in menu mode with the launch layout. When music is
// enabled it starts playing immediately. mixer may be nil.
func New(opts Options, mixer system.Mixer) (*Session, error) {
	s := &Session{
		world: ecs.NewWorld(),
		state: &component.GameState{
			Mode:    component.ModeMenu,
			MusicOn: opts.MusicOn,
			SoundOn: opts.SoundOn,
		},
		rng:    rand.New(rand.NewSource(opts.Seed)),
		patrol: system.NewPatrolSystem(),
		menu:   system.NewMenuSystem(),
		render: system.NewRenderSystem(),
	}
	s.audio = ecs.NewScheduler(
		system.NewAudioSystem(mixer),
		system.NewMusicSystem(mixer),
	)
	s.play = ecs.NewScheduler(
		system.NewInputSystem(&s.held),
		system.NewPlayerControllerSystem(),
		system.NewPlatformCollisionSystem(),
		s.patrol,
		system.NewHazardSystem(),
		system.NewGoalSystem(),
		system.NewAnimationSystem(common.Step),
	)

	if err := s.buildPersistent(); err != nil {
		return nil, err
	}
	if err := s.buildLevel(goalSpawnAtLaunch); err != nil {
		return nil, err
	}

	s.startMusic()
	s.audio.Update(s.world)
	return s, nil
}

func (s *Session) buildPersistent() error {
	if _, err := entity.NewGameState(s.world, s.state); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if _, err := entity.NewMusicPlayer(s.world); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	for _, prefab := range backdropPrefabs {
		if _, err := entity.NewBackdrop(s.world, prefab); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	for _, b := range buttonSpawns {
		on := true
		switch b.Prefab {
		case entity.MusicButtonPrefab:
			on = s.state.MusicOn
		case entity.SoundButtonPrefab:
			on = s.state.SoundOn
		}
		if _, err := entity.NewMenuButton(s.world, b.Prefab, b.X, b.Y, on); err != nil {
			return fmt.Errorf("session: %w", err)
		}
	}
	return nil
}

// buildLevel creates the goal, obstacles, patrollers and character.
func (s *Session) buildLevel(goal point) error {
	if _, err := entity.NewGoal(s.world, goal.X, goal.Y); err != nil {
		return fmt.Errorf("session: build level: %w", err)
	}
	for _, o := range obstacleSpawns {
		if _, err := entity.NewPlatform(s.world, o.Prefab, o.X, o.Y, o.Width, o.Height); err != nil {
			return fmt.Errorf("session: build level: %w", err)
		}
	}
	for _, p := range patrollerSpawns {
		dir := 1.0
		if s.rng.Intn(2) == 0 {
			dir = -1
		}
		if _, err := entity.NewPatroller(s.world, p.X, p.Y, p.Start, p.End, dir); err != nil {
			return fmt.Errorf("session: build level: %w", err)
		}
	}
	if _, err := entity.NewCharacter(s.world, characterSpawn.X, characterSpawn.Y); err != nil {
		return fmt.Errorf("session: build level: %w", err)
	}
	return nil
}

// Reset destroys every level entity and rebuilds the level from scratch.
// Menu controls, backdrops and audio state survive.
func (s *Session) Reset() error {
	for _, e := range s.world.Entities() {
		if ecs.Has(s.world, e, component.PersistentComponent.Kind()) {
			continue
		}
		ecs.DestroyEntity(s.world, e)
	}
	if err := s.buildLevel(goalSpawnOnReset); err != nil {
		return err
	}
	s.startMusic()
	return nil
}

func (s *Session) startMusic() {
	if !s.state.MusicOn {
		return
	}
	ent, ok := ecs.First(s.world, component.MusicPlayerComponent.Kind())
	if !ok {
		return
	}
	player, _ := ecs.Get(s.world, ent, component.MusicPlayerComponent.Kind())
	system.RequestMusic(s.world, player.Track)
}

// Update advances the simulation by one fixed step using the held keys in
// in. It does nothing outside play mode.
func (s *Session) Update(in component.Input) {
	if s == nil || s.state.Mode != component.ModePlaying {
		return
	}
	s.held.in = in
	s.play.Update(s.world)
	s.audio.Update(s.world)
}

// HandleClick resolves a pointer click against the menu controls. It does
// nothing outside menu mode.
func (s *Session) HandleClick(x, y float64) error {
	if s == nil || s.state.Mode != component.ModeMenu {
		return nil
	}

	system.RequestClick(s.world, x, y)
	s.menu.Update(s.world)

	starts := s.world.Query(component.StartRequestComponent.Kind())
	for _, e := range starts {
		ecs.DestroyEntity(s.world, e)
	}
	if len(starts) > 0 {
		if err := s.Reset(); err != nil {
			return err
		}
		s.state.Mode = component.ModePlaying
		s.state.Outcome = component.OutcomeNone
		log.Debug("run started")
	}

	s.audio.Update(s.world)
	return nil
}

// ReturnToMenu abandons the current run without touching the level.
func (s *Session) ReturnToMenu() {
	if s == nil {
		return
	}
	s.state.Mode = component.ModeMenu
}

// ReloadScripts drops compiled patrol scripts. Prefab edits need no reload:
// the next Start rebuilds the level from the prefab files.
func (s *Session) ReloadScripts() {
	if s == nil {
		return
	}
	s.patrol.Invalidate()
}

func (s *Session) Draw(c system.Canvas) {
	if s == nil || c == nil {
		return
	}
	c.Clear()
	s.render.Draw(s.world, c)
}

func (s *Session) Mode() component.Mode {
	return s.state.Mode
}

func (s *Session) MusicOn() bool {
	return s.state.MusicOn
}

func (s *Session) SoundOn() bool {
	return s.state.SoundOn
}

func (s *Session) Outcome() component.Outcome {
	return s.state.Outcome
}

func (s *Session) ExitRequested() bool {
	return s.state.ExitRequested
}

func (s *Session) World() *ecs.World {
	return s.world
}
