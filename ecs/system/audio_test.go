package system

import (
	"testing"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

func TestRequestSoundGatedBySoundFlag(t *testing.T) {
	state := &component.GameState{SoundOn: false}
	w := ecs.NewWorld()
	addState(t, w, state)
	mixer := &recordingMixer{}
	sys := NewAudioSystem(mixer)

	RequestSound(w, SoundJump)
	sys.Update(w)
	if len(mixer.sounds) != 0 {
		t.Fatalf("sounds = %v with sound off", mixer.sounds)
	}

	state.SoundOn = true
	RequestSound(w, SoundJump)
	RequestSound(w, SoundWin)
	sys.Update(w)
	if !equalStrings(mixer.sounds, []string{SoundJump, SoundWin}) {
		t.Fatalf("sounds = %v, want [jump win]", mixer.sounds)
	}
	if n := len(w.Query(component.SoundRequestComponent.Kind())); n != 0 {
		t.Fatalf("%d sound requests left undrained", n)
	}
}

func TestMusicSystemLatestRequestWins(t *testing.T) {
	w := ecs.NewWorld()
	playerEnt := ecs.CreateEntity(w)
	player := &component.MusicPlayer{Track: "background_music"}
	mustAdd(t, w, playerEnt, component.MusicPlayerComponent.Kind(), player)
	mixer := &recordingMixer{}
	sys := NewMusicSystem(mixer)

	StopMusic(w)
	sys.Update(w)
	if mixer.stops != 0 {
		t.Fatal("stopped music that was not playing")
	}

	StopMusic(w)
	RequestMusic(w, "background_music")
	sys.Update(w)
	if !player.Playing || player.CurrentTrack != "background_music" || player.Starts != 1 {
		t.Fatalf("player = %+v, want playing background_music once", *player)
	}

	RequestMusic(w, "background_music")
	sys.Update(w)
	if player.Starts != 2 || len(mixer.music) != 2 {
		t.Fatalf("starts=%d plays=%v, want a restart", player.Starts, mixer.music)
	}

	StopMusic(w)
	sys.Update(w)
	if player.Playing || mixer.stops != 1 {
		t.Fatalf("player = %+v stops=%d, want stopped once", *player, mixer.stops)
	}
}

func TestInputSystemCopiesSnapshot(t *testing.T) {
	w := ecs.NewWorld()
	e := addCharacter(t, w, 0, 0)
	NewInputSystem(fixedInput{Left: true, Jump: true}).Update(w)

	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	if !in.Left || in.Right || !in.Jump {
		t.Fatalf("input = %+v", *in)
	}
}
