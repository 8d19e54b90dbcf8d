package session

import (
	"fmt"

	"cannonball/internal/world"
)

type GameState int

const (
	StateAiming  GameState = iota // projectile follows the cursor
	StateFlying                   // launched and moving
	StateResting                  // launched and stopped on the ground
	StateCleared                  // every target and goal captured
)

func (s GameState) String() string {
	switch s {
	case StateAiming:
		return "aiming"
	case StateFlying:
		return "flying"
	case StateResting:
		return "resting"
	case StateCleared:
		return "cleared"
	}
	return "unknown"
}

// Actions is one frame of sampled input.
type Actions struct {
	Aim     world.Vec2
	Fire    bool
	Reset   bool
	Rebuild bool
	Quit    bool
}

// GameSession owns the world, its collision engine and the event bus, and
// advances them one frame at a time.
type GameSession struct {
	State GameState
	Round int
	Shots int
	Score int // score of the current round
	Best  int // best round score so far

	Scene    world.Scene
	Bus      *world.EventBus
	World    *world.World
	Engine   *world.CollisionEngine
	response world.Response
}

// NewGameSession builds the first round of scene. Handlers subscribed to
// Bus survive Rebuild.
func NewGameSession(scene world.Scene, response world.Response) (*GameSession, error) {
	s := &GameSession{
		Scene:    scene,
		Bus:      world.NewEventBus(),
		response: response,
	}
	if err := s.Rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

// Rebuild starts a new round from the scene layout, restoring every target.
func (s *GameSession) Rebuild() error {
	w := world.NewWorld(s.Bus)
	if err := s.Scene.Build(w); err != nil {
		return fmt.Errorf("round %d: %w", s.Round+1, err)
	}
	s.World = w
	s.Engine = world.NewCollisionEngine(w, s.response)
	s.Round++
	s.Shots = 0
	s.Score = 0
	s.State = StateAiming
	return nil
}

// Step runs one frame: input, integration, collision response, spin.
// It returns the state before the frame so callers can react to changes.
func (s *GameSession) Step(a Actions) (GameState, error) {
	prev := s.State

	if a.Rebuild {
		if err := s.Rebuild(); err != nil {
			return prev, err
		}
	}
	if a.Reset {
		s.World.Reset()
	}
	if a.Fire {
		if s.World.Launch(a.Aim) {
			s.Shots++
		}
	} else {
		s.World.Aim(a.Aim)
	}

	s.World.Integrate()
	s.Engine.Resolve()
	s.World.SpinProjectile(world.ProjectileSpin)

	if p := s.World.Projectile(); p != nil {
		s.Score = p.Score
	}
	if s.Score > s.Best {
		s.Best = s.Score
	}
	s.State = s.derive()
	return prev, nil
}

func (s *GameSession) derive() GameState {
	if s.World.Targets() == 0 {
		return StateCleared
	}
	if !s.World.Fired() {
		return StateAiming
	}
	p := s.World.Projectile()
	if p == nil || (p.Vel.IsZero() && p.Acc.IsZero()) {
		return StateResting
	}
	return StateFlying
}
