// Package tetris adapts the falling-block engine to the platform's
// fixed-step game interface: it turns input frames into engine commands,
// runs gravity on the frame clock and draws the well into a core.Screen.
package tetris

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Package-level settings chosen on the command line before games are created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the YAML file used by subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by subsequent Resets.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// inputOrder fixes the order actions are applied within one frame.
var inputOrder = []struct {
	action  core.Action
	command engine.Command
}{
	{core.ActionLeft, engine.CommandMoveLeft},
	{core.ActionRight, engine.CommandMoveRight},
	{core.ActionRotate, engine.CommandRotate},
	{core.ActionRotateCCW, engine.CommandRotateCCW},
	{core.ActionSoftDrop, engine.CommandSoftDrop},
	{core.ActionHardDrop, engine.CommandHardDrop},
}

// Game implements registry.Game around an engine session.
type Game struct {
	id    string
	title string

	session  *engine.Session
	rules    engine.Rules
	tickRate int
	frame    uint64

	// dropTicker counts frames since the last gravity step or manual drop.
	dropTicker int

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
}

// New creates the standard variant, which uses the configured generator.
func New() *Game {
	return &Game{id: VariantStandard, title: "Tetris"}
}

// NewClassic creates the variant that always picks pieces uniformly at random.
func NewClassic() *Game {
	return &Game{id: VariantClassic, title: "Tetris (classic random)"}
}

var constructors = map[string]func() *Game{
	VariantStandard: New,
	VariantClassic:  NewClassic,
}

func init() {
	for _, id := range Variants() {
		newGame := constructors[id]
		registry.Register(id, func() registry.Game {
			return newGame()
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads settings and starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	settings, err := LoadSettings(configPath, difficultyPreset)
	if err != nil {
		log.Warn("using default settings", "game", g.id, "err", err)
		settings = DefaultSettings()
	}
	if settings, err = settings.ForVariant(g.id); err != nil {
		log.Warn("using configured generator", "game", g.id, "err", err)
	}

	source, err := engine.SeededSource(settings.Policy, cfg.Seed)
	if err != nil {
		log.Warn("using bag generator", "game", g.id, "err", err)
		source, _ = engine.SeededSource(engine.PolicyBag, cfg.Seed)
	}
	session, err := engine.NewSession(settings.Rules, source)
	if err != nil {
		log.Warn("using default rules", "game", g.id, "err", err)
		settings.Rules = engine.DefaultRules()
		session, _ = engine.NewSession(settings.Rules, source)
	}

	g.session = session
	g.rules = settings.Rules
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.frame = 0
	g.dropTicker = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	log.Debug("game reset", "game", g.id, "seed", cfg.Seed, "policy", settings.Policy,
		"board", []int{g.rules.Width, g.rules.Height}, "kicks", g.rules.WallKicks)
}

// Resize adapts to a new screen size without restarting. The game freezes
// while the screen is too small to show the well.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	_, _, ok := g.layout(width, height)
	g.tooSmall = !ok
}

// Step advances one frame: pause and restart first, then movement in a fixed
// order, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++
	running := g.session.Running()

	if in.Has(core.ActionRestart) && (!running || g.paused) {
		g.session.Restart()
		g.dropTicker = 0
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && running {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall || !running {
		return core.StepResult{State: g.State()}
	}

	pieces, lines := g.session.Pieces(), g.session.Lines()

	for _, m := range inputOrder {
		if !in.Has(m.action) {
			continue
		}
		g.session.Apply(m.command)
		if m.command == engine.CommandSoftDrop || m.command == engine.CommandHardDrop {
			g.dropTicker = 0
		}
	}

	if g.session.Running() {
		g.dropTicker++
		if g.dropTicker >= g.framesPerDrop() {
			g.dropTicker = 0
			g.session.Tick()
		}
	}

	return core.StepResult{
		State:   g.State(),
		Locked:  g.session.Pieces() != pieces,
		Cleared: g.session.Lines() - lines,
	}
}

// framesPerDrop converts the current gravity interval to platform frames.
func (g *Game) framesPerDrop() int {
	interval := g.session.GravityInterval()
	return max(1, int(interval*time.Duration(g.tickRate)/time.Second))
}

// State returns the current game summary.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: !g.session.Running(),
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot for tests and other front ends.
func (g *Game) Snapshot() engine.Snapshot {
	return g.session.Snapshot()
}
