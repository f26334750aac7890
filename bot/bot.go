// Package bot drives a match from a tengo script. A script defines
//
//	decide := func(engine, snap) { ... }
//	choose := func(engine, options) { return options[0] }
//
// decide is called once per tick and steers the player through the engine
// functions; choose picks one of the offered upgrade names.
package bot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/arena"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
)

const DefaultScript = "bot"

const dispatchScript = `
if __phase == "decide" {
	decide(__engine, __snap)
} else if __phase == "choose" {
	__choice = choose(__engine, __options)
}
`

// Bot implements arena.InputProvider and arena.UpgradeSelector. It is not
// safe for concurrent use.
type Bot struct {
	name     string
	compiled *tengo.Compiled
	logger   *slog.Logger

	intent component.Input
}

var (
	_ arena.InputProvider   = (*Bot)(nil)
	_ arena.UpgradeSelector = (*Bot)(nil)
)

// New loads and compiles the named script from prefabs/scripts.
func New(name string, logger *slog.Logger) (*Bot, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("bot: load %s: %w", name, err)
	}
	return NewFromSource(name, src, logger)
}

// NewFromSource compiles src directly.
func NewFromSource(name string, src []byte, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bot{name: name, logger: logger.With("bot", name)}
	if err := b.compile(src); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload recompiles the script from prefabs. On failure the previous
// compiled script stays in use.
func (b *Bot) Reload() error {
	src, err := prefabs.LoadScript(b.name)
	if err != nil {
		return fmt.Errorf("bot: load %s: %w", b.name, err)
	}
	if err := b.compile(src); err != nil {
		return err
	}
	b.logger.Info("bot: script reloaded")
	return nil
}

func (b *Bot) compile(src []byte) error {
	script := tengo.NewScript([]byte(string(src) + "\n" + dispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__snap", map[string]any{})
	_ = script.Add("__options", []any{})
	_ = script.Add("__choice", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("bot: compile %s: %w", b.name, err)
	}
	b.compiled = compiled
	return nil
}

// Input runs decide against the current match state.
func (b *Bot) Input(m *arena.Match) component.Input {
	if b == nil || b.compiled == nil || m == nil {
		return component.Input{}
	}
	b.intent = component.Input{}
	if err := b.run("decide", b.engine(m), snapshot(m), nil); err != nil {
		b.logger.Warn("bot: decide failed", "err", err)
		return component.Input{}
	}
	if b.intent.Move.LengthSq() > 1 {
		b.intent.Move = b.intent.Move.Normalize()
	}
	return b.intent
}

// Choose runs choose with the offered upgrade names. A script error or an
// answer outside options falls back to the first option.
func (b *Bot) Choose(m *arena.Match, options []component.UpgradeKind) component.UpgradeKind {
	if len(options) == 0 {
		return 0
	}
	names := make([]tengo.Object, 0, len(options))
	for _, k := range options {
		names = append(names, &tengo.String{Value: k.String()})
	}
	if err := b.run("choose", b.engine(m), nil, &tengo.ImmutableArray{Value: names}); err != nil {
		b.logger.Warn("bot: choose failed", "err", err)
		return options[0]
	}

	name, _ := tengo.ToString(b.compiled.Get("__choice").Object())
	kind := component.ParseUpgradeKind(name)
	for _, k := range options {
		if k == kind {
			return kind
		}
	}
	b.logger.Warn("bot: choice not offered", "choice", name)
	return options[0]
}

func (b *Bot) run(phase string, engine, snap *tengo.ImmutableMap, options *tengo.ImmutableArray) error {
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if snap == nil {
		snap = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if options == nil {
		options = &tengo.ImmutableArray{}
	}
	if err := b.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := b.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := b.compiled.Set("__snap", snap); err != nil {
		return err
	}
	if err := b.compiled.Set("__options", options); err != nil {
		return err
	}
	if err := b.compiled.Set("__choice", ""); err != nil {
		return err
	}
	return b.compiled.Run()
}

func (b *Bot) engine(m *arena.Match) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, ok := vectorArgs(args)
		if !ok {
			return tengo.FalseValue, nil
		}
		b.intent.Move = v
		return tengo.TrueValue, nil
	}}

	values["aim"] = &tengo.UserFunction{Name: "aim", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, ok := vectorArgs(args)
		if !ok {
			return tengo.FalseValue, nil
		}
		b.intent.AimTarget = v
		b.intent.HasAim = true
		return tengo.TrueValue, nil
	}}

	values["fire"] = flagFunction("fire", &b.intent.Fire)
	values["reload"] = flagFunction("reload", &b.intent.Reload)
	values["dash"] = flagFunction("dash", &b.intent.Dash)

	values["nearest_enemy"] = &tengo.UserFunction{Name: "nearest_enemy", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if m == nil {
			return tengo.UndefinedValue, nil
		}
		pos, ok := m.NearestEnemy(m.PlayerPosition())
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return vectorObject(pos), nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			s, _ := tengo.ToString(a)
			parts = append(parts, s)
		}
		b.logger.Debug("bot: script", "msg", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func flagFunction(name string, flag *bool) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		*flag = true
		return tengo.TrueValue, nil
	}}
}

func snapshot(m *arena.Match) *tengo.ImmutableMap {
	hud := m.HUD()
	pos := m.PlayerPosition()
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"player_x":       &tengo.Float{Value: pos.X},
		"player_y":       &tengo.Float{Value: pos.Y},
		"health":         &tengo.Int{Value: int64(hud.Health)},
		"max_health":     &tengo.Int{Value: int64(hud.MaxHealth)},
		"ammo":           &tengo.Int{Value: int64(hud.Ammo)},
		"max_ammo":       &tengo.Int{Value: int64(hud.MaxAmmo)},
		"reloading":      boolObject(hud.Reloading),
		"dash_ready":     boolObject(hud.DashCooldown == 0 && !hud.Dashing),
		"round":          &tengo.Int{Value: int64(hud.Round)},
		"score":          &tengo.Int{Value: int64(hud.Score)},
		"enemies":        &tengo.Int{Value: int64(hud.Enemies)},
		"time":           &tengo.Float{Value: hud.Time},
		"beam_on_player": boolObject(m.BeamOnPlayer()),
	}}
}

func vectorArgs(args []tengo.Object) (cp.Vector, bool) {
	if len(args) < 2 {
		return cp.Vector{}, false
	}
	x, okX := tengo.ToFloat64(args[0])
	y, okY := tengo.ToFloat64(args[1])
	if !okX || !okY {
		return cp.Vector{}, false
	}
	return cp.Vector{X: x, Y: y}, true
}

func vectorObject(v cp.Vector) tengo.Object {
	return &tengo.ImmutableArray{Value: []tengo.Object{&tengo.Float{Value: v.X}, &tengo.Float{Value: v.Y}}}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
