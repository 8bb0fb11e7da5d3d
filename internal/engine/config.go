package engine

import (
	"github.com/cdeclish/cdeclish/internal/config"
	"github.com/cdeclish/cdeclish/internal/diagnostics"
)

// ApplyFileConfig layers a loaded .cdeclishrc (internal/config's
// FileConfig) onto the Engine's option state, one `set` call per
// present key so both the persisted-config path and the interactive
// `set` command funnel through the exact same validation and
// unrecognized-value handling (spec §6: "Unknown keys are warnings").
// FileConfig itself has no unrecognized-key slot to report (its decoder
// already rejects those at parse time via KnownFields), so only
// recognized-key-bad-value problems surface here.
func (e *Engine) ApplyFileConfig(cfg *config.FileConfig) *diagnostics.Bag {
	bag := &diagnostics.Bag{}
	setStr := func(key, value string) {
		if value == "" {
			return
		}
		r := e.Set(key + "=" + value)
		for _, d := range r.Diags.All() {
			bag.Add(d)
		}
	}
	setBoolPtr := func(key string, value *bool) {
		if value == nil {
			return
		}
		setStr(key, boolString(*value))
	}

	setBoolPtr("alt-tokens", cfg.AltTokens)
	setStr("color", cfg.Color)
	setBoolPtr("debug", cfg.Debug)
	setBoolPtr("digraphs", cfg.Digraphs)
	setBoolPtr("trigraphs", cfg.Trigraphs)
	setBoolPtr("east-const", cfg.EastConst)
	setBoolPtr("echo-commands", cfg.EchoCommands)
	setBoolPtr("english-types", cfg.EnglishTypes)
	setStr("explicit-ecsu", cfg.ExplicitECSU)
	setStr("explicit-int", cfg.ExplicitInt)
	setStr("graphs", cfg.Graphs)
	setStr("language", cfg.Language)
	setStr("prompt", cfg.Prompt)
	setBoolPtr("semicolon", cfg.Semicolon)
	if len(cfg.Using) > 0 {
		joined := cfg.Using[0]
		for _, u := range cfg.Using[1:] {
			joined += "," + u
		}
		setStr("using", joined)
	}
	return bag
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
