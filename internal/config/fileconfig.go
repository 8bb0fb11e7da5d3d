package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the persisted-configuration document of spec §6
// ("Persisted state"): the `set` keys written to and read from
// .cdeclishrc, shaped as a YAML document the way funvibe-funxy's
// funxy.yaml is (internal/ext/config.go's Config/LoadConfig/ParseConfig
// pattern).
type FileConfig struct {
	AltTokens    *bool    `yaml:"alt-tokens,omitempty"`
	Color        string   `yaml:"color,omitempty"`
	Debug        *bool    `yaml:"debug,omitempty"`
	Digraphs     *bool    `yaml:"digraphs,omitempty"`
	Trigraphs    *bool    `yaml:"trigraphs,omitempty"`
	EastConst    *bool    `yaml:"east-const,omitempty"`
	EchoCommands *bool    `yaml:"echo-commands,omitempty"`
	EnglishTypes *bool    `yaml:"english-types,omitempty"`
	ExplicitECSU string   `yaml:"explicit-ecsu,omitempty"`
	ExplicitInt  string   `yaml:"explicit-int,omitempty"`
	Graphs       string   `yaml:"graphs,omitempty"`
	Language     string   `yaml:"language,omitempty"`
	Prompt       string   `yaml:"prompt,omitempty"`
	Semicolon    *bool    `yaml:"semicolon,omitempty"`
	Using        []string `yaml:"using,omitempty"`
}

// LoadFileConfig reads and parses path as a FileConfig.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseFileConfig(data)
}

// ParseFileConfig parses raw YAML bytes into a FileConfig. Unrecognized
// keys are reported via the returned error rather than silently
// accepted, using yaml.Decoder.KnownFields so a typo'd key surfaces as a
// diagnostic instead of being ignored (spec §6, "Unknown keys are
// warnings" — the caller downgrades this error to a warning diagnostic
// rather than aborting, matching the teacher's tolerant-parsing stance).
func ParseFileConfig(data []byte) (*FileConfig, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg FileConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// FindConfigFile searches dir and then $HOME for ConfigFileName,
// mirroring FindConfig's directory-walk in the teacher's ext package,
// simplified to the two locations spec §6 names.
func FindConfigFile(dir string) (string, bool) {
	candidate := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
