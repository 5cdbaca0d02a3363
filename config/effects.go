package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// EffectConfig is the effect-prefix table: glob-style patterns on a
// fully qualified call name (`module.func`), each bucket mapping to the
// effect label that a matching call infers.
type EffectConfig struct {
	Patterns EffectPatterns `json:"patterns" yaml:"patterns"`
}

// EffectPatterns groups the nested `io` category (which fans out into
// the fine-grained Http/Sql/Time/Files/Secrets effects) alongside the
// flat `cpu` and `ai` categories.
type EffectPatterns struct {
	Io  IoPatterns `json:"io" yaml:"io"`
	Cpu []string   `json:"cpu" yaml:"cpu"`
	Ai  []string   `json:"ai" yaml:"ai"`
}

// IoPatterns is the `io` category's sub-buckets.
type IoPatterns struct {
	Http    []string `json:"http" yaml:"http"`
	Sql     []string `json:"sql" yaml:"sql"`
	Time    []string `json:"time" yaml:"time"`
	Files   []string `json:"files" yaml:"files"`
	Secrets []string `json:"secrets" yaml:"secrets"`
}

// ioDirectPatterns is the built-in `Io.* ⇒ Io` rule. It is not part of
// the user-editable JSON/YAML shape since a prefix table keys
// sub-effects, not the umbrella one.
var ioDirectPatterns = []string{"Io.*", "Io.**"}

// DefaultEffectConfig returns the built-in prefix table consulted when
// no ASTER_EFFECT_CONFIG is set, or as the base a partial user config is
// merged over.
func DefaultEffectConfig() *EffectConfig {
	return &EffectConfig{
		Patterns: EffectPatterns{
			Io: IoPatterns{
				Http:    []string{"Http.*", "Http.**"},
				Sql:     []string{"Sql.*", "Sql.**"},
				Time:    []string{"Time.*", "Time.**"},
				Files:   []string{"Files.*", "Files.**"},
				Secrets: []string{"Secrets.*", "Secrets.**"},
			},
			Cpu: []string{"Cpu.*", "Cpu.**"},
			Ai:  []string{"AiModel.*", "AiModel.**"},
		},
	}
}

// Match returns the set of effect labels a fully qualified call name
// triggers under this table, including the built-in `Io.*` rule.
func (c *EffectConfig) Match(qualifiedName string) []string {
	var effects []string
	add := func(patterns []string, effect string) {
		for _, pat := range patterns {
			if ok, _ := doublestar.Match(pat, qualifiedName); ok {
				effects = append(effects, effect)
				return
			}
		}
	}
	add(ioDirectPatterns, "Io")
	add(c.Patterns.Io.Http, "Http")
	add(c.Patterns.Io.Sql, "Sql")
	add(c.Patterns.Io.Time, "Time")
	add(c.Patterns.Io.Files, "Files")
	add(c.Patterns.Io.Secrets, "Secrets")
	add(c.Patterns.Cpu, "Cpu")
	add(c.Patterns.Ai, "AiModel")
	return effects
}

// mergeEffectConfig overlays a partial, user-supplied config over the
// defaults: only the buckets actually present in partial replace the
// corresponding default bucket.
func mergeEffectConfig(base, partial *EffectConfig) *EffectConfig {
	merged := *base
	if len(partial.Patterns.Io.Http) > 0 {
		merged.Patterns.Io.Http = partial.Patterns.Io.Http
	}
	if len(partial.Patterns.Io.Sql) > 0 {
		merged.Patterns.Io.Sql = partial.Patterns.Io.Sql
	}
	if len(partial.Patterns.Io.Time) > 0 {
		merged.Patterns.Io.Time = partial.Patterns.Io.Time
	}
	if len(partial.Patterns.Io.Files) > 0 {
		merged.Patterns.Io.Files = partial.Patterns.Io.Files
	}
	if len(partial.Patterns.Io.Secrets) > 0 {
		merged.Patterns.Io.Secrets = partial.Patterns.Io.Secrets
	}
	if len(partial.Patterns.Cpu) > 0 {
		merged.Patterns.Cpu = partial.Patterns.Cpu
	}
	if len(partial.Patterns.Ai) > 0 {
		merged.Patterns.Ai = partial.Patterns.Ai
	}
	return &merged
}

var (
	cacheMu     sync.Mutex
	effectCache = map[string]*EffectConfig{}
	capsCache   = map[string]*CapabilityManifest{}
)

// ResetForTesting clears the memoized config caches.
func ResetForTesting() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	effectCache = map[string]*EffectConfig{}
	capsCache = map[string]*CapabilityManifest{}
}

// LoadEffectConfig loads and caches the effect-prefix table at path,
// merged over DefaultEffectConfig. An empty path returns the defaults
// unchanged. File format (JSON or YAML) is chosen by extension.
func LoadEffectConfig(path string) (*EffectConfig, error) {
	if path == "" {
		return DefaultEffectConfig(), nil
	}

	cacheMu.Lock()
	if cfg, ok := effectCache[path]; ok {
		cacheMu.Unlock()
		return cfg, nil
	}
	cacheMu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading effect config %q: %w", path, err)
	}
	var partial EffectConfig
	if err := decodeByExt(path, data, &partial); err != nil {
		return nil, fmt.Errorf("config: parsing effect config %q: %w", path, err)
	}
	merged := mergeEffectConfig(DefaultEffectConfig(), &partial)

	cacheMu.Lock()
	effectCache[path] = merged
	cacheMu.Unlock()
	return merged, nil
}

func decodeByExt(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return json.Unmarshal(data, out)
	}
}
