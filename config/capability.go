package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// legacyCapabilities are the fine-grained capabilities a manifest's
// deprecated umbrella keys expand into.
var legacyCapabilities = map[string][]string{
	"io":  {"Http", "Sql", "Time", "Files", "Secrets"},
	"cpu": {"Cpu"},
}

// CapabilityManifest is the allow/deny pattern table gating effect use
// by fully qualified call name.
type CapabilityManifest struct {
	Allow map[string][]string `json:"allow" yaml:"allow"`
	Deny  map[string][]string `json:"deny" yaml:"deny"`
}

// expandLegacy rewrites any "io"/"cpu" umbrella key into entries for
// each fine-grained capability it names, merging pattern lists when the
// fine-grained key is also present explicitly.
func expandLegacy(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	out := map[string][]string{}
	for k, v := range m {
		out[k] = append(out[k], v...)
	}
	for legacy, expansions := range legacyCapabilities {
		patterns, ok := out[legacy]
		if !ok {
			continue
		}
		delete(out, legacy)
		for _, capName := range expansions {
			out[capName] = append(out[capName], patterns...)
		}
	}
	return out
}

// Normalize expands legacy umbrella keys in both Allow and Deny. Call
// this once after loading, before using Allowed.
func (m *CapabilityManifest) Normalize() *CapabilityManifest {
	return &CapabilityManifest{Allow: expandLegacy(m.Allow), Deny: expandLegacy(m.Deny)}
}

// Allowed reports whether qualifiedName may use capability, under this
// (already-normalized) manifest: denied if any deny pattern matches,
// else allowed only if at least one allow pattern matches.
func (m *CapabilityManifest) Allowed(capability, qualifiedName string) bool {
	for _, pat := range m.Deny[capability] {
		if ok, _ := doublestar.Match(pat, qualifiedName); ok {
			return false
		}
	}
	for _, pat := range m.Allow[capability] {
		if ok, _ := doublestar.Match(pat, qualifiedName); ok {
			return true
		}
	}
	return false
}

// LoadCapabilityManifest loads, normalizes, and caches the manifest at
// path. An empty path returns nil: no manifest supplied means capability
// enforcement is skipped entirely.
func LoadCapabilityManifest(path string) (*CapabilityManifest, error) {
	if path == "" {
		return nil, nil
	}

	cacheMu.Lock()
	if m, ok := capsCache[path]; ok {
		cacheMu.Unlock()
		return m, nil
	}
	cacheMu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading capability manifest %q: %w", path, err)
	}
	var raw CapabilityManifest
	if err := decodeByExt(path, data, &raw); err != nil {
		return nil, fmt.Errorf("config: parsing capability manifest %q: %w", path, err)
	}
	normalized := raw.Normalize()

	cacheMu.Lock()
	capsCache[path] = normalized
	cacheMu.Unlock()
	return normalized, nil
}
