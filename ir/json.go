package ir

import (
	"encoding/json"

	"github.com/aster-lang/aster/diag"
	"github.com/aster-lang/aster/source"
)

// Marshal renders a Module as its versioned JSON envelope.
func Marshal(mod *Module) ([]byte, error) {
	return json.MarshalIndent(Envelope{SchemaVersion: SchemaVersion, Module: mod}, "", "  ")
}

// Unmarshal parses a versioned JSON envelope back into a Module. An
// envelope whose SchemaVersion does not match this package's
// SchemaVersion is rejected with a CoreIRVersionMismatch diagnostic
// rather than silently handed to a decoder that no longer matches its
// shape; Diagnostic implements error, so callers that only want a plain
// error can treat the return value as one.
func Unmarshal(data []byte) (*Module, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.SchemaVersion != SchemaVersion {
		d := diag.New(diag.CodeCoreIRVersionMismatch, source.Span{}, map[string]any{
			"actual":   env.SchemaVersion,
			"expected": SchemaVersion,
		})
		return nil, d
	}
	return env.Module, nil
}
