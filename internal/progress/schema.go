package progress

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const ledgerSchemaURL = "schema://skill-progress-ledger.json"

// ledgerSchema describes the persisted ledger blob.
var ledgerSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":     "object",
			"required": []any{"userId", "skillId", "level", "updatedAt"},
			"properties": map[string]any{
				"userId":    map[string]any{"type": "string", "minLength": 1},
				"skillId":   map[string]any{"type": "string", "minLength": 1},
				"level":     map[string]any{"type": "integer", "minimum": 0, "maximum": int(MaxLevel)},
				"comment":   map[string]any{"type": "string"},
				"updatedAt": map[string]any{"type": "string"},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledLedger *jsonschema.Schema
	compileErr     error
)

func compiledLedgerSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, so round-trip the
		// Go literal through encoding/json.
		b, err := json.Marshal(ledgerSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal ledger schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			compileErr = fmt.Errorf("parse ledger schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(ledgerSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledLedger, compileErr = c.Compile(ledgerSchemaURL)
	})
	return compiledLedger, compileErr
}

// DecodeLedger validates a stored ledger blob and decodes it. Records whose
// userId disagrees with the key they are filed under are rejected, as are
// duplicate (user, skill) pairs.
func DecodeLedger(blob []byte) (*Ledger, error) {
	var parsed any
	if err := json.Unmarshal(blob, &parsed); err != nil {
		return nil, fmt.Errorf("invalid ledger JSON: %w", err)
	}

	sch, err := compiledLedgerSchema()
	if err != nil {
		return nil, fmt.Errorf("compile ledger schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("ledger schema validation failed: %w", err)
	}

	l := NewLedger()
	if err := json.Unmarshal(blob, l); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}

	for userID, recs := range l.byUser {
		seen := make(map[string]bool, len(recs))
		for _, r := range recs {
			if r.UserID != userID {
				return nil, fmt.Errorf("record for %q filed under user %q", r.UserID, userID)
			}
			if seen[r.SkillID] {
				return nil, fmt.Errorf("duplicate record for user %q skill %q", userID, r.SkillID)
			}
			seen[r.SkillID] = true
		}
	}
	return l, nil
}
