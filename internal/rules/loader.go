package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/validation"
)

//go:embed schema/ruleset.schema.json
var rulesetSchema []byte

// LoadFile reads a YAML ruleset. Keys missing from the file keep their
// Default values.
func LoadFile(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, fmt.Errorf("%s %s: %w", ErrMsgReadRulesFailed, path, err)
	}
	return Parse(data)
}

// Parse validates YAML ruleset bytes against the embedded schema and
// decodes them over the defaults.
func Parse(data []byte) (Ruleset, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Ruleset{}, fmt.Errorf("%w: %v", ErrInvalidRuleset, err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	// the schema validator works on JSON
	asJSON, err := json.Marshal(doc)
	if err != nil {
		return Ruleset{}, fmt.Errorf("%w: %v", ErrInvalidRuleset, err)
	}

	v := validation.NewSchemaValidator()
	if err := v.AddSchema(RulesetSchemaName, rulesetSchema); err != nil {
		return Ruleset{}, err
	}
	if err := v.ValidateBytes(asJSON, RulesetSchemaName); err != nil {
		return Ruleset{}, fmt.Errorf("%w: %v", ErrInvalidRuleset, err)
	}

	r := Default()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Ruleset{}, fmt.Errorf("%w: %v", ErrInvalidRuleset, err)
	}
	if err := r.Validate(); err != nil {
		return Ruleset{}, err
	}
	return r, nil
}
