// Package ruleset loads game rule variants from HCL files, keeping rule
// tuning in operator-editable config instead of code. A rule-set file holds
// any number of variant blocks:
//
//	variant "towers" {
//	  columns = 5
//	  rows    = 9
//	  run     = 5
//	  gaps    = "break"
//	}
//
// columns and rows are required; run defaults to the classic four and gaps
// to "ignore". The classic game needs no file at all, engine.Classic()
// covers it.
package ruleset

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/plus3/fourline/engine"
)

// hclRulesFile is the decode target for the top level of a rule-set file.
type hclRulesFile struct {
	Variants []*hclVariant `hcl:"variant,block"`
}

// hclVariant is one variant block. Gaps stays an expression until
// translation so an absent, null or mistyped value can each get its own
// error.
type hclVariant struct {
	Name    string         `hcl:"name,label"`
	Columns int            `hcl:"columns"`
	Rows    int            `hcl:"rows"`
	Run     *int           `hcl:"run,optional"`
	Gaps    hcl.Expression `hcl:"gaps,optional"`
}

// Load reads one rule-set file and returns its variants keyed by name.
// Duplicate names, malformed blocks and unplayable rules are all load-time
// errors carrying the variant name.
func Load(path string) (map[string]engine.Rules, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rule-set file %s: %w", path, diags)
	}

	var parsed hclRulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rule-set file %s: %w", path, diags)
	}

	variants := make(map[string]engine.Rules, len(parsed.Variants))
	for _, v := range parsed.Variants {
		if _, dup := variants[v.Name]; dup {
			return nil, fmt.Errorf("duplicate variant %q in %s", v.Name, path)
		}
		rules, err := translateVariant(v)
		if err != nil {
			return nil, err
		}
		variants[v.Name] = rules
	}
	return variants, nil
}

// translateVariant converts the HCL-specific schema into engine rules,
// applying defaults and validating the result.
func translateVariant(v *hclVariant) (engine.Rules, error) {
	if v.Columns <= 0 || v.Rows <= 0 {
		return engine.Rules{}, fmt.Errorf("variant %q: board %dx%d must have positive dimensions",
			v.Name, v.Columns, v.Rows)
	}
	rules := engine.Rules{
		Cols: uint32(v.Columns),
		Rows: uint32(v.Rows),
		Run:  engine.DefaultRunLength,
	}
	if v.Run != nil {
		rules.Run = *v.Run
	}
	gap, err := gapPolicy(v.Name, v.Gaps)
	if err != nil {
		return engine.Rules{}, err
	}
	rules.Gap = gap

	if err := rules.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("variant %q: %w", v.Name, err)
	}
	return rules, nil
}

// gapPolicy evaluates the optional gaps attribute. Absent and null both
// mean the default policy.
func gapPolicy(name string, expr hcl.Expression) (engine.GapPolicy, error) {
	if expr == nil {
		return engine.GapIgnore, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("variant %q: gaps: %w", name, diags)
	}
	if val.IsNull() {
		return engine.GapIgnore, nil
	}
	if val.Type() != cty.String {
		return 0, fmt.Errorf("variant %q: gaps must be a string", name)
	}
	switch val.AsString() {
	case "ignore":
		return engine.GapIgnore, nil
	case "break":
		return engine.GapBreak, nil
	default:
		return 0, fmt.Errorf("variant %q: unknown gaps policy %q", name, val.AsString())
	}
}
