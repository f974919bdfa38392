// Package validator checks regsync documents against embedded CUE contracts.
//
// Two documents cross a trust boundary: symbol tables loaded from disk, and
// the resolution report handed to the audit policy. A document that does not
// match its contract is rejected with the CUE error, never patched around.
package validator

import (
	"embed"
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaFS embed.FS

const (
	tableDef  = "#SymbolTable"
	reportDef = "#Report"
)

// Validator validates data against the embedded CUE schema
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// New creates a new Validator with the embedded CUE schema
func New() (*Validator, error) {
	ctx := cuecontext.New()

	schemaBytes, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded schema: %w", err)
	}

	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", schema.Err())
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// ValidateTableJSON checks a symbol table document.
func (v *Validator) ValidateTableJSON(jsonBytes []byte) error {
	if err := v.validateJSON(jsonBytes, tableDef); err != nil {
		return fmt.Errorf("symbol table: %w", err)
	}
	return nil
}

// ValidateReport checks a resolution report before it reaches the policy engine.
func (v *Validator) ValidateReport(data interface{}) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling report to JSON: %w", err)
	}
	if err := v.validateJSON(jsonBytes, reportDef); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// ValidationErrors returns one message per contract violation in a report
func (v *Validator) ValidationErrors(data interface{}) []string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return []string{fmt.Sprintf("marshal error: %v", err)}
	}

	unified, err := v.unify(jsonBytes, reportDef)
	if err != nil {
		return []string{err.Error()}
	}
	err = unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs []string
	for _, e := range errors.Errors(err) {
		errs = append(errs, e.Error())
	}
	return errs
}

func (v *Validator) validateJSON(jsonBytes []byte, path string) error {
	unified, err := v.unify(jsonBytes, path)
	if err != nil {
		return err
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func (v *Validator) unify(jsonBytes []byte, path string) (cue.Value, error) {
	dataValue := v.ctx.CompileBytes(jsonBytes)
	if dataValue.Err() != nil {
		return cue.Value{}, fmt.Errorf("compiling JSON as CUE: %w", dataValue.Err())
	}

	def := v.schema.LookupPath(cue.ParsePath(path))
	if def.Err() != nil {
		return cue.Value{}, fmt.Errorf("looking up %s definition: %w", path, def.Err())
	}

	return def.Unify(dataValue), nil
}
