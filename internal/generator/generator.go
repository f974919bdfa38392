// Package generator runs the register sync pipeline: resolve the symbol
// table against the VHDL source, patch the target headers in memory, audit
// the result, then write every header back in full.
//
// All file I/O of a run happens here. Every input is read before anything
// is written, so a missing header aborts the run with all targets untouched.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/robert-at-pretension-io/regsync/internal/config"
	"github.com/robert-at-pretension-io/regsync/internal/extractor"
	"github.com/robert-at-pretension-io/regsync/internal/header"
	"github.com/robert-at-pretension-io/regsync/internal/policy"
	"github.com/robert-at-pretension-io/regsync/internal/report"
	"github.com/robert-at-pretension-io/regsync/internal/resolver"
	"github.com/robert-at-pretension-io/regsync/internal/symtab"
	"github.com/robert-at-pretension-io/regsync/internal/validator"
)

// ErrAuditFailed is returned in strict mode when the audit reports errors.
var ErrAuditFailed = errors.New("audit reported errors")

// Generator holds the settings of one invocation
type Generator struct {
	Config *config.Config
	Table  *symtab.Table

	// BaseDir anchors relative paths from the configuration
	BaseDir string

	// DryRun skips the final write pass
	DryRun bool

	// Strict fails the run on audit errors, in addition to Config.Audit.Strict
	Strict bool

	// Verbose adds declaration lines and chains to the mapping dump
	Verbose bool

	// TimingPath, when set, receives JSONL stage timings
	TimingPath string

	// Out receives the mapping dump
	Out io.Writer

	Log *logrus.Logger
}

// Outcome is what a run computed and did
type Outcome struct {
	Source  string
	Results []resolver.Result
	Values  []header.Assignment
	Headers []HeaderOutcome
	Report  report.Report

	// Constants lists every constant declared in the source
	Constants []extractor.Declaration

	// Audit is nil when the audit is disabled
	Audit *policy.Result
}

// HeaderOutcome is the patch result of one target header
type HeaderOutcome struct {
	Path       string
	Changed    int
	Unmatched  []string
	Mismatches []header.Mismatch
	Written    bool
}

type target struct {
	path    string
	content []byte
	mode    os.FileMode
	patched header.Result
	inv     header.Inventory
}

// New creates a Generator writing its dump to stdout
func New(cfg *config.Config, table *symtab.Table) *Generator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if table == nil {
		table = symtab.Default()
	}
	return &Generator{
		Config:  cfg,
		Table:   table,
		BaseDir: ".",
		Out:     os.Stdout,
		Log:     logrus.StandardLogger(),
	}
}

// Resolve loads the source and resolves every active table entry.
func (g *Generator) Resolve(ctx context.Context) (*Outcome, error) {
	tr := g.startTiming()
	defer tr.Close()
	return g.resolve(ctx, tr)
}

func (g *Generator) resolve(_ context.Context, tr *timingRecorder) (*Outcome, error) {
	start := time.Now()
	path := g.Config.SourcePath(g.BaseDir)
	src, err := extractor.ReadSource(path)
	if err != nil {
		tr.Stage("read_source", start, "error")
		return nil, err
	}
	tr.Stage("read_source", start, "ok")

	start = time.Now()
	results, err := resolver.ResolveTable(src, g.Table)
	if err != nil {
		tr.Stage("resolve", start, "error")
		return nil, err
	}
	tr.Stage("resolve", start, "ok")

	for _, r := range resolver.Unresolved(results) {
		g.Log.WithFields(logrus.Fields{
			"symbol": r.Symbol,
			"public": r.Public,
			"status": r.Status,
		}).Debug("symbol resolved to zero")
	}

	g.Log.WithFields(logrus.Fields{
		"source":  path,
		"table":   g.Table.Version,
		"symbols": len(results),
	}).Debug("resolved symbol table")

	return &Outcome{
		Source:    path,
		Results:   results,
		Values:    resolver.Values(results),
		Constants: src.Constants(),
	}, nil
}

// Run executes the full pipeline and writes the patched headers.
func (g *Generator) Run(ctx context.Context) (*Outcome, error) {
	tr := g.startTiming()
	defer tr.Close()

	out, err := g.resolve(ctx, tr)
	if err != nil {
		return nil, err
	}
	g.PrintMapping(out)

	targets, err := g.readTargets(tr)
	if err != nil {
		return out, err
	}

	start := time.Now()
	for _, t := range targets {
		t.patched = header.Patch(string(t.content), out.Values)
		if !t.patched.Modified() {
			g.Log.WithField("header", t.path).Debug("header already up to date")
		}
	}
	tr.Stage("patch", start, "ok")

	if err := g.inspect(ctx, tr, out, targets, true); err != nil {
		return out, err
	}

	start = time.Now()
	for _, t := range targets {
		ho := HeaderOutcome{
			Path:       t.path,
			Changed:    changedLines(t.patched),
			Unmatched:  t.patched.Unmatched,
			Mismatches: t.inv.Verify(out.Values),
		}
		if !g.DryRun {
			fileStart := time.Now()
			if err := os.WriteFile(t.path, []byte(t.patched.Text), t.mode); err != nil {
				tr.File("write", t.path, fileStart, "error")
				return out, fmt.Errorf("writing header %s: %w", t.path, err)
			}
			tr.File("write", t.path, fileStart, "ok")
			ho.Written = true
		}
		g.Log.WithFields(logrus.Fields{
			"header":    t.path,
			"changed":   ho.Changed,
			"unmatched": len(ho.Unmatched),
			"written":   ho.Written,
		}).Info("patched header")
		out.Headers = append(out.Headers, ho)
	}
	tr.Stage("write", start, "ok")

	return out, nil
}

// Check resolves and audits without writing. Headers are inspected as they
// are on disk; Changed reports how many lines a run would rewrite.
func (g *Generator) Check(ctx context.Context) (*Outcome, error) {
	tr := g.startTiming()
	defer tr.Close()

	out, err := g.resolve(ctx, tr)
	if err != nil {
		return nil, err
	}

	targets, err := g.readTargets(tr)
	if err != nil {
		return out, err
	}
	for _, t := range targets {
		t.patched = header.Patch(string(t.content), out.Values)
	}

	if err := g.inspect(ctx, tr, out, targets, false); err != nil {
		return out, err
	}

	for _, t := range targets {
		out.Headers = append(out.Headers, HeaderOutcome{
			Path:       t.path,
			Changed:    changedLines(t.patched),
			Unmatched:  t.patched.Unmatched,
			Mismatches: t.inv.Verify(out.Values),
		})
	}
	return out, nil
}

func (g *Generator) readTargets(tr *timingRecorder) ([]*target, error) {
	start := time.Now()
	paths, err := g.Config.ResolveHeaders(g.BaseDir)
	if err != nil {
		tr.Stage("read_headers", start, "error")
		return nil, fmt.Errorf("resolving headers: %w", err)
	}

	targets := make([]*target, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			tr.Stage("read_headers", start, "error")
			return nil, fmt.Errorf("reading header %s: %w", path, err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			tr.Stage("read_headers", start, "error")
			return nil, fmt.Errorf("reading header %s: %w", path, err)
		}
		targets = append(targets, &target{path: path, content: content, mode: info.Mode().Perm()})
	}
	tr.Stage("read_headers", start, "ok")
	return targets, nil
}

// inspect scans the headers (patched text when patched is set, disk content
// otherwise), then runs the audit.
func (g *Generator) inspect(ctx context.Context, tr *timingRecorder, out *Outcome, targets []*target, patched bool) error {
	if g.Config.VerifyEnabled() || g.Config.AuditEnabled() {
		start := time.Now()
		scanner := header.NewScanner()
		for _, t := range targets {
			text := t.content
			if patched {
				text = []byte(t.patched.Text)
			}
			inv, err := scanner.Scan(ctx, t.path, text)
			if err != nil {
				tr.Stage("scan", start, "error")
				return err
			}
			if inv.SyntaxErrors {
				g.Log.WithField("header", t.path).Warn("header has C++ syntax errors")
			}
			if patched {
				for _, m := range inv.Verify(out.Values) {
					g.Log.WithFields(logrus.Fields{
						"header":   t.path,
						"register": m.Name,
						"line":     m.Line,
						"expected": m.Expected,
						"found":    m.Found,
					}).Warn("patched declaration does not carry the resolved address")
				}
			}
			t.inv = inv
		}
		tr.Stage("scan", start, "ok")
	}

	inventories := make([]header.Inventory, 0, len(targets))
	for _, t := range targets {
		inventories = append(inventories, t.inv)
	}
	out.Report = report.Build(out.Source, g.Table.Version, out.Results, out.Constants, inventories)

	if !g.Config.AuditEnabled() {
		return nil
	}

	start := time.Now()
	audit, err := g.audit(ctx, out.Report)
	if err != nil {
		tr.Stage("audit", start, "error")
		return err
	}
	tr.Stage("audit", start, "ok")
	out.Audit = audit

	for _, v := range audit.Violations {
		entry := g.Log.WithFields(logrus.Fields{
			"rule":     v.Rule,
			"register": v.Name,
		})
		if v.File != "" {
			entry = entry.WithField("file", v.File)
		}
		if v.Line > 0 {
			entry = entry.WithField("line", v.Line)
		}
		switch v.Severity {
		case policy.SeverityError:
			entry.Error(v.Message)
		case policy.SeverityWarning:
			entry.Warn(v.Message)
		default:
			entry.Debug(v.Message)
		}
	}

	if (g.Strict || g.Config.Audit.Strict) && audit.HasErrors() {
		return fmt.Errorf("%w: %d error(s), %d warning(s)", ErrAuditFailed, audit.Summary.Errors, audit.Summary.Warnings)
	}
	return nil
}

func (g *Generator) audit(ctx context.Context, rep report.Report) (*policy.Result, error) {
	v, err := validator.New()
	if err != nil {
		return nil, err
	}
	if err := v.ValidateReport(rep); err != nil {
		for _, msg := range v.ValidationErrors(rep) {
			g.Log.WithField("contract", "report").Error(msg)
		}
		return nil, err
	}

	engine, err := policy.New(ctx, config.ResolvePath(g.BaseDir, g.Config.Audit.PolicyDir))
	if err != nil {
		return nil, fmt.Errorf("loading audit policy: %w", err)
	}
	return engine.Evaluate(ctx, rep)
}

// PrintMapping writes the public name to address mapping, one per line.
func (g *Generator) PrintMapping(out *Outcome) {
	if g.Out == nil {
		return
	}
	if !g.Verbose {
		for _, a := range out.Values {
			fmt.Fprintf(g.Out, "%s: %s\n", a.Name, a.Value)
		}
		return
	}
	for _, r := range out.Results {
		fmt.Fprintf(g.Out, "%s: %s  (%s line %d, %s", r.Public, r.Hex(), r.Symbol, r.Line, r.Status)
		if len(r.Chain) > 1 {
			fmt.Fprintf(g.Out, ", via %v", r.Chain[1:])
		}
		fmt.Fprintln(g.Out, ")")
	}
}

func (g *Generator) startTiming() *timingRecorder {
	tr := newTimingRecorder(time.Now(), g.TimingPath)
	if err := tr.Err(); err != nil {
		g.Log.WithError(err).Warn("timing output disabled")
	}
	return tr
}

func changedLines(r header.Result) int {
	n := 0
	for _, c := range r.Changes {
		if c.Old != c.New {
			n++
		}
	}
	return n
}
