// Package buildpipeline wires the whole run together: validate the
// invocation, load the IR, link it into a session, run the enumeration
// entry point, match addresses back to symbols, and emit the manifest.
// The pipeline is single-threaded and synchronous; the first error aborts
// the run and nothing partial is emitted.
package buildpipeline

import (
	"fmt"
	"io"
	"strings"

	"pochivm/internal/boilerplate"
	"pochivm/internal/diag"
	"pochivm/internal/enums"
	"pochivm/internal/irload"
	"pochivm/internal/jitlink"
	"pochivm/internal/manifest"
	"pochivm/internal/match"
	"pochivm/internal/observ"
)

// Options configures one run.
type Options struct {
	IRPath  string
	ObjPath string

	// Out receives the textual manifest (stdout in the tool).
	Out io.Writer
	// Reporter receives diagnostics and the success summary (stderr).
	Reporter *diag.Reporter
	// Timer, when set, records phase durations for --timings.
	Timer *observ.Timer

	// EnumsFile optionally declares extra enum domains (TOML).
	EnumsFile string
	// Enums is the registry enum meta-vars resolve against;
	// nil means the process-wide default.
	Enums *enums.Registry

	// Builders overrides the process-registered library builders.
	// nil means RegisteredBuilders(); an explicitly empty slice is an
	// empty library.
	Builders []boilerplate.BuilderFunc
}

// ValidateArgs checks the two positional paths before any IR is touched.
// Paths are forwarded to downstream build steps in ;-separated lists, so
// the separator is banned.
func ValidateArgs(irPath, objPath string) error {
	if irPath == "" || objPath == "" {
		return diag.Errorf(diag.BadArgs, "expected <ir-file> and <obj-file> paths")
	}
	for _, p := range []string{irPath, objPath} {
		if strings.ContainsRune(p, ';') {
			return diag.Errorf(diag.BadArgs, "path %q contains ';'", p)
		}
	}
	return nil
}

// Run executes the pipeline.
func Run(opts Options) error {
	if err := ValidateArgs(opts.IRPath, opts.ObjPath); err != nil {
		return err
	}

	registry := opts.Enums
	if registry == nil {
		registry = enums.Default
	}
	if opts.EnumsFile != "" {
		if err := registry.LoadTOML(opts.EnumsFile); err != nil {
			return diag.Errorf(diag.BadArgs, "cannot load enum declarations").WithNote("%v", err)
		}
	}

	phase := func(name string) int {
		if opts.Timer == nil {
			return -1
		}
		return opts.Timer.Begin(name)
	}
	endPhase := func(idx int, format string, args ...any) {
		if opts.Timer == nil {
			return
		}
		opts.Timer.End(idx, fmt.Sprintf(format, args...))
	}

	idx := phase("parse")
	_, table, err := irload.Load(opts.IRPath)
	if err != nil {
		return err
	}
	endPhase(idx, "%d declared symbols", table.NumDeclarations())

	// За этой точкой модуль принадлежит сессии.
	idx = phase("link")
	sess := jitlink.NewSession()
	sess.AddGenerator(jitlink.HostProcessGenerator{})
	sess.AddGenerator(jitlink.NewFakeAddressGenerator(sess))
	if err := sess.AddModule(table); err != nil {
		return err
	}
	endPhase(idx, "")

	idx = phase("enumerate")
	reg := boilerplate.NewRegistry()
	if err := boilerplate.Activate(reg); err != nil {
		return err
	}
	defer boilerplate.Deactivate()

	builders := opts.Builders
	if builders == nil {
		builders = boilerplate.RegisteredBuilders()
	}
	sess.BindBody(boilerplate.SymBuildLibraryEntry, func(s *jitlink.Session) error {
		return boilerplate.BuildLibrary(s, builders)
	})
	if err := sess.InvokeEntry(boilerplate.SymBuildLibraryEntry); err != nil {
		return err
	}
	endPhase(idx, "%d packs, %d instances", len(reg.Entries()), reg.NumInstances())

	idx = phase("match")
	addrIndex, err := match.BuildAddressIndex(sess, table)
	if err != nil {
		return err
	}
	if err := match.Resolve(reg, addrIndex, table); err != nil {
		return err
	}
	endPhase(idx, "")

	idx = phase("emit")
	if err := manifest.WriteObject(opts.ObjPath, reg); err != nil {
		return err
	}
	if err := manifest.Write(opts.Out, reg); err != nil {
		return err
	}
	endPhase(idx, "")

	if opts.Reporter != nil {
		opts.Reporter.Infof("%d packs, %d instances", len(reg.Entries()), reg.NumInstances())
	}
	return nil
}
