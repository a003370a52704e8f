package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/diff"

	"github.com/google/subcommands"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/tie/internal/renameio"
	"github.com/tie/internal/robustio"

	"github.com/mcdeploy/mcdeploy/pack/hclspec"
)

type FormatCommand struct {
	DisableCheck bool
	Overwrite    bool
	ContextSize  int
}

func (*FormatCommand) Name() string     { return "fmt" }
func (*FormatCommand) Synopsis() string { return "format manifests" }
func (*FormatCommand) Usage() string {
	return `Usage: mcdeploy fmt [-c int] [-w] [-nocheck] [manifest paths]

	Formats manifests using standard syntax. It either writes files
	in place or prints a unified diff with the given context size.

Flags:
`
}

func (cmd *FormatCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.DisableCheck, "nocheck", false, "disable diagnostics")
	fs.BoolVar(&cmd.Overwrite, "w", false, "write result to (source) file instead of stdout")
	fs.IntVar(&cmd.ContextSize, "c", 3, "output n lines of diff context")
}

func (cmd *FormatCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	var color bool
	var parser *hclparse.Parser
	var diagWr hcl.DiagnosticWriter
	if !cmd.DisableCheck {
		parser = hclparse.NewParser()
		diagWr, color = newDiagWr(parser)
	}

	paths := fs.Args()
	if len(paths) <= 0 {
		paths = []string{defaultManifest}
	} else {
		sort.Strings(paths)
	}

	seen := make(map[string]bool, len(paths))
	for _, fpath := range paths {
		if seen[fpath] {
			continue
		}
		seen[fpath] = true
		if !cmd.formatFile(ctx, parser, diagWr, color, fpath) {
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func (cmd *FormatCommand) formatFile(ctx context.Context, parser *hclparse.Parser, diagWr hcl.DiagnosticWriter, color bool, fpath string) bool {
	src, err := robustio.ReadFile(fpath)
	if err != nil {
		log.Printf("read manifest %q: %+v", fpath, err)
		return false
	}

	if parser != nil {
		file, diags := parser.ParseHCL(src, fpath)
		if diags.HasErrors() {
			if err := diagWr.WriteDiagnostics(diags); err != nil {
				log.Printf("write diags: %+v", err)
			}
			return false
		}
		decodeDiags := gohcl.DecodeBody(file.Body, nil, &hclspec.Manifest{})
		diags = append(diags, decodeDiags...)
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			log.Printf("write diags: %+v", err)
			return false
		}
		if diags.HasErrors() {
			return false
		}
	}

	outSrc := hclwrite.Format(src)
	if bytes.Equal(src, outSrc) {
		return true
	}

	if cmd.Overwrite {
		if err := renameio.WriteFile(fpath, outSrc, 0644); err != nil {
			log.Printf("write file %q: %+v", fpath, err)
			return false
		}
		return true
	}

	fpath = filepath.ToSlash(fpath)
	aname := fmt.Sprintf("a/%s", fpath)
	bname := fmt.Sprintf("b/%s", fpath)
	opts := []diff.WriteOpt{diff.Names(aname, bname)}
	if color {
		opts = append(opts, diff.TerminalColor())
	}
	a, b := splitLines(src), splitLines(outSrc)
	pair := diff.Bytes(a, b)
	edit := diff.Myers(ctx, pair)
	if cmd.ContextSize >= 0 {
		edit = edit.WithContextSize(cmd.ContextSize)
	}
	if _, err := edit.WriteUnified(os.Stdout, pair, opts...); err != nil {
		log.Printf("write diff: %+v", err)
		return false
	}
	return true
}

func splitLines(b []byte) [][]byte {
	return bytes.Split(b, []byte("\n"))
}
