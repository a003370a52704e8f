package main

import (
	"log"
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tie/internal/robustio"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/console"
	"github.com/mcdeploy/mcdeploy/pack"
)

func newDiagWr(p *hclparse.Parser) (diagWr hcl.DiagnosticWriter, color bool) {
	files := p.Files()
	stderr := os.Stderr
	fd := int(stderr.Fd())
	istty, color := console.TTY(fd)
	if !istty {
		diagWr := hcl.NewDiagnosticTextWriter(stderr, files, 80, color)
		return diagWr, color
	}
	var width uint
	if w, _, err := terminal.GetSize(fd); err != nil {
		log.Printf("get term size: %+v", err)
	} else if w >= 0 {
		width = uint(w)
	} else {
		width = 80
	}
	return hcl.NewDiagnosticTextWriter(stderr, files, width, color), color
}

func parseManifest(path string) (*mcdeploy.Manifest, bool) {
	parser := hclparse.NewParser()
	diagWr, _ := newDiagWr(parser)

	src, err := robustio.ReadFile(path)
	if err != nil {
		log.Printf("read %q: %+v", path, err)
		return nil, false
	}

	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			log.Printf("write diags: %+v", err)
		}
		return nil, false
	}

	m, decodeDiags := pack.Decode(file.Body)
	diags = append(diags, decodeDiags...)
	if err := diagWr.WriteDiagnostics(diags); err != nil {
		log.Printf("write diags: %+v", err)
		return nil, false
	}
	if diags.HasErrors() {
		return nil, false
	}
	return m, true
}
