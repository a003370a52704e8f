// Package hclspec defines the HCL schema of .pack manifests.
package hclspec

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

type Manifest struct {
	Pack    *Pack    `hcl:"pack,block"`
	Servers []Server `hcl:"server,block"`
	Splash  *Splash  `hcl:"splash,block"`
	Mods    []Mod    `hcl:"mod,block"`
	Scripts *Scripts `hcl:"scripts,block"`
}

// Pack carries the manifest schema revision. Format is kept as a raw
// value so that validation can distinguish a missing attribute from a
// non-numeric one.
type Pack struct {
	Name   string    `hcl:"name,optional"`
	Format cty.Value `hcl:"format,optional"`
}

type Server struct {
	Name string `hcl:"name,label"`
	IP   string `hcl:"ip"`
}

// Splash keeps its body undecoded; entries are arbitrary keys whose
// source order is significant.
type Splash struct {
	Body hcl.Body `hcl:",remain"`
}

type Mod struct {
	Name      string `hcl:"name,optional"`
	Type      string `hcl:"type,optional"`
	URL       string `hcl:"url,optional"`
	File      string `hcl:"file,optional"`
	ProjectID int    `hcl:"projectID,optional"`
	FileID    int    `hcl:"fileID,optional"`
}

type Scripts struct {
	Start  string `hcl:"start,optional"`
	Finish string `hcl:"finish,optional"`
}
