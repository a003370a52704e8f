// Package pack maps parsed .pack manifest bodies onto the installer
// model.
package pack

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/pack/hclspec"
	"github.com/mcdeploy/mcdeploy/props"
)

// Decode builds the installer model from a parsed manifest body.
// A nil Format in the result means the manifest carried no numeric
// pack format; Manifest.Validate rejects it.
func Decode(body hcl.Body) (*mcdeploy.Manifest, hcl.Diagnostics) {
	var spec hclspec.Manifest
	diags := gohcl.DecodeBody(body, nil, &spec)
	if diags.HasErrors() {
		return nil, diags
	}

	m := &mcdeploy.Manifest{}

	if p := spec.Pack; p != nil {
		m.Pack.Name = p.Name
		if p.Format != cty.NilVal && p.Format.Type() == cty.Number {
			f, _ := p.Format.AsBigFloat().Float64()
			m.Pack.Format = &f
		}
	}

	m.Servers = make([]mcdeploy.Server, len(spec.Servers))
	for i, s := range spec.Servers {
		m.Servers[i] = mcdeploy.Server{Name: s.Name, IP: s.IP}
	}

	if spec.Splash != nil {
		splash, splashDiags := splashProperties(spec.Splash.Body)
		diags = append(diags, splashDiags...)
		if splashDiags.HasErrors() {
			return nil, diags
		}
		m.Splash = splash
	}

	m.Mods = make([]mcdeploy.Mod, len(spec.Mods))
	for i, mod := range spec.Mods {
		m.Mods[i] = mcdeploy.Mod{
			Name:      mod.Name,
			Type:      mod.Type,
			URL:       mod.URL,
			File:      mod.File,
			ProjectID: mod.ProjectID,
			FileID:    mod.FileID,
		}
	}

	if s := spec.Scripts; s != nil {
		m.Scripts = &mcdeploy.Scripts{Start: s.Start, Finish: s.Finish}
	}

	return m, diags
}

// splashProperties reads the splash block attributes in source order,
// which becomes line order in the rendered properties file.
func splashProperties(body hcl.Body) ([]props.Property, hcl.Diagnostics) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	list := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		list = append(list, attr)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Range.Start.Byte < list[j].Range.Start.Byte
	})

	entries := make([]props.Property, 0, len(list))
	for _, attr := range list {
		v, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		s, err := convert.Convert(v, cty.String)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid splash value",
				Detail:   fmt.Sprintf("Cannot convert %q to string: %s.", attr.Name, err),
				Subject:  attr.Range.Ptr(),
			})
			continue
		}
		entries = append(entries, props.Property{
			Key:   attr.Name,
			Value: s.AsString(),
		})
	}
	return entries, diags
}
