package mcdeploy

import (
	"fmt"

	"github.com/mcdeploy/mcdeploy/props"
)

// Mod source kinds. An empty type means the mod is downloaded
// directly from its URL.
const (
	TypeURL      = ""
	TypeCurse    = "curseforge"
	TypeOptifine = "optifine"
)

// Manifest is the declarative description of a modpack. It is decoded
// once from a manifest file and never mutated afterwards.
type Manifest struct {
	Pack    Pack
	Servers []Server
	Splash  []props.Property
	Mods    []Mod
	Scripts *Scripts
}

// Pack identifies the modpack and the manifest schema revision it was
// written for. Format is nil when the manifest did not carry a numeric
// format attribute.
type Pack struct {
	Name   string
	Format *float64
}

// Server is one entry of the generated in-game server list.
type Server struct {
	Name string
	IP   string
}

type Mod struct {
	// Name overrides the destination file name. The ".jar" extension
	// is appended by the installer.
	Name string

	// Type selects the download source. Possible values:
	// "curseforge", "optifine" or "" for a direct URL.
	Type string

	// URL is the direct download location when Type is empty.
	URL string

	// File specifies the OptiFine file name.
	File string

	// ProjectID specifies the project ID on CurseForge.
	ProjectID int
	// FileID specifies the file ID of the CurseForge project.
	FileID int
}

// Scripts holds the optional lifecycle hook commands.
type Scripts struct {
	Start  string
	Finish string
}

// Command returns the command string for the named hook, or "" when
// the hook is not configured.
func (s *Scripts) Command(name string) string {
	switch name {
	case "start":
		return s.Start
	case "finish":
		return s.Finish
	}
	return ""
}

// Validate rejects manifests written for an incompatible schema and
// mods with incomplete source descriptors. It runs before any
// filesystem work.
func (m *Manifest) Validate() error {
	if m.Pack.Format == nil {
		return ErrPackFormat
	}
	for i, mod := range m.Mods {
		if err := mod.validate(); err != nil {
			if mod.Name != "" {
				return fmt.Errorf("mod %q: %w", mod.Name, err)
			}
			return fmt.Errorf("mod %d: %w", i, err)
		}
	}
	return nil
}

func (m *Mod) validate() error {
	switch m.Type {
	case TypeCurse:
		if m.ProjectID <= 0 || m.FileID <= 0 {
			return ErrModSource
		}
	case TypeOptifine:
		if m.File == "" {
			return ErrModSource
		}
	case TypeURL:
		if m.URL == "" {
			return ErrModSource
		}
	default:
		return ErrUnknownModType
	}
	return nil
}
