// Package install drives the installation pipeline: manifest
// validation, directory staging, server list and splash generation,
// and the sequential mod fetch loop.
package install

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/console"
	"github.com/mcdeploy/mcdeploy/fetcher"
	"github.com/mcdeploy/mcdeploy/hooks"
	"github.com/mcdeploy/mcdeploy/nbt"
	"github.com/mcdeploy/mcdeploy/props"
)

// Generated paths, relative to the destination root.
const (
	serversName = "servers.dat"
	configDir   = "config"
	splashName  = "splash.properties"
	modsDir     = "mods"
)

const splashHeader = "Splash screen properties"

// Installer runs a single installation. Every run is an independent
// pipeline execution; no state survives between runs.
type Installer struct {
	// Files is the destination tree.
	Files billy.Filesystem

	Fetcher *fetcher.Fetcher
	Hooks   *hooks.Runner
	Console *console.Console

	// Clean resets directories instead of merely ensuring them.
	Clean bool
}

// Run executes the pipeline against m. Steps run strictly in order and
// the first failing step aborts the run; partially written files are
// left in place.
func (ins *Installer) Run(m *mcdeploy.Manifest) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}

	if err := Stage(ins.Files, ".", ins.Clean); err != nil {
		return err
	}

	ins.Hooks.Run(hooks.Start, m.Scripts)

	if len(m.Servers) > 0 {
		if err := ins.writeServers(m.Servers); err != nil {
			return err
		}
		ins.Console.Report(console.Success, "wrote %s", serversName)
	}

	if err := Stage(ins.Files, configDir, ins.Clean); err != nil {
		return err
	}
	if m.Splash != nil {
		if err := ins.writeSplash(m.Splash); err != nil {
			return err
		}
		ins.Console.Report(console.Success, "wrote %s", splashName)
	}

	if err := Stage(ins.Files, modsDir, ins.Clean); err != nil {
		return err
	}
	for _, mod := range m.Mods {
		name, err := ins.Fetcher.Fetch(mod, modsDir)
		if err != nil {
			if mod.Name != "" {
				return fmt.Errorf("fetch mod %q: %w", mod.Name, err)
			}
			return fmt.Errorf("could not fetch a mod: %w", err)
		}
		ins.Console.Report(console.Info, "added mod %s", name)
	}

	ins.Hooks.Run(hooks.Finish, m.Scripts)

	if m.Pack.Name != "" {
		ins.Console.Report(console.Success, "installed pack %q", m.Pack.Name)
	} else {
		ins.Console.Report(console.Success, "installation complete")
	}
	return nil
}

// writeServers projects the manifest server list into the NBT layout
// read by the game client and writes it uncompressed.
func (ins *Installer) writeServers(servers []mcdeploy.Server) error {
	entries := make(nbt.List, len(servers))
	for i, s := range servers {
		entries[i] = nbt.Compound{
			{Name: "ip", Tag: nbt.String(s.IP)},
			{Name: "name", Tag: nbt.String(s.Name)},
		}
	}
	root := nbt.Compound{
		{Name: "servers", Tag: entries},
	}
	data, err := nbt.Marshal("servers", root)
	if err != nil {
		return fmt.Errorf("encode %s: %w", serversName, err)
	}
	if err := util.WriteFile(ins.Files, serversName, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", serversName, err)
	}
	return nil
}

func (ins *Installer) writeSplash(splash []props.Property) error {
	text := props.Render(splash, splashHeader, true)
	fpath := ins.Files.Join(configDir, splashName)
	if err := util.WriteFile(ins.Files, fpath, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", splashName, err)
	}
	return nil
}
