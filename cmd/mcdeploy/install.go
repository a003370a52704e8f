package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/mcdeploy/mcdeploy/console"
	"github.com/mcdeploy/mcdeploy/fetcher"
	"github.com/mcdeploy/mcdeploy/hooks"
	"github.com/mcdeploy/mcdeploy/install"
)

type InstallCommand struct {
	Dir          string
	Clean        bool
	DisableHooks bool
}

func (*InstallCommand) Name() string     { return "install" }
func (*InstallCommand) Synopsis() string { return "install a modpack" }
func (*InstallCommand) Usage() string {
	return `Usage: mcdeploy install [-d dir] [-clean] [-nohooks] [manifest path]

	Installs the modpack described by the manifest into the target
	directory: writes the server list and splash config and downloads
	all mods, running the optional start/finish hooks around the work.

Flags:
`
}

func (cmd *InstallCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.Dir, "d", ".", "target directory")
	fs.BoolVar(&cmd.Clean, "clean", false, "reset directories instead of merging")
	fs.BoolVar(&cmd.DisableHooks, "nohooks", false, "disable start/finish hooks")
}

func (cmd *InstallCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	paths := fs.Args()
	fpath := defaultManifest
	switch len(paths) {
	case 0:
	case 1:
		fpath = paths[0]
	default:
		log.Printf("install takes a single manifest path")
		return subcommands.ExitUsageError
	}

	m, ok := parseManifest(fpath)
	if !ok {
		return subcommands.ExitFailure
	}

	dir, err := filepath.Abs(cmd.Dir)
	if err != nil {
		log.Printf("resolve %q: %+v", cmd.Dir, err)
		return subcommands.ExitFailure
	}

	out := console.New()
	files := osfs.New(dir)
	c := http.Client{}

	ins := install.Installer{
		Files: files,
		Fetcher: &fetcher.Fetcher{
			Files:  files,
			Client: &c,
		},
		Hooks: &hooks.Runner{
			Dir:      dir,
			Disabled: cmd.DisableHooks,
			Console:  out,
		},
		Console: out,
		Clean:   cmd.Clean,
	}

	if err := ins.Run(m); err != nil {
		out.Report(console.Critical, "install: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
