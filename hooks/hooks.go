// Package hooks launches the optional lifecycle commands declared in
// a manifest's scripts section.
package hooks

import (
	"os"
	"os/exec"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/console"
)

// Hook checkpoint names.
const (
	Start  = "start"
	Finish = "finish"
)

// InstallDirEnv exposes the destination root to hook commands.
const InstallDirEnv = "MCDEPLOY_INSTALL_DIR"

// Runner starts hook commands as detached child processes. A hook is
// fire-and-forget: its exit status is never inspected and a failing
// hook never aborts installation.
type Runner struct {
	// Dir is the destination root passed to hooks via InstallDirEnv.
	Dir string

	// Disabled suppresses all hooks.
	Disabled bool

	Console *console.Console
}

// Run launches the named hook command, if one is configured. It does
// not wait for the command to finish.
func (r *Runner) Run(name string, scripts *mcdeploy.Scripts) {
	if r.Disabled || scripts == nil {
		return
	}
	command := scripts.Command(name)
	if command == "" {
		return
	}

	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Env = append(os.Environ(), InstallDirEnv+"="+r.Dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		r.Console.Report(console.Error, "run %s hook: %v", name, err)
		return
	}
	// Detach so the hook may outlive the installer.
	if err := cmd.Process.Release(); err != nil {
		r.Console.Report(console.Error, "release %s hook: %v", name, err)
	}
}
