package hooks_test

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/console"
	"github.com/mcdeploy/mcdeploy/hooks"
)

func quiet() *console.Console {
	return &console.Console{Out: io.Discard}
}

func TestRunNoScripts(t *testing.T) {
	r := hooks.Runner{Dir: t.TempDir(), Console: quiet()}
	r.Run(hooks.Start, nil)
}

func TestRunEmptyCommand(t *testing.T) {
	r := hooks.Runner{Dir: t.TempDir(), Console: quiet()}
	r.Run(hooks.Finish, &mcdeploy.Scripts{Start: "true"})
}

func TestRunDisabled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no /bin/sh")
	}
	dir := t.TempDir()
	r := hooks.Runner{Dir: dir, Disabled: true, Console: quiet()}
	r.Run(hooks.Start, &mcdeploy.Scripts{
		Start: `touch "$MCDEPLOY_INSTALL_DIR/started"`,
	})

	time.Sleep(200 * time.Millisecond)
	_, err := os.Stat(filepath.Join(dir, "started"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunStartsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no /bin/sh")
	}
	dir := t.TempDir()
	r := hooks.Runner{Dir: dir, Console: quiet()}
	r.Run(hooks.Start, &mcdeploy.Scripts{
		Start: `touch "$MCDEPLOY_INSTALL_DIR/started"`,
	})

	// Run does not wait, so poll for the side effect.
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, err := os.Stat(filepath.Join(dir, "started")); err == nil {
			return
		}
		require.True(t, time.Now().Before(deadline), "hook never ran")
		time.Sleep(10 * time.Millisecond)
	}
}
