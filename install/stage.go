package install

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Stage brings dir under files to a known state before writes. With
// clean the directory is emptied first; otherwise it is created if
// absent and existing contents are left untouched.
func Stage(files billy.Filesystem, dir string, clean bool) error {
	if clean {
		if err := util.RemoveAll(files, dir); err != nil {
			return fmt.Errorf("remove %q: %w", dir, err)
		}
	}
	if err := files.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %q: %w", dir, err)
	}
	return nil
}
