// Package fetcher downloads mods and places them into the destination
// tree under deterministic file names.
package fetcher

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/mcdeploy/mcdeploy"
)

// fetchFunc resolves a mod to its download URL. Resolution may itself
// require network round trips (OptiFine).
type fetchFunc func(*http.Client, mcdeploy.Mod) (string, error)

type Fetcher struct {
	Files  billy.Filesystem
	Client *http.Client
}

// Fetch retrieves the mod payload and writes it to dir, overwriting
// any previous file. It returns the file name it wrote. The name is
// the mod's name when set, otherwise the last path segment of the
// final resolved URL; ".jar" is appended either way.
func (dl *Fetcher) Fetch(m mcdeploy.Mod, dir string) (string, error) {
	fetchURL, err := resolver(m)
	if err != nil {
		return "", err
	}
	rawurl, err := fetchURL(dl.Client, m)
	if err != nil {
		return "", err
	}

	resp, err := dl.Client.Get(rawurl)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", rawurl, err)
	}
	defer func() {
		err := resp.Body.Close()
		if err != nil {
			log.Printf("close %q: %+v", rawurl, err)
		}
	}()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch %q: unexpected status %s", rawurl, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", rawurl, err)
	}

	base := m.Name
	if base == "" {
		// resp.Request points at the last request in the redirect
		// chain, so renames by CDNs are honored.
		base = path.Base(resp.Request.URL.Path)
	}
	name := base + ".jar"

	fpath := dl.Files.Join(dir, name)
	if err := util.WriteFile(dl.Files, fpath, data, 0644); err != nil {
		return "", fmt.Errorf("write %q: %w", fpath, err)
	}
	return name, nil
}

func resolver(m mcdeploy.Mod) (fetchFunc, error) {
	switch m.Type {
	case mcdeploy.TypeCurse:
		return curseFetchURL, nil
	case mcdeploy.TypeOptifine:
		return optifineFetchURL, nil
	case mcdeploy.TypeURL:
		return directFetchURL, nil
	}
	return nil, mcdeploy.ErrUnknownModType
}

func directFetchURL(c *http.Client, m mcdeploy.Mod) (string, error) {
	return m.URL, nil
}
