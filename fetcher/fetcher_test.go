package fetcher_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/fetcher"
)

func newServer(t *testing.T, h http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchNamed(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("payload"))
	}))

	files := memfs.New()
	dl := fetcher.Fetcher{Files: files, Client: srv.Client()}

	m := mcdeploy.Mod{Name: "modA", URL: srv.URL + "/y/z.jar"}
	name, err := dl.Fetch(m, "mods")
	require.NoError(t, err)
	assert.Equal(t, "modA.jar", name)

	data, err := util.ReadFile(files, "mods/modA.jar")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

// Without a name override the file name falls back to the last path
// segment with ".jar" appended, even if the segment already carries an
// extension.
func TestFetchFallbackName(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("z"))
	}))

	files := memfs.New()
	dl := fetcher.Fetcher{Files: files, Client: srv.Client()}

	m := mcdeploy.Mod{URL: srv.URL + "/y/z.jar"}
	name, err := dl.Fetch(m, "mods")
	require.NoError(t, err)
	assert.Equal(t, "z.jar.jar", name)

	_, err = files.Stat("mods/z.jar.jar")
	assert.NoError(t, err)
}

// The fallback name must come from the final resolved location, not
// the originally requested URL.
func TestFetchFallbackNameAfterRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/files/renamed.jar", http.StatusFound)
	})
	mux.HandleFunc("/files/renamed.jar", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("r"))
	})
	srv := newServer(t, mux)

	files := memfs.New()
	dl := fetcher.Fetcher{Files: files, Client: srv.Client()}

	name, err := dl.Fetch(mcdeploy.Mod{URL: srv.URL + "/old"}, "mods")
	require.NoError(t, err)
	assert.Equal(t, "renamed.jar.jar", name)
}

func TestFetchOverwrites(t *testing.T) {
	srv := newServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("new"))
	}))

	files := memfs.New()
	require.NoError(t, util.WriteFile(files, "mods/modA.jar", []byte("old"), 0644))

	dl := fetcher.Fetcher{Files: files, Client: srv.Client()}
	_, err := dl.Fetch(mcdeploy.Mod{Name: "modA", URL: srv.URL + "/a"}, "mods")
	require.NoError(t, err)

	data, err := util.ReadFile(files, "mods/modA.jar")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

func TestFetchBadStatus(t *testing.T) {
	srv := newServer(t, http.NotFoundHandler())

	dl := fetcher.Fetcher{Files: memfs.New(), Client: srv.Client()}
	_, err := dl.Fetch(mcdeploy.Mod{URL: srv.URL + "/gone.jar"}, "mods")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchUnknownType(t *testing.T) {
	dl := fetcher.Fetcher{Files: memfs.New(), Client: http.DefaultClient}
	_, err := dl.Fetch(mcdeploy.Mod{Type: "ftp"}, "mods")
	assert.ErrorIs(t, err, mcdeploy.ErrUnknownModType)
}
