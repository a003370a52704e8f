package pack_test

import (
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdeploy/mcdeploy"
	"github.com/mcdeploy/mcdeploy/pack"
	"github.com/mcdeploy/mcdeploy/props"
)

func decode(t *testing.T, src string) (*mcdeploy.Manifest, error) {
	t.Helper()
	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.pack")
	require.False(t, diags.HasErrors(), diags.Error())
	m, diags := pack.Decode(file.Body)
	require.False(t, diags.HasErrors(), diags.Error())
	return m, m.Validate()
}

func TestDecodeFull(t *testing.T) {
	m, err := decode(t, `
pack {
  name   = "Example Pack"
  format = 1
}

server "Lobby" {
  ip = "play.example.com"
}

server "Dev" {
  ip = "dev.example.com"
}

splash {
  title    = "Welcome"
  subtitle = "have fun"
}

mod {
  name      = "modA"
  type      = "curseforge"
  projectID = 238222
  fileID    = 2744150
}

mod {
  url = "https://example.com/a.jar"
}

scripts {
  start  = "./prepare.sh"
  finish = "./notify.sh done"
}
`)
	require.NoError(t, err)

	assert.Equal(t, "Example Pack", m.Pack.Name)
	require.NotNil(t, m.Pack.Format)
	assert.Equal(t, 1.0, *m.Pack.Format)

	require.Len(t, m.Servers, 2)
	assert.Equal(t, mcdeploy.Server{Name: "Lobby", IP: "play.example.com"}, m.Servers[0])
	assert.Equal(t, mcdeploy.Server{Name: "Dev", IP: "dev.example.com"}, m.Servers[1])

	assert.Equal(t, []props.Property{
		{Key: "title", Value: "Welcome"},
		{Key: "subtitle", Value: "have fun"},
	}, m.Splash)

	require.Len(t, m.Mods, 2)
	assert.Equal(t, mcdeploy.TypeCurse, m.Mods[0].Type)
	assert.Equal(t, 238222, m.Mods[0].ProjectID)
	assert.Equal(t, "https://example.com/a.jar", m.Mods[1].URL)

	require.NotNil(t, m.Scripts)
	assert.Equal(t, "./prepare.sh", m.Scripts.Start)
	assert.Equal(t, "./notify.sh done", m.Scripts.Finish)
}

func TestDecodeMissingFormat(t *testing.T) {
	_, err := decode(t, `
pack {
  name = "No Format"
}
`)
	assert.ErrorIs(t, err, mcdeploy.ErrPackFormat)
}

func TestDecodeMissingPackBlock(t *testing.T) {
	_, err := decode(t, `
mod {
  url = "https://example.com/a.jar"
}
`)
	assert.ErrorIs(t, err, mcdeploy.ErrPackFormat)
}

func TestDecodeNonNumericFormat(t *testing.T) {
	_, err := decode(t, `
pack {
  format = "one"
}
`)
	assert.ErrorIs(t, err, mcdeploy.ErrPackFormat)
}

// Splash entries keep manifest source order, not lexical order.
func TestDecodeSplashOrder(t *testing.T) {
	m, err := decode(t, `
pack {
  format = 1
}

splash {
  z = "1"
  a = "2"
  m = "3"
}
`)
	require.NoError(t, err)
	assert.Equal(t, []props.Property{
		{Key: "z", Value: "1"},
		{Key: "a", Value: "2"},
		{Key: "m", Value: "3"},
	}, m.Splash)
}

func TestDecodeSplashConvertsNumbers(t *testing.T) {
	m, err := decode(t, `
pack {
  format = 1
}

splash {
  delay = 20
}
`)
	require.NoError(t, err)
	assert.Equal(t, []props.Property{{Key: "delay", Value: "20"}}, m.Splash)
}

func TestDecodeIncompleteMod(t *testing.T) {
	_, err := decode(t, `
pack {
  format = 1
}

mod {
  type      = "curseforge"
  projectID = 238222
}
`)
	assert.ErrorIs(t, err, mcdeploy.ErrModSource)
}

func TestDecodeUnknownModType(t *testing.T) {
	_, err := decode(t, `
pack {
  format = 1
}

mod {
  name = "weird"
  type = "ftp"
  url  = "ftp://example.com/a.jar"
}
`)
	assert.ErrorIs(t, err, mcdeploy.ErrUnknownModType)
}
