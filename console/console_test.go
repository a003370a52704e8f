package console

import (
	"bytes"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
)

func TestReportPlain(t *testing.T) {
	var buf bytes.Buffer
	c := Console{Out: &buf}
	c.Report(Info, "added mod %s", "a.jar")
	assert.Equal(t, "added mod a.jar\n", buf.String())
}

func TestReportColored(t *testing.T) {
	// The test environment has no tty; force escape codes on.
	color.ForceOpenColor()

	var buf bytes.Buffer
	c := Console{Out: &buf, Color: true}
	c.Report(Success, "done")
	s := buf.String()
	assert.Contains(t, s, "done")
	assert.Contains(t, s, "\x1b[")
}
