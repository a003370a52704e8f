package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptifineURL(t *testing.T) {
	want := "https://optifine.net/adloadx?f=OptiFine_1.12.2_HD_U_F5.jar"
	assert.Equal(t, want, optifineURL("OptiFine_1.12.2_HD_U_F5.jar"))
}
