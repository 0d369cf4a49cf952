package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "julia.tiff")

	cmd := mainCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-w", "4", path, "48x36", "-1.6,1.2", "1.6,-1.2", "-0.8,0.156"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestMainCmd_BadConstant(t *testing.T) {
	var out bytes.Buffer
	cmd := mainCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"julia.png", "48x36", "-1.6,1.2", "1.6,-1.2", "-0.8"})

	require.Error(t, cmd.Execute())
	assert.Contains(t, out.String(), "parsing constant")
}
