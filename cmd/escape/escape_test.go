package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := mainCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMainCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandel.bmp")

	_, err := execute("--workers", "3", "--channels", "3", path, "64x48", "-1.25,0.32", "-1,0.20")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestMainCmd_Usage(t *testing.T) {
	out, err := execute("mandel.png", "64x48", "-1.25,0.32")
	require.Error(t, err)
	assert.Contains(t, out, "Usage:")

	out, err = execute("mandel.png", "64,48", "-1.25,0.32", "-1,0.20")
	require.Error(t, err)
	assert.Contains(t, out, "malformed coordinate pair")
	assert.Contains(t, out, "Usage:")
}

func TestMainCmd_WriteFailureSkipsUsage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "mandel.png")

	out, err := execute(path, "8x8", "-2,1", "1,-1")
	require.Error(t, err)
	assert.NotContains(t, out, "Usage:")
}
