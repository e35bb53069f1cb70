package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestThemeCommand(t *testing.T) {
	for _, kind := range []string{"file", "sqlite"} {
		t.Run(kind, func(t *testing.T) {
			dir := t.TempDir()
			flags := []string{"--storage", kind, "--state-dir", dir}

			out, err := execute(t, append([]string{"theme", "get"}, flags...)...)
			require.NoError(t, err)
			assert.Equal(t, "light\n", out)

			out, err = execute(t, append([]string{"theme", "set", "dark"}, flags...)...)
			require.NoError(t, err)
			assert.Equal(t, "dark\n", out)

			out, err = execute(t, append([]string{"theme", "get"}, flags...)...)
			require.NoError(t, err)
			assert.Equal(t, "dark\n", out, "mode survives a new process")

			out, err = execute(t, append([]string{"theme", "toggle"}, flags...)...)
			require.NoError(t, err)
			assert.Equal(t, "light\n", out)
		})
	}
}

func TestThemeSetRejectsUnknownMode(t *testing.T) {
	_, err := execute(t, "theme", "set", "purple", "--storage", "memory")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purple")
}

func TestInvalidConfigFails(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "palette", args: []string{"--theme", "solarized"}, want: "theme"},
		{name: "storage", args: []string{"--storage", "redis"}, want: "storage"},
		{name: "width", args: []string{"--width", "5"}, want: "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"version"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSnapshotOutput(t *testing.T) {
	out, err := execute(t, "--snapshot", "--storage", "memory", "--width", "100", "--no-color")
	require.NoError(t, err)

	for _, want := range []string{"Home", "About", "Services", "View Project"} {
		assert.Contains(t, out, want)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "folio dev\n", out)
}
