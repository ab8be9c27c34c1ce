package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"include/SoaStructs.h", "gen/SoaStructs.reflect.h"})
	require.NoError(t, err)

	assert.Equal(t, "include/SoaStructs.h", cfg.InputPath)
	assert.Equal(t, "gen/SoaStructs.reflect.h", cfg.OutputPath)
	assert.Equal(t, "gen/SoaStructs.reflect.h", cfg.OutputFilename())
	assert.Equal(t, "soa", cfg.Namespace)
	assert.Equal(t, "soa_reflect", cfg.ReflectNamespaceName())
	assert.Equal(t, []string{"SoaStructs.h"}, cfg.IncludePaths())
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseArgs_Flags(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"-n", "layout",
		"--reflect-namespace", "layout_reflect",
		"-i", "core/Layout.h",
		"--include", " ",
		"--include", "core/Extra.h",
		"--log-level", "debug",
		"--log-json",
		"in.h", "out.h",
	})
	require.NoError(t, err)

	assert.Equal(t, "layout", cfg.Namespace)
	assert.Equal(t, "layout_reflect", cfg.ReflectNamespace)
	assert.Equal(t, []string{"core/Layout.h", "core/Extra.h"}, cfg.Includes)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
}

func TestParseArgs_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "one argument", args: []string{"in.h"}},
		{name: "three arguments", args: []string{"in.h", "out.h", "extra.h"}},
		{name: "unknown flag", args: []string{"--bogus", "in.h", "out.h"}},
		{name: "empty namespace", args: []string{"--namespace", " ", "in.h", "out.h"}},
		{name: "empty reflect namespace", args: []string{"--reflect-namespace", "", "in.h", "out.h"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(tc.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUsage), "error %v should wrap ErrUsage", err)
		})
	}
}

func TestParseArgs_VersionAndHelpSkipArgumentCount(t *testing.T) {
	cfg, err := ParseArgs([]string{"--version"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)

	cfg, err = ParseArgs([]string{"-h"})
	require.NoError(t, err)
	assert.True(t, cfg.ShowHelp)
}

func TestUsage(t *testing.T) {
	u := Usage()

	assert.Contains(t, u, "usage: gen-reflect [flags] <input SoaStructs.h> <output SoaStructs.reflect.h>")
	assert.Contains(t, u, "--namespace")
	assert.Contains(t, u, "--include")
}
