package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/txtopo/internal/render"
)

func TestParse_PositionalPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"decls/order.hcl"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "decls/order.hcl", cfg.DeclPath)
	require.Equal(t, render.FormatASCII, cfg.Format)
}

func TestParse_FlagPathWinsOverPositional(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"-decl", "a.hcl", "b.hcl"}, out)

	require.NoError(t, err)
	require.Equal(t, "a.hcl", cfg.DeclPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_ServeModeNeedsNoPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-serve-port", "8080"}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, 8080, cfg.ServePort)
	require.Empty(t, cfg.DeclPath)
}

func TestParse_Format(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"-format", "mermaid", "x.hcl"}, out)
	require.NoError(t, err)
	require.Equal(t, render.FormatMermaid, cfg.Format)

	_, _, err = Parse([]string{"-format", "yaml", "x.hcl"}, out)
	require.Error(t, err)
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "unsupported diagram format")
}

func TestParse_InvalidLogSettings(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, _, err := Parse([]string{"-log-format", "xml", "x.hcl"}, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-format")

	_, _, err = Parse([]string{"-log-level", "loud", "x.hcl"}, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log-level")
}

func TestParse_ModeFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, _, err := Parse([]string{"-validate", "-summary", "x.hcl"}, out)

	require.NoError(t, err)
	require.True(t, cfg.ValidateOnly)
	require.True(t, cfg.Summary)
}
