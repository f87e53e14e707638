package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/txtopo/internal/model"
	"github.com/vk/txtopo/internal/render"
)

// staticLoader hands back a fixed document, bypassing the filesystem.
type staticLoader struct {
	doc *model.Document
	err error
}

func (l *staticLoader) Load(ctx context.Context, path string) (*model.Document, error) {
	return l.doc, l.err
}

func sampleDocument() *model.Document {
	return &model.Document{
		Sagas: []*model.Saga{{
			Name: "order",
			Steps: []*model.SagaStep{
				{ID: "reserve", Compensate: "Release", Retry: 3, TimeoutMs: 5000},
				{ID: "charge", DependsOn: []string{"reserve"}, Retry: 2, TimeoutMs: 3000},
			},
		}},
		Tccs: []*model.Tcc{{
			Name: "payment",
			Participants: []*model.TccParticipant{
				{ID: "account", Order: 1, TryMethod: "t", ConfirmMethod: "c", CancelMethod: "k"},
			},
		}},
	}
}

func newTestApp(t *testing.T, cfg Config, doc *model.Document) (*App, *bytes.Buffer) {
	t.Helper()
	config, err := NewConfig(cfg)
	require.NoError(t, err)
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	return NewApp(out, logs, config, &staticLoader{doc: doc}), out
}

func TestNewConfig_RequiresPathOrServeMode(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ServePort: 8080})
	require.NoError(t, err)
	require.Equal(t, render.FormatASCII, cfg.Format, "format defaults to ascii")

	_, err = NewConfig(Config{DeclPath: "decls/"})
	require.NoError(t, err)
}

func TestRun_RendersAllDeclarations(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{DeclPath: "x"}, sampleDocument())
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Steps:")
	require.Contains(t, out.String(), "reserve ╶╶→ charge (dependency)")
	require.Contains(t, out.String(), "account_try ──→ account_confirm (flow)")
}

func TestRun_ValidateOnly(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{DeclPath: "x", ValidateOnly: true}, sampleDocument())
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "saga 'order': no issues found")
	require.Contains(t, out.String(), "tcc 'payment': no issues found")
	require.NotContains(t, out.String(), "Execution Flow:")
}

func TestRun_PrintsIssuesButStillRenders(t *testing.T) {
	t.Parallel()

	doc := &model.Document{
		Sagas: []*model.Saga{{
			Name: "cyclic",
			Steps: []*model.SagaStep{
				{ID: "a", DependsOn: []string{"b"}},
				{ID: "b", DependsOn: []string{"a"}},
			},
		}},
	}

	a, out := newTestApp(t, Config{DeclPath: "x"}, doc)
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Issues for saga 'cyclic':")
	require.Contains(t, out.String(), "circular dependency")
	require.Contains(t, out.String(), "Execution Flow:", "malformed topologies stay visualizable")
}

func TestRun_Summary(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{DeclPath: "x", Summary: true}, sampleDocument())
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Saga: order")
	require.Contains(t, out.String(), "TCC: payment")
}

func TestRun_EmptyDocument(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, Config{DeclPath: "x"}, &model.Document{})
	require.NoError(t, a.Run(context.Background()))
	require.Empty(t, out.String())
}

func TestNewApp_PanicsOnLoadFailure(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{DeclPath: "x"})
	require.NoError(t, err)

	require.Panics(t, func() {
		NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, &staticLoader{err: context.DeadlineExceeded})
	})
}
