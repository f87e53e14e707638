package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/txtopo/internal/ctxlog"
	"github.com/vk/txtopo/internal/model"
	"github.com/vk/txtopo/internal/server"
	"github.com/vk/txtopo/internal/topology"
)

// Run executes the main application logic: serve mode when a port is
// configured, otherwise one analyze/validate/render pass per declaration.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	if a.config.ServePort > 0 {
		srv := server.New()
		logger.Info("Visualization server starting.", "port", a.config.ServePort)
		return srv.Listen(fmt.Sprintf(":%d", a.config.ServePort))
	}

	if len(a.doc.Sagas) == 0 && len(a.doc.Tccs) == 0 {
		logger.Warn("No saga or tcc declarations found, nothing to do.")
		return nil
	}

	for _, decl := range a.doc.Sagas {
		if err := a.runSaga(ctx, decl); err != nil {
			return err
		}
	}
	for _, decl := range a.doc.Tccs {
		if err := a.runTcc(ctx, decl); err != nil {
			return err
		}
	}

	logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runSaga(ctx context.Context, decl *model.Saga) error {
	logger := ctxlog.FromContext(ctx)

	topo, err := topology.AnalyzeSaga(decl)
	if err != nil {
		return fmt.Errorf("failed to analyze saga %q: %w", decl.Name, err)
	}
	logger.Debug("Saga analyzed.", "saga", topo.SagaName, "steps", len(topo.StepOrder), "layers", len(topo.ExecutionLayers))

	issues := topology.ValidateSaga(topo)
	a.printIssues(fmt.Sprintf("saga '%s'", topo.SagaName), issues)
	if a.config.ValidateOnly {
		return nil
	}

	out, err := topology.RenderSagaTopology(topo, a.config.Format)
	if err != nil {
		return fmt.Errorf("failed to render saga %q: %w", decl.Name, err)
	}
	fmt.Fprintln(a.outW, out)

	if a.config.Summary {
		fmt.Fprintln(a.outW, topology.SagaExecutionSummary(topo))
	}
	return nil
}

func (a *App) runTcc(ctx context.Context, decl *model.Tcc) error {
	logger := ctxlog.FromContext(ctx)

	topo, err := topology.AnalyzeTcc(decl)
	if err != nil {
		return fmt.Errorf("failed to analyze tcc %q: %w", decl.Name, err)
	}
	logger.Debug("TCC analyzed.", "tcc", topo.TccName, "participants", len(topo.ExecutionOrder))

	issues := topology.ValidateTcc(topo)
	a.printIssues(fmt.Sprintf("tcc '%s'", topo.TccName), issues)
	if a.config.ValidateOnly {
		return nil
	}

	out, err := topology.RenderTccTopology(topo, a.config.Format)
	if err != nil {
		return fmt.Errorf("failed to render tcc %q: %w", decl.Name, err)
	}
	fmt.Fprintln(a.outW, out)

	if a.config.Summary {
		fmt.Fprintln(a.outW, topology.TccExecutionSummary(topo))
	}
	return nil
}

func (a *App) printIssues(subject string, issues []topology.Issue) {
	if len(issues) == 0 {
		if a.config.ValidateOnly {
			fmt.Fprintf(a.outW, "%s: no issues found\n", subject)
		}
		return
	}
	fmt.Fprintf(a.outW, "Issues for %s:\n", subject)
	for _, issue := range issues {
		fmt.Fprintf(a.outW, "  - %s\n", issue.Message)
	}
}
