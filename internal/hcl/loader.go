// Package hcl loads saga and TCC declarations from .hcl files into the
// format-agnostic model. Declarations are static metadata: every attribute
// is evaluated at load time, there are no deferred expressions.
package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/txtopo/internal/ctxlog"
	"github.com/vk/txtopo/internal/fsutil"
	"github.com/vk/txtopo/internal/model"
)

// Loader reads declaration files from a file or directory path.
type Loader struct{}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under path (or the single file it names) and
// merges all saga and tcc blocks into one Document, in file order.
func (l *Loader) Load(ctx context.Context, path string) (*model.Document, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat declaration path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("Discovered declaration files.", "count", len(files))

	parser := hclparse.NewParser()
	doc := &model.Document{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, block := range root.Sagas {
			saga, err := translateSaga(block)
			if err != nil {
				return nil, fmt.Errorf("saga %q in %s: %w", block.Name, file, err)
			}
			doc.Sagas = append(doc.Sagas, saga)
		}
		for _, block := range root.Tccs {
			doc.Tccs = append(doc.Tccs, translateTcc(block))
		}
	}

	logger.Debug("Declaration loading complete.", "sagas", len(doc.Sagas), "tccs", len(doc.Tccs))
	return doc, nil
}

func translateSaga(block *sagaBlock) (*model.Saga, error) {
	saga := &model.Saga{
		Name:                block.Name,
		CompensationMethods: block.CompensationMethods,
	}
	for _, sb := range block.Steps {
		annotations, err := decodeAnnotations(sb.Annotations)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", sb.ID, err)
		}
		saga.Steps = append(saga.Steps, &model.SagaStep{
			ID:                    sb.ID,
			Method:                sb.Method,
			DependsOn:             sb.DependsOn,
			Compensate:            sb.Compensate,
			Retry:                 sb.Retry,
			TimeoutMs:             sb.TimeoutMs,
			CompensationCritical:  sb.CompensationCritical,
			CompensationRetry:     sb.CompensationRetry,
			CompensationTimeoutMs: sb.CompensationTimeoutMs,
			Annotations:           annotations,
		})
	}
	return saga, nil
}

func translateTcc(block *tccBlock) *model.Tcc {
	tcc := &model.Tcc{Name: block.Name}
	for _, pb := range block.Participants {
		tcc.Participants = append(tcc.Participants, &model.TccParticipant{
			ID:            pb.ID,
			Order:         pb.Order,
			TryMethod:     pb.Try,
			ConfirmMethod: pb.Confirm,
			CancelMethod:  pb.Cancel,

			TryTimeoutMs:     pb.TryTimeoutMs,
			ConfirmTimeoutMs: pb.ConfirmTimeoutMs,
			CancelTimeoutMs:  pb.CancelTimeoutMs,
			TryRetry:         pb.TryRetry,
			ConfirmRetry:     pb.ConfirmRetry,
			CancelRetry:      pb.CancelRetry,
		})
	}
	return tcc
}

// decodeAnnotations evaluates an annotations expression and converts the
// result into a string map. Declarations hold static values only, so the
// expression is evaluated without any variable context.
func decodeAnnotations(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate annotations: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	conv, err := convert.Convert(val, cty.Map(cty.String))
	if err != nil {
		return nil, fmt.Errorf("annotations must be a map of strings: %w", err)
	}

	out := make(map[string]string)
	for it := conv.ElementIterator(); it.Next(); {
		k, v := it.Element()
		out[k.AsString()] = v.AsString()
	}
	return out, nil
}
