package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/shipstatic/shipstatic/internal/config"
	"github.com/shipstatic/shipstatic/internal/ctxlog"
	"github.com/shipstatic/shipstatic/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire manifest loading process: file discovery,
// parsing, decoding against the schema, translation into the agnostic model
// and validation. Stage order across files follows file order (sorted paths)
// and, within a file, declaration order.
func (l *Loader) Load(ctx context.Context, path string) (*config.Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := fsutil.ResolveConfigFiles(path, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	evalCtx := newEvalContext()
	parser := hclparse.NewParser()
	manifest := &config.Manifest{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest file %s: %w", file, diags)
		}

		for _, project := range root.Projects {
			if manifest.Project != nil {
				return nil, fmt.Errorf("duplicate project block '%s' in %s: a manifest defines exactly one project", project.Name, file)
			}
			manifest.Project = translateProject(project)
		}
		for _, stage := range root.Stages {
			manifest.Stages = append(manifest.Stages, translateStage(stage))
		}
	}

	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	logger.Debug("Manifest loading complete.", "stages", len(manifest.Stages))
	return manifest, nil
}

// translateProject converts the HCL-specific project schema into the agnostic model.
func translateProject(p *projectBlock) *config.Project {
	return &config.Project{
		Name:          p.Name,
		Region:        p.Region,
		SelfMutating:  p.SelfMutating,
		Repository:    p.Repository,
		Branch:        p.Branch,
		ConnectionArn: p.ConnectionArn,
	}
}

// translateStage converts the HCL-specific stage schema into the agnostic model.
func translateStage(s *stageBlock) *config.Stage {
	return &config.Stage{
		Name:           s.Name,
		Testing:        s.Testing,
		TestingRoleArn: s.TestingRoleArn,
		DomainName:     s.DomainName,
		HostedZoneID:   s.HostedZoneID,
		ZoneName:       s.ZoneName,
		CertificateArn: s.CertificateArn,
	}
}

// newEvalContext builds the expression evaluation context for manifest files.
// It exposes the process environment as an `env` object so manifests can
// reference secrets and account-specific ARNs without hardcoding them, e.g.
// `connection_arn = env.CODESTAR_CONNECTION_ARN`.
func newEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
