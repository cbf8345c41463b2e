package app

import (
	"context"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/shipstatic/shipstatic/internal/pipeline"
)

// Run assembles the full construct graph from the loaded manifest and
// synthesizes it into a cloud assembly. The graph is built once, top to
// bottom; the CDK toolkit (or CloudFormation behind it) does the actual
// provisioning.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	var appProps *awscdk.AppProps
	if a.config.OutDir != "" {
		appProps = &awscdk.AppProps{Outdir: jsii.String(a.config.OutDir)}
	}
	cdkApp := awscdk.NewApp(appProps)

	stackProps := awscdk.StackProps{}
	if a.manifest.Project.Region != "" {
		stackProps.Env = &awscdk.Environment{Region: jsii.String(a.manifest.Project.Region)}
	}

	pipeline.NewDeliveryPipelineStack(cdkApp, "DeliveryPipeline", &pipeline.Props{
		StackProps: stackProps,
		Manifest:   a.manifest,
	})
	a.logger.Debug("Delivery pipeline stack constructed.", "stages", a.manifest.StageNames())

	if len(a.manifest.Stages) == 0 {
		a.logger.Warn("No stages found in manifest, the pipeline has no deployment targets.")
	}

	assembly := cdkApp.Synth(nil)
	a.logger.Info("Cloud assembly synthesized.", "directory", *assembly.Directory())

	a.logger.Debug("App.Run method finished.")
	return nil
}
