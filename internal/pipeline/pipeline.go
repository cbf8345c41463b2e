package pipeline

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/pipelines"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/shipstatic/shipstatic/internal/config"
	"github.com/shipstatic/shipstatic/internal/hosting"
)

// Props configures the delivery pipeline stack.
type Props struct {
	awscdk.StackProps
	Manifest *config.Manifest
}

// NewDeliveryPipelineStack builds the pipeline from the manifest. For each
// stage, in declaration order, it instantiates the hosting stage first and
// only then wires that stage's post-deploy steps, which consume the hosting
// outputs. An empty stage list yields a pipeline with a synth step and no
// deployment targets.
func NewDeliveryPipelineStack(scope constructs.Construct, id string, props *Props) awscdk.Stack {
	stack := awscdk.NewStack(scope, &id, &props.StackProps)
	project := props.Manifest.Project

	source := pipelines.CodePipelineSource_Connection(
		jsii.String(project.Repository),
		jsii.String(project.Branch),
		&pipelines.ConnectionSourceOptions{
			ConnectionArn: jsii.String(project.ConnectionArn),
		})

	synth := pipelines.NewShellStep(jsii.String("Synth"), &pipelines.ShellStepProps{
		Input: source,
		Commands: jsii.Strings(
			"npm ci",
			"npm run lint",
			"npm run build",
			"npm run test",
			"npx cdk synth",
		),
	})

	pipeline := pipelines.NewCodePipeline(stack, jsii.String("Pipeline"), &pipelines.CodePipelineProps{
		PipelineName: jsii.String(project.Name),
		Synth:        synth,
		SelfMutation: jsii.Bool(project.SelfMutating),
	})

	for _, stageCfg := range props.Manifest.Stages {
		stage, outputs := hosting.NewSiteStage(stack, &hosting.SiteStageProps{
			StageProps:  awscdk.StageProps{Env: props.StackProps.Env},
			ProjectName: project.Name,
			Stage:       stageCfg,
		})

		post := postDeploySteps(project, stageCfg, outputs, source)
		pipeline.AddStage(stage, &pipelines.AddStageOpts{
			Post: &post,
		})
	}

	return stack
}
