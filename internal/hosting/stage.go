package hosting

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/shipstatic/shipstatic/internal/config"
)

// SiteStageProps configures one deployable pipeline stage.
type SiteStageProps struct {
	awscdk.StageProps
	ProjectName string
	Stage       *config.Stage
}

// NewSiteStage wraps a stage's hosting stack in a CDK Stage so the pipeline
// can deploy it as one unit. The stage's certificate strategy is resolved
// here, from the manifest fields, before the stack is built.
func NewSiteStage(scope constructs.Construct, props *SiteStageProps) (awscdk.Stage, *SiteOutputs) {
	stage := awscdk.NewStage(scope, jsii.String(props.Stage.Name), &props.StageProps)

	domain := ResolveCertificate(DomainInput{
		DomainName:     props.Stage.DomainName,
		CertificateArn: props.Stage.CertificateArn,
		HostedZoneID:   props.Stage.HostedZoneID,
		ZoneName:       props.Stage.ZoneName,
	})

	_, outputs := NewSiteStack(stage, "Site", &SiteProps{
		ProjectName: props.ProjectName,
		StageName:   props.Stage.Name,
		Domain:      domain,
	})

	return stage, outputs
}
