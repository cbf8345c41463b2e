package pipeline

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/pipelines"
	"github.com/aws/jsii-runtime-go"

	"github.com/shipstatic/shipstatic/internal/config"
	"github.com/shipstatic/shipstatic/internal/hosting"
)

// postDeploySteps builds the ordered step list that runs after one stage's
// hosting resources are provisioned: asset sync plus cache invalidation,
// then, for testing stages, the functional test run. All IAM grants are
// scoped to the stage's own bucket; nothing here reaches across stages.
func postDeploySteps(project *config.Project, stage *config.Stage, outputs *hosting.SiteOutputs, source pipelines.IFileSetProducer) []pipelines.Step {
	bucketArn := hosting.SiteBucketArn(project.Name, stage.Name)

	sync := pipelines.NewCodeBuildStep(jsii.String("DeploySite"), &pipelines.CodeBuildStepProps{
		Input: source,
		Commands: jsii.Strings(
			"npm ci",
			"npm run build",
			"./scripts/render-site-config.sh",
			"./scripts/sync-site.sh",
		),
		EnvFromCfnOutputs: &map[string]awscdk.CfnOutput{
			"SITE_BUCKET_NAME":     outputs.BucketName,
			"SITE_BUCKET_ARN":      outputs.BucketArn,
			"SITE_DISTRIBUTION_ID": outputs.DistributionID,
			"SITE_URL":             outputs.WebsiteURL,
		},
		RolePolicyStatements: &[]awsiam.PolicyStatement{
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Actions:   jsii.Strings("s3:GetObject", "s3:PutObject", "s3:DeleteObject", "s3:ListBucket"),
				Resources: jsii.Strings(bucketArn, bucketArn+"/*"),
			}),
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Actions:   jsii.Strings("cloudfront:CreateInvalidation", "cloudfront:GetInvalidation"),
				Resources: jsii.Strings("*"),
			}),
		},
	})

	steps := []pipelines.Step{sync}
	if stage.Testing {
		steps = append(steps, functionalTestStep(stage, outputs, source))
	}
	return steps
}

// functionalTestStep runs the UI test suite against the deployed site. When
// the stage names a testing role, the step may assume exactly that role;
// otherwise it carries no role policy statements at all.
func functionalTestStep(stage *config.Stage, outputs *hosting.SiteOutputs, source pipelines.IFileSetProducer) pipelines.Step {
	props := &pipelines.CodeBuildStepProps{
		Input: source,
		Commands: jsii.Strings(
			"npm ci",
			"npm run test:ui",
		),
		EnvFromCfnOutputs: &map[string]awscdk.CfnOutput{
			"SITE_URL": outputs.WebsiteURL,
		},
	}

	if stage.TestingRoleArn != "" {
		props.RolePolicyStatements = &[]awsiam.PolicyStatement{
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Actions:   jsii.Strings("sts:AssumeRole"),
				Resources: jsii.Strings(stage.TestingRoleArn),
			}),
		}
	}

	return pipelines.NewCodeBuildStep(jsii.String("FunctionalTest"), props)
}
