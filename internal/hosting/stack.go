package hosting

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// SiteBucketName returns the deterministic asset bucket name for a stage.
// The name must be known before synthesis so the pipeline can scope that
// stage's IAM grants to the bucket's ARN.
func SiteBucketName(projectName, stageName string) string {
	return strings.ToLower(fmt.Sprintf("%s-%s-site", projectName, stageName))
}

// SiteBucketArn returns the ARN of the stage's asset bucket.
func SiteBucketArn(projectName, stageName string) string {
	return "arn:aws:s3:::" + SiteBucketName(projectName, stageName)
}

// SiteProps configures a single stage's hosting stack.
type SiteProps struct {
	awscdk.StackProps
	ProjectName string
	StageName   string
	Domain      CertificateSelection
}

// SiteOutputs are the stack outputs consumed by the same stage's post-deploy
// steps. No other component reads them.
type SiteOutputs struct {
	BucketName     awscdk.CfnOutput
	BucketArn      awscdk.CfnOutput
	DistributionID awscdk.CfnOutput
	WebsiteURL     awscdk.CfnOutput
}

// NewSiteStack builds the hosting stack for one stage: asset bucket, CDN
// distribution, optional domain/certificate binding per props.Domain, alias
// record when the certificate is derived from a hosted zone, and the
// observability dashboard.
func NewSiteStack(scope constructs.Construct, id string, props *SiteProps) (awscdk.Stack, *SiteOutputs) {
	stack := awscdk.NewStack(scope, &id, &props.StackProps)

	bucket := awss3.NewBucket(stack, jsii.String("SiteBucket"), &awss3.BucketProps{
		BucketName:        jsii.String(SiteBucketName(props.ProjectName, props.StageName)),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		EnforceSSL:        jsii.Bool(true),
		RemovalPolicy:     awscdk.RemovalPolicy_DESTROY,
		AutoDeleteObjects: jsii.Bool(true),
	})

	var certificate awscertificatemanager.ICertificate
	var zone awsroute53.IHostedZone
	var domainNames *[]*string

	switch props.Domain.Kind {
	case CertificateImported:
		certificate = awscertificatemanager.Certificate_FromCertificateArn(stack,
			jsii.String("SiteCertificate"),
			jsii.String(props.Domain.CertificateArn))
		domainNames = jsii.Strings(props.Domain.DomainName)
	case CertificateZoneValidated:
		zone = awsroute53.HostedZone_FromHostedZoneAttributes(stack, jsii.String("SiteZone"), &awsroute53.HostedZoneAttributes{
			HostedZoneId: jsii.String(props.Domain.HostedZoneID),
			ZoneName:     jsii.String(props.Domain.ZoneName),
		})
		certificate = awscertificatemanager.NewCertificate(stack, jsii.String("SiteCertificate"), &awscertificatemanager.CertificateProps{
			DomainName: jsii.String(props.Domain.DomainName),
			Validation: awscertificatemanager.CertificateValidation_FromDns(zone),
		})
		domainNames = jsii.Strings(props.Domain.DomainName)
	}

	distribution := awscloudfront.NewDistribution(stack, jsii.String("SiteDistribution"), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               awscloudfrontorigins.S3BucketOrigin_WithOriginAccessControl(bucket, nil),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		},
		DefaultRootObject: jsii.String("index.html"),
		DomainNames:       domainNames,
		Certificate:       certificate,
		// Single-page app: route object misses back to the entrypoint.
		ErrorResponses: &[]*awscloudfront.ErrorResponse{
			{HttpStatus: jsii.Number(403), ResponseHttpStatus: jsii.Number(200), ResponsePagePath: jsii.String("/index.html")},
			{HttpStatus: jsii.Number(404), ResponseHttpStatus: jsii.Number(200), ResponsePagePath: jsii.String("/index.html")},
		},
	})

	if props.Domain.Kind == CertificateZoneValidated {
		awsroute53.NewARecord(stack, jsii.String("SiteAliasRecord"), &awsroute53.ARecordProps{
			Zone:       zone,
			RecordName: jsii.String(props.Domain.DomainName),
			Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(distribution)),
		})
	}

	websiteURL := "https://" + *distribution.DistributionDomainName()
	if props.Domain.Kind != CertificateNone {
		websiteURL = "https://" + props.Domain.DomainName
	}

	NewSiteDashboard(stack, "SiteDashboard", &DashboardProps{
		ProjectName:    props.ProjectName,
		StageName:      props.StageName,
		DistributionID: distribution.DistributionId(),
	})

	outputs := &SiteOutputs{
		BucketName: awscdk.NewCfnOutput(stack, jsii.String("SiteBucketName"), &awscdk.CfnOutputProps{
			Value: bucket.BucketName(),
		}),
		BucketArn: awscdk.NewCfnOutput(stack, jsii.String("SiteBucketArn"), &awscdk.CfnOutputProps{
			Value: bucket.BucketArn(),
		}),
		DistributionID: awscdk.NewCfnOutput(stack, jsii.String("SiteDistributionId"), &awscdk.CfnOutputProps{
			Value: distribution.DistributionId(),
		}),
		WebsiteURL: awscdk.NewCfnOutput(stack, jsii.String("SiteWebsiteUrl"), &awscdk.CfnOutputProps{
			Value: jsii.String(websiteURL),
		}),
	}

	return stack, outputs
}
