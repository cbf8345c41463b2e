package hosting

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"
)

func synthSite(t *testing.T, domain CertificateSelection) assertions.Template {
	t.Helper()

	app := awscdk.NewApp(nil)
	stack, outputs := NewSiteStack(app, "TestSite", &SiteProps{
		ProjectName: "acme-site",
		StageName:   "Testing",
		Domain:      domain,
	})
	require.NotNil(t, outputs)

	return assertions.Template_FromStack(stack, nil)
}

func TestSiteStack_DefaultDomain(t *testing.T) {
	template := synthSite(t, CertificateSelection{Kind: CertificateNone})

	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"BucketName": "acme-site-testing-site",
		"BucketEncryption": assertions.Match_ObjectLike(&map[string]interface{}{
			"ServerSideEncryptionConfiguration": assertions.Match_AnyValue(),
		}),
		"PublicAccessBlockConfiguration": assertions.Match_ObjectLike(&map[string]interface{}{
			"BlockPublicAcls": true,
		}),
	})

	// No custom domain: the distribution serves its generated domain only.
	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Aliases":           assertions.Match_Absent(),
			"DefaultRootObject": "index.html",
		}),
	})
	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(0))

	template.ResourceCountIs(jsii.String("AWS::CloudWatch::Dashboard"), jsii.Number(1))

	// The outputs the pipeline's post-deploy steps consume.
	for _, name := range []string{"SiteBucketName", "SiteBucketArn", "SiteDistributionId", "SiteWebsiteUrl"} {
		template.HasOutput(jsii.String(name), map[string]interface{}{})
	}
}

func TestSiteStack_ImportedCertificate(t *testing.T) {
	const certArn = "arn:aws:acm:us-east-1:111111111111:certificate/bbbb"

	template := synthSite(t, CertificateSelection{
		Kind:           CertificateImported,
		DomainName:     "www.acme.example",
		CertificateArn: certArn,
	})

	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Aliases": []interface{}{"www.acme.example"},
			"ViewerCertificate": assertions.Match_ObjectLike(&map[string]interface{}{
				"AcmCertificateArn": certArn,
			}),
		}),
	})

	// Imported certificates are referenced, never created, and need no DNS.
	template.ResourceCountIs(jsii.String("AWS::CertificateManager::Certificate"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(0))
}

func TestSiteStack_ZoneValidatedCertificate(t *testing.T) {
	template := synthSite(t, CertificateSelection{
		Kind:         CertificateZoneValidated,
		DomainName:   "www.acme.example",
		HostedZoneID: "Z0123456789ABCDEFGHIJ",
		ZoneName:     "acme.example",
	})

	template.HasResourceProperties(jsii.String("AWS::CertificateManager::Certificate"), map[string]interface{}{
		"DomainName":       "www.acme.example",
		"ValidationMethod": "DNS",
	})

	template.HasResourceProperties(jsii.String("AWS::Route53::RecordSet"), map[string]interface{}{
		"Name": "www.acme.example.",
		"Type": "A",
	})

	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Aliases": []interface{}{"www.acme.example"},
		}),
	})
}
