package hosting

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// EdgeErrorRateExpression combines the distribution's edge function error
// counters into a percentage of total requests. Division by zero when the
// distribution receives no requests is left to the metrics evaluator.
const EdgeErrorRateExpression = "(execErrors + validationErrors + limitErrors) / requests * 100"

// DashboardProps configures the per-distribution observability dashboard.
type DashboardProps struct {
	ProjectName    string
	StageName      string
	DistributionID *string
}

// NewSiteDashboard builds the fixed widget set for one distribution:
// aggregate requests, bytes transferred, and the edge error rate.
func NewSiteDashboard(scope constructs.Construct, id string, props *DashboardProps) awscloudwatch.Dashboard {
	dashboard := awscloudwatch.NewDashboard(scope, jsii.String(id), &awscloudwatch.DashboardProps{
		DashboardName: jsii.String(strings.ToLower(fmt.Sprintf("%s-%s-site", props.ProjectName, props.StageName))),
	})

	requests := distributionMetric("Requests", props.DistributionID)

	errorRate := awscloudwatch.NewMathExpression(&awscloudwatch.MathExpressionProps{
		Expression: jsii.String(EdgeErrorRateExpression),
		Label:      jsii.String("Edge error rate (%)"),
		UsingMetrics: &map[string]awscloudwatch.IMetric{
			"execErrors":       distributionMetric("LambdaExecutionError", props.DistributionID),
			"validationErrors": distributionMetric("LambdaValidationError", props.DistributionID),
			"limitErrors":      distributionMetric("LambdaLimitExceededErrors", props.DistributionID),
			"requests":         requests,
		},
	})

	dashboard.AddWidgets(
		awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
			Title: jsii.String("Requests"),
			Left:  &[]awscloudwatch.IMetric{requests},
			Width: jsii.Number(8),
		}),
		awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
			Title: jsii.String("Data transfer"),
			Left: &[]awscloudwatch.IMetric{
				distributionMetric("BytesDownloaded", props.DistributionID),
				distributionMetric("BytesUploaded", props.DistributionID),
			},
			Width: jsii.Number(8),
		}),
		awscloudwatch.NewGraphWidget(&awscloudwatch.GraphWidgetProps{
			Title: jsii.String("Edge error rate"),
			Left:  &[]awscloudwatch.IMetric{errorRate},
			Width: jsii.Number(8),
		}),
	)

	return dashboard
}

// distributionMetric builds a summed CloudFront metric for one distribution.
// CloudFront publishes its metrics in us-east-1 regardless of stack region.
func distributionMetric(metricName string, distributionID *string) awscloudwatch.IMetric {
	return awscloudwatch.NewMetric(&awscloudwatch.MetricProps{
		Namespace:  jsii.String("AWS/CloudFront"),
		MetricName: jsii.String(metricName),
		DimensionsMap: &map[string]*string{
			"DistributionId": distributionID,
			"Region":         jsii.String("Global"),
		},
		Statistic: jsii.String("Sum"),
		Region:    jsii.String("us-east-1"),
	})
}
