// Package hosting defines the per-stage static site hosting stack: a private
// S3 bucket for built assets, a CloudFront distribution in front of it, an
// optional custom domain with its certificate, and a CloudWatch dashboard for
// the distribution. The stack's outputs (bucket name and ARN, distribution
// id, website URL) are exported for the pipeline's post-deploy steps.
package hosting
