package hcl

import "github.com/hashicorp/hcl/v2"

// projectBlock represents a `project` block from a manifest file.
type projectBlock struct {
	Name          string `hcl:"name,label"`
	Region        string `hcl:"region,optional"`
	SelfMutating  bool   `hcl:"self_mutating,optional"`
	Repository    string `hcl:"repository"`
	Branch        string `hcl:"branch"`
	ConnectionArn string `hcl:"connection_arn"`
}

// stageBlock represents a `stage` block from a manifest file. Block order in
// the file is deployment order.
type stageBlock struct {
	Name           string `hcl:"name,label"`
	Testing        bool   `hcl:"testing,optional"`
	TestingRoleArn string `hcl:"testing_role_arn,optional"`
	DomainName     string `hcl:"domain_name,optional"`
	HostedZoneID   string `hcl:"hosted_zone_id,optional"`
	ZoneName       string `hcl:"zone_name,optional"`
	CertificateArn string `hcl:"certificate_arn,optional"`
}

// fileRoot is a struct used to decode all recognized top-level blocks from any
// manifest file.
type fileRoot struct {
	Projects []*projectBlock `hcl:"project,block"`
	Stages   []*stageBlock   `hcl:"stage,block"`
	Remain   hcl.Body        `hcl:",remain"`
}
