package config

// Manifest is the unified, format-agnostic representation of the entire
// deployment configuration: the project identity, the source connection and
// the ordered list of target stages.
type Manifest struct {
	Project *Project
	Stages  []*Stage
}

// Project describes the delivery pipeline's identity and source trigger.
type Project struct {
	Name          string
	Region        string
	SelfMutating  bool
	Repository    string
	Branch        string
	ConnectionArn string
}

// Stage is one named deployment target environment. Stage order in the
// Manifest is declaration order and is preserved all the way into the
// synthesized pipeline.
type Stage struct {
	Name string

	// Testing enables the post-deploy functional test step for this stage.
	Testing        bool
	TestingRoleArn string

	// Custom domain binding. DomainName must be paired with either
	// CertificateArn or HostedZoneID to take effect; ZoneName defaults to
	// DomainName when a hosted zone is referenced without it.
	DomainName     string
	HostedZoneID   string
	ZoneName       string
	CertificateArn string
}

// StageNames returns the stage names in declaration order.
func (m *Manifest) StageNames() []string {
	names := make([]string, 0, len(m.Stages))
	for _, s := range m.Stages {
		names = append(names, s.Name)
	}
	return names
}
