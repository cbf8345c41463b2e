package config

import (
	"errors"
	"fmt"
)

// Validate checks the manifest for structural problems that the synthesizer
// cannot meaningfully proceed with. Partial custom-domain configuration is
// rejected here rather than silently dropped later: a stage naming a domain
// without a certificate source (or the inverse) is almost always a
// misconfigured manifest, not an intent to serve the default CDN domain.
func (m *Manifest) Validate() error {
	if m.Project == nil {
		return errors.New("manifest is missing the project block")
	}
	if m.Project.Name == "" {
		return errors.New("project name must not be empty")
	}
	if m.Project.Repository == "" || m.Project.Branch == "" {
		return fmt.Errorf("project '%s': repository and branch are required", m.Project.Name)
	}
	if m.Project.ConnectionArn == "" {
		return fmt.Errorf("project '%s': connection_arn is required", m.Project.Name)
	}

	seen := make(map[string]struct{}, len(m.Stages))
	for _, stage := range m.Stages {
		if stage.Name == "" {
			return errors.New("stage name must not be empty")
		}
		if _, dup := seen[stage.Name]; dup {
			return fmt.Errorf("duplicate stage name '%s'", stage.Name)
		}
		seen[stage.Name] = struct{}{}

		if err := stage.validateDomain(); err != nil {
			return err
		}
	}
	return nil
}

// validateDomain rejects incomplete certificate/domain pairings. A stage with
// no domain fields at all is valid and serves the distribution's generated
// domain.
func (s *Stage) validateDomain() error {
	hasDomain := s.DomainName != ""
	hasCertSource := s.CertificateArn != "" || s.HostedZoneID != ""

	switch {
	case hasDomain && !hasCertSource:
		return fmt.Errorf("stage '%s': domain_name is set but neither certificate_arn nor hosted_zone_id is", s.Name)
	case !hasDomain && hasCertSource:
		return fmt.Errorf("stage '%s': certificate_arn/hosted_zone_id is set without domain_name", s.Name)
	case s.ZoneName != "" && s.HostedZoneID == "":
		return fmt.Errorf("stage '%s': zone_name is only meaningful together with hosted_zone_id", s.Name)
	}
	return nil
}
