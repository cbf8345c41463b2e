package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManifest() *Manifest {
	return &Manifest{
		Project: &Project{
			Name:          "acme-site",
			Region:        "eu-central-1",
			Repository:    "acme/acme-site",
			Branch:        "main",
			ConnectionArn: "arn:aws:codestar-connections:eu-central-1:111111111111:connection/aaaa",
		},
		Stages: []*Stage{
			{Name: "Testing", Testing: true},
			{Name: "Production"},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validManifest().Validate())
}

func TestValidate_EmptyStageListIsValid(t *testing.T) {
	t.Parallel()

	// A manifest without stages produces an inert pipeline, not an error.
	m := validManifest()
	m.Stages = nil
	require.NoError(t, m.Validate())
}

func TestValidate_ProjectErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing project block", func(t *testing.T) {
		m := validManifest()
		m.Project = nil
		assert.ErrorContains(t, m.Validate(), "missing the project block")
	})

	t.Run("empty name", func(t *testing.T) {
		m := validManifest()
		m.Project.Name = ""
		assert.ErrorContains(t, m.Validate(), "name must not be empty")
	})

	t.Run("missing branch", func(t *testing.T) {
		m := validManifest()
		m.Project.Branch = ""
		assert.ErrorContains(t, m.Validate(), "repository and branch are required")
	})

	t.Run("missing connection", func(t *testing.T) {
		m := validManifest()
		m.Project.ConnectionArn = ""
		assert.ErrorContains(t, m.Validate(), "connection_arn is required")
	})
}

func TestValidate_StageErrors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate stage name", func(t *testing.T) {
		m := validManifest()
		m.Stages = append(m.Stages, &Stage{Name: "Testing"})
		assert.ErrorContains(t, m.Validate(), "duplicate stage name 'Testing'")
	})

	t.Run("domain without certificate source", func(t *testing.T) {
		m := validManifest()
		m.Stages[1].DomainName = "www.acme.example"
		assert.ErrorContains(t, m.Validate(), "neither certificate_arn nor hosted_zone_id")
	})

	t.Run("certificate without domain", func(t *testing.T) {
		m := validManifest()
		m.Stages[1].CertificateArn = "arn:aws:acm:us-east-1:111111111111:certificate/bbbb"
		assert.ErrorContains(t, m.Validate(), "without domain_name")
	})

	t.Run("zone without domain", func(t *testing.T) {
		m := validManifest()
		m.Stages[1].HostedZoneID = "Z0123456789ABCDEFGHIJ"
		assert.ErrorContains(t, m.Validate(), "without domain_name")
	})

	t.Run("zone name without zone id", func(t *testing.T) {
		m := validManifest()
		m.Stages[1].ZoneName = "acme.example"
		assert.ErrorContains(t, m.Validate(), "zone_name is only meaningful")
	})
}

func TestStageNames_PreservesDeclarationOrder(t *testing.T) {
	t.Parallel()

	m := &Manifest{Stages: []*Stage{
		{Name: "Alpha"}, {Name: "Beta"}, {Name: "Gamma"},
	}}
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, m.StageNames())
}
