package hosting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCertificate(t *testing.T) {
	t.Parallel()

	const (
		domain  = "www.acme.example"
		certArn = "arn:aws:acm:us-east-1:111111111111:certificate/bbbb"
		zoneID  = "Z0123456789ABCDEFGHIJ"
	)

	tests := []struct {
		name string
		in   DomainInput
		want CertificateKind
	}{
		{"nothing set", DomainInput{}, CertificateNone},
		{"arn and domain", DomainInput{DomainName: domain, CertificateArn: certArn}, CertificateImported},
		{"zone and domain", DomainInput{DomainName: domain, HostedZoneID: zoneID}, CertificateZoneValidated},
		{"domain alone", DomainInput{DomainName: domain}, CertificateNone},
		{"arn alone", DomainInput{CertificateArn: certArn}, CertificateNone},
		{"zone alone", DomainInput{HostedZoneID: zoneID}, CertificateNone},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveCertificate(tc.in)
			assert.Equal(t, tc.want, got.Kind)
		})
	}
}

func TestResolveCertificate_PrefersImportedOverZone(t *testing.T) {
	t.Parallel()

	got := ResolveCertificate(DomainInput{
		DomainName:     "www.acme.example",
		CertificateArn: "arn:aws:acm:us-east-1:111111111111:certificate/bbbb",
		HostedZoneID:   "Z0123456789ABCDEFGHIJ",
	})
	assert.Equal(t, CertificateImported, got.Kind)
	assert.Empty(t, got.HostedZoneID, "imported selection must not carry zone fields")
}

func TestResolveCertificate_ZoneNameDefaultsToDomain(t *testing.T) {
	t.Parallel()

	got := ResolveCertificate(DomainInput{
		DomainName:   "acme.example",
		HostedZoneID: "Z0123456789ABCDEFGHIJ",
	})
	assert.Equal(t, CertificateZoneValidated, got.Kind)
	assert.Equal(t, "acme.example", got.ZoneName)

	explicit := ResolveCertificate(DomainInput{
		DomainName:   "www.acme.example",
		HostedZoneID: "Z0123456789ABCDEFGHIJ",
		ZoneName:     "acme.example",
	})
	assert.Equal(t, "acme.example", explicit.ZoneName)
}

func TestCertificateKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", CertificateNone.String())
	assert.Equal(t, "imported", CertificateImported.String())
	assert.Equal(t, "validated-from-zone", CertificateZoneValidated.String())
}

func TestSiteBucketNaming(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme-site-testing-site", SiteBucketName("acme-site", "Testing"))
	assert.Equal(t, "arn:aws:s3:::acme-site-testing-site", SiteBucketArn("acme-site", "Testing"))
}
