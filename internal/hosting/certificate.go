package hosting

// CertificateKind discriminates the certificate strategies a stage can use.
type CertificateKind int

const (
	// CertificateNone attaches no custom domain; the distribution serves its
	// default generated domain only.
	CertificateNone CertificateKind = iota
	// CertificateImported references an existing ACM certificate by ARN.
	CertificateImported
	// CertificateZoneValidated requests a DNS-validated certificate against a
	// Route53 hosted zone.
	CertificateZoneValidated
)

// String returns the kind's name for logs and test output.
func (k CertificateKind) String() string {
	switch k {
	case CertificateImported:
		return "imported"
	case CertificateZoneValidated:
		return "validated-from-zone"
	default:
		return "none"
	}
}

// DomainInput carries a stage's optional custom-domain fields.
type DomainInput struct {
	DomainName     string
	CertificateArn string
	HostedZoneID   string
	ZoneName       string
}

// CertificateSelection is the resolved certificate strategy for one stage.
// Exactly the fields relevant to its Kind are populated.
type CertificateSelection struct {
	Kind           CertificateKind
	DomainName     string
	CertificateArn string
	HostedZoneID   string
	ZoneName       string
}

// ResolveCertificate maps a stage's optional domain fields onto a certificate
// strategy. An imported certificate (ARN plus domain) wins over a
// zone-derived one (hosted zone plus domain); any incomplete pairing resolves
// to CertificateNone without error. Manifest validation rejects incomplete
// pairings up front, so the silent fallback here is only reachable from
// hand-built inputs.
func ResolveCertificate(in DomainInput) CertificateSelection {
	switch {
	case in.CertificateArn != "" && in.DomainName != "":
		return CertificateSelection{
			Kind:           CertificateImported,
			DomainName:     in.DomainName,
			CertificateArn: in.CertificateArn,
		}
	case in.HostedZoneID != "" && in.DomainName != "":
		zoneName := in.ZoneName
		if zoneName == "" {
			zoneName = in.DomainName
		}
		return CertificateSelection{
			Kind:         CertificateZoneValidated,
			DomainName:   in.DomainName,
			HostedZoneID: in.HostedZoneID,
			ZoneName:     zoneName,
		}
	default:
		return CertificateSelection{Kind: CertificateNone}
	}
}
