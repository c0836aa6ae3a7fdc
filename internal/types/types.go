// Package types provides the shared data model for phytocert: the
// certificate aggregate, its nested records, and the global branding
// singleton. This package exists so store, registry and verify can share
// one canonical schema without import cycles. Types here are plain data
// structures with no storage or rendering dependencies.
package types

// CertificateItem is one consignment line on a certificate. Items are
// order-significant: display order is list order. An item never outlives
// its parent certificate and is never shared between certificates.
type CertificateItem struct {
	ID             string `json:"id"`
	ScientificName string `json:"scientificName"`
	CommonName     string `json:"commonName"`
	Origin         string `json:"origin"`
	PCNo           string `json:"pcNo"`
	Quantity       string `json:"quantity"`       // free text, unit embedded ("1500 KG")
	NoOfPackages   string `json:"noOfPackages"`   // free text
	CommodityClass string `json:"commodityClass"` // free text category
}

// DisinfestationData describes the single treatment event on a
// certificate. It is a fixed-shape record, always present, defaulted to
// the "NIL" sentinel and mutated in place.
type DisinfestationData struct {
	Chemicals         string `json:"chemicals"`
	DurationTemp      string `json:"durationTemp"`
	TreatmentDate     string `json:"treatmentDate"`
	Treatment         string `json:"treatment"`
	ConcentrationRate string `json:"concentrationRate"`
	AdditionalInfo    string `json:"additionalInfo"`
}

// Partner is one entry in the branding partner strip.
type Partner struct {
	ID    string `json:"id"`
	Logo  string `json:"logo"`
	Label string `json:"label"`
}

// GlobalBranding is the portal-wide branding singleton shared by every
// certificate's public view. The canonical shape carries a dynamic
// partner list; the legacy three-slot shape is mapped into list form on
// load (see ReconcileBranding).
type GlobalBranding struct {
	PortalEmblem      string    `json:"portalEmblem"`
	PortalRatingBadge string    `json:"portalRatingBadge"`
	Partners          []Partner `json:"partners"`
	FooterLogo1       string    `json:"footerLogo1"`
	FooterLogo2       string    `json:"footerLogo2"`
	FooterLogo3       string    `json:"footerLogo3"`
}

// CertificateData is the aggregate root and the unit of save/lookup.
// CertNo and VerificationCode are free text and not enforced unique;
// uniqueness is a data-entry convention only. Image fields hold
// self-contained encoded blobs (data URLs), except for the hard-coded
// defaults which are plain URLs.
type CertificateData struct {
	ID                    string             `json:"id"`
	CertNo                string             `json:"certNo"`
	VerificationCode      string             `json:"verificationCode"`
	FromOrg               string             `json:"fromOrg"`
	ToOrg                 string             `json:"toOrg"`
	ExporterNameAddress   string             `json:"exporterNameAddress"`
	ImporterNameAddress   string             `json:"importerNameAddress"`
	DistinguishingMarks   string             `json:"distinguishingMarks"`
	PointOfEntry          string             `json:"pointOfEntry"`
	EndUsePurpose         string             `json:"endUsePurpose"`
	MeansOfConveyance     string             `json:"meansOfConveyance"`
	ImportPermitNo        string             `json:"importPermitNo"`
	TotalQuantity         string             `json:"totalQuantity"`
	TotalNoOfPackages     string             `json:"totalNoOfPackages"`
	Items                 []CertificateItem  `json:"items"`
	AdditionalDeclaration string             `json:"additionalDeclaration"`
	Disinfestation        DisinfestationData `json:"disinfestation"`
	PlaceOfIssue          string             `json:"placeOfIssue"`
	DateOfIssue           string             `json:"dateOfIssue"`
	DateOfInspection      string             `json:"dateOfInspection"`
	OfficerName           string             `json:"officerName"`
	CreatedAt             int64              `json:"createdAt"` // Unix milliseconds
	LogoCenter            string             `json:"logoCenter,omitempty"`
	OfficialStamp         string             `json:"officialStamp,omitempty"`
	OfficerSignature      string             `json:"officerSignature,omitempty"`
	CaptchaImage          string             `json:"captchaImage,omitempty"`
	CaptchaValue          string             `json:"captchaValue,omitempty"`
	Labels                CertificateLabels  `json:"labels"`
}

// Clone returns a deep copy of the certificate. The items slice is
// copied so template-derived certificates never share line items.
func (c CertificateData) Clone() CertificateData {
	out := c
	if c.Items != nil {
		out.Items = make([]CertificateItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	return out
}

// RemoveItem deletes the item with the given id from the items list,
// preserving the order of the remaining items. Unknown ids are a no-op.
func (c *CertificateData) RemoveItem(itemID string) {
	items := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	c.Items = items
}

// FindItem returns the item with the given id, or nil.
func (c *CertificateData) FindItem(itemID string) *CertificateItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}
