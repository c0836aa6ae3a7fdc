package types

import "encoding/json"

// legacy fixed-slot branding shape, kept decodable so records written
// before the partner list existed still load.
type brandingJSON struct {
	PortalEmblem      string    `json:"portalEmblem"`
	PortalRatingBadge string    `json:"portalRatingBadge"`
	Partners          []Partner `json:"partners"`
	PartnerLogo1      string    `json:"partnerLogo1"`
	PartnerLogo2      string    `json:"partnerLogo2"`
	PartnerLogo3      string    `json:"partnerLogo3"`
	FooterLogo1       string    `json:"footerLogo1"`
	FooterLogo2       string    `json:"footerLogo2"`
	FooterLogo3       string    `json:"footerLogo3"`
}

// UnmarshalJSON accepts both observed branding shapes. The canonical
// shape carries a partners list; the legacy shape carried three fixed
// partner-logo slots, which are mapped into list entries with their
// historical labels.
func (b *GlobalBranding) UnmarshalJSON(data []byte) error {
	var raw brandingJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.PortalEmblem = raw.PortalEmblem
	b.PortalRatingBadge = raw.PortalRatingBadge
	b.FooterLogo1 = raw.FooterLogo1
	b.FooterLogo2 = raw.FooterLogo2
	b.FooterLogo3 = raw.FooterLogo3
	b.Partners = raw.Partners
	if len(b.Partners) == 0 {
		legacy := []struct {
			logo  string
			label string
		}{
			{raw.PartnerLogo1, "Abu Dhabi Police"},
			{raw.PartnerLogo2, "SKGEP"},
			{raw.PartnerLogo3, "Esaad"},
		}
		for _, p := range legacy {
			if p.logo == "" {
				continue
			}
			b.Partners = append(b.Partners, Partner{ID: NewID(), Logo: p.logo, Label: p.label})
		}
	}
	return nil
}

// Clone returns a deep copy of the branding record.
func (b GlobalBranding) Clone() GlobalBranding {
	out := b
	if b.Partners != nil {
		out.Partners = make([]Partner, len(b.Partners))
		copy(out.Partners, b.Partners)
	}
	return out
}
