package types

import "reflect"

// CertificateLabels holds every piece of bilingual wording printed on a
// certificate and its public portal page. It is a closed-set
// configuration record, not business data: the key set is fixed and
// exhaustive, and each certificate carries its own copy so wording can
// be overridden per certificate. A loaded record is reconciled against
// the current key set with ReconcileLabels, so records written under an
// older schema stay readable.
type CertificateLabels struct {
	TitleEn   string `json:"titleEn"`
	TitleAr   string `json:"titleAr"`
	HeaderEn1 string `json:"headerEn1"`
	HeaderEn2 string `json:"headerEn2"`
	HeaderAr1 string `json:"headerAr1"`
	HeaderAr2 string `json:"headerAr2"`

	CertNoLabelEn           string `json:"certNoLabelEn"`
	CertNoLabelAr           string `json:"certNoLabelAr"`
	VerificationCodeLabelEn string `json:"verificationCodeLabelEn"`
	VerificationCodeLabelAr string `json:"verificationCodeLabelAr"`

	FromLabelEn         string `json:"fromLabelEn"`
	FromLabelAr         string `json:"fromLabelAr"`
	ToLabelEn           string `json:"toLabelEn"`
	ToLabelAr           string `json:"toLabelAr"`
	ConsignmentTitleEn  string `json:"consignmentTitleEn"`
	ConsignmentTitleAr  string `json:"consignmentTitleAr"`
	ExporterLabelEn     string `json:"exporterLabelEn"`
	ExporterLabelAr     string `json:"exporterLabelAr"`
	ImporterLabelEn     string `json:"importerLabelEn"`
	ImporterLabelAr     string `json:"importerLabelAr"`
	MarksLabelEn        string `json:"marksLabelEn"`
	MarksLabelAr        string `json:"marksLabelAr"`
	EntryPointLabelEn   string `json:"entryPointLabelEn"`
	EntryPointLabelAr   string `json:"entryPointLabelAr"`
	PurposeLabelEn      string `json:"purposeLabelEn"`
	PurposeLabelAr      string `json:"purposeLabelAr"`
	ConveyanceLabelEn   string `json:"conveyanceLabelEn"`
	ConveyanceLabelAr   string `json:"conveyanceLabelAr"`
	PermitLabelEn       string `json:"permitLabelEn"`
	PermitLabelAr       string `json:"permitLabelAr"`
	TotalQtyLabelEn     string `json:"totalQtyLabelEn"`
	TotalQtyLabelAr     string `json:"totalQtyLabelAr"`
	TotalPkgLabelEn     string `json:"totalPkgLabelEn"`
	TotalPkgLabelAr     string `json:"totalPkgLabelAr"`

	ItemScientificLabelEn string `json:"itemScientificLabelEn"`
	ItemScientificLabelAr string `json:"itemScientificLabelAr"`
	ItemCommonLabelEn     string `json:"itemCommonLabelEn"`
	ItemCommonLabelAr     string `json:"itemCommonLabelAr"`
	ItemOriginLabelEn     string `json:"itemOriginLabelEn"`
	ItemOriginLabelAr     string `json:"itemOriginLabelAr"`
	ItemPcLabelEn         string `json:"itemPcLabelEn"`
	ItemPcLabelAr         string `json:"itemPcLabelAr"`
	ItemQtyLabelEn        string `json:"itemQtyLabelEn"`
	ItemQtyLabelAr        string `json:"itemQtyLabelAr"`
	ItemPkgLabelEn        string `json:"itemPkgLabelEn"`
	ItemPkgLabelAr        string `json:"itemPkgLabelAr"`
	ItemClassLabelEn      string `json:"itemClassLabelEn"`
	ItemClassLabelAr      string `json:"itemClassLabelAr"`

	AnnexNoteEn  string `json:"annexNoteEn"`
	AnnexNoteAr  string `json:"annexNoteAr"`
	LegalProseAr string `json:"legalProseAr"`
	LegalProseEn string `json:"legalProseEn"`

	AdditionalDeclarationTitleEn string `json:"additionalDeclarationTitleEn"`
	AdditionalDeclarationTitleAr string `json:"additionalDeclarationTitleAr"`

	TreatmentTitleEn string `json:"treatmentTitleEn"`
	TreatmentTitleAr string `json:"treatmentTitleAr"`
	TreatChemLabelEn string `json:"treatChemLabelEn"`
	TreatChemLabelAr string `json:"treatChemLabelAr"`
	TreatDurLabelEn  string `json:"treatDurLabelEn"`
	TreatDurLabelAr  string `json:"treatDurLabelAr"`
	TreatDateLabelEn string `json:"treatDateLabelEn"`
	TreatDateLabelAr string `json:"treatDateLabelAr"`
	TreatTypeLabelEn string `json:"treatTypeLabelEn"`
	TreatTypeLabelAr string `json:"treatTypeLabelAr"`
	TreatConcLabelEn string `json:"treatConcLabelEn"`
	TreatConcLabelAr string `json:"treatConcLabelAr"`
	TreatInfoLabelEn string `json:"treatInfoLabelEn"`
	TreatInfoLabelAr string `json:"treatInfoLabelAr"`

	AnnexTitleEn string `json:"annexTitleEn"`
	AnnexTitleAr string `json:"annexTitleAr"`

	FooterStampAr       string `json:"footerStampAr"`
	FooterStampEn       string `json:"footerStampEn"`
	FooterPlaceAr       string `json:"footerPlaceAr"`
	FooterPlaceEn       string `json:"footerPlaceEn"`
	FooterIssueDateAr   string `json:"footerIssueDateAr"`
	FooterIssueDateEn   string `json:"footerIssueDateEn"`
	FooterInspectDateAr string `json:"footerInspectDateAr"`
	FooterInspectDateEn string `json:"footerInspectDateEn"`
	FooterOfficerAr     string `json:"footerOfficerAr"`
	FooterOfficerEn     string `json:"footerOfficerEn"`

	VerificationNoticeAr string `json:"verificationNoticeAr"`
	VerificationNoticeEn string `json:"verificationNoticeEn"`
	DisclaimerAr         string `json:"disclaimerAr"`
	DisclaimerEn         string `json:"disclaimerEn"`
	ApprovedNoticeAr     string `json:"approvedNoticeAr"`
	ApprovedNoticeEn     string `json:"approvedNoticeEn"`

	PortalTitleAr           string `json:"portalTitleAr"`
	PortalDescAr            string `json:"portalDescAr"`
	PortalCertNoLabelAr     string `json:"portalCertNoLabelAr"`
	PortalVerifyCodeLabelAr string `json:"portalVerifyCodeLabelAr"`
	PortalCaptchaLabelAr    string `json:"portalCaptchaLabelAr"`
	PortalSubmitBtnAr       string `json:"portalSubmitBtnAr"`
	PortalClearBtnAr        string `json:"portalClearBtnAr"`
	PortalFooterTextAr      string `json:"portalFooterTextAr"`
}

// ReconcileLabels fills every unset slot in l from the canonical
// defaults and returns the result. A slot is unset when it decodes to
// the empty string, which is how records written under an older label
// schema surface missing keys. Slots already set are left alone, so
// per-certificate wording overrides survive reconciliation.
func ReconcileLabels(l CertificateLabels) CertificateLabels {
	defaults := DefaultLabels()
	lv := reflect.ValueOf(&l).Elem()
	dv := reflect.ValueOf(&defaults).Elem()
	for i := 0; i < lv.NumField(); i++ {
		if lv.Field(i).String() == "" {
			lv.Field(i).SetString(dv.Field(i).String())
		}
	}
	return l
}

// LabelsComplete reports whether every label slot carries a value.
func LabelsComplete(l CertificateLabels) bool {
	lv := reflect.ValueOf(l)
	for i := 0; i < lv.NumField(); i++ {
		if lv.Field(i).String() == "" {
			return false
		}
	}
	return true
}
