package types

import "time"

// Default image references used until the user uploads replacements.
// These are the only image fields stored as URLs; uploads are stored as
// self-contained data URLs.
const (
	DefaultLogoCenter   = "https://upload.wikimedia.org/wikipedia/commons/thumb/c/cb/Emblem_of_the_United_Arab_Emirates.svg/1200px-Emblem_of_the_United_Arab_Emirates.svg.png"
	DefaultCaptchaImage = "https://i.ibb.co/Xz9G1V9/captcha.png"

	defaultPortalEmblem = "https://www.moccae.gov.ae/assets/images/moccae-logo.svg"
	defaultRatingBadge  = "https://www.moccae.gov.ae/assets/images/global-star-rating.png"
	defaultPartnerLogo1 = "https://www.moccae.gov.ae/assets/images/partners/adp.png"
	defaultPartnerLogo2 = "https://www.moccae.gov.ae/assets/images/partners/skgep.png"
	defaultPartnerLogo3 = "https://www.moccae.gov.ae/assets/images/partners/esaad.png"
	defaultFooterLogo1  = "https://www.moccae.gov.ae/assets/images/footer/moccae.png"
	defaultFooterLogo2  = "https://www.moccae.gov.ae/assets/images/footer/uae.png"
	defaultFooterLogo3  = "https://www.moccae.gov.ae/assets/images/footer/beeatna.png"
)

// DefaultBranding returns the canonical branding singleton used when
// nothing has been stored yet. Callers get a fresh copy each time; the
// default is never persisted implicitly.
func DefaultBranding() GlobalBranding {
	return GlobalBranding{
		PortalEmblem:      defaultPortalEmblem,
		PortalRatingBadge: defaultRatingBadge,
		Partners: []Partner{
			{ID: NewID(), Logo: defaultPartnerLogo1, Label: "Abu Dhabi Police"},
			{ID: NewID(), Logo: defaultPartnerLogo2, Label: "SKGEP"},
			{ID: NewID(), Logo: defaultPartnerLogo3, Label: "Esaad"},
		},
		FooterLogo1: defaultFooterLogo1,
		FooterLogo2: defaultFooterLogo2,
		FooterLogo3: defaultFooterLogo3,
	}
}

// NewItem returns an empty consignment line with a fresh id, matching
// what the editor appends when the user adds a row.
func NewItem() CertificateItem {
	return CertificateItem{ID: NewID()}
}

// NewCertificate returns the default certificate state a user starts
// editing from: a generated id, sample shipment data, NIL sentinels for
// the free-text blocks, two sample consignment lines and the full
// default label set.
func NewCertificate() CertificateData {
	return CertificateData{
		ID:                  NewID(),
		CertNo:              "DXB-APH-02415-3286055",
		VerificationCode:    "322-7014",
		FromOrg:             "United Arab Emirates",
		ToOrg:               "Kingdom of Saudi Arabia",
		ExporterNameAddress: "SYTRWL VEGETABLES AND FRUITS TRADING CO - دبي سوق\n- UAE",
		ImporterNameAddress: "مؤسسة بستان دارين للخضار والفواكه - السعودية",
		DistinguishingMarks: "NIL",
		PointOfEntry:        "الدمام",
		EndUsePurpose:       "Consumption",
		MeansOfConveyance:   "By Road 74635",
		ImportPermitNo:      "NIL",
		TotalQuantity:       "22200 kg(s)",
		TotalNoOfPackages:   "3510",
		Items: []CertificateItem{
			{ID: NewID(), ScientificName: "Actinidia deliciosa", CommonName: "Kiwi", Origin: "Chile", PCNo: "2339658", Quantity: "1500 KG", NoOfPackages: "104", CommodityClass: "Fruits and vegetables"},
			{ID: NewID(), ScientificName: "Capsicum spp.", CommonName: "Peppers", Origin: "China", PCNo: "225N670200", Quantity: "1000 KG", NoOfPackages: "100", CommodityClass: "Fruits and vegetables"},
		},
		AdditionalDeclaration: "NIL",
		Disinfestation: DisinfestationData{
			Chemicals:         "NIL",
			DurationTemp:      "NIL",
			TreatmentDate:     "NIL",
			Treatment:         "NIL",
			ConcentrationRate: "NIL",
			AdditionalInfo:    "NIL",
		},
		PlaceOfIssue:     "Customer Happiness Center - Dubai",
		DateOfIssue:      "11-01-2026",
		DateOfInspection: "11-01-2026",
		OfficerName:      "Hassan Saeed Al-Younes",
		CreatedAt:        time.Now().UnixMilli(),
		LogoCenter:       DefaultLogoCenter,
		CaptchaImage:     DefaultCaptchaImage,
		CaptchaValue:     "12345",
		Labels:           DefaultLabels(),
	}
}

// DefaultLabels returns the canonical bilingual wording for the
// certificate document and the public portal. Every slot is populated;
// ReconcileLabels uses this instance to backfill records written under
// an older schema.
func DefaultLabels() CertificateLabels {
	return CertificateLabels{
		TitleEn:   "PHYTOSANITARY CERTIFICATE",
		TitleAr:   "شهادة صحة نباتية",
		HeaderEn1: "UNITED ARAB EMIRATES",
		HeaderEn2: "MINISTRY OF CLIMATE CHANGE\nAND ENVIRONMENT",
		HeaderAr1: "الإمارات العربية المتحدة",
		HeaderAr2: "وزارة التغير المناخي والبيئة",

		CertNoLabelEn:           "Certificate No:",
		CertNoLabelAr:           "رقم الشهادة:",
		VerificationCodeLabelEn: "Verification Code:",
		VerificationCodeLabelAr: "رمز التحقق:",

		FromLabelEn:        "Plant Protection Organization of",
		FromLabelAr:        "منظمة وقاية النباتات في",
		ToLabelEn:          "To Plant Protection Organization of",
		ToLabelAr:          "إلى منظمة وقاية النباتات في",
		ConsignmentTitleEn: "Description of Consignment",
		ConsignmentTitleAr: "وصف الإرسالية",
		ExporterLabelEn:    "Name and Address of Exporter",
		ExporterLabelAr:    "اسم وعنوان المصدر",
		ImporterLabelEn:    "Declared Name and Address of Consignee",
		ImporterLabelAr:    "اسم وعنوان المرسل إليه",
		MarksLabelEn:       "Distinguishing Marks",
		MarksLabelAr:       "العلامات المميزة",
		EntryPointLabelEn:  "Declared Point of Entry",
		EntryPointLabelAr:  "نقطة الدخول المصرح بها",
		PurposeLabelEn:     "End Use (Purpose)",
		PurposeLabelAr:     "الغرض من الاستخدام",
		ConveyanceLabelEn:  "Declared Means of Conveyance",
		ConveyanceLabelAr:  "وسيلة النقل المصرح بها",
		PermitLabelEn:      "Import Permit No.",
		PermitLabelAr:      "رقم إذن الاستيراد",
		TotalQtyLabelEn:    "Total Quantity Declared",
		TotalQtyLabelAr:    "إجمالي الكمية المصرح بها",
		TotalPkgLabelEn:    "Total No. of Packages",
		TotalPkgLabelAr:    "إجمالي عدد الطرود",

		ItemScientificLabelEn: "Botanical Name of Plants",
		ItemScientificLabelAr: "الاسم العلمي للنباتات",
		ItemCommonLabelEn:     "Common Name",
		ItemCommonLabelAr:     "الاسم الشائع",
		ItemOriginLabelEn:     "Place of Origin",
		ItemOriginLabelAr:     "بلد المنشأ",
		ItemPcLabelEn:         "Phytosanitary Certificate No.",
		ItemPcLabelAr:         "رقم شهادة الصحة النباتية",
		ItemQtyLabelEn:        "Quantity",
		ItemQtyLabelAr:        "الكمية",
		ItemPkgLabelEn:        "No. of Packages",
		ItemPkgLabelAr:        "عدد الطرود",
		ItemClassLabelEn:      "Commodity Class",
		ItemClassLabelAr:      "فئة السلعة",

		AnnexNoteEn:  "See attached annex for the full list of consignment items.",
		AnnexNoteAr:  "انظر الملحق المرفق للاطلاع على القائمة الكاملة لبنود الإرسالية.",
		LegalProseAr: "يشهد بأن النباتات أو المنتجات النباتية الموصوفة أعلاه قد تم فحصها وفقاً للإجراءات الرسمية المعتمدة، وأنها تعتبر خالية من الآفات الحجرية، ومطابقة لمتطلبات الصحة النباتية الحالية في البلد المستورد.",
		LegalProseEn: "This is to certify that the plants, plant products or other regulated articles described herein have been inspected according to appropriate official procedures and are considered to be free from quarantine pests, and to conform with the current phytosanitary requirements of the importing country.",

		AdditionalDeclarationTitleEn: "Additional Declaration",
		AdditionalDeclarationTitleAr: "إقرار إضافي",

		TreatmentTitleEn: "Disinfestation and/or Disinfection Treatment",
		TreatmentTitleAr: "معاملة التطهير و/أو إبادة الآفات",
		TreatChemLabelEn: "Chemicals (Active Ingredient)",
		TreatChemLabelAr: "المواد الكيميائية (المادة الفعالة)",
		TreatDurLabelEn:  "Duration and Temperature",
		TreatDurLabelAr:  "المدة ودرجة الحرارة",
		TreatDateLabelEn: "Date",
		TreatDateLabelAr: "التاريخ",
		TreatTypeLabelEn: "Treatment",
		TreatTypeLabelAr: "المعاملة",
		TreatConcLabelEn: "Concentration Rate",
		TreatConcLabelAr: "معدل التركيز",
		TreatInfoLabelEn: "Additional Information",
		TreatInfoLabelAr: "معلومات إضافية",

		AnnexTitleEn: "ANNEX - PHYTOSANITARY CERTIFICATE",
		AnnexTitleAr: "ملحق - شهادة صحة نباتية",

		FooterStampAr:       "الختم الرسمي",
		FooterStampEn:       "Official Stamp",
		FooterPlaceAr:       "مكان الإصدار",
		FooterPlaceEn:       "Place of Issue",
		FooterIssueDateAr:   "تاريخ الإصدار",
		FooterIssueDateEn:   "Date of Issue",
		FooterInspectDateAr: "تاريخ الفحص",
		FooterInspectDateEn: "Date of Inspection",
		FooterOfficerAr:     "اسم الموظف المختص",
		FooterOfficerEn:     "Name of Authorized Officer",

		VerificationNoticeAr: "يمكن التحقق من صحة هذه الشهادة عبر البوابة الرقمية للوزارة باستخدام رقم الشهادة ورمز التحقق.",
		VerificationNoticeEn: "This certificate can be verified through the ministry digital portal using the certificate number and verification code.",
		DisclaimerAr:         "لا تتحمل الوزارة أي مسؤولية مالية تترتب على هذه الشهادة.",
		DisclaimerEn:         "No financial liability with respect to this certificate shall attach to the ministry or to any of its officers or representatives.",
		ApprovedNoticeAr:     "معتمدة إلكترونياً ولا تحتاج إلى توقيع",
		ApprovedNoticeEn:     "Electronically approved, no signature required",

		PortalTitleAr:           "مركز الشهادات والتصاريح الرقمية",
		PortalDescAr:            "خدمة التحقق من صحة الشهادات الصادرة عن الوزارة",
		PortalCertNoLabelAr:     "رقم الشهادة",
		PortalVerifyCodeLabelAr: "رمز التحقق",
		PortalCaptchaLabelAr:    "أدخل الرمز الظاهر في الصورة",
		PortalSubmitBtnAr:       "تحقق",
		PortalClearBtnAr:        "مسح",
		PortalFooterTextAr:      "جميع الحقوق محفوظة لوزارة التغير المناخي والبيئة",
	}
}
