package model

// SocialMedia holds the storefront's social links.
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// Portfolio is the storefront branding and contact settings document.
// All fields are optional; the upstream API merges partial updates.
type Portfolio struct {
	AppTitle        string       `json:"appTitle,omitempty"`
	AppLogo         string       `json:"appLogo,omitempty"`
	AppDescription  string       `json:"appDescription,omitempty"`
	AppTagline      string       `json:"appTagline,omitempty"`
	PrimaryColor    string       `json:"primaryColor,omitempty"`
	SecondaryColor  string       `json:"secondaryColor,omitempty"`
	AccentColor     string       `json:"accentColor,omitempty"`
	Email           string       `json:"email,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	Address         string       `json:"address,omitempty"`
	Website         string       `json:"website,omitempty"`
	SocialMedia     *SocialMedia `json:"socialMedia,omitempty"`
	MetaKeywords    string       `json:"metaKeywords,omitempty"`
	MetaDescription string       `json:"metaDescription,omitempty"`
	CopyrightText   string       `json:"copyrightText,omitempty"`
}
