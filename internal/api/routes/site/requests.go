package site

// UpdateCustomCodeRequest carries the site-wide code snippets. All fields
// are optional; an omitted field is left untouched.
type UpdateCustomCodeRequest struct {
	HeaderCode *string `json:"headerCode,omitempty"`
	BodyCode   *string `json:"bodyCode,omitempty"`
	FooterCode *string `json:"footerCode,omitempty"`
	AdsTxt     *string `json:"adsTxt,omitempty"`
	RobotsTxt  *string `json:"robotsTxt,omitempty"`
}
