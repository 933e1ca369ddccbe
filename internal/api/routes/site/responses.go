package site

type CustomCodeResponse struct {
	HeaderCode string `json:"headerCode"`
	BodyCode   string `json:"bodyCode"`
	FooterCode string `json:"footerCode"`
	AdsTxt     string `json:"adsTxt"`
	RobotsTxt  string `json:"robotsTxt"`
}
