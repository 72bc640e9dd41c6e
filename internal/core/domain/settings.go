package domain

// Settings holds user-facing application preferences. Pure configuration,
// consumed by currency formatting and display.
type Settings struct {
	Currency      string `json:"currency"`
	Theme         string `json:"theme"`
	CompanyName   string `json:"companyName"`
	Notifications bool   `json:"notifications"`
}

// SettingsPatch is a partial update to Settings; nil fields are left
// untouched by the merge.
type SettingsPatch struct {
	Currency      *string `json:"currency,omitempty"`
	Theme         *string `json:"theme,omitempty"`
	CompanyName   *string `json:"companyName,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
}

// Apply shallow-merges the patch into s.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.CompanyName != nil {
		s.CompanyName = *p.CompanyName
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	return s
}
