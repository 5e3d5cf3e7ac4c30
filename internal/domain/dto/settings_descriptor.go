package dto

type SettingsDescriptor struct {
	SiteName    string   `json:"siteName"`
	Categories  []string `json:"categories"`
	AdminPinSet bool     `json:"adminPinSet"`
}
