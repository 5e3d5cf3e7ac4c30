package usecase

import "gallery/internal/domain/model"

type UploaderConfig struct {
	MaxPhotos   int `yaml:"max_photos"`
	Concurrency int `yaml:"concurrency"`
}

// SettingsDefault seeds the settings record the first time it is read.
type SettingsDefault struct {
	SiteName string `yaml:"site_name"`
	AdminPin string `yaml:"admin_pin"`
}

func (d SettingsDefault) model() model.Settings {
	return model.Settings{
		AdminPin:   d.AdminPin,
		SiteName:   d.SiteName,
		Categories: []string{},
	}
}
