package model

// Settings is the single site-wide settings record.
type Settings struct {
	ID         string   `bson:"_id"`
	AdminPin   string   `bson:"adminPin"`
	SiteName   string   `bson:"siteName"`
	Categories []string `bson:"categories"`
}
