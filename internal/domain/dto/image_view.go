package dto

// ImageView is one image flattened together with its album's metadata.
type ImageView struct {
	ImageID          string   `json:"imageId"          bson:"imageId"`
	URL              string   `json:"url"              bson:"url"`
	PublicID         string   `json:"public_id"        bson:"public_id"`
	ImageLikesCount  int      `json:"imageLikesCount"  bson:"imageLikesCount"`
	ImageViews       int64    `json:"imageViews"       bson:"imageViews"`
	AlbumID          string   `json:"albumId"          bson:"albumId"`
	AlbumTitle       string   `json:"albumTitle"       bson:"albumTitle"`
	AlbumDescription string   `json:"albumDescription" bson:"albumDescription"`
	AlbumCategory    string   `json:"albumCategory"    bson:"albumCategory"`
	AlbumLikesCount  int      `json:"albumLikesCount"  bson:"albumLikesCount"`
	AlbumViews       int64    `json:"albumViews"       bson:"albumViews"`
	WatchLink        string   `json:"watchLink"        bson:"watchLink"`
	DownloadLink     string   `json:"downloadLink"     bson:"downloadLink"`
	ExtraLinks       []string `json:"extraLinks"       bson:"extraLinks"`
	Index            int      `json:"index"            bson:"index"`
}

// ImagePage is a slice of the feed plus the numbers a client needs to keep paging.
type ImagePage struct {
	Images     []ImageView `json:"images"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int         `json:"total"`
	TotalPages int         `json:"totalPages"`
}
