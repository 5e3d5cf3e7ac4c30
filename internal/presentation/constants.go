package presentation

const (
	IDParam      = "id"
	ImageIDParam = "imageId"
	PageQuery    = "page"
	LimitQuery   = "limit"
	ReasonTag    = "X-Reason"
	ForwardedFor = "X-Forwarded-For"
	PhotosField  = "photos"
)

// Upload form fields.
const (
	TitleField        = "title"
	DescriptionField  = "description"
	CategoryField     = "category"
	TagsField         = "tags"
	WatchLinkField    = "watchLink"
	DownloadLinkField = "downloadLink"
	ExtraLinksField   = "extraLinks"
)
