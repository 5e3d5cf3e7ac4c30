package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
	"gallery/internal/domain/entity"
	"gallery/internal/presentation"
	"gallery/pkg/utils"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle handles POST /api/upload multipart requests. Missing text fields
// are stored empty.
func (h *UploadHandler) Handle(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, errors.New("invalid upload form"))
	}
	defer form.RemoveAll() //nolint

	draft := entity.AlbumDraft{
		Title:        formValue(form, presentation.TitleField),
		Description:  formValue(form, presentation.DescriptionField),
		Category:     formValue(form, presentation.CategoryField),
		Tags:         utils.SplitList(formValue(form, presentation.TagsField), ","),
		WatchLink:    formValue(form, presentation.WatchLinkField),
		DownloadLink: formValue(form, presentation.DownloadLinkField),
		ExtraLinks:   utils.SplitList(formValue(form, presentation.ExtraLinksField), "\n"),
	}

	headers := make([]*multipart.FileHeader, 0, len(form.File[presentation.PhotosField]))
	headers = append(headers, form.File[presentation.PhotosField]...)
	headers = append(headers, form.File[presentation.PhotosField+"[]"]...)

	files := make([]entity.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, entity.UploadFile{
			Name: fh.Filename,
			Size: fh.Size,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	album, status, err := h.uploader.Upload(c.Request().Context(), draft, files)
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"album":   album,
	})
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}

	return ""
}
