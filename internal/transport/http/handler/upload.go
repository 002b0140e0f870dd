package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"terravolt-cms/internal/media"
	"terravolt-cms/internal/transport/http/response"
)

type UploadHandler struct {
	resolver *media.Resolver
}

func NewUploadHandler(resolver *media.Resolver) *UploadHandler {
	return &UploadHandler{resolver: resolver}
}

// UploadImages accepts one or more image files. A single-file request
// surfaces its error directly; a batch keeps going past per-file
// failures and reports one generic error alongside the URLs that made
// it. Callers get no per-file breakdown.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	files, ok := h.formFiles(c)
	if !ok {
		return
	}

	if len(files) == 1 {
		url, err := h.uploadOne(c, files[0], media.KindImage)
		if err != nil {
			response.FromError(c, err)
			return
		}
		response.OK(c, gin.H{"url": url})
		return
	}

	var urls []string
	failed := false
	for _, fh := range files {
		url, err := h.uploadOne(c, fh, media.KindImage)
		if err != nil {
			failed = true
			continue
		}
		urls = append(urls, url)
	}
	out := gin.H{"urls": urls}
	if failed {
		out["error"] = "some files failed to upload"
	}
	response.OK(c, out)
}

func (h *UploadHandler) UploadPDF(c *gin.Context) {
	files, ok := h.formFiles(c)
	if !ok {
		return
	}
	url, err := h.uploadOne(c, files[0], media.KindPDF)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"url": url})
}

func (h *UploadHandler) uploadOne(c *gin.Context, fh *multipart.FileHeader, kind media.Kind) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.resolver.Upload(c.Request.Context(), f, fh.Size, fh.Filename, fh.Header.Get("Content-Type"), kind)
}

func (h *UploadHandler) formFiles(c *gin.Context) ([]*multipart.FileHeader, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return nil, false
	}
	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		response.Fail(c, http.StatusBadRequest, "no files uploaded")
		return nil, false
	}
	return files, true
}
