package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	pdfPkg "pdf_page_picker/pdf"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleInspect reads an uploaded PDF and reports its page count so the
// form can display it before the user picks pages.
func HandleInspect(c *gin.Context, config *Config) {
	data, header, ok := readPDFUpload(c, config)
	if !ok {
		return
	}

	totalPages, err := pdfPkg.PageCount(data)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"filename":    header.Filename,
		"total_pages": totalPages,
	}).Info("inspected upload")

	c.JSON(http.StatusOK, gin.H{"filename": header.Filename, "total_pages": totalPages})
}

// HandleParseSpec expands a page spec string into the page list it
// selects. The form uses this to preview the selection; extraction
// re-parses on its own, so browser and server never disagree.
func HandleParseSpec(c *gin.Context, config *Config) {
	pages, err := pdfPkg.ParsePageSpec(c.PostForm("pages"))
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages, "count": len(pages)})
}

// HandleExtract builds a new PDF from the selected pages and returns it as
// a download. The selection comes either from a "pages" spec string or
// from "start"/"end" form values, matching the form's two entry modes.
func HandleExtract(c *gin.Context, config *Config) {
	data, header, ok := readPDFUpload(c, config)
	if !ok {
		return
	}

	pages, err := selectedPages(c)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	if len(pages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No pages selected"})
		return
	}

	out, err := pdfPkg.ExtractPages(data, pages)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"filename": header.Filename,
			"pages":    pages,
		}).WithError(err).Warn("extraction failed")
		respondCoreError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"filename": header.Filename,
		"pages":    len(pages),
		"bytes":    len(out),
	}).Info("extraction complete")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DownloadFilename))
	c.Data(http.StatusOK, ContentTypePDF, out)
}

// selectedPages resolves the page selection from the request. A non-empty
// "pages" spec string wins over the start/end fields when both are sent.
func selectedPages(c *gin.Context) ([]int, error) {
	if spec := c.PostForm("pages"); spec != "" {
		return pdfPkg.ParsePageSpec(spec)
	}

	startStr := c.PostForm("start")
	endStr := c.PostForm("end")
	if startStr == "" && endStr == "" {
		return nil, nil
	}

	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil, &pdfPkg.ParseError{Token: startStr, Reason: "start page is not a number"}
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return nil, &pdfPkg.ParseError{Token: endStr, Reason: "end page is not a number"}
	}

	return pdfPkg.PageRange(start, end), nil
}

// readPDFUpload pulls the multipart "pdf" field fully into memory after
// checking the size cap and the %PDF magic. It replies itself and returns
// ok=false when the upload is unusable.
func readPDFUpload(c *gin.Context, config *Config) ([]byte, *multipart.FileHeader, bool) {
	file, header, err := c.Request.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return nil, nil, false
	}
	defer file.Close()

	if header.Size > config.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file size %d exceeds maximum allowed %d bytes", header.Size, config.MaxFileSize),
		})
		return nil, nil, false
	}

	data, err := io.ReadAll(io.LimitReader(file, config.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return nil, nil, false
	}
	if int64(len(data)) > config.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file exceeds maximum allowed %d bytes", config.MaxFileSize),
		})
		return nil, nil, false
	}

	if len(data) < len(PDFMagic) || string(data[:len(PDFMagic)]) != PDFMagic {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid PDF file: header does not match"})
		return nil, nil, false
	}

	return data, header, true
}

// respondCoreError maps core errors onto HTTP statuses. Everything the
// user can fix by retyping or re-uploading is a 400; a password-protected
// document is a 422 since the request itself was well-formed.
func respondCoreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var parseErr *pdfPkg.ParseError
	var decodeErr *pdfPkg.DecodeError
	var encryptedErr *pdfPkg.EncryptedDocumentError
	var rangeErr *pdfPkg.OutOfRangeError

	switch {
	case errors.As(err, &parseErr), errors.As(err, &rangeErr), errors.As(err, &decodeErr):
		status = http.StatusBadRequest
	case errors.As(err, &encryptedErr):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
