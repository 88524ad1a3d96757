package api

const (
	// DownloadFilename is the attachment name offered for extraction results
	DownloadFilename = "extracted_pages.pdf"

	// ContentTypePDF is the MIME type for PDF downloads
	ContentTypePDF = "application/pdf"

	// PDFMagic is the header every PDF file starts with
	PDFMagic = "%PDF"
)
