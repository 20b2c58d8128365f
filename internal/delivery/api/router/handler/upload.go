package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	domainerrors "jobly/internal/domain/errors"
	"jobly/internal/errors"
	"jobly/internal/util"

	"github.com/labstack/echo/v4"
)

// uploadKind describes which files an upload field accepts.
type uploadKind struct {
	name   string
	accept func(contentType string) bool
}

var (
	imageUpload = uploadKind{name: "image", accept: func(ct string) bool { return strings.HasPrefix(ct, "image/") }}
	pdfUpload   = uploadKind{name: "PDF", accept: func(ct string) bool { return ct == "application/pdf" }}
)

// optionalUpload reads a multipart file field. A missing field yields nil content.
func optionalUpload(c echo.Context, field string, kind uploadKind, maxBytes int64) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if errors.IsAny(err, http.ErrMissingFile, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.ErrInvalidUpload.WithDetails(field + ": malformed multipart body")
	}

	return readUpload(fileHeader, field, kind, maxBytes)
}

// requiredUpload is optionalUpload for endpoints whose only purpose is the file.
func requiredUpload(c echo.Context, field string, kind uploadKind, maxBytes int64) ([]byte, error) {
	content, err := optionalUpload(c, field, kind, maxBytes)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, domainerrors.ErrInvalidUpload.WithDetails(field + " is required")
	}

	return content, nil
}

func readUpload(fileHeader *multipart.FileHeader, field string, kind uploadKind, maxBytes int64) ([]byte, error) {
	if fileHeader.Size > maxBytes {
		return nil, domainerrors.ErrInvalidUpload.WithDetails(fmt.Sprintf("%s exceeds %s", field, util.FormatBytes(maxBytes)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if int64(len(content)) > maxBytes {
		return nil, domainerrors.ErrInvalidUpload.WithDetails(fmt.Sprintf("%s exceeds %s", field, util.FormatBytes(maxBytes)))
	}
	if len(content) == 0 {
		return nil, nil
	}

	contentType, _, _ := strings.Cut(fileHeader.Header.Get(echo.HeaderContentType), ";")
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType, _, _ = strings.Cut(http.DetectContentType(content), ";")
	}
	if !kind.accept(strings.TrimSpace(contentType)) {
		return nil, domainerrors.ErrInvalidUpload.WithDetails(fmt.Sprintf("%s must be a %s file", field, kind.name))
	}

	return content, nil
}
