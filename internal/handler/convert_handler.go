// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-word-converter/internal/domain"
	"pdf-word-converter/internal/service"
	apperrors "pdf-word-converter/pkg/errors"
)

// ConvertHandler handles conversion-related HTTP requests
type ConvertHandler struct {
	conversionService *service.ConversionService
	resolver          domain.FileResolver
	maxFileSize       int64
	logger            domain.Logger
}

// NewConvertHandler creates a new conversion handler
func NewConvertHandler(conversionService *service.ConversionService, resolver domain.FileResolver, maxFileSize int64, logger domain.Logger) *ConvertHandler {
	return &ConvertHandler{
		conversionService: conversionService,
		resolver:          resolver,
		maxFileSize:       maxFileSize,
		logger:            logger,
	}
}

// ConvertPDFToWord handles the multipart upload and runs the pipeline.
// The file is fully buffered before the pipeline starts; no streaming.
func (h *ConvertHandler) ConvertPDFToWord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		// MaxBytesReader trips before the form parses, so the size cap
		// surfaces here rather than on header.Size.
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeAppError(w, apperrors.NewTooLargeError("File too large."))
			return
		}
		writeAppError(w, apperrors.NewValidationError("File is required"))
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "documento.pdf"
	}

	if err := validatePDFUpload(originalName, header.Header.Get("Content-Type")); err != nil {
		writeAppError(w, apperrors.NewValidationError("Unsupported file type. Only PDF (.pdf) uploads are accepted."))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "file", originalName)
		writeAppError(w, apperrors.NewValidationError("Could not read uploaded file"))
		return
	}

	result, err := h.conversionService.Convert(r.Context(), domain.SourceDocument{
		Bytes:     data,
		Filename:  originalName,
		MediaType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		appErr := classifyConversionError(err)
		if apperrors.IsType(appErr, apperrors.ErrorTypeInternal) {
			h.logger.Error("Conversion failed", err, "file", originalName)
		}
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DownloadFile serves a converted output by name.
func (h *ConvertHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	name := routeVar(r, "name")
	if name == "" {
		writeAppError(w, apperrors.NewValidationError("File name is required"))
		return
	}

	path, err := h.resolver.Open(name)
	if err != nil {
		writeAppError(w, apperrors.NewNotFoundError("File not found or expired"))
		return
	}

	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	http.ServeFile(w, r, path)
}

// classifyConversionError maps pipeline errors to HTTP-level errors. A
// byte stream that cannot be opened as a PDF is the client's problem;
// anything past that point is ours.
func classifyConversionError(err error) *apperrors.AppError {
	switch {
	case errors.Is(err, domain.ErrCorruptInput):
		return apperrors.NewValidationError("The file could not be read as a PDF document.")
	case errors.Is(err, domain.ErrEmptyEmission):
		return apperrors.NewInternalError("Conversion produced no output", err)
	default:
		return apperrors.NewInternalError("Conversion failed", err)
	}
}

// validatePDFUpload rejects non-PDF uploads before extraction is
// attempted (unsupported input, not corrupt input).
func validatePDFUpload(filename, declaredType string) error {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return domain.ErrUnsupportedInput
	}
	if declaredType != "" &&
		declaredType != "application/pdf" &&
		declaredType != "application/x-pdf" &&
		declaredType != "application/octet-stream" {
		return domain.ErrUnsupportedInput
	}
	return nil
}
