package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
)

// UploadField is the form field that carries the uploaded file.
const UploadField = "image"

// Part is one entry of a multipart body.
type Part interface {
	writeTo(w *multipart.Writer) error
}

// FilePart streams a local file under Field, using the file's base name as
// the filename.
type FilePart struct {
	Field string
	Path  string
}

func (p FilePart) writeTo(w *multipart.Writer) error {
	f, err := os.Open(p.Path)
	if err != nil {
		return fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close()

	fw, err := w.CreateFormFile(p.Field, filepath.Base(p.Path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	return nil
}

// FieldsPart writes plain form fields in key order.
type FieldsPart struct {
	Fields map[string]string
}

func (p FieldsPart) writeTo(w *multipart.Writer) error {
	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, p.Fields[k]); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}
	return nil
}

// BuildMultipart returns the parts of an upload: the file, then the extra
// fields as a single part when there are any.
func BuildMultipart(filePath string, fields map[string]string) []Part {
	parts := []Part{FilePart{Field: UploadField, Path: filePath}}
	if len(fields) > 0 {
		parts = append(parts, FieldsPart{Fields: fields})
	}
	return parts
}

// EncodeMultipart writes parts into a multipart/form-data body and returns it
// with its content type.
func EncodeMultipart(parts []Part) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		if err := p.writeTo(w); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
