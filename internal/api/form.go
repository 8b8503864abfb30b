package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
)

// Form builds a multipart/form-data body. Scalar fields become form values,
// file fields stream from disk. Optional fields that were never set are
// simply absent from the body, matching what the backend expects.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	key  string
	path string
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Set(key, value string) {
	f.fields = append(f.fields, formField{key: key, value: value})
}

func (f *Form) SetOptional(key, value string) {
	if value == "" {
		return
	}
	f.Set(key, value)
}

func (f *Form) SetBool(key string, value bool) {
	f.Set(key, strconv.FormatBool(value))
}

func (f *Form) SetInt(key string, value int) {
	f.Set(key, strconv.Itoa(value))
}

func (f *Form) SetFloat(key string, value float64) {
	f.Set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

// AddFile attaches a local file under key. Missing files surface when the
// form is encoded, before any request is made.
func (f *Form) AddFile(key, path string) {
	if path == "" {
		return
	}
	f.files = append(f.files, formFile{key: key, path: path})
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := writer.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.key, err)
		}
	}
	for _, file := range f.files {
		src, err := os.Open(file.path)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", file.path, err)
		}
		part, err := writer.CreateFormFile(file.key, filepath.Base(file.path))
		if err != nil {
			src.Close()
			return nil, "", fmt.Errorf("create part %s: %w", file.key, err)
		}
		if _, err := io.Copy(part, src); err != nil {
			src.Close()
			return nil, "", fmt.Errorf("copy %s: %w", file.path, err)
		}
		src.Close()
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
