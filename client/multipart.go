package client

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Multipart is a form payload whose content type carries its own boundary;
// the transport leaves it alone instead of forcing JSON.
type Multipart struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func NewMultipart() *Multipart {
	m := &Multipart{}
	m.writer = multipart.NewWriter(&m.buf)
	return m
}

// Field adds a plain form field.
func (m *Multipart) Field(name, value string) *Multipart {
	if m.err == nil {
		m.err = m.writer.WriteField(name, value)
	}
	return m
}

// File adds a file part.
func (m *Multipart) File(field, filename string, content []byte) *Multipart {
	if m.err != nil {
		return m
	}
	part, err := m.writer.CreateFormFile(field, filename)
	if err != nil {
		m.err = err
		return m
	}
	_, m.err = part.Write(content)
	return m
}

// Encode finalizes the payload and returns the body reader together with the
// multipart content type including the boundary.
func (m *Multipart) Encode() (io.Reader, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	if err := m.writer.Close(); err != nil {
		return nil, "", err
	}
	return &m.buf, m.writer.FormDataContentType(), nil
}
