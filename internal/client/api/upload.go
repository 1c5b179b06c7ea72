package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Attachment is a binary part of a multipart request, identified by form
// field, filename and content type.
type Attachment struct {
	Field       string
	FileName    string
	ContentType string
	Reader      io.Reader
}

// Form is a multipart request body: scalar fields plus zero-or-more
// attachments.
type Form struct {
	Fields      map[string]string
	Attachments []Attachment
}

// ProgressFunc receives upload progress as the body streams. A final call
// at sent == total is not guaranteed distinct from completion.
type ProgressFunc func(sent, total int64)

// progressReader counts bytes handed to the transport.
type progressReader struct {
	r        io.Reader
	total    int64
	sent     int64
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		if p.progress != nil {
			p.progress(p.sent, p.total)
		}
	}
	return n, err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadFile POSTs a multipart/form-data body to path, overriding the
// default JSON content type for this call only. The decoded response body is
// written into out when out is non-nil.
func (c *Client) UploadFile(ctx context.Context, path string, form Form, progress ProgressFunc, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range form.Fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	for _, a := range form.Attachments {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(a.Field), quoteEscaper.Replace(a.FileName)))
		ct := a.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		part, err := w.CreatePart(h)
		if err != nil {
			return fmt.Errorf("failed to create form part: %w", err)
		}
		if _, err := io.Copy(part, a.Reader); err != nil {
			return fmt.Errorf("failed to write attachment %q: %w", a.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	body := &progressReader{r: &buf, total: int64(buf.Len()), progress: progress}
	return c.do(ctx, "POST", path, nil, w.FormDataContentType(), body, out)
}
