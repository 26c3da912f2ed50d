// Package evidence classifies and packages visit evidence files
// (photos or short videos) for multipart upload.
package evidence

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// knownTypes maps the file extensions the mobile capture flow produces to
// their MIME types. Anything else falls through to the platform MIME table
// and finally to a generic binary type.
var knownTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".heic": "image/heic",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".3gp":  "video/3gpp",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
}

// ContentType returns the MIME type for an evidence file, inferred from
// its extension. Unrecognized extensions fall back to
// application/octet-stream.
func ContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := knownTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// IsImage returns true if the content type is any image format.
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// IsVideo returns true if the content type is any video format.
func IsVideo(contentType string) bool {
	return strings.HasPrefix(contentType, "video/")
}

// Attach streams the file at path into w as one form part named field,
// preserving the file's base name and carrying its classified content
// type. Callers that have no file must not call Attach; an absent file
// means no part at all, not an empty one.
func Attach(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening evidence file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing evidence file: %v\n", cerr)
		}
	}()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	header.Set("Content-Type", ContentType(path))

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("creating evidence part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("writing evidence part: %w", err)
	}

	return nil
}
