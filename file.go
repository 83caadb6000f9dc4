// Defines file objects: Notion-hosted, external, and uploaded files.

package notion

import "time"

// FileType discriminates file object variants.
type FileType string

const (
	// FileTypeFile is a file hosted by Notion. Its URL expires; the
	// API cannot create these directly.
	FileTypeFile FileType = "file"
	// FileTypeExternal is a file linked by URL.
	FileTypeExternal FileType = "external"
	// FileTypeFileUpload references a completed file upload.
	FileTypeFileUpload FileType = "file_upload"
)

// File represents a file attached to a page, block, or property value.
// Reference: https://developers.notion.com/reference/file-object
type File struct {
	Type FileType `json:"type,omitempty"`

	// Name is required when writing a files property value.
	Name    string     `json:"name,omitempty"`
	Caption []RichText `json:"caption,omitempty"`

	File       *FileRef       `json:"file,omitempty"`
	External   *ExternalRef   `json:"external,omitempty"`
	FileUpload *FileUploadRef `json:"file_upload,omitempty"`
}

// FileRef is a Notion-hosted file with a temporary URL.
type FileRef struct {
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

// ExternalRef is an externally hosted file.
type ExternalRef struct {
	URL string `json:"url"`
}

// FileUploadRef references a file upload by ID.
type FileUploadRef struct {
	ID ObjectID `json:"id"`
}

// NewExternalFile returns an external file object. This is the only
// file variant the API accepts on writes besides file uploads.
func NewExternalFile(name, url string) File {
	return File{Type: FileTypeExternal, Name: name, External: &ExternalRef{URL: url}}
}

// Expired reports whether a Notion-hosted file URL has passed its
// expiry time.
func (f *File) Expired(now time.Time) bool {
	return f.Type == FileTypeFile && f.File != nil &&
		f.File.ExpiryTime != nil && now.After(*f.File.ExpiryTime)
}

// Validate checks the file discriminator and URL formats.
func (f *File) Validate() error {
	switch f.Type {
	case FileTypeFile:
		if f.File == nil {
			return MissingField("file")
		}
		if f.External != nil || f.FileUpload != nil {
			return InvalidField("type", `payload does not match type "file"`)
		}
		if err := validateURL("file.url", f.File.URL); err != nil {
			return err
		}
	case FileTypeExternal:
		if f.External == nil {
			return MissingField("external")
		}
		if f.File != nil || f.FileUpload != nil {
			return InvalidField("type", `payload does not match type "external"`)
		}
		if err := validateURL("external.url", f.External.URL); err != nil {
			return err
		}
	case FileTypeFileUpload:
		if f.FileUpload == nil {
			return MissingField("file_upload")
		}
		if err := f.FileUpload.ID.Validate(); err != nil {
			return prefixField("file_upload", err)
		}
	case "":
		return MissingField("type")
	default:
		return InvalidField("type", "unknown file type "+string(f.Type))
	}
	return validateRichText("caption", f.Caption)
}
