package forms

import "strings"

// Attachment is a user-supplied file forwarded with a submission.
type Attachment struct {
	Name        string
	ContentType string
	Size        int64
	Content     []byte
}

// Valid reports whether the attachment is a real file worth uploading. The
// form layer occasionally forwards empty placeholder parts (zero bytes, names
// like "undefined") which must be dropped silently rather than uploaded.
func (a Attachment) Valid() bool {
	name := strings.TrimSpace(a.Name)
	if a.Size <= 0 || len(a.Content) == 0 {
		return false
	}
	if name == "" || name == "undefined" || name == "null" {
		return false
	}
	if len(name) <= 3 || !strings.Contains(name, ".") {
		return false
	}
	if strings.TrimSpace(a.ContentType) == "" {
		return false
	}
	return true
}

// FilterValid returns only the attachments that pass Valid.
func FilterValid(attachments []Attachment) []Attachment {
	valid := make([]Attachment, 0, len(attachments))
	for _, a := range attachments {
		if a.Valid() {
			valid = append(valid, a)
		}
	}
	return valid
}
