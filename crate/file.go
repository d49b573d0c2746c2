package crate

// FileDescriptor describes one file attached to the crate. Only the
// description is stored; the crate never touches the file itself.
type FileDescriptor struct {
	// Path is the file path relative to the crate root, used as the node id.
	Path string

	// MediaType is the file's media type (schema:encodingFormat).
	MediaType string

	// Description is an optional free-text description.
	Description string
}
