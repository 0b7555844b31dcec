package entities

// ProjectFile is one extracted text file from the uploaded project archive.
// Immutable once extracted; prompt builders only read it.
type ProjectFile struct {
	Name    string
	Content string
}
