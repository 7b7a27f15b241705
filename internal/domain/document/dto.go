package document

// CreateDocumentRequest carries the form fields of an upload; the file
// itself arrives as the "file" part and is mandatory on create.
type CreateDocumentRequest struct {
	Title    string `form:"title"`
	Category string `form:"category"`
}

type UpdateDocumentRequest struct {
	Title    *string `form:"title"`
	Category *string `form:"category"`
}
