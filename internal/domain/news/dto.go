package news

// CreateNewsRequest carries the multipart form fields of a news submission.
// The "image" key is deliberately absent: it names the uploaded file part
// and, when no file is attached, a textual fallback reference; the handler
// reads both off the form so the file part never collides with binding.
type CreateNewsRequest struct {
	Title    string `form:"title"`
	Content  string `form:"content"`
	Date     string `form:"date"`
	Author   string `form:"author"`
	Category string `form:"category"`
}

// UpdateNewsRequest updates only the fields present in the form; nil means
// "keep the stored value".
type UpdateNewsRequest struct {
	Title    *string `form:"title"`
	Content  *string `form:"content"`
	Date     *string `form:"date"`
	Author   *string `form:"author"`
	Category *string `form:"category"`
	Status   *string `form:"status"`
}
