package stat

// The "image" key is not bound: it names the file part (or a textual
// fallback reference) and is read off the form by the handler.
type CreateStatRequest struct {
	Title       string `form:"title"`
	Value       string `form:"value"`
	Description string `form:"description"`
}

type UpdateStatRequest struct {
	Title       *string `form:"title"`
	Value       *string `form:"value"`
	Description *string `form:"description"`
}
