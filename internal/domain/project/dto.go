package project

// The "image" key is not bound: it names the file part (or a textual
// fallback reference) and is read off the form by the handler.
type CreateProjectRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	StartDate   string `form:"startDate"`
	EndDate     string `form:"endDate"`
	Category    string `form:"category"`
}

type UpdateProjectRequest struct {
	Title       *string `form:"title"`
	Description *string `form:"description"`
	StartDate   *string `form:"startDate"`
	EndDate     *string `form:"endDate"`
	Category    *string `form:"category"`
}
