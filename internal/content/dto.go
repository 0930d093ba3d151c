package content

// CreateSlideInput captures the admin hero slide payload.
type CreateSlideInput struct {
	Title    string
	Subtitle *string
	ImageURL string
	LinkURL  *string
	Position int
	IsActive *bool
}

// UpdateSlideInput carries partial updates; nil fields are untouched.
type UpdateSlideInput struct {
	Title    *string
	Subtitle *string
	ImageURL *string
	LinkURL  *string
	Position *int
	IsActive *bool
}

// PutConfigInput replaces a site config value wholesale.
type PutConfigInput struct {
	Key   string
	Value map[string]any
}
