package validators

// Field name constants used to scope validation to a subset of fields.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"

	FieldTitle    = "title"
	FieldContent  = "content"
	FieldExcerpt  = "excerpt"
	FieldCategory = "category"

	// FieldStatus accepts an empty status, which the services turn into a
	// draft.
	FieldStatus = "status"

	FieldPage   = "page"
	FieldLimit  = "limit"
	FieldAuthor = "author"
)
