package ports

// Category identifies one group of fixture files.
type Category string

const (
	CategoryText     Category = "text"
	CategoryImage    Category = "image"
	CategoryDocument Category = "document"
	CategoryArchive  Category = "archive"
	CategoryCode     Category = "code"
	CategoryMisc     Category = "misc"
)

// Builder is the port for anything that produces one category of fixture files.
type Builder interface {
	// Category reports which fixture group this builder produces.
	Category() Category
	// Build writes the builder's files into dir and returns their names.
	// Existing files of the same name are overwritten without warning.
	Build(dir string) ([]string, error)
}
