package ports

// TargetResolver locates the fixture output directory, creating it if
// necessary. It must not write anything when resolution fails.
type TargetResolver interface {
	Resolve() (string, error)
}
