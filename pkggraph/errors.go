package pkggraph

import "errors"

// Sentinel errors returned by Builder while assembling a Graph. These
// describe malformed input from the caller (the manifest/lockfile reader
// this package treats as an external collaborator) and are always
// recoverable -- the caller can fix the input and retry.
var (
	// ErrEmptyPackageID indicates a package was added with an empty ID.
	ErrEmptyPackageID = errors.New("pkggraph: package ID is empty")
	// ErrDuplicatePackage indicates a package ID was added more than once.
	ErrDuplicatePackage = errors.New("pkggraph: duplicate package ID")
	// ErrPackageNotFound indicates a reference to a package ID not yet added.
	ErrPackageNotFound = errors.New("pkggraph: package not found")
	// ErrDuplicateFeatureName indicates a named feature or optional dep
	// name collides with one already registered for the same package.
	ErrDuplicateFeatureName = errors.New("pkggraph: duplicate feature name")
)
