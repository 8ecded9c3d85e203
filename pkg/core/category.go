// pkg/core/category.go
package core

// Category represents one of the recognized top-level install subdirectories.
// Archive entries outside these trees are never installed, and directory
// pruning during removal never climbs past them.
type Category string

const (
	// CategoryBin holds executable programs
	CategoryBin Category = "bin"
	// CategoryEtc holds configuration files
	CategoryEtc Category = "etc"
	// CategoryInclude holds C/C++ header files
	CategoryInclude Category = "include"
	// CategoryLib holds libraries
	CategoryLib Category = "lib"
	// CategoryShare holds architecture-independent data
	CategoryShare Category = "share"
)

// Categories returns all recognized categories in stable order
func Categories() []Category {
	return []Category{
		CategoryBin,
		CategoryEtc,
		CategoryInclude,
		CategoryLib,
		CategoryShare,
	}
}

// IsCategory reports whether name is a recognized category directory name
func IsCategory(name string) bool {
	switch Category(name) {
	case CategoryBin, CategoryEtc, CategoryInclude, CategoryLib, CategoryShare:
		return true
	}
	return false
}
