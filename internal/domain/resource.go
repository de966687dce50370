package domain

type ResourcePath string

func (r ResourcePath) String() string {
	return string(r)
}

const (
	ResourceComics     ResourcePath = "comics"     // Comic issues
	ResourceCharacters ResourcePath = "characters" // Characters
)

var ResourcePaths = []ResourcePath{
	ResourceComics,
	ResourceCharacters,
}

// PageSize is the number of items the API returns per page
const PageSize = 20

func (r ResourcePath) Valid() bool {
	switch r {
	case ResourceComics, ResourceCharacters:
		return true
	default:
		return false
	}
}

func (r ResourcePath) GetResourceName() string {
	switch r {
	case ResourceComics:
		return "Comics"
	case ResourceCharacters:
		return "Characters"
	default:
		return "Unknown"
	}
}

// Offset converts a zero-based page index into the API offset parameter
func Offset(page int) int {
	return page * PageSize
}
