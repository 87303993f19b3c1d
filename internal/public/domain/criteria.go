package domain

// SortOption enumerates the supported result orderings.
type SortOption string

const (
	// SortNameAsc orders by shop name, locale-aware ascending.
	SortNameAsc SortOption = "a-z"
	// SortNameDesc orders by shop name, locale-aware descending.
	SortNameDesc SortOption = "z-a"
	// SortHighestRated orders by average rating, highest first.
	SortHighestRated SortOption = "highest-rated"
	// SortPopular orders by review count, most reviewed first.
	SortPopular SortOption = "popular"
	// SortDistance is a placeholder: the dataset carries no coordinates, so
	// it falls back to ascending country name. 距離ソートは国名順の代替実装。
	SortDistance SortOption = "distance"
)

// DefaultCertifications is the certification pair the directory UI pre-seeds
// on first load. The pipeline itself never applies it: an empty selection
// always means "no certification constraint", and clients that want the
// pre-seed behaviour opt in explicitly.
var DefaultCertifications = []string{"PADI", "SSI"}

// Criteria is the immutable filter/sort selection driving Apply.
// An empty set on any field means that filter is inactive: empty
// Certifications means "no certification constraint", empty Countries means
// "all countries".
type Criteria struct {
	SearchQuery    string
	Certifications []string
	Countries      []string
	FiveStarOnly   bool
	SortBy         SortOption
}
