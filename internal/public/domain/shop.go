package domain

// Shop represents a publicly visible dive-shop directory entry.
// Shop は公開ディレクトリに表示される潛水店エンティティ。
type Shop struct {
	ID             string
	Name           string
	Country        string
	Region         string
	City           string
	Address        string
	Description    string
	Certifications []string
	Tags           []string
	Languages      []string
	Activities     []string
	IsFiveStar     bool
	AdPriority     int
	AverageRating  float64
	ReviewCount    int
	LastReviewDate string
	Phone          string
	Email          string
	Website        string
	OpenHour       string
	BackgroundURL  string
}

// HasCertification reports whether the shop holds the given certification code.
func (s Shop) HasCertification(code string) bool {
	for _, c := range s.Certifications {
		if c == code {
			return true
		}
	}
	return false
}
