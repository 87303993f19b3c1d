package public

type tagResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Style string `json:"style"`
}

type shopSummaryResponse struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Country        string        `json:"country"`
	CountryCode    string        `json:"countryCode,omitempty"`
	CountryEnglish string        `json:"countryEnglish,omitempty"`
	City           string        `json:"city,omitempty"`
	Certifications []string      `json:"certifications"`
	Tags           []tagResponse `json:"tags"`
	IsFiveStar     bool          `json:"isFiveStar"`
	AdPriority     int           `json:"adPriority,omitempty"`
	AverageRating  float64       `json:"averageRating"`
	ReviewCount    int           `json:"reviewCount"`
	Website        string        `json:"website,omitempty"`
	Email          string        `json:"email,omitempty"`
	BackgroundURL  string        `json:"backgroundUrl,omitempty"`
}

type shopDetailResponse struct {
	shopSummaryResponse
	Region         string   `json:"region,omitempty"`
	Address        string   `json:"address,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Description    string   `json:"description,omitempty"`
	Languages      []string `json:"languages"`
	Activities     []string `json:"activities"`
	OpenHour       string   `json:"openHour,omitempty"`
	LastReviewDate string   `json:"lastReviewDate,omitempty"`
}

type shopListResponse struct {
	Items        []shopSummaryResponse `json:"items"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	Total        int                   `json:"total"`
	TotalPages   int                   `json:"totalPages"`
	DatasetError string                `json:"datasetError,omitempty"`
}

type regionResponse struct {
	Name      string            `json:"name"`
	Countries []countryResponse `json:"countries"`
}

type countryResponse struct {
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	English string `json:"english,omitempty"`
}

type certificationsResponse struct {
	Certifications []string `json:"certifications"`
	Default        []string `json:"default"`
}

type feedbackRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

type feedbackAcceptedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
