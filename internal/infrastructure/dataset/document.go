package dataset

import (
	"encoding/json"
	"fmt"
)

// flexID accepts both string and numeric JSON ids and normalises them to a
// string, matching the historical dataset where ids switched types between
// exports.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexID(n.String())
		return nil
	}
	return fmt.Errorf("id が文字列でも数値でもありません: %s", string(data))
}

// shopDocument mirrors one raw item of the dataset export. Field names follow
// the export format, including the legacy aliases (`title`, `system`, `url`)
// that older exports still use.
type shopDocument struct {
	ID              flexID            `json:"id"`
	Name            string            `json:"name"`
	Title           string            `json:"title"`
	Country         string            `json:"country"`
	Region          string            `json:"region"`
	City            string            `json:"city"`
	Address         string            `json:"address"`
	Description     string            `json:"description"`
	Certifications  []string          `json:"certifications"`
	System          string            `json:"system"`
	Tags            []string          `json:"tags"`
	Languages       []string          `json:"languages"`
	Activities      []string          `json:"activities"`
	MembershipLevel string            `json:"membershipLevel"`
	IsFiveStar      *bool             `json:"is_five_star"`
	AdPriority      int               `json:"ad_priority"`
	AverageRating   float64           `json:"average_rating"`
	ReviewCount     int               `json:"review_count"`
	LastReviewDate  string            `json:"last_review_date"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	Website         string            `json:"website"`
	URL             string            `json:"url"`
	OpenHour        string            `json:"openHour"`
	Background      map[string]string `json:"background"`
}

// listDocument is the wrapped payload shape: the array may sit under any of
// these fields depending on the export tool version.
type listDocument struct {
	Items []shopDocument `json:"items"`
	Shops []shopDocument `json:"shops"`
	Data  []shopDocument `json:"data"`
}
