package common

import (
	"sort"
	"strings"
)

// TagInfo carries the display label and style class for one shop tag.
type TagInfo struct {
	Label string
	Style string
}

// fallbackTagStyle is applied to tags outside the known table; unknown tags
// are rendered with a generic look instead of being dropped.
const fallbackTagStyle = "bg-gray-100 text-gray-800"

var tagTable = map[string]TagInfo{
	"beginner-friendly": {Label: "初學者友好", Style: "bg-blue-100 text-blue-800"},
	"eco-friendly":      {Label: "環保認證", Style: "bg-green-100 text-green-800"},
	"luxury":            {Label: "奢華體驗", Style: "bg-purple-100 text-purple-800"},
	"technical":         {Label: "技術潛水", Style: "bg-red-100 text-red-800"},
	"family-friendly":   {Label: "家庭友好", Style: "bg-yellow-100 text-yellow-800"},
	"local-owned":       {Label: "本地擁有", Style: "bg-teal-100 text-teal-800"},
	"special-needs":     {Label: "特殊需求支持", Style: "bg-pink-100 text-pink-800"},
	"liveaboard":        {Label: "船宿服務", Style: "bg-indigo-100 text-indigo-800"},
	"speaks-chinese":    {Label: "提供中文服務", Style: "bg-blue-100 text-blue-800"},
	"photography-ready": {Label: "攝影專業", Style: "bg-purple-100 text-purple-800"},
	"wreck-diving":      {Label: "沉船潛水", Style: "bg-amber-100 text-amber-800"},
	"cave-diving":       {Label: "洞穴潛水", Style: "bg-slate-100 text-slate-800"},
	"reef-diving":       {Label: "珊瑚礁潛水", Style: "bg-cyan-100 text-cyan-800"},
}

// TagDisplay resolves a tag identifier to its display label and style class.
// Unknown tags get the identifier itself as label plus the generic style.
func TagDisplay(tag string) TagInfo {
	trimmed := strings.TrimSpace(tag)
	if info, ok := tagTable[trimmed]; ok {
		return info
	}
	return TagInfo{Label: trimmed, Style: fallbackTagStyle}
}

// KnownTags returns the known tag identifiers in a deterministic order for
// the taxonomy endpoint.
func KnownTags() []string {
	tags := make([]string, 0, len(tagTable))
	for tag := range tagTable {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
