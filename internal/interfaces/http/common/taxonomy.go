package common

import "strings"

// CountryInfo carries the two-letter flag code and English name for one
// country in the controlled vocabulary.
type CountryInfo struct {
	Code    string
	English string
}

// Region groups countries for the filter dropdown, in display order.
type Region struct {
	Name      string
	Countries []string
}

// Regions lists the controlled country vocabulary grouped by region.
var Regions = []Region{
	{Name: "東南亞", Countries: []string{"泰國", "印尼", "馬來西亞", "菲律賓", "新加坡", "越南", "緬甸", "柬埔寨"}},
	{Name: "東亞", Countries: []string{"中國", "日本", "韓國", "台灣", "香港"}},
	{Name: "南亞", Countries: []string{"印度", "斯里蘭卡", "馬爾代夫"}},
	{Name: "大洋洲", Countries: []string{"澳大利亞", "新西蘭", "斐濟", "帛琉"}},
	{Name: "中東", Countries: []string{"埃及", "阿聯酋", "以色列", "約旦", "阿曼"}},
	{Name: "歐洲", Countries: []string{"西班牙", "意大利", "希臘", "克羅地亞", "法國", "葡萄牙", "英國", "德國", "荷蘭", "挪威", "瑞典", "芬蘭", "冰島", "馬耳他"}},
	{Name: "北美洲", Countries: []string{"美國", "加拿大", "墨西哥", "古巴", "巴拿馬", "牙買加", "巴哈馬", "開曼群島"}},
	{Name: "南美洲", Countries: []string{"巴西", "哥倫比亞", "厄瓜多爾", "秘魯", "智利", "阿根廷"}},
	{Name: "非洲", Countries: []string{"南非", "坦桑尼亞", "肯尼亞", "莫桑比克", "塞舌爾"}},
}

// countryMapping resolves country display names to flag codes.
// 國家代碼映射。
var countryMapping = map[string]CountryInfo{
	"泰國":   {Code: "th", English: "Thailand"},
	"印尼":   {Code: "id", English: "Indonesia"},
	"馬來西亞": {Code: "my", English: "Malaysia"},
	"菲律賓":  {Code: "ph", English: "Philippines"},
	"新加坡":  {Code: "sg", English: "Singapore"},
	"越南":   {Code: "vn", English: "Vietnam"},
	"緬甸":   {Code: "mm", English: "Myanmar"},
	"柬埔寨":  {Code: "kh", English: "Cambodia"},

	"中國": {Code: "cn", English: "China"},
	"日本": {Code: "jp", English: "Japan"},
	"韓國": {Code: "kr", English: "South Korea"},
	"台灣": {Code: "tw", English: "Taiwan"},
	"香港": {Code: "hk", English: "Hong Kong"},

	"印度":   {Code: "in", English: "India"},
	"斯里蘭卡": {Code: "lk", English: "Sri Lanka"},
	"馬爾代夫": {Code: "mv", English: "Maldives"},

	"澳大利亞": {Code: "au", English: "Australia"},
	"新西蘭":  {Code: "nz", English: "New Zealand"},
	"斐濟":   {Code: "fj", English: "Fiji"},
	"帛琉":   {Code: "pw", English: "Palau"},

	"埃及":  {Code: "eg", English: "Egypt"},
	"阿聯酋": {Code: "ae", English: "UAE"},
	"以色列": {Code: "il", English: "Israel"},
	"約旦":  {Code: "jo", English: "Jordan"},
	"阿曼":  {Code: "om", English: "Oman"},

	"西班牙":  {Code: "es", English: "Spain"},
	"意大利":  {Code: "it", English: "Italy"},
	"希臘":   {Code: "gr", English: "Greece"},
	"克羅地亞": {Code: "hr", English: "Croatia"},
	"法國":   {Code: "fr", English: "France"},
	"葡萄牙":  {Code: "pt", English: "Portugal"},
	"英國":   {Code: "gb", English: "UK"},
	"德國":   {Code: "de", English: "Germany"},
	"荷蘭":   {Code: "nl", English: "Netherlands"},
	"挪威":   {Code: "no", English: "Norway"},
	"瑞典":   {Code: "se", English: "Sweden"},
	"芬蘭":   {Code: "fi", English: "Finland"},
	"冰島":   {Code: "is", English: "Iceland"},
	"馬耳他":  {Code: "mt", English: "Malta"},

	"美國":   {Code: "us", English: "USA"},
	"加拿大":  {Code: "ca", English: "Canada"},
	"墨西哥":  {Code: "mx", English: "Mexico"},
	"古巴":   {Code: "cu", English: "Cuba"},
	"巴拿馬":  {Code: "pa", English: "Panama"},
	"牙買加":  {Code: "jm", English: "Jamaica"},
	"巴哈馬":  {Code: "bs", English: "Bahamas"},
	"開曼群島": {Code: "ky", English: "Cayman Islands"},

	"巴西":   {Code: "br", English: "Brazil"},
	"哥倫比亞": {Code: "co", English: "Colombia"},
	"厄瓜多爾": {Code: "ec", English: "Ecuador"},
	"秘魯":   {Code: "pe", English: "Peru"},
	"智利":   {Code: "cl", English: "Chile"},
	"阿根廷":  {Code: "ar", English: "Argentina"},

	"南非":   {Code: "za", English: "South Africa"},
	"坦桑尼亞": {Code: "tz", English: "Tanzania"},
	"肯尼亞":  {Code: "ke", English: "Kenya"},
	"莫桑比克": {Code: "mz", English: "Mozambique"},
	"塞舌爾":  {Code: "sc", English: "Seychelles"},
}

// englishIndex allows lookups by English name as well, since parts of the
// dataset store countries in English.
var englishIndex = func() map[string]CountryInfo {
	index := make(map[string]CountryInfo, len(countryMapping))
	for _, info := range countryMapping {
		index[strings.ToLower(info.English)] = info
	}
	return index
}()

// CountryFlag resolves a country display name (Traditional Chinese or English)
// to its flag code. Unresolvable countries return false; callers render no
// icon rather than failing.
func CountryFlag(country string) (CountryInfo, bool) {
	trimmed := strings.TrimSpace(country)
	if trimmed == "" {
		return CountryInfo{}, false
	}
	if info, ok := countryMapping[trimmed]; ok {
		return info, true
	}
	if info, ok := englishIndex[strings.ToLower(trimmed)]; ok {
		return info, true
	}
	return CountryInfo{}, false
}

// Certifications is the controlled vocabulary of certifying bodies offered by
// the filter dropdown.
var Certifications = []string{"PADI", "SSI"}

// SortOptionView pairs a sort value with its display label.
type SortOptionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SortOptions lists the sort enumeration in display order. The distance entry
// is a placeholder ordering on country name; see domain.SortDistance.
var SortOptions = []SortOptionView{
	{Value: "a-z", Label: "名稱 A-Z"},
	{Value: "z-a", Label: "名稱 Z-A"},
	{Value: "highest-rated", Label: "最高評分"},
	{Value: "distance", Label: "距離"},
	{Value: "popular", Label: "最多評論"},
}
