// Command seed generates a sample dataset file for local development. The
// output follows the raw export format consumed by the dataset loader,
// including the legacy field variants (`title`, `system`, `membershipLevel`)
// that older exports still carry, so the normalisation path gets exercised.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
)

type seedOptions struct {
	shopCount  int
	outputPath string
	randomSeed int64
	wrapped    bool
}

var (
	namePrefixes = []string{"Blue", "Coral", "Deep", "Ocean", "Reef", "Aqua", "Pacific", "Island", "Sunset", "Manta"}
	nameSuffixes = []string{"Divers", "Dive Center", "Scuba", "Dive Resort", "Underwater Club", "Dive Academy"}

	countries = []string{"泰國", "印尼", "菲律賓", "日本", "台灣", "馬爾代夫", "澳大利亞", "埃及", "墨西哥", "西班牙"}

	cities = map[string][]string{
		"泰國":   {"普吉島", "濤島", "喀比"},
		"印尼":   {"峇里島", "美娜多", "科莫多"},
		"菲律賓":  {"宿霧", "薄荷島", "長灘島"},
		"日本":   {"沖繩", "石垣島", "伊豆"},
		"台灣":   {"墾丁", "綠島", "小琉球"},
		"馬爾代夫": {"馬累", "阿里環礁"},
		"澳大利亞": {"凱恩斯", "大堡礁"},
		"埃及":   {"赫爾加達", "沙姆沙伊赫"},
		"墨西哥":  {"科蘇梅爾", "坎昆"},
		"西班牙":  {"特內里費", "馬略卡"},
	}

	certificationSystems = []string{"PADI", "SSI"}

	tagPool = []string{
		"beginner-friendly", "eco-friendly", "luxury", "technical",
		"family-friendly", "local-owned", "liveaboard", "speaks-chinese",
		"photography-ready", "wreck-diving", "cave-diving", "reef-diving",
	}

	languagePool = []string{"English", "中文", "日本語", "ภาษาไทย", "Bahasa Indonesia"}
	activityPool = []string{"fun diving", "open water course", "night diving", "snorkeling", "freediving"}
)

func main() {
	opts := parseFlags()
	rng := rand.New(rand.NewSource(opts.randomSeed))

	items := make([]map[string]any, 0, opts.shopCount)
	for i := 0; i < opts.shopCount; i++ {
		items = append(items, buildShopItem(rng, i))
	}

	var payload any = items
	if opts.wrapped {
		payload = map[string]any{"items": items}
	}

	if err := writeJSON(opts.outputPath, payload); err != nil {
		log.Fatalf("データセットの書き出しに失敗: %v", err)
	}

	log.Printf("生成完了: %d 件 -> %s", opts.shopCount, opts.outputPath)
}

func parseFlags() seedOptions {
	opts := seedOptions{}
	flag.IntVar(&opts.shopCount, "count", 60, "number of shops to generate")
	flag.StringVar(&opts.outputPath, "out", "data/DiveShopFullList_sample.json", "output file path")
	flag.Int64Var(&opts.randomSeed, "seed", 1, "random seed")
	flag.BoolVar(&opts.wrapped, "wrapped", false, "wrap the array under an items field")
	flag.Parse()
	return opts
}

func buildShopItem(rng *rand.Rand, index int) map[string]any {
	country := countries[rng.Intn(len(countries))]
	cityChoices := cities[country]
	city := cityChoices[rng.Intn(len(cityChoices))]
	name := fmt.Sprintf("%s %s", namePrefixes[rng.Intn(len(namePrefixes))], nameSuffixes[rng.Intn(len(nameSuffixes))])
	system := certificationSystems[rng.Intn(len(certificationSystems))]

	item := map[string]any{
		"country":        country,
		"city":           city,
		"email":          fmt.Sprintf("info%d@example.com", index),
		"average_rating": float64(rng.Intn(21)+30) / 10,
		"review_count":   rng.Intn(300),
		"tags":           pickSome(rng, tagPool, 1+rng.Intn(3)),
		"languages":      pickSome(rng, languagePool, 1+rng.Intn(2)),
		"activities":     pickSome(rng, activityPool, 1+rng.Intn(3)),
		"openHour":       "09:00 - 18:00",
	}

	// 一部のレコードは旧フォーマットのまま出力し、正規化系を通す。
	if rng.Intn(2) == 0 {
		item["id"] = index + 1
		item["title"] = name
		item["system"] = system
		item["url"] = fmt.Sprintf("https://shop%d.example.com", index)
		if rng.Intn(3) == 0 {
			item["membershipLevel"] = "PADI 5 Star Dive Resort"
		}
	} else {
		item["id"] = fmt.Sprintf("shop-%04d", index+1)
		item["name"] = name
		item["certifications"] = []string{system}
		item["website"] = fmt.Sprintf("https://shop%d.example.com", index)
		item["is_five_star"] = rng.Intn(4) == 0
	}

	if rng.Intn(5) == 0 {
		item["ad_priority"] = rng.Intn(10) + 1
	}

	if rng.Intn(2) == 0 {
		item["background"] = map[string]string{
			"800x800": fmt.Sprintf("https://cdn.example.com/shops/%d/800x800.jpg", index),
			"200x200": fmt.Sprintf("https://cdn.example.com/shops/%d/200x200.jpg", index),
		}
	}

	return item
}

func pickSome(rng *rand.Rand, pool []string, count int) []string {
	shuffled := append([]string{}, pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

func writeJSON(path string, payload any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
