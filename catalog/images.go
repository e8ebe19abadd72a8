package catalog

import "fmt"

// ImageURL resolves a placeholder image id to a served URL. Unknown ids get
// a deterministic fallback instead of an error so templates never break on a
// missing asset.
func ImageURL(id string) string {
	if id == "" {
		id = "not-found"
	}
	if w, h, ok := imageSize(id); ok {
		return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", id, w, h)
	}
	return "https://picsum.photos/seed/error/600/400"
}

var imageSizes = map[string][2]int{
	"not-found":            {600, 400},
	"deluxe-king-1":        {600, 400},
	"deluxe-king-2":        {600, 400},
	"executive-suite-1":    {600, 400},
	"executive-suite-2":    {600, 400},
	"garden-view-queen-1":  {600, 400},
	"garden-view-queen-2":  {600, 400},
	"presidential-suite-1": {600, 400},
	"presidential-suite-2": {600, 400},
	"gallery-1":            {600, 400},
	"gallery-2":            {400, 600},
	"gallery-3":            {600, 400},
	"gallery-4":            {600, 400},
	"gallery-5":            {400, 600},
	"gallery-6":            {600, 400},
	"gallery-7":            {600, 400},
	"gallery-8":            {600, 400},
	"amenity-wifi":         {600, 400},
	"amenity-restaurant":   {600, 400},
	"amenity-pool":         {600, 400},
	"amenity-gym":          {600, 400},
	"amenity-spa":          {600, 400},
	"amenity-parking":      {600, 400},
	"amenity-concierge":    {600, 400},
	"amenity-coffee":       {600, 400},
	"avatar-jane-doe":      {100, 100},
	"avatar-john-smith":    {100, 100},
	"avatar-emily-jones":   {100, 100},
}

func imageSize(id string) (int, int, bool) {
	s, ok := imageSizes[id]
	return s[0], s[1], ok
}
