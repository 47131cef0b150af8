package classify

// CategoryOther is the closed taxonomy's catch-all label.
const CategoryOther = "Other"

// category pairs a taxonomy label with its fallback keywords. The slice
// order is the explicit tie-break: when two categories accumulate the same
// keyword-hit score, the one listed first wins.
type category struct {
	name     string
	keywords []string
}

// taxonomy is the fixed closed set of course-niche labels. Loaded once per
// process; never mutated at runtime.
var taxonomy = []category{
	{"Programming & Tech", []string{"programming", "coding", "software", "developer", "javascript", "python", "golang", "tutorial", "api", "web dev", "app"}},
	{"Business & Entrepreneurship", []string{"business", "startup", "entrepreneur", "founder", "saas", "agency", "ecommerce", "side hustle"}},
	{"Marketing", []string{"marketing", "seo", "ads", "funnel", "branding", "copywriting", "social media", "audience growth"}},
	{"Finance & Investing", []string{"finance", "investing", "stocks", "crypto", "budget", "money", "passive income", "real estate"}},
	{"Design", []string{"design", "figma", "ui", "ux", "graphic", "illustration", "typography", "logo"}},
	{"Photography & Video", []string{"photography", "camera", "lightroom", "photo", "videography", "editing", "premiere", "filmmaking"}},
	{"Music", []string{"music", "guitar", "piano", "production", "mixing", "songwriting", "ableton", "vocal"}},
	{"Health & Fitness", []string{"fitness", "workout", "nutrition", "yoga", "strength", "weight loss", "mobility", "wellness"}},
	{"Personal Development", []string{"productivity", "habits", "mindset", "motivation", "goal", "discipline", "self improvement", "journaling"}},
	{"Education & Teaching", []string{"teaching", "lesson", "curriculum", "study", "exam", "course creation", "classroom", "learning"}},
	{"Language Learning", []string{"language", "english", "spanish", "french", "vocabulary", "grammar", "fluent", "pronunciation"}},
	{"Cooking & Food", []string{"cooking", "recipe", "baking", "kitchen", "meal prep", "chef", "sourdough", "cuisine"}},
	{"Arts & Crafts", []string{"drawing", "painting", "watercolor", "craft", "sketch", "pottery", "knitting", "calligraphy"}},
	{"Gaming", []string{"gaming", "gameplay", "esports", "speedrun", "minecraft", "game dev", "walkthrough", "stream"}},
	{"Travel", []string{"travel", "itinerary", "backpacking", "destination", "van life", "digital nomad", "flight", "visa"}},
	{"Beauty & Fashion", []string{"makeup", "skincare", "beauty", "fashion", "outfit", "hair", "style guide", "wardrobe"}},
	{"Science & Engineering", []string{"science", "physics", "engineering", "math", "chemistry", "electronics", "robotics", "experiment"}},
}

// Categories returns the taxonomy labels in order, with the catch-all last.
func Categories() []string {
	names := make([]string, 0, len(taxonomy)+1)
	for _, c := range taxonomy {
		names = append(names, c.name)
	}
	return append(names, CategoryOther)
}

func knownCategory(name string) bool {
	if name == CategoryOther {
		return true
	}
	for _, c := range taxonomy {
		if c.name == name {
			return true
		}
	}
	return false
}
