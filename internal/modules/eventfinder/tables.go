package eventfinder

// Static per-city event tables. City keys are exact (case-insensitive)
// matches; unknown cities fall back to the generic lists.

var citySportsEvents = map[string][]string{
	"munich":    {"FC Bayern Home Match", "Munich Marathon", "BMW Open Tennis"},
	"berlin":    {"Hertha BSC Home Match", "Berlin Marathon", "ISTAF Athletics Meeting"},
	"frankfurt": {"Eintracht Frankfurt Home Match", "Frankfurt Marathon", "Ironman Frankfurt"},
	"cologne":   {"1. FC Cologne Home Match", "Cologne Marathon", "Cologne Cardinals Game"},
	"chicago":   {"Chicago Bulls Home Game", "Chicago Marathon", "Chicago Cubs Home Game"},
	"new york":  {"Yankees Home Game", "New York City Marathon", "US Open Tennis"},
}

var cityTradeFairs = map[string][]string{
	"munich":    {"Oktoberfest", "BAUMA", "ISPO Munich"},
	"berlin":    {"ITB Berlin", "IFA", "Fruit Logistica"},
	"frankfurt": {"Frankfurt Book Fair", "Automechanika", "Ambiente"},
	"cologne":   {"Gamescom", "IMM Cologne", "Art Cologne"},
	"chicago":   {"National Restaurant Association Show", "International Home + Housewares Show", "FABTECH"},
	"new york":  {"NY NOW", "Javits Auto Show", "Toy Fair New York"},
}

var cityConferences = map[string][]string{
	"munich":    {"Munich Security Conference", "DLD Munich", "Bits & Pretzels"},
	"berlin":    {"re:publica", "Tech Open Air", "Berlin Innovation Summit"},
	"frankfurt": {"Frankfurt Finance Summit", "Euro Finance Week", "Frankfurt Digital Congress"},
	"cologne":   {"DMEXCO", "Insuretech Connect Europe", "Cologne IT Summit"},
	"chicago":   {"Chicago Ideas Week", "Techweek Chicago", "Midwest Healthcare Forum"},
	"new york":  {"TechCrunch Disrupt", "Advertising Week New York", "NY FinTech Conference"},
}

var genericEvents = map[string][]string{
	CategorySports:     {"Local Sports Championship", "Regional Athletics Meet", "City League Finals"},
	CategoryTradeFair:  {"Regional Trade Show", "Industry Expo", "Commercial Fair"},
	CategoryConference: {"Business Leadership Conference", "Management Summit", "Innovation Forum"},
}

// categoryRule carries the deterministic generation rules for one category.
type categoryRule struct {
	spacingDays int
	venueSuffix string
	timeOfDay   string
	priceRange  string
	source      string
	tables      map[string][]string
}

var categoryRules = map[string]categoryRule{
	CategorySports: {
		spacingDays: 7,
		venueSuffix: "Arena",
		timeOfDay:   "15:30",
		priceRange:  "$45-$150",
		source:      "Sports Events Network",
		tables:      citySportsEvents,
	},
	CategoryTradeFair: {
		spacingDays: 10,
		venueSuffix: "Convention Center",
		timeOfDay:   "09:00",
		priceRange:  "$150-$600",
		source:      "Trade Fair Calendar",
		tables:      cityTradeFairs,
	},
	CategoryConference: {
		spacingDays: 14,
		venueSuffix: "Conference Center",
		timeOfDay:   "08:30",
		priceRange:  "$200-$850",
		source:      "Conference Index",
		tables:      cityConferences,
	},
}

// categoryOrder keeps generation output stable across runs.
var categoryOrder = []string{CategorySports, CategoryTradeFair, CategoryConference}

// sampleTemplate is one entry of the always-populated fallback generator.
type sampleTemplate struct {
	name        string
	category    string
	timeOfDay   string
	priceRange  string
	description string
}

var sampleTemplates = []sampleTemplate{
	{"%s Tech Conference", CategoryConference, "09:00", "$250-$500", "Regional technology conference with talks and networking"},
	{"%s Food & Wine Festival", "festival", "12:00", "$25-$80", "Outdoor festival with local restaurants and wineries"},
	{"%s Marathon", CategorySports, "08:00", "Free to watch", "Annual city marathon through the downtown area"},
	{"%s Art Exhibition", "culture", "10:00", "$15-$30", "Curated exhibition of contemporary regional artists"},
	{"%s Business Summit", CategoryConference, "08:30", "$300-$700", "Executive summit on regional business development"},
}
