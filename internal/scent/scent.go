package scent

import "regexp"

// Tag is a fragrance's dominant keyword category.
type Tag string

const (
	TagFloral    Tag = "Floral"
	TagWoody     Tag = "Woody"
	TagSweet     Tag = "Sweet"
	TagFresh     Tag = "Fresh"
	TagSpicy     Tag = "Spicy"
	TagMusky     Tag = "Musky"
	TagFruity    Tag = "Fruity"
	TagPowdery   Tag = "Powdery"
	TagVersatile Tag = "Versatile"
)

type rule struct {
	tag     Tag
	pattern *regexp.Regexp
}

// rules is evaluated in order; the first matching pattern decides the tag, so
// a name containing both "rose" and "musk" is Floral, not Musky. Keep the
// ordering stable: it is part of the classification contract.
var rules = []rule{
	{TagFloral, regexp.MustCompile(`(?i)rose|jasmine|lily|violet|orchid|flower|bloom|petal`)},
	{TagWoody, regexp.MustCompile(`(?i)wood|cedar|oud|sandal|vetiver|pine|forest|bark`)},
	{TagSweet, regexp.MustCompile(`(?i)vanilla|chocolate|caramel|sugar|honey|sweet|cupcake`)},
	{TagFresh, regexp.MustCompile(`(?i)aqua|water|fresh|marine|sea|cool|mint|citrus|green`)},
	{TagSpicy, regexp.MustCompile(`(?i)spice|pepper|cinnamon|cardamom|clove|ginger|nutmeg`)},
	{TagMusky, regexp.MustCompile(`(?i)musk|amber|leather|animal|suede`)},
	{TagFruity, regexp.MustCompile(`(?i)apple|berry|peach|fruit|melon|coconut|fig|grape|pear|plum`)},
	{TagPowdery, regexp.MustCompile(`(?i)powder|iris|soft|clean`)},
}

// Tags lists every non-default tag in priority order.
func Tags() []Tag {
	tags := make([]Tag, len(rules))
	for i, r := range rules {
		tags[i] = r.tag
	}
	return tags
}

// Classify maps a fragrance name or free text to its scent tag. Returns
// TagVersatile when no vocabulary matches.
func Classify(text string) Tag {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.tag
		}
	}
	return TagVersatile
}

type iconRule struct {
	icon    string
	pattern *regexp.Regexp
}

var iconRules = []iconRule{
	{"🌸", regexp.MustCompile(`(?i)rose|jasmine|lily|violet|orchid|flower|bloom|petal`)},
	{"🌿", regexp.MustCompile(`(?i)wood|cedar|oud|sandal|vetiver|pine|forest|bark`)},
	{"🍯", regexp.MustCompile(`(?i)vanilla|chocolate|caramel|sugar|honey|sweet|cupcake`)},
	{"💧", regexp.MustCompile(`(?i)aqua|water|fresh|marine|sea|cool|mint|citrus|green`)},
	{"🔥", regexp.MustCompile(`(?i)spice|pepper|cinnamon|cardamom|clove|ginger|nutmeg`)},
	{"🦁", regexp.MustCompile(`(?i)musk|amber|leather|animal|suede`)},
	{"🍎", regexp.MustCompile(`(?i)apple|berry|peach|fruit|melon|coconut|fig|grape|pear|plum`)},
	{"✨", regexp.MustCompile(`(?i)powder|iris|soft|clean`)},
	{"🌙", regexp.MustCompile(`(?i)night|dark|mystery|mysterious`)},
	{"☀️", regexp.MustCompile(`(?i)sun|summer|warm|hot`)},
	{"🌊", regexp.MustCompile(`(?i)ocean|beach|coastal`)},
	{"🌱", regexp.MustCompile(`(?i)garden|nature|outdoor`)},
}

// VibeIcon picks a display icon for a fragrance name.
func VibeIcon(name string) string {
	for _, r := range iconRules {
		if r.pattern.MatchString(name) {
			return r.icon
		}
	}
	return "🌟"
}
