package marinedash

import "regexp"

// highlightRule is one declarative markup substitution: a case-insensitive
// whole-word pattern and its replacement. Rules are independently testable
// and extensible without touching the pipeline control flow.
type highlightRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

// highlightRules is evaluated in order over the assembled paragraph markup.
// Strong emphasis marks time periods and weather systems, light emphasis
// marks weather and marine conditions, and spans tag compass directions and
// measurements as styling hooks. A later rule may re-match inside an earlier
// rule's inserted markup when word boundaries happen to align; accepted.
var highlightRules = []highlightRule{
	{
		name: "time-period",
		pattern: regexp.MustCompile(`(?i)\b(TODAY|TONIGHT|THIS MORNING|THIS AFTERNOON|THIS EVENING|OVERNIGHT|` +
			`(?:MON|TUES|WEDNES|THURS|FRI|SATUR|SUN)DAY(?: NIGHT)?|WEEKEND)\b`),
		replacement: `**$1**`,
	},
	{
		name: "weather-system",
		pattern: regexp.MustCompile(`(?i)\b(LOW PRESSURE|HIGH PRESSURE|STORM SYSTEM|` +
			`COLD FRONT|WARM FRONT|OCCLUDED FRONT|FRONT|TROUGH|RIDGE|CYCLONE|ANTICYCLONE)\b`),
		replacement: `**$1**`,
	},
	{
		name: "weather-condition",
		pattern: regexp.MustCompile(`(?i)\b(RAIN|SNOW|SHOWERS?|DRIZZLE|FREEZING SPRAY|SLEET|ICE|FOG|MIST|` +
			`WINDS?|GUSTS?|GALES?|SQUALLS?|THUNDERSTORMS?|STORMS?|CLEARING|CLEAR|CLOUDY|OVERCAST)\b`),
		replacement: `*$1*`,
	},
	{
		name:        "marine-condition",
		pattern:     regexp.MustCompile(`(?i)\b(SEAS|WAVES?|SWELLS?|SURF|CHOP|BREAKERS|WHITECAPS)\b`),
		replacement: `*$1*`,
	},
	{
		name: "compass-direction",
		pattern: regexp.MustCompile(`(?i)\b(NORTH(?:EAST|WEST)?(?:ERLY|ERN|WARD)?|` +
			`SOUTH(?:EAST|WEST)?(?:ERLY|ERN|WARD)?|EAST(?:ERLY|ERN|WARD)?|WEST(?:ERLY|ERN|WARD)?|` +
			`N[EW]|S[EW])\b`),
		replacement: `<span class="compass">$1</span>`,
	},
	{
		name: "measurement",
		pattern: regexp.MustCompile(`(?i)\b(\d+(?:\s*(?:TO|-)\s*\d+)?\s*` +
			`(?:MPH|KNOTS|KT|FEET|FT|NAUTICAL MILES|NM|DEGREES))\b`),
		replacement: `<span class="measure">$1</span>`,
	},
}

// applyHighlightRules runs the rule table, in order, over paragraph markup.
func applyHighlightRules(markup string) string {
	for _, rule := range highlightRules {
		markup = rule.pattern.ReplaceAllString(markup, rule.replacement)
	}
	return markup
}
