package services

import (
	"regexp"
	"strings"
)

const (
	instagramHashtags = "\n\n#HoustonRealEstate #HoustonLandGuys #RealEstateInvesting #Houston #PropertyInvestment"
	linkedinSignoff   = "\n\n---\nHouston Land Guys - Your trusted Houston real estate investment partner"
	twitterSuffix     = "... 🧵"

	instagramMaxRunes   = 2200
	instagramTruncateAt = 2100
	twitterMaxRunes     = 280
	twitterBodyRunes    = 250
)

var (
	sentenceBreakRe = regexp.MustCompile(`([.!?])\s+`)
	facebookEmoji   = []string{"🏠", "🏡", "🌆", "💰", "📈", "🔑", "✨"}
)

// FormatContentForPlatform adapts raw generated text to a target platform.
// Unrecognized platforms pass through unchanged. Formatting is idempotent:
// already-truncated twitter text is not truncated further.
func FormatContentForPlatform(content, platform string) string {
	switch strings.ToLower(platform) {
	case "instagram":
		out := content + instagramHashtags
		runes := []rune(out)
		if len(runes) > instagramMaxRunes {
			return string(runes[:instagramTruncateAt]) + "..."
		}
		return out

	case "twitter":
		runes := []rune(content)
		if len(runes) > twitterMaxRunes {
			return string(runes[:twitterBodyRunes]) + twitterSuffix
		}
		return content

	case "linkedin":
		out := sentenceBreakRe.ReplaceAllString(content, "$1\n\n")
		return out + linkedinSignoff

	case "facebook":
		for _, emoji := range facebookEmoji {
			if strings.Contains(content, emoji) {
				return content
			}
		}
		return "🏠 " + content

	default:
		return content
	}
}
