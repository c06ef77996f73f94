package services

import (
	"strings"

	"marketing-backend/internal/models"
)

// fallbackKey identifies one canned template.
type fallbackKey struct {
	contentType string
	platform    string
}

// fallbackTemplates is the static bank of hand-written marketing copy used
// when no AI provider is reachable. Templates reference the requested topic
// through the {topic} placeholder.
var fallbackTemplates = map[fallbackKey]string{
	{models.ContentTypeMarketUpdate, "instagram"}: "📊 Houston Market Update: {topic}\n\nHouston remains America's #1 building market with 46,269 permits this year. Now is the time to explore opportunities in {topic}.\n\nDM Houston Land Guys to learn more! 🏠",
	{models.ContentTypeMarketUpdate, "facebook"}:  "📊 Houston Market Update: {topic}\n\nThe Houston market keeps delivering. With $43.8B in building contracts, areas like {topic} are seeing strong momentum. Houston Land Guys tracks these trends daily so you don't have to.\n\nReach out for a free market consultation.",
	{models.ContentTypeMarketUpdate, "linkedin"}:  "Houston Market Update: {topic}\n\nHouston continues to lead national building activity with 46,269 permits and $43.8B in contracts. Our analysis of {topic} points to sustained investor demand.\n\nHouston Land Guys - data-driven real estate investment.",
	{models.ContentTypeMarketUpdate, "twitter"}:   "📊 {topic}: Houston leads the nation in building activity. Investors are watching closely. #HoustonRealEstate",

	{models.ContentTypeInvestmentOpportunity, "instagram"}: "💰 Investment Alert: {topic}\n\nHouston's growth story creates real opportunities for investors. {topic} checks all the boxes: location, demand, and upside.\n\nTalk to Houston Land Guys before this one's gone.",
	{models.ContentTypeInvestmentOpportunity, "linkedin"}:  "Investment Opportunity: {topic}\n\nHouston's fundamentals remain among the strongest in the country. We see {topic} as a compelling entry point for investors seeking cash flow and appreciation.\n\nHouston Land Guys - your local investment partner.",
	{models.ContentTypeInvestmentOpportunity, "facebook"}:  "💰 Looking for your next investment? {topic} deserves a close look. Houston's job growth and building boom keep pushing demand higher. Houston Land Guys can walk you through the numbers.",

	{models.ContentTypeNeighborhoodSpotlight, "instagram"}: "📍 Neighborhood Spotlight: {topic}\n\nOne of Houston's most exciting areas right now. Great dining, strong schools, and property values on the rise.\n\nThinking about {topic}? Houston Land Guys knows it street by street.",
	{models.ContentTypeNeighborhoodSpotlight, "facebook"}:  "📍 Spotlight on {topic}! From local favorites to new development, this Houston neighborhood has it all. Ask Houston Land Guys what homes here are really selling for.",

	{models.ContentTypeMarketAnalysis, "linkedin"}: "Market Analysis: {topic}\n\nOur latest review of {topic} shows healthy absorption, disciplined inventory, and pricing power concentrated in well-located product. Houston's macro picture continues to support the thesis.\n\nHouston Land Guys - rigorous local analysis.",

	{models.ContentTypeQuickTip, "instagram"}: "💡 Quick Tip: {topic}\n\nSmart Houston investors know the details matter. Save this one for later!\n\nFollow Houston Land Guys for daily real estate tips.",
	{models.ContentTypeQuickTip, "twitter"}:   "💡 Quick tip: {topic}. Houston investors, take note. #HoustonRealEstate",

	{models.ContentTypePropertyListing, "instagram"}: "🏡 Just Listed: {topic}\n\nAnother standout Houston property hits the market. Opportunities like this move fast.\n\nContact Houston Land Guys today for details and a private showing.",
	{models.ContentTypePropertyListing, "facebook"}:  "🏡 New on the market: {topic}. Houston properties in this range are moving quickly. Message Houston Land Guys for photos, pricing, and showing times.",
}

// genericFallbackTemplate backs any (contentType, platform) pair without a
// dedicated entry, so the fallback tier always produces content.
const genericFallbackTemplate = "🏠 {topic}\n\nHouston's real estate market continues to offer outstanding opportunities for buyers and investors alike. As America's #1 building market, Houston combines strong job growth with attractive property values.\n\nHouston Land Guys - Your trusted Houston real estate investment partner. Contact us today to learn more about {topic}."

// FallbackContent looks up canned copy for the request, degrading to the
// generic Houston template when no dedicated entry exists.
func FallbackContent(topic, contentType, platform string) string {
	tmpl, ok := fallbackTemplates[fallbackKey{strings.ToLower(contentType), strings.ToLower(platform)}]
	if !ok {
		tmpl = genericFallbackTemplate
	}
	return strings.ReplaceAll(tmpl, "{topic}", topic)
}
