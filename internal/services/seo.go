package services

import (
	"strings"
	"time"

	"marketing-backend/internal/models"
)

// Static Houston real estate SEO catalogs. No external calls are made; the
// data is a curated snapshot refreshed with the codebase.
var (
	trendingKeywords = []string{
		"houston luxury homes 2025",
		"energy corridor investments",
		"houston height properties",
		"texas homebuyer incentives",
		"houston commercial real estate",
		"wood creek master planned community",
		"houston new construction homes",
		"houston rental market trends",
		"texas property tax updates",
		"houston flood zone maps",
		"houston mortgage rates 2025",
		"houston first time homebuyer programs",
	}

	houstonCompetitors = []string{
		"HAR.com (Houston Association of Realtors)",
		"Redfin Houston",
		"Zillow Houston Market",
		"Houston Chronicle Real Estate",
		"Keller Williams Houston",
		"Better Homes Houston",
		"Greenwood King Properties",
		"John Daugherty Realtors",
		"Martha Turner Sothebys",
		"Heritage Texas Properties",
	}

	basePrimaryKeywords = []string{
		"houston real estate",
		"houston homes for sale",
		"houston property investment",
		"houston luxury homes",
		"houston commercial real estate",
	}

	baseSecondaryKeywords = []string{
		"houston market trends",
		"houston neighborhood guide",
		"houston home prices",
		"houston rental market",
		"houston new construction",
	}

	baseLongtailKeywords = []string{
		"best houston neighborhoods for families 2025",
		"houston real estate investment opportunities",
		"luxury homes for sale in river oaks houston",
		"houston commercial property market analysis",
		"houston height historic homes for sale",
	}
)

// SEOService serves keyword and market-insight catalogs.
type SEOService struct{}

func NewSEOService() *SEOService {
	return &SEOService{}
}

// Trends builds the full insights payload, optionally filtered by a query
// term and focus area.
func (s *SEOService) Trends(query, focus string, includeCompetitor bool) models.SEOTrends {
	return models.SEOTrends{
		Keywords:           keywordSuggestions(query),
		MarketInsights:     marketInsights(),
		ContentSuggestions: contentSuggestions(focus),
		CompetitorAnalysis: competitorAnalysis(includeCompetitor),
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	}
}

// Analyze slots caller-provided keywords into intent buckets and intersects
// them with the trending catalog.
func (s *SEOService) Analyze(req models.SEOAnalysisRequest) models.SEOTrends {
	location := req.Location
	if location == "" {
		location = "houston"
	}

	keywords := req.Keywords
	primary := keywords
	if len(primary) > 5 {
		primary = primary[:5]
	}

	var secondary []string
	if len(keywords) > 5 {
		tail := keywords[5:]
		if len(tail) > 10 {
			tail = tail[:10]
		}
		for _, k := range tail {
			secondary = append(secondary, k+" "+location)
		}
	}

	longtail := make([]string, 0, len(keywords))
	for _, k := range keywords {
		longtail = append(longtail, k+" "+location+" 2025")
	}

	var trending []string
	for _, tk := range trendingKeywords {
		for _, ck := range keywords {
			if strings.Contains(tk, strings.ToLower(ck)) {
				trending = append(trending, tk)
				break
			}
		}
	}

	return models.SEOTrends{
		Keywords: models.KeywordSet{
			Primary:   emptyIfNil(primary),
			Secondary: emptyIfNil(secondary),
			Longtail:  emptyIfNil(longtail),
			Trending:  emptyIfNil(trending),
		},
		MarketInsights:     marketInsights(),
		ContentSuggestions: contentSuggestions(req.Focus),
		CompetitorAnalysis: competitorAnalysis(req.IncludeCompetitor),
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	}
}

func keywordSuggestions(query string) models.KeywordSet {
	base := models.KeywordSet{
		Primary:   basePrimaryKeywords,
		Secondary: baseSecondaryKeywords,
		Longtail:  baseLongtailKeywords,
		Trending:  trendingKeywords,
	}
	if query == "" {
		return base
	}

	q := strings.ToLower(query)

	var primary []string
	for _, k := range base.Primary {
		parts := strings.Fields(k)
		if strings.Contains(k, q) || (len(parts) > 1 && strings.Contains(q, parts[1])) {
			primary = append(primary, k)
		}
	}

	secondary := append(append([]string{}, base.Secondary...),
		query+" houston", "houston "+query+" market")
	longtail := append(append([]string{}, base.Longtail...),
		query+" houston texas 2025", "best "+query+" in houston")

	var trending []string
	for _, k := range base.Trending {
		if strings.Contains(k, q) {
			trending = append(trending, k)
		}
	}

	return models.KeywordSet{
		Primary:   emptyIfNil(primary),
		Secondary: secondary,
		Longtail:  longtail,
		Trending:  emptyIfNil(trending),
	}
}

func marketInsights() models.MarketInsights {
	return models.MarketInsights{
		HotTopics: []string{
			"Houston office-to-residential conversions downtown",
			"Energy sector recovery driving luxury home sales",
			"New master-planned communities in northwest Houston",
			"Hurricane Harvey flood zone reassessments",
			"Port of Houston expansion impact on east side properties",
		},
		EmergingNeighborhoods: []string{
			"East Downtown (EaDo)",
			"Third Ward revitalization",
			"Near Northside",
			"Greater Northside",
			"Second Ward",
		},
		PriceMovements: []string{
			"Inner Loop luxury market up 8.2%",
			"Suburban single-family homes stable",
			"Energy Corridor condos down 3.1%",
			"New construction premium at 12%",
			"Historic Heights properties up 15%",
		},
		InvestmentOpportunities: []string{
			"Buy-and-hold rentals in Cypress",
			"Commercial real estate downtown",
			"Luxury flips in River Oaks area",
			"Multi-family properties near Metro lines",
			"Land development opportunities in outer suburbs",
		},
	}
}

func contentSuggestions(focus string) models.ContentSuggestions {
	out := models.ContentSuggestions{
		BlogTopics: []string{
			"Houston Market Forecast 2025: What Buyers Need to Know",
			"The Ultimate Guide to Houston Neighborhoods",
			"Investment Properties in Houston: ROI Analysis",
			"Houston vs Austin: Which Texas City is Right for You?",
			"Navigating Houston's Flood Zones: A Buyer's Guide",
		},
		SocialMediaHashtags: []string{
			"#HoustonRealEstate", "#HTX", "#HoustonHomes", "#HoustonLuxury",
			"#EnergyCorridorHomes", "#TheHeightsHouston", "#HoustonInvestments",
			"#SpaceCityLiving", "#HoustonMarket", "#TexasRealEstate",
		},
		DocumentTitles: []string{
			"Houston Real Estate Market Analysis Q1 2025",
			"Investment Property Portfolio Performance Report",
			"Houston Luxury Market Trends and Forecasts",
			"Comprehensive Neighborhood Comparison Guide",
			"Houston Commercial Real Estate Investment Overview",
		},
		MetaDescriptions: []string{
			"Discover Houston's hottest real estate markets in 2025. Expert analysis of prices, trends, and investment opportunities.",
			"Professional Houston real estate services. Find luxury homes, investment properties, and market insights.",
			"Houston real estate market data and trends. Get expert advice on buying, selling, and investing in HTX.",
		},
	}

	if focus != "" {
		for i, topic := range out.BlogTopics {
			out.BlogTopics[i] = strings.Replace(topic, "Houston", "Houston "+focus, 1)
		}
		for i, title := range out.DocumentTitles {
			if strings.Contains(title, "Market Analysis") {
				out.DocumentTitles[i] = focus + " " + title
			}
		}
	}

	return out
}

func competitorAnalysis(include bool) models.CompetitorAnalysis {
	if !include {
		return models.CompetitorAnalysis{
			TopCompetitors:   []string{},
			TheirTopKeywords: []string{},
			ContentGaps:      []string{},
			OpportunityAreas: []string{},
		}
	}

	return models.CompetitorAnalysis{
		TopCompetitors: houstonCompetitors[:5],
		TheirTopKeywords: []string{
			"houston mls search",
			"houston home values",
			"houston realtor directory",
			"houston property search",
			"houston market reports",
		},
		ContentGaps: []string{
			"Interactive neighborhood comparison tools",
			"Real-time market data visualization",
			"Investment ROI calculators with Houston data",
			"Hurricane/flood risk assessment tools",
			"Local economic impact analysis",
		},
		OpportunityAreas: []string{
			"Voice search optimization for local queries",
			"Video content for neighborhood tours",
			"Interactive map-based property search",
			"AI-powered property recommendations",
			"Hyperlocal market micro-trend analysis",
		},
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
