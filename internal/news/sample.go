package news

import "time"

// SampleArticles returns the static fallback feed.
//
// When the upstream news API cannot be reached, callers serve these instead
// of failing the request. Timestamps are relative to now so the feed always
// looks current.
func SampleArticles(now time.Time) []Article {
	return []Article{
		{
			ID:          "1",
			Title:       "Nvidia's Q4 Earnings Beat Expectations, Stock Surges 15%",
			Description: "Nvidia reported quarterly earnings that exceeded analyst expectations, driven by strong demand for AI chips and data center solutions.",
			URL:         "https://example.com/nvidia-earnings",
			PublishedAt: now,
			Source:      "Financial Times",
			Sector:      SectorTech,
			Summary:     "Nvidia's exceptional Q4 performance, with 15% stock surge, reinforces our bullish tech sector forecast. Strong AI chip demand indicates continued growth in semiconductor industry.",
			Impact:      ImpactPositive,
			Confidence:  85,
		},
		{
			ID:          "2",
			Title:       "Federal Reserve Signals Potential Rate Cuts in 2024",
			Description: "The Federal Reserve indicated it may consider interest rate reductions this year, citing improved inflation data and economic stability.",
			URL:         "https://example.com/fed-rate-cuts",
			PublishedAt: now.Add(-2 * time.Hour),
			Source:      "Reuters",
			Sector:      SectorGeneral,
			Summary:     "Fed's dovish stance on interest rates could boost real estate markets and commodity prices. This aligns with our prediction of increased investment in property markets.",
			Impact:      ImpactPositive,
			Confidence:  78,
		},
		{
			ID:          "3",
			Title:       "Housing Market Shows Signs of Recovery in Major Cities",
			Description: "Recent data shows increased home sales and rising prices in major metropolitan areas, indicating a potential recovery in the real estate market.",
			URL:         "https://example.com/housing-recovery",
			PublishedAt: now.Add(-4 * time.Hour),
			Source:      "Bloomberg",
			Sector:      SectorRealEstate,
			Summary:     "Housing market recovery in major cities supports our real estate investment predictions. Increased demand suggests continued growth in property values.",
			Impact:      ImpactPositive,
			Confidence:  72,
		},
		{
			ID:          "4",
			Title:       "Gold Prices Hit 3-Month High Amid Economic Uncertainty",
			Description: "Gold prices reached their highest level in three months as investors seek safe-haven assets amid global economic uncertainty.",
			URL:         "https://example.com/gold-prices",
			PublishedAt: now.Add(-6 * time.Hour),
			Source:      "MarketWatch",
			Sector:      SectorCommodities,
			Summary:     "Gold's surge to 3-month high validates our commodity investment strategy. Economic uncertainty driving safe-haven demand supports precious metals outlook.",
			Impact:      ImpactPositive,
			Confidence:  81,
		},
		{
			ID:          "5",
			Title:       "Tech Layoffs Continue as Companies Optimize Operations",
			Description: "Major technology companies announce additional layoffs as they focus on efficiency and AI-driven automation.",
			URL:         "https://example.com/tech-layoffs",
			PublishedAt: now.Add(-8 * time.Hour),
			Source:      "TechCrunch",
			Sector:      SectorTech,
			Summary:     "Continued tech layoffs suggest industry consolidation and AI adoption acceleration. This may impact short-term tech sector performance but supports long-term AI growth thesis.",
			Impact:      ImpactNeutral,
			Confidence:  65,
		},
	}
}
