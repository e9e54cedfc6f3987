package news

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// Sector is the market sector tag assigned to an article.
type Sector string

const (
	SectorTech        Sector = "tech"
	SectorRealEstate  Sector = "real-estate"
	SectorCommodities Sector = "commodities"
	SectorGeneral     Sector = "general"
)

// Keyword patterns per sector, matched against the lowercased article text.
// The sets are checked in order, the first match wins and everything else is
// tagged general.
var sectorPatterns = []struct {
	sector   Sector
	patterns []string
}{
	{SectorTech, []string{
		"*tech*",
		"*technology*",
		"*ai*",
		"*artificial intelligence*",
		"*software*",
		"*nvidia*",
		"*apple*",
		"*microsoft*",
		"*google*",
		"*amazon*",
		"*tesla*",
	}},
	{SectorRealEstate, []string{
		"*real estate*",
		"*housing*",
		"*property*",
		"*mortgage*",
		"*home*",
		"*realty*",
		"*reit*",
		"*construction*",
	}},
	{SectorCommodities, []string{
		"*gold*",
		"*silver*",
		"*oil*",
		"*commodity*",
		"*commodities*",
		"*precious metals*",
		"*crude*",
		"*copper*",
		"*aluminum*",
	}},
}

// CategorizeArticle tags an article with a market sector based on keywords in
// its title and description. Articles matching no keyword set are general.
func CategorizeArticle(title, description string) Sector {
	text := strings.ToLower(title + " " + description)

	for _, set := range sectorPatterns {
		for _, pattern := range set.patterns {
			if glob.Glob(pattern, text) {
				return set.sector
			}
		}
	}

	return SectorGeneral
}
