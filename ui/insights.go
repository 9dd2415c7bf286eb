package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Insight pairs one feature against quality with authored commentary. The
// text is fixed editorial content, not derived from the live data.
type Insight struct {
	Key     string
	Title   string
	Feature string
	YLabel  string
	Body    string
}

var insightCatalog = []Insight{
	{
		Key:     "alcohol",
		Title:   "Alcohol vs Quality",
		Feature: "alcohol",
		YLabel:  "Alcohol Content",
		Body: `**Insight:** Wines with higher alcohol levels tend to receive higher quality ratings.
Alcohol content is a significant factor in determining wine quality because it affects the flavor balance, mouthfeel, and aroma.
Higher alcohol content often indicates better fermentation processes and richer grape quality, which can contribute to enhanced flavor profiles.
However, excessive alcohol can overpower other subtle flavors, so balance is key for high-quality wines.`,
	},
	{
		Key:     "volatile-acidity",
		Title:   "Volatile Acidity vs Quality",
		Feature: "volatile acidity",
		YLabel:  "Volatile Acidity",
		Body: `**Insight:** Higher volatile acidity is associated with lower quality ratings.
Volatile acidity refers to the presence of acetic acid and related compounds in wine, which can result in a vinegar-like taste when present in high concentrations.
While some level of volatile acidity is naturally present and can enhance complexity, excessive amounts indicate poor fermentation or spoilage, leading to undesirable sensory characteristics.
Winemakers need to monitor and control volatile acidity levels to ensure the wine's overall balance and appeal.`,
	},
	{
		Key:     "sulphates",
		Title:   "Sulphates vs Quality",
		Feature: "sulphates",
		YLabel:  "Sulphates",
		Body: `**Insight:** Wines with higher sulphates levels tend to have better quality ratings.
Sulphates act as preservatives and antioxidants in wine, helping to maintain freshness and stability over time.
They play a crucial role in preventing oxidation and microbial spoilage, both of which can negatively impact wine quality.
However, excessive sulphates can lead to a harsh taste, so careful measurement is essential.
This finding underscores the importance of sulphates in producing stable, high-quality wines while maintaining consumer health guidelines.`,
	},
}

const takeawaysMarkdown = `### Key Takeaways

- **Relationship Between Alcohol and Quality:** Wines with higher alcohol content tend to have better quality scores.
- **Impact of Volatile Acidity:** High volatile acidity is often associated with lower quality wines.
- **Sulphates Influence:** Wines with higher levels of sulphates are generally rated better in quality.`

const recommendationsMarkdown = `### Recommendations for Winemakers

- Optimize alcohol content to enhance the overall quality.
- Reduce volatile acidity levels during production.
- Consider adding appropriate amounts of sulphates to improve wine stability and quality.`

// findInsight returns the catalog entry for a key, or nil.
func findInsight(key string) *Insight {
	for i := range insightCatalog {
		if insightCatalog[i].Key == key {
			return &insightCatalog[i]
		}
	}
	return nil
}

// renderMarkdown converts authored markdown into HTML for the templates.
func renderMarkdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return template.HTML(markdown.ToHTML([]byte(src), p, renderer))
}
