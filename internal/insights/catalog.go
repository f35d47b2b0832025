package insights

import "math/rand"

// Categories with pre-generated insights, in display order.
var Categories = []string{"technology", "health", "business", "entertainment", "sports", "science"}

// Catalog returns the pre-generated insights used when no LLM provider is
// available. Five per category, cycled through on refresh.
func Catalog() []Insight {
	all := []Insight{
		{
			ID:         "tech1",
			Type:       TypeTrend,
			Title:      "Technology Trend: AI Integration Becoming Standard",
			Content:    "Companies across industries are rapidly integrating AI to streamline operations and enhance user experiences. This trend is accelerating adoption rates and creating new market opportunities.",
			Sentiment:  "positive",
			Confidence: 92,
			Category:   "technology",
		},
		{
			ID:         "tech2",
			Type:       TypeTrend,
			Title:      "Technology Trend: Cybersecurity Threats Evolving",
			Content:    "Recent data breaches highlight the sophisticated evolution of cyber threats. Organizations are responding by increasing security budgets and implementing zero-trust architecture.",
			Sentiment:  "negative",
			Confidence: 89,
			Category:   "technology",
		},
		{
			ID:         "tech3",
			Type:       TypeAnalysis,
			Title:      "The Future of Quantum Computing",
			Content:    "Quantum computing is approaching a tipping point where practical applications may soon outpace theoretical models. Industry leaders are preparing for significant computational breakthroughs within 3-5 years.",
			Sentiment:  "positive",
			Confidence: 84,
			Category:   "technology",
		},
		{
			ID:         "tech4",
			Type:       TypeTrend,
			Title:      "Technology Trend: 5G Transforming Connectivity",
			Content:    "The rollout of 5G is accelerating digital transformation across sectors. Industries are leveraging enhanced bandwidth and reduced latency to enable IoT innovations and real-time applications.",
			Sentiment:  "positive",
			Confidence: 90,
			Category:   "technology",
		},
		{
			ID:         "tech5",
			Type:       TypeFactCheck,
			Title:      "Are Social Media Algorithms Biased?",
			Content:    "Research indicates algorithmic bias exists in major social media platforms, though the extent varies by platform. Companies are implementing more transparent AI ethics policies in response to public pressure.",
			Sentiment:  "neutral",
			Confidence: 78,
			Category:   "technology",
		},
		{
			ID:         "health1",
			Type:       TypeTrend,
			Title:      "Health Trend: Precision Medicine Advances",
			Content:    "Healthcare is shifting toward personalized treatments based on genetic profiles. Early adopters are reporting significantly improved outcomes for complex conditions.",
			Sentiment:  "positive",
			Confidence: 88,
			Category:   "health",
		},
		{
			ID:         "health2",
			Type:       TypeTrend,
			Title:      "Health Trend: Mental Health Awareness",
			Content:    "Workplace mental health programs are expanding rapidly as organizations recognize the connection between wellbeing and productivity. Implementation rates have doubled in the past year.",
			Sentiment:  "positive",
			Confidence: 86,
			Category:   "health",
		},
		{
			ID:         "health3",
			Type:       TypeAnalysis,
			Title:      "The Impact of Wearable Health Devices",
			Content:    "Wearable health technology is fundamentally changing preventative care approaches. Data shows users of health wearables are more likely to make positive lifestyle changes and detect health issues earlier.",
			Sentiment:  "positive",
			Confidence: 82,
			Category:   "health",
		},
		{
			ID:         "health4",
			Type:       TypeTrend,
			Title:      "Health Trend: Antibiotic Resistance Concerns",
			Content:    "The growing threat of antibiotic-resistant bacteria is prompting new research initiatives. Scientists are exploring alternative treatments including bacteriophage therapy and antimicrobial peptides.",
			Sentiment:  "negative",
			Confidence: 91,
			Category:   "health",
		},
		{
			ID:         "health5",
			Type:       TypeFactCheck,
			Title:      "Do Plant-Based Diets Improve Health Outcomes?",
			Content:    "Multiple long-term studies confirm plant-based diets correlate with reduced risk of cardiovascular disease and certain cancers. Benefits are most pronounced when processed foods are limited regardless of diet type.",
			Sentiment:  "positive",
			Confidence: 85,
			Category:   "health",
		},
		{
			ID:         "business1",
			Type:       TypeTrend,
			Title:      "Business Trend: Sustainable Investments Rising",
			Content:    "ESG-focused investments are outperforming traditional portfolios in multiple markets. Companies with strong sustainability practices are attracting premium valuations from investors.",
			Sentiment:  "positive",
			Confidence: 87,
			Category:   "business",
		},
		{
			ID:         "business2",
			Type:       TypeTrend,
			Title:      "Business Trend: Supply Chain Restructuring",
			Content:    "Global businesses are diversifying suppliers and reshoring critical operations to mitigate disruption risks. This shift is creating new regional manufacturing hubs and logistics networks.",
			Sentiment:  "neutral",
			Confidence: 89,
			Category:   "business",
		},
		{
			ID:         "business3",
			Type:       TypeAnalysis,
			Title:      "The Rise of Decentralized Finance",
			Content:    "DeFi platforms are challenging traditional banking models with innovative financial products. Regulatory frameworks are evolving to address this rapidly growing sector while protecting consumers.",
			Sentiment:  "positive",
			Confidence: 83,
			Category:   "business",
		},
		{
			ID:         "business4",
			Type:       TypeTrend,
			Title:      "Business Trend: Remote Work Economics",
			Content:    "Companies are reporting mixed financial impacts from permanent remote work policies. Cost savings on physical infrastructure are being balanced against productivity and collaboration concerns.",
			Sentiment:  "neutral",
			Confidence: 81,
			Category:   "business",
		},
		{
			ID:         "business5",
			Type:       TypeFactCheck,
			Title:      "Are Small Businesses Recovering Post-Pandemic?",
			Content:    "Data shows uneven recovery across small business sectors. Food service and retail continue to face challenges while professional services and technology sectors have largely rebounded or expanded.",
			Sentiment:  "neutral",
			Confidence: 84,
			Category:   "business",
		},
		{
			ID:         "entertainment1",
			Type:       TypeTrend,
			Title:      "Entertainment Trend: Streaming Platform Consolidation",
			Content:    "Major streaming services are acquiring competitors and expanding content libraries. This consolidation is reshaping how content is created, distributed, and monetized globally.",
			Sentiment:  "neutral",
			Confidence: 88,
			Category:   "entertainment",
		},
		{
			ID:         "entertainment2",
			Type:       TypeTrend,
			Title:      "Entertainment Trend: Virtual Production Growth",
			Content:    "LED volume stages and real-time rendering are revolutionizing film and TV production. These technologies reduce costs while enabling creative possibilities previously limited to big-budget productions.",
			Sentiment:  "positive",
			Confidence: 86,
			Category:   "entertainment",
		},
		{
			ID:         "entertainment3",
			Type:       TypeAnalysis,
			Title:      "The Globalization of Content",
			Content:    "International content is finding broader audiences through localization and culturally-aware marketing. Productions from diverse markets are consistently breaking viewing records on global platforms.",
			Sentiment:  "positive",
			Confidence: 85,
			Category:   "entertainment",
		},
		{
			ID:         "entertainment4",
			Type:       TypeTrend,
			Title:      "Entertainment Trend: Gaming as Social Platform",
			Content:    "Video games are evolving into comprehensive social spaces beyond pure entertainment. In-game events and persistent worlds are creating new forms of digital community and shared experience.",
			Sentiment:  "positive",
			Confidence: 89,
			Category:   "entertainment",
		},
		{
			ID:         "entertainment5",
			Type:       TypeFactCheck,
			Title:      "Is Traditional Cinema Attendance Declining?",
			Content:    "Box office data confirms a structural shift in theater attendance patterns. While blockbuster releases still drive significant audiences, mid-budget films increasingly find primary success through streaming platforms.",
			Sentiment:  "negative",
			Confidence: 83,
			Category:   "entertainment",
		},
		{
			ID:         "sports1",
			Type:       TypeTrend,
			Title:      "Sports Trend: Player Data Analytics",
			Content:    "Advanced analytics are transforming player recruitment and development across major sports. Teams leveraging sophisticated data models are gaining competitive advantages in talent evaluation.",
			Sentiment:  "positive",
			Confidence: 90,
			Category:   "sports",
		},
		{
			ID:         "sports2",
			Type:       TypeTrend,
			Title:      "Sports Trend: Athlete Mental Health Focus",
			Content:    "Professional leagues are implementing comprehensive mental health resources for athletes. This shift represents a significant cultural change in how athletic performance is understood and supported.",
			Sentiment:  "positive",
			Confidence: 87,
			Category:   "sports",
		},
		{
			ID:         "sports3",
			Type:       TypeAnalysis,
			Title:      "The Evolution of Sports Broadcasting",
			Content:    "Digital platforms are creating personalized viewing experiences through interactive features and multiple camera angles. Traditional broadcasters are adapting by incorporating similar technologies into their coverage.",
			Sentiment:  "positive",
			Confidence: 84,
			Category:   "sports",
		},
		{
			ID:         "sports4",
			Type:       TypeTrend,
			Title:      "Sports Trend: Esports Going Mainstream",
			Content:    "Major traditional sports organizations are launching esports divisions and partnerships. Viewership demographics show significant audience overlap between traditional and electronic competitive sports.",
			Sentiment:  "positive",
			Confidence: 88,
			Category:   "sports",
		},
		{
			ID:         "sports5",
			Type:       TypeFactCheck,
			Title:      "Are New Stadium Technologies Enhancing Fan Experience?",
			Content:    "Survey data indicates high satisfaction with stadium technology upgrades such as mobile ordering and augmented reality features. Venues investing in connectivity infrastructure report increased per-capita spending and attendance.",
			Sentiment:  "positive",
			Confidence: 82,
			Category:   "sports",
		},
		{
			ID:         "science1",
			Type:       TypeTrend,
			Title:      "Science Trend: Climate Research Advances",
			Content:    "New climate models are providing more accurate predictions of regional impacts. These refined models are helping communities develop targeted adaptation strategies based on specific local challenges.",
			Sentiment:  "neutral",
			Confidence: 93,
			Category:   "science",
		},
		{
			ID:         "science2",
			Type:       TypeTrend,
			Title:      "Science Trend: Space Exploration Commercialization",
			Content:    "Private companies are achieving milestones previously limited to government space agencies. This commercialization is accelerating innovation and reducing costs across the space industry.",
			Sentiment:  "positive",
			Confidence: 89,
			Category:   "science",
		},
		{
			ID:         "science3",
			Type:       TypeAnalysis,
			Title:      "The CRISPR Revolution",
			Content:    "CRISPR gene editing technologies are advancing rapidly from research to clinical applications. Early therapeutic trials are showing promising results for previously untreatable genetic conditions.",
			Sentiment:  "positive",
			Confidence: 86,
			Category:   "science",
		},
		{
			ID:         "science4",
			Type:       TypeTrend,
			Title:      "Science Trend: Renewable Energy Efficiency",
			Content:    "Solar and wind energy technologies have reached cost parity with fossil fuels in most markets. Ongoing research is focused on storage solutions to address intermittency challenges.",
			Sentiment:  "positive",
			Confidence: 91,
			Category:   "science",
		},
		{
			ID:         "science5",
			Type:       TypeFactCheck,
			Title:      "Is Fusion Energy Becoming Commercially Viable?",
			Content:    "Recent breakthroughs in fusion research have demonstrated scientific feasibility, but commercial viability remains distant. Most experts project 15-20 years before fusion contributes meaningfully to energy grids.",
			Sentiment:  "neutral",
			Confidence: 84,
			Category:   "science",
		},
	}
	for i := range all {
		all[i].RelatedArticles = []string{}
	}
	return all
}

// FallbackInsights is the last-resort response when even the catalog path
// fails.
func FallbackInsights() []Insight {
	all := []Insight{
		{
			ID:         "fallback1",
			Type:       TypeAnalysis,
			Title:      "AI Analysis Temporarily Unavailable",
			Content:    "Our AI analysis system is currently experiencing issues. We'll be back soon with fresh insights on the latest news.",
			Sentiment:  "neutral",
			Confidence: 80,
			Category:   "technology",
		},
		{
			ID:         "fallback2",
			Type:       TypeTrend,
			Title:      "Trending Technology: Cloud Computing",
			Content:    "Cloud computing continues to transform how businesses operate, with increasing adoption across industries driving innovation and efficiency.",
			Sentiment:  "positive",
			Confidence: 85,
			Category:   "technology",
		},
		{
			ID:         "fallback3",
			Type:       TypeFactCheck,
			Title:      "Health Research Facts",
			Content:    "Recent studies confirm regular physical activity significantly reduces risk across multiple health conditions.",
			Sentiment:  "positive",
			Confidence: 90,
			Category:   "health",
		},
	}
	for i := range all {
		all[i].RelatedArticles = []string{}
	}
	return all
}

// CategoryCandidates returns catalog insights for an article's category.
// Unknown categories fall back to analysis-type insights, then to the first
// three catalog entries.
func CategoryCandidates(category string) []Insight {
	all := Catalog()

	var candidates []Insight
	for _, in := range all {
		if in.Category == category {
			candidates = append(candidates, in)
		}
	}
	if len(candidates) > 0 {
		return candidates
	}

	for _, in := range all {
		if in.Type == TypeAnalysis {
			candidates = append(candidates, in)
		}
	}
	if len(candidates) > 0 {
		return candidates
	}

	return all[:3]
}

// HomeSelection picks one random insight per category, padding with further
// catalog entries if fewer than five categories yielded one.
func HomeSelection() []Insight {
	all := Catalog()
	selected := make([]Insight, 0, len(Categories))
	chosen := make(map[string]struct{})

	for _, category := range Categories {
		var pool []Insight
		for _, in := range all {
			if in.Category == category {
				pool = append(pool, in)
			}
		}
		if len(pool) > 0 {
			pick := pool[rand.Intn(len(pool))]
			selected = append(selected, pick)
			chosen[pick.ID] = struct{}{}
		}
	}

	for _, in := range all {
		if len(selected) >= 5 {
			break
		}
		if _, ok := chosen[in.ID]; ok {
			continue
		}
		selected = append(selected, in)
		chosen[in.ID] = struct{}{}
	}

	return selected
}
