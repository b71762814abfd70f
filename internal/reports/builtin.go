package reports

import "whattohack-api/internal/models"

// Builtin returns a fresh copy of the featured catalog.
func Builtin() []models.Report {
	return []models.Report{
		supabaseLaunchWeek(),
		hackMIT2025(),
		ethGlobalOnline(),
	}
}

func supabaseLaunchWeek() models.Report {
	return models.Report{
		HackathonName: "Supabase Launch Week",
		GeneratedAt:   "2025-01-10",
		Instant:       true,
		Hackathon: &models.HackathonRecord{
			Name:        "Supabase Launch Week",
			Date:        "December 15-22, 2025",
			Location:    "Virtual",
			Organizer:   "Supabase",
			Sponsors:    []string{"Supabase", "OpenAI", "Algolia", "Figma"},
			Description: "A week-long online hackathon built around the features Supabase ships during Launch Week.",
			Jury:        []string{"Paul Copplestone (Supabase CEO)", "Ant Wilson (Supabase CTO)"},
			URL:         "https://supabase.com/launch-week",
			Theme:       "Developer Tools",
		},
		Ideas: []models.ProjectIdea{
			{
				ID: "pre-gen-1", Title: "AI-Powered Database Query Assistant",
				Description: "Natural language interface that turns plain English requests into optimized SQL against a Supabase project.",
				Score:       95, Category: "AI Tools",
				Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
				Sponsors:       []string{"Supabase", "OpenAI"},
				Why:            "Pairs the new Supabase AI features with GPT models and removes a real pain point: writing complex SQL.",
				Leverages:      []string{"Supabase just launched vector search", "AI plus databases is a founder talking point", "OpenAI demos are high-value"},
				RequiredSkills: []string{"TypeScript", "React", "SQL", "OpenAI API"},
				EstimatedTime:  "12-16 hours",
			},
			{
				ID: "pre-gen-2", Title: "Real-time Collaborative Whiteboard",
				Description: "Multiplayer whiteboard on Supabase Realtime with drawing tools, sticky notes and shape recognition.",
				Score:       88, Category: "Collaboration",
				Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
				Sponsors:       []string{"Supabase", "Figma"},
				Why:            "Shows off Realtime and sits next to the Figma ecosystem. Live multiplayer demos land well with judges.",
				Leverages:      []string{"Realtime is the differentiator against Firebase", "Figma plugin ecosystem fit", "Multiplayer is trending"},
				RequiredSkills: []string{"React", "Canvas API", "WebSockets", "Supabase Realtime"},
				EstimatedTime:  "14-18 hours",
			},
			{
				ID: "pre-gen-3", Title: "Smart Search Dashboard",
				Description: "Universal search over several data sources with Algolia ranking on top of Supabase storage.",
				Score:       92, Category: "Search & Discovery",
				Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
				Sponsors:       []string{"Supabase", "Algolia"},
				Why:            "Supabase stores, Algolia searches. Algolia AI Search is new, so the project is timely.",
				Leverages:      []string{"Algolia AI Search release", "Integration creates stack stickiness", "Both sponsors gain from interoperability"},
				RequiredSkills: []string{"React", "Algolia InstantSearch", "Supabase", "TypeScript"},
				EstimatedTime:  "10-14 hours",
			},
			{
				ID: "pre-gen-4", Title: "No-Code API Builder",
				Description: "Visual builder that exposes Supabase tables as REST endpoints with generated docs and a Figma plugin to visualize them.",
				Score:       85, Category: "Developer Tools",
				Difficulty: models.DifficultyAdvanced, TechRequirements: models.TechHighlyTechnical,
				Sponsors:       []string{"Supabase", "Figma"},
				Why:            "Rides the no-code wave while exercising advanced Supabase features. The Figma angle is memorable.",
				Leverages:      []string{"No-code tools are booming", "Figma Dev Mode is a natural extension", "Supabase courts non-technical users"},
				RequiredSkills: []string{"React", "Node.js", "Figma Plugin API", "Supabase Admin API"},
				EstimatedTime:  "16-20 hours",
			},
			{
				ID: "pre-gen-5", Title: "AI Content Moderator",
				Description: "Real-time moderation pipeline on Supabase Edge Functions that flags content with context-aware model calls.",
				Score:       90, Category: "AI Safety",
				Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
				Sponsors:       []string{"Supabase", "OpenAI"},
				Why:            "Solves a problem every platform has with freshly launched Edge Functions.",
				Leverages:      []string{"Moderation is a universal pain point", "Edge Functions recently launched", "AI safety is a hot topic"},
				RequiredSkills: []string{"TypeScript", "Deno", "OpenAI Moderation API", "Supabase"},
				EstimatedTime:  "10-12 hours",
			},
			{
				ID: "pre-gen-6", Title: "Design System Manager",
				Description: "Hub for design tokens synced between Figma and Supabase so designers and developers share one source of truth.",
				Score:       87, Category: "Design Tools",
				Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
				Sponsors:       []string{"Figma", "Supabase"},
				Why:            "Bridges the design and development gap using both sponsors equally.",
				Leverages:      []string{"Design tokens are trending", "Figma Variables need developer tooling", "Supabase as the versioned backend"},
				RequiredSkills: []string{"React", "Figma API", "Supabase", "Design Tokens"},
				EstimatedTime:  "12-16 hours",
			},
		},
		Leverages: []models.Leverage{
			{
				ID: "pre-lev-1", Leverage: "New AI Features Launch", StrategicImpact: "Product Launch",
				Description: "Supabase shipped vector search and embedding storage. Projects using them show early adoption.",
				Company:     "Supabase", Relevance: models.RelevanceHigh,
			},
			{
				ID: "pre-lev-2", Leverage: "Realtime Collaboration Trend", StrategicImpact: "Technical Showcase",
				Description: "Multiplayer experiences are trending and Realtime is the differentiator against Firebase.",
				Company:     "Supabase", Relevance: models.RelevanceHigh,
			},
			{
				ID: "pre-lev-3", Leverage: "AI Search Release", StrategicImpact: "Product Launch",
				Description: "Algolia launched AI-powered search and wants early showcase projects for its marketing.",
				Company:     "Algolia", Relevance: models.RelevanceHigh,
			},
			{
				ID: "pre-lev-4", Leverage: "Figma Make Launch", StrategicImpact: "Strategic Positioning",
				Description: "Figma is establishing Make and looks for early adopters who use it in public.",
				Company:     "Figma", Relevance: models.RelevanceHigh,
			},
			{
				ID: "pre-lev-5", Leverage: "Design-to-Code Integration", StrategicImpact: "Integration & Ecosystem",
				Description: "Dev Mode is recent. Figma-to-code workflows strengthen Figma's place in developer tooling.",
				Company:     "Figma", Relevance: models.RelevanceMedium,
			},
		},
	}
}

func hackMIT2025() models.Report {
	return models.Report{
		HackathonName: "HackMIT 2025",
		GeneratedAt:   "2025-01-10",
		Instant:       true,
		Hackathon: &models.HackathonRecord{
			Name:        "HackMIT 2025",
			Date:        "September 13-14, 2025",
			Location:    "Cambridge, MA",
			Organizer:   "MIT",
			Sponsors:    []string{"General"},
			Description: "MIT's flagship undergraduate hackathon.",
			Jury:        []string{},
			URL:         "https://hackmit.org",
		},
		Ideas: []models.ProjectIdea{
			{
				ID: "hackmit-1", Title: "Campus Resource Optimizer",
				Description: "Predicts demand for study rooms, equipment and events and suggests better allocations.",
				Score:       88, Category: "Education Tech",
				Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
				Sponsors:       []string{"General"},
				Why:            "Addresses real campus pain points with a practical use of AI.",
				Leverages:      []string{"HackMIT favors practical solutions", "The MIT community values efficiency tools"},
				RequiredSkills: []string{"Python", "React", "Machine Learning", "Data Analytics"},
				EstimatedTime:  "14-18 hours",
			},
			{
				ID: "hackmit-2", Title: "Research Paper Summarizer",
				Description: "Summarizes academic papers and highlights contributions, methods and future work.",
				Score:       92, Category: "AI Tools",
				Difficulty: models.DifficultyIntermediate, TechRequirements: models.TechModerate,
				Sponsors:       []string{"General"},
				Why:            "Directly helps the researchers and students who make up the audience.",
				Leverages:      []string{"Academic audience values research tools", "NLP is trending at MIT"},
				RequiredSkills: []string{"Python", "NLP", "React", "PDF Processing"},
				EstimatedTime:  "12-16 hours",
			},
		},
		Leverages: []models.Leverage{
			{
				ID: "hackmit-lev-1", Leverage: "Academic Focus", StrategicImpact: "Audience Alignment",
				Description: "Judges are MIT faculty and students who favor projects solving real academic problems.",
				Company:     "General", Relevance: models.RelevanceHigh,
			},
		},
	}
}

// ethGlobalOnline has no pre-generated report; it only backs failed
// extractions.
func ethGlobalOnline() models.Report {
	return models.Report{
		HackathonName: "ETHGlobal Online",
		Hackathon: &models.HackathonRecord{
			Name:        "ETHGlobal Online",
			Date:        "TBD",
			Location:    "Virtual",
			Organizer:   "ETHGlobal",
			Sponsors:    []string{"Ethereum Foundation", "Chainlink", "Uniswap"},
			Description: "A month-long online Ethereum hackathon.",
			Jury:        []string{},
			URL:         "https://ethglobal.com",
			Theme:       "Web3",
		},
		Ideas:     []models.ProjectIdea{},
		Leverages: []models.Leverage{},
	}
}
