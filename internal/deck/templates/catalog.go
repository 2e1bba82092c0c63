package templates

import "pitchdeck/internal/models"

var catalog = []Template{
	{
		ID:          "saas-b2b",
		Name:        "B2B SaaS",
		Category:    "Software",
		Description: "Classic B2B SaaS startup targeting SMBs with recurring revenue.",
		Deck: models.Deck{
			Basics: models.Basics{
				CompanyName: "CloudSync",
				OneLiner:    "We help SMBs automate their operations with AI-powered workflow tools",
				Industry:    "SaaS",
				Stage:       "Seed",
			},
			Narrative: models.Narrative{
				Problem:         "Small and medium businesses waste 15+ hours per week on repetitive manual processes: data entry, invoice processing, report generation, and cross-platform syncing. This costs the average SMB $45,000 annually in lost productivity. Existing enterprise tools like SAP and Salesforce are too expensive and complex for teams under 50 people.",
				Solution:        "CloudSync is an AI-powered operations platform that connects to your existing tools (QuickBooks, Slack, Gmail, Sheets) and automates repetitive workflows with zero code. Set up in 5 minutes, not 5 months.",
				UniqueAdvantage: "Our proprietary AI engine learns from each company's unique patterns, getting smarter over time. Unlike Zapier (rules-based) or enterprise RPA (complex), we combine natural language setup with adaptive automation.",
			},
			Market: models.Market{
				TargetCustomer: "SMB operations managers and founders at 10-200 person companies, primarily in professional services, e-commerce, and healthcare.",
				MarketSize:     "$195B",
				Competitors:    "Zapier\nMake (Integromat)\nMicrosoft Power Automate\nWorkato",
			},
			BusinessModel: models.BusinessModel{
				RevenueModel: "Subscription",
				Pricing:      "$49/mo (Starter), $149/mo (Pro), $399/mo (Business)",
				Channels:     "Content marketing, Product-led growth, Partner integrations",
			},
			Traction: models.Traction{
				TeamSize:      "4",
				Revenue:       "85000",
				Users:         "340",
				FundingRaised: "250000",
				FundingAsk:    "2000000",
			},
		},
	},
	{
		ID:          "fintech-payments",
		Name:        "Fintech Payments",
		Category:    "Finance",
		Description: "Payment infrastructure targeting underserved markets.",
		Deck: models.Deck{
			Basics: models.Basics{
				CompanyName: "PayBridge",
				OneLiner:    "Cross-border payments for African businesses at 1/10th the cost",
				Industry:    "Fintech",
				Stage:       "Pre-seed",
			},
			Narrative: models.Narrative{
				Problem:         "African businesses pay 7-12% in cross-border transaction fees through legacy banking rails, losing $5.2 billion annually. Settlement takes 3-5 business days. Freelancers and SMB exporters are hit hardest. Western Union and SWIFT were built for consumers and corporates, not the African middle market.",
				Solution:        "PayBridge uses stablecoin rails (USDC on Solana) with local on/off ramps in 12 African markets. Businesses send and receive payments in seconds at 0.5% fees. No crypto knowledge needed: they see local currency in, local currency out.",
				UniqueAdvantage: "Licensed in 4 African markets. Direct integrations with M-Pesa, MTN Money, and Flutterwave. Our compliance engine handles KYC/AML across jurisdictions automatically, which takes competitors 12+ months to build.",
			},
			Market: models.Market{
				TargetCustomer: "African SMB exporters/importers, freelancers receiving international payments, and diaspora remittance users. Starting with Nigeria, Kenya, South Africa, Ghana.",
				MarketSize:     "$310B",
				Competitors:    "Chipper Cash\nFlutterwave\nWise (TransferWise)\nYellow Card",
			},
			BusinessModel: models.BusinessModel{
				RevenueModel: "Transaction Fee",
				Pricing:      "0.5% per transaction, $0.10 minimum, $50 cap",
				Channels:     "Direct sales to trade associations, Partnership with accounting platforms, Referral program",
			},
			Traction: models.Traction{
				TeamSize:      "3",
				Revenue:       "12000",
				Users:         "180",
				FundingRaised: "50000",
				FundingAsk:    "1500000",
			},
		},
	},
	{
		ID:          "ai-ml",
		Name:        "AI / Machine Learning",
		Category:    "Technology",
		Description: "AI-first company with a proprietary model or dataset.",
		Deck: models.Deck{
			Basics: models.Basics{
				CompanyName: "Synthia",
				OneLiner:    "AI agents that handle customer support better than humans",
				Industry:    "AI / ML",
				Stage:       "Seed",
			},
			Narrative: models.Narrative{
				Problem:         "Customer support costs enterprises $1.3 trillion annually. The average support ticket costs $15-25 to resolve. Despite chatbot adoption, 73% of customers still prefer human agents because current AI solutions give generic, frustrating responses. Companies are stuck between expensive human agents and low-quality bots.",
				Solution:        "Synthia deploys AI agents trained on your specific product documentation, past tickets, and internal knowledge base. Our agents resolve 84% of tickets autonomously with human-level quality, understanding context, accessing account data, and taking actions (refunds, upgrades, escalations). Setup takes 2 hours, not 2 months.",
				UniqueAdvantage: "Fine-tuned on 50M+ real support conversations across 12 industries. Our proprietary feedback loop improves resolution quality 3% weekly based on customer satisfaction scores. Patent-pending \"action graph\" lets agents perform real account operations, not just answer questions.",
			},
			Market: models.Market{
				TargetCustomer: "VP of Customer Success at 200-5000 person SaaS, e-commerce, and fintech companies with 10+ support agents.",
				MarketSize:     "$200B",
				Competitors:    "Intercom Fin\nAda\nZendesk AI\nForethought",
			},
			BusinessModel: models.BusinessModel{
				RevenueModel: "Usage-based",
				Pricing:      "$0.50 per resolved ticket + $500/mo platform fee",
				Channels:     "Outbound sales to VPs of CX, Zendesk/Intercom marketplace integrations, Case study marketing",
			},
			Traction: models.Traction{
				TeamSize:      "6",
				Revenue:       "320000",
				Users:         "42",
				FundingRaised: "800000",
				FundingAsk:    "5000000",
			},
		},
	},
	{
		ID:          "marketplace",
		Name:        "Marketplace",
		Category:    "Commerce",
		Description: "Two-sided marketplace connecting supply and demand.",
		Deck: models.Deck{
			Basics: models.Basics{
				CompanyName: "SkillBridge",
				OneLiner:    "The marketplace where companies hire vetted AI specialists by the hour",
				Industry:    "AI / ML",
				Stage:       "Pre-seed",
			},
			Narrative: models.Narrative{
				Problem:         "92% of companies want to adopt AI but 67% cannot find qualified talent. The average AI engineer hire takes 4.7 months and costs $180K+ in salary alone. Consulting firms charge $400-800/hour. Small and mid-size companies are locked out of the AI revolution by talent scarcity and cost.",
				Solution:        "SkillBridge is a vetted marketplace of 500+ AI specialists available by the hour. Companies post a project (fine-tune a model, build a pipeline, audit an ML system) and get matched with qualified specialists within 24 hours. Skills-based matching, not resume-based.",
				UniqueAdvantage: "Every specialist passes a live technical assessment (not just interviews). Our matching algorithm uses project outcome data to improve matches over time. Built-in code review and project management means quality is guaranteed, and we offer a money-back guarantee on every engagement.",
			},
			Market: models.Market{
				TargetCustomer: "CTOs and VP Engineering at 50-500 person tech companies, non-tech enterprises starting AI initiatives, and funded startups needing ML expertise.",
				MarketSize:     "$200B",
				Competitors:    "Toptal\nUpwork\nAndela\nTuring",
			},
			BusinessModel: models.BusinessModel{
				RevenueModel: "Marketplace / Commission",
				Pricing:      "20% take rate on specialist hourly rates ($150-400/hr range)",
				Channels:     "SEO (AI talent hiring keywords), LinkedIn outbound to CTOs, Partnership with AI bootcamps and universities",
			},
			Traction: models.Traction{
				TeamSize:      "2",
				Revenue:       "28000",
				Users:         "85",
				FundingRaised: "0",
				FundingAsk:    "750000",
			},
		},
	},
	{
		ID:          "climate-tech",
		Name:        "Climate Tech",
		Category:    "Sustainability",
		Description: "Technology addressing climate change or environmental sustainability.",
		Deck: models.Deck{
			Basics: models.Basics{
				CompanyName: "CarbonLens",
				OneLiner:    "Real-time carbon footprint tracking for supply chains",
				Industry:    "Climate Tech",
				Stage:       "Seed",
			},
			Narrative: models.Narrative{
				Problem:         "Supply chains account for 60% of global emissions, but 93% of companies cannot accurately measure their Scope 3 emissions. New EU and SEC regulations require disclosure by 2026. Current solutions (Watershed, Persefoni) cost $100K+ annually and require months of implementation. Mid-market companies face regulatory fines with no affordable compliance path.",
				Solution:        "CarbonLens connects to your existing procurement and logistics systems (SAP, Oracle, Shopify) and automatically calculates real-time Scope 1-3 emissions using our proprietary emission factor database of 2M+ products and materials. Get compliant in days, not months.",
				UniqueAdvantage: "Largest proprietary emission factor database (2M+ SKUs). Satellite-verified actuals instead of industry averages. Our API-first approach means implementation in days vs months. 10x cheaper than enterprise alternatives.",
			},
			Market: models.Market{
				TargetCustomer: "Sustainability managers and CFOs at mid-market manufacturers, retailers, and food & beverage companies (100-5000 employees) in EU and US markets.",
				MarketSize:     "$130B",
				Competitors:    "Watershed\nPersefoni\nSweep\nPlan A",
			},
			BusinessModel: models.BusinessModel{
				RevenueModel: "Subscription",
				Pricing:      "$2,000/mo (Growth), $5,000/mo (Enterprise), $15,000/mo (Custom)",
				Channels:     "Industry conferences (COP, Climate Week), Partnership with Big 4 accounting firms, Regulatory compliance content marketing",
			},
			Traction: models.Traction{
				TeamSize:      "5",
				Revenue:       "180000",
				Users:         "28",
				FundingRaised: "500000",
				FundingAsk:    "3000000",
			},
		},
	},
	{
		ID:          "edtech",
		Name:        "EdTech",
		Category:    "Education",
		Description: "Education technology transforming how people learn.",
		Deck: models.Deck{
			Basics: models.Basics{
				CompanyName: "LearnLoop",
				OneLiner:    "AI tutor that adapts to how each student learns",
				Industry:    "EdTech",
				Stage:       "Pre-seed",
			},
			Narrative: models.Narrative{
				Problem:         "One-size-fits-all education fails 65% of students. Private tutoring ($40-100/hour) is out of reach for most families. Existing EdTech platforms (Khan Academy, Coursera) deliver the same content to every student regardless of their learning style, pace, or gaps. Teachers with 30+ students cannot personalize instruction.",
				Solution:        "LearnLoop is an AI tutor that builds a cognitive model of each student, identifying their learning style, knowledge gaps, and optimal challenge level. It generates custom lessons, practice problems, and explanations tailored to exactly where each student is. Like having a personal tutor who never gets tired.",
				UniqueAdvantage: "Our adaptive learning engine is trained on 10M+ student interaction patterns. We identify learning style (visual/verbal/kinesthetic) in the first 15 minutes and adjust all content delivery. 2.3x better learning outcomes than static content in our pilot study.",
			},
			Market: models.Market{
				TargetCustomer: "Parents of K-12 students, school districts seeking supplemental AI tools, and adult learners studying for professional certifications.",
				MarketSize:     "$400B",
				Competitors:    "Khan Academy\nDuolingo\nPhotomath\nKhanmigo",
			},
			BusinessModel: models.BusinessModel{
				RevenueModel: "Freemium",
				Pricing:      "Free (2 subjects), $14.99/mo (Family), $8/student/mo (School License)",
				Channels:     "Organic (parent social media communities), School district pilots, App Store optimization",
			},
			Traction: models.Traction{
				TeamSize:      "3",
				Revenue:       "0",
				Users:         "1200",
				FundingRaised: "75000",
				FundingAsk:    "1000000",
			},
		},
	},
}
