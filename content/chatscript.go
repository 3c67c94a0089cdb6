package content

import "iot-site-backend/models"

// ChatScript holds every canned response the chat responder can produce.
// The responder engine in services/ owns rule ordering; this file owns the
// words. All keyword lists are lowercase, matched as substrings of the
// lowercased user text.
type ChatScript struct {
	// Welcome message inserted when a session opens for the first time
	WelcomeText    string
	WelcomeOptions []string

	// QuickReplies maps a canned button label to its fixed response.
	// Labels match exactly (case-sensitive), whether clicked or typed.
	QuickReplies map[string]models.BotReply

	// QuickReplyFallback is used when a clicked label is not in the table.
	// The label is echoed into the text via the %s verb.
	QuickReplyFallbackText    string
	QuickReplyFallbackOptions []string

	// Escalation keyword matching and the handoff response
	EscalationKeywords []string
	EscalationReply    models.BotReply

	// Keyword rule groups, evaluated in slice order within each group
	ProductRules  []KeywordRule
	SolutionRules []KeywordRule
	GenericRules  []KeywordRule

	// Page-section rules used when no keyword matched
	PageRules []PageRule

	// Continuations maps a topic label to the candidate follow-up
	// sentences the responder picks from pseudo-randomly
	Continuations       map[string][]string
	ContinuationOptions []string

	// Fallback is the terminal clarification response
	Fallback models.BotReply
}

// KeywordRule matches any of its keywords as a substring and returns a
// fixed reply
type KeywordRule struct {
	Topic    string
	Keywords []string
	Reply    models.BotReply
}

// PageRule matches the page path the widget is mounted on by prefix
type PageRule struct {
	Prefix string
	Reply  models.BotReply
}

// Quick-reply labels referenced from more than one place
const (
	LabelProducts      = "Tell me about your products"
	LabelDocumentation = "I need technical documentation"
	LabelSales         = "Talk to sales"

	LabelX9000    = "X9000 5G Router"
	LabelX7100    = "X7100 LTE Router"
	LabelE5212    = "E5212 Remote IO Controller"
	LabelEdge8000 = "Edge8000 Gateway"

	LabelEnergy = "Energy management"
	LabelWater  = "Water monitoring"

	LabelDatasheets = "Datasheets"
	LabelFirmware   = "Firmware downloads"
	LabelManuals    = "User manuals"
)

// Topic labels recorded into conversation context
const (
	TopicProducts      = "products"
	TopicDocumentation = "documentation"
	TopicSupport       = "support"
	TopicSales         = "sales"
	TopicX9000         = "X9000"
	TopicX7100         = "X7100"
	TopicE5212         = "E5212"
	TopicEdge8000      = "Edge8000"
	TopicEnergy        = "energy management"
	TopicWater         = "water monitoring"
)

func defaultChatScript() *ChatScript {
	genericOptions := []string{LabelProducts, LabelDocumentation, LabelSales}

	return &ChatScript{
		WelcomeText:    "Hi! I'm the site assistant.\nI can point you at products, documentation or the right person to talk to.",
		WelcomeOptions: genericOptions,

		QuickReplies: map[string]models.BotReply{
			LabelProducts: {
				Text:    "We build industrial connectivity hardware: cellular routers, remote IO controllers and edge gateways.\nWhich line would you like to look at?",
				Options: []string{LabelX9000, LabelE5212, LabelEdge8000},
				Links: []models.MessageLink{
					{Text: "All products", URL: "/products", Kind: models.LinkKindPage},
					{Text: "X9000 industrial 5G router", URL: "/products/x9000", Kind: models.LinkKindPage},
				},
				Topic: TopicProducts,
			},
			LabelDocumentation: {
				Text:    "Everything lives in the downloads center: datasheets, manuals, firmware and software tools.\nWhat kind of document do you need?",
				Options: []string{LabelDatasheets, LabelFirmware, LabelManuals},
				Links: []models.MessageLink{
					{Text: "Downloads center", URL: "/downloads", Kind: models.LinkKindPage},
				},
				Topic: TopicDocumentation,
			},
			LabelSales: {
				Text:    "Happy to connect you. Our sales engineers usually reply within one business day.",
				Options: []string{LabelProducts, LabelDocumentation},
				Links: []models.MessageLink{
					{Text: "Contact sales", URL: "/contact", Kind: models.LinkKindPage},
				},
				Topic:    TopicSales,
				Escalate: true,
			},
			LabelX9000: {
				Text:    "The X9000 is our flagship industrial 5G router: dual SIM with failover, IP67 enclosure and -40 to +75 C operation.",
				Options: []string{LabelDocumentation, LabelSales},
				Links: []models.MessageLink{
					{Text: "X9000 product page", URL: "/products/x9000", Kind: models.LinkKindPage},
					{Text: "X9000 datasheet", URL: "/files/x9000-datasheet-v3.2.pdf", Kind: models.LinkKindDocument},
				},
				Topic: TopicX9000,
			},
			LabelX7100: {
				Text:    "The X7100 is a ruggedized 4G LTE router for fleet vehicles and remote sites, with vehicle power input and CAN bus.",
				Options: []string{LabelDocumentation, LabelSales},
				Links: []models.MessageLink{
					{Text: "X7100 product page", URL: "/products/x7100", Kind: models.LinkKindPage},
					{Text: "X7100 datasheet", URL: "/files/x7100-datasheet-v1.8.pdf", Kind: models.LinkKindDocument},
				},
				Topic: TopicX7100,
			},
			LabelE5212: {
				Text:    "The E5212 is a 16-channel remote IO controller speaking Modbus and DNP3, built for pump stations and substations.",
				Options: []string{LabelDocumentation, LabelSales},
				Links: []models.MessageLink{
					{Text: "E5212 product page", URL: "/products/e5212", Kind: models.LinkKindPage},
					{Text: "E5212 manual", URL: "/files/e5212-manual-v2.1.pdf", Kind: models.LinkKindDocument},
				},
				Topic: TopicE5212,
			},
			LabelEdge8000: {
				Text:    "The Edge8000 runs containerized workloads next to the process, with protocol translation and store-and-forward built in.",
				Options: []string{LabelDocumentation, LabelSales},
				Links: []models.MessageLink{
					{Text: "Edge8000 product page", URL: "/products/edge8000", Kind: models.LinkKindPage},
					{Text: "Edge8000 datasheet", URL: "/files/edge8000-datasheet-v1.3.pdf", Kind: models.LinkKindDocument},
				},
				Topic: TopicEdge8000,
			},
			LabelEnergy: {
				Text:    "For energy sites we pair cellular routers with edge gateways for substation and solar telemetry backhaul.",
				Options: []string{LabelX9000, LabelEdge8000},
				Links: []models.MessageLink{
					{Text: "Energy solutions", URL: "/solutions/energy", Kind: models.LinkKindPage},
					{Text: "Energy solution brief", URL: "/files/energy-solution-brief.pdf", Kind: models.LinkKindDocument},
				},
				Topic: TopicEnergy,
			},
			LabelWater: {
				Text:    "Water utilities use the E5212 for pump station and wastewater network monitoring, often over cellular backhaul.",
				Options: []string{LabelE5212, LabelSales},
				Links: []models.MessageLink{
					{Text: "Water solutions", URL: "/solutions/water", Kind: models.LinkKindPage},
					{Text: "Water solution brief", URL: "/files/water-solution-brief.pdf", Kind: models.LinkKindDocument},
				},
				Topic: TopicWater,
			},
			LabelDatasheets: {
				Text:    "Datasheets for every product are in the downloads center under their product category.",
				Options: []string{LabelX9000, LabelE5212, LabelEdge8000},
				Links: []models.MessageLink{
					{Text: "Browse datasheets", URL: "/downloads?type=datasheet", Kind: models.LinkKindPage},
				},
				Topic: TopicDocumentation,
			},
			LabelFirmware: {
				Text:    "Firmware images are published per product with release notes. Check the version against your hardware revision before flashing.",
				Options: []string{LabelX9000, LabelE5212},
				Links: []models.MessageLink{
					{Text: "Browse firmware", URL: "/downloads?type=firmware", Kind: models.LinkKindPage},
				},
				Topic: TopicDocumentation,
			},
			LabelManuals: {
				Text:    "User manuals cover installation, wiring and configuration for each product.",
				Options: []string{LabelX9000, LabelE5212, LabelEdge8000},
				Links: []models.MessageLink{
					{Text: "Browse manuals", URL: "/downloads?type=manual", Kind: models.LinkKindPage},
				},
				Topic: TopicDocumentation,
			},
		},

		QuickReplyFallbackText:    "I don't have a canned answer for \"%s\" yet. Could you tell me a bit more about what you need?",
		QuickReplyFallbackOptions: genericOptions,

		EscalationKeywords: []string{
			"speak to human",
			"talk to a human",
			"talk to sales",
			"human support",
			"real person",
			"contact sales",
		},
		EscalationReply: models.BotReply{
			Text:    "Let me hand you over to a person. Leave your details on the contact page and our team will get back to you within one business day.",
			Options: []string{LabelProducts, LabelDocumentation},
			Links: []models.MessageLink{
				{Text: "Contact us", URL: "/contact", Kind: models.LinkKindPage},
			},
			Topic:    TopicSales,
			Escalate: true,
		},

		ProductRules: []KeywordRule{
			{
				Topic:    TopicX9000,
				Keywords: []string{"x9000", "x-9000", "5g router"},
				Reply: models.BotReply{
					Text:    "The X9000 is our industrial 5G router. Dual SIM, IP67, wide temperature range. Want the datasheet or a word with sales?",
					Options: []string{LabelDocumentation, LabelSales},
					Links: []models.MessageLink{
						{Text: "X9000 product page", URL: "/products/x9000", Kind: models.LinkKindPage},
						{Text: "X9000 datasheet", URL: "/files/x9000-datasheet-v3.2.pdf", Kind: models.LinkKindDocument},
					},
					Topic: TopicX9000,
				},
			},
			{
				Topic:    TopicX7100,
				Keywords: []string{"x7100", "x-7100", "lte router", "4g router"},
				Reply: models.BotReply{
					Text:    "The X7100 is a rugged 4G LTE router for vehicles and remote sites: vehicle power, CAN bus, Wi-Fi hotspot.",
					Options: []string{LabelDocumentation, LabelSales},
					Links: []models.MessageLink{
						{Text: "X7100 product page", URL: "/products/x7100", Kind: models.LinkKindPage},
					},
					Topic: TopicX7100,
				},
			},
			{
				Topic:    TopicE5212,
				Keywords: []string{"e5212", "e-5212", "remote io", "io controller", "modbus", "dnp3"},
				Reply: models.BotReply{
					Text:    "The E5212 remote IO controller handles 16 mixed-signal channels and speaks Modbus RTU/TCP and DNP3.",
					Options: []string{LabelDocumentation, LabelSales},
					Links: []models.MessageLink{
						{Text: "E5212 product page", URL: "/products/e5212", Kind: models.LinkKindPage},
						{Text: "E5212 manual", URL: "/files/e5212-manual-v2.1.pdf", Kind: models.LinkKindDocument},
					},
					Topic: TopicE5212,
				},
			},
			{
				Topic:    TopicEdge8000,
				Keywords: []string{"edge8000", "edge 8000", "edge gateway", "edge computing"},
				Reply: models.BotReply{
					Text:    "The Edge8000 is a fanless edge gateway that runs containers next to the process, with protocol translation built in.",
					Options: []string{LabelDocumentation, LabelSales},
					Links: []models.MessageLink{
						{Text: "Edge8000 product page", URL: "/products/edge8000", Kind: models.LinkKindPage},
					},
					Topic: TopicEdge8000,
				},
			},
		},

		SolutionRules: []KeywordRule{
			{
				Topic:    TopicEnergy,
				Keywords: []string{"energy", "solar", "substation", "smart grid", "power grid"},
				Reply: models.BotReply{
					Text:    "For energy sites we combine the X9000 with the Edge8000 for telemetry backhaul from substations and solar farms.",
					Options: []string{LabelX9000, LabelEdge8000},
					Links: []models.MessageLink{
						{Text: "Energy solutions", URL: "/solutions/energy", Kind: models.LinkKindPage},
					},
					Topic: TopicEnergy,
				},
			},
			{
				Topic:    TopicWater,
				Keywords: []string{"water", "wastewater", "pump", "irrigation", "leak detection"},
				Reply: models.BotReply{
					Text:    "Water utilities build pump station and network monitoring on the E5212, usually with cellular backhaul.",
					Options: []string{LabelE5212, LabelSales},
					Links: []models.MessageLink{
						{Text: "Water solutions", URL: "/solutions/water", Kind: models.LinkKindPage},
					},
					Topic: TopicWater,
				},
			},
		},

		GenericRules: []KeywordRule{
			{
				Topic:    TopicDocumentation,
				Keywords: []string{"datasheet", "manual", "documentation", "firmware", "download", "user guide", "spec sheet"},
				Reply: models.BotReply{
					Text:    "All documentation is in the downloads center, filterable by product category and document type.",
					Options: []string{LabelDatasheets, LabelFirmware, LabelManuals},
					Links: []models.MessageLink{
						{Text: "Downloads center", URL: "/downloads", Kind: models.LinkKindPage},
					},
					Topic: TopicDocumentation,
				},
			},
			{
				Topic:    TopicSupport,
				Keywords: []string{"support", "help", "issue", "problem", "troubleshoot", "warranty", "rma"},
				Reply: models.BotReply{
					Text:    "Sorry you're running into trouble. The support portal has troubleshooting guides, and you can open a ticket there too.",
					Options: []string{LabelManuals, LabelSales},
					Links: []models.MessageLink{
						{Text: "Support portal", URL: "/support", Kind: models.LinkKindPage},
					},
					Topic: TopicSupport,
				},
			},
			{
				Topic:    TopicSales,
				Keywords: []string{"price", "pricing", "quote", "cost", "buy", "purchase", "distributor", "reseller"},
				Reply: models.BotReply{
					Text:    "Pricing goes through our sales team and regional distributors. Want me to point you at the contact page?",
					Options: []string{LabelSales, LabelProducts},
					Links: []models.MessageLink{
						{Text: "Contact sales", URL: "/contact", Kind: models.LinkKindPage},
					},
					Topic: TopicSales,
				},
			},
		},

		PageRules: []PageRule{
			{
				Prefix: "/products",
				Reply: models.BotReply{
					Text:    "You're browsing the product range. I can summarize any product or fetch its documentation.",
					Options: []string{LabelX9000, LabelE5212, LabelEdge8000},
					Topic:   TopicProducts,
				},
			},
			{
				Prefix: "/downloads",
				Reply: models.BotReply{
					Text:    "Looking for a specific document? Tell me the product name or pick a document type.",
					Options: []string{LabelDatasheets, LabelFirmware, LabelManuals},
					Topic:   TopicDocumentation,
				},
			},
			{
				Prefix: "/solutions",
				Reply: models.BotReply{
					Text:    "Our solution pages cover reference architectures by industry. Energy and water are the most popular.",
					Options: []string{LabelEnergy, LabelWater},
					Topic:   TopicProducts,
				},
			},
			{
				Prefix: "/careers",
				Reply: models.BotReply{
					Text:    "All open positions are listed on the careers page. Applications go straight to the hiring team.",
					Links: []models.MessageLink{
						{Text: "Open positions", URL: "/careers", Kind: models.LinkKindPage},
					},
				},
			},
		},

		Continuations: map[string][]string{
			TopicX9000: {
				"Since you were asking about the X9000, would you like its datasheet or firmware downloads?",
				"The X9000 also has a remote fleet management option. Want details?",
				"Anything else about the X9000? I can pull specs or pricing contacts.",
			},
			TopicX7100: {
				"Still on the X7100? I can fetch its datasheet or vehicle mounting guide.",
				"The X7100 pairs well with Device Manager Desktop for fleet provisioning. Want the download?",
			},
			TopicE5212: {
				"Since you were looking at the E5212, the manual covers wiring and register maps in detail.",
				"The E5212 firmware recently added DNP3 outstation support. Want the release notes?",
				"Anything else on the E5212? I can link the datasheet or the water monitoring brief.",
			},
			TopicEdge8000: {
				"Still exploring the Edge8000? The SDK download has sample container workloads.",
				"The Edge8000 datasheet lists the full expansion options. Want the link?",
			},
			TopicProducts: {
				"Would you like a closer look at any product line?",
				"I can compare the routers or pull documentation for a specific model.",
			},
			TopicDocumentation: {
				"Any other document I can find for you?",
				"The downloads center also has software tools and the SDK, if that helps.",
			},
			TopicEnergy: {
				"Want the energy solution brief, or a word with a sales engineer who covers utilities?",
				"Most energy deployments start with the X9000 plus Edge8000 pairing. Want specifics?",
			},
			TopicWater: {
				"Want the water monitoring brief, or the E5212 manual for the IO details?",
				"I can also connect you with a sales engineer who covers water utilities.",
			},
			TopicSupport: {
				"Did the support portal cover it, or should I get a person involved?",
				"If it's hardware trouble, the product manual's troubleshooting section is the fastest path.",
			},
			TopicSales: {
				"Our sales team can also arrange evaluation units. Interested?",
				"Anything else before I pass you to sales?",
			},
		},
		ContinuationOptions: genericOptions,

		Fallback: models.BotReply{
			Text:    "I'm not sure I understood that. Could you tell me a bit more about what you're looking for?",
			Options: genericOptions,
		},
	}
}
