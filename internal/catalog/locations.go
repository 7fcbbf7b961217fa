package catalog

var locations = []Location{
	{
		Slug:           "johannesburg",
		Name:           "Johannesburg",
		Summary:        "From rooftop celebrations in Maboneng to intimate home sessions in Parkhurst, Johannesburg offers architectural variety and golden-hour light that is perfect for editorial storytelling.",
		Neighbourhoods: []string{"Parkhurst", "Maboneng", "Rosebank", "Melville", "Bryanston"},
		VenueIdeas: []VenueIdea{
			{Name: "Four Seasons The Westcliff", Note: "Tiered gardens and skyline views for luxury weddings and campaigns."},
			{Name: "Victoria Yards", Note: "Industrial texture ideal for brand shoots and lifestyle portraits."},
			{Name: "Emmarentia Dam", Note: "Lush greenery with easy access for families and elopements."},
		},
		AvailabilityNote: "Weekend availability books up 8–10 weeks ahead; weekday sunrise sessions remain flexible for portraits and campaigns.",
	},
	{
		Slug:           "pretoria",
		Name:           "Pretoria",
		Summary:        "Pretoria's jacaranda-lined streets, stately architecture, and botanical gardens create timeless backdrops for celebrations and portraits.",
		Neighbourhoods: []string{"Brooklyn", "Waterkloof", "Hatfield", "Lynnwood Manor"},
		VenueIdeas: []VenueIdea{
			{Name: "Pretoria National Botanical Garden", Note: "Expansive floral settings ideal for weddings and maternity sessions."},
			{Name: "Hazelwood Precinct", Note: "Trendy urban textures and café culture perfect for lifestyle branding."},
			{Name: "Fort Klapperkop", Note: "Panoramic views for golden-hour engagements and family milestones."},
		},
		AvailabilityNote: "Jacaranda season (October) books up a year in advance; secure dates early if you want the signature purple canopy in portraits.",
	},
	{
		Slug:           "sandton",
		Name:           "Sandton",
		Summary:        "Sandton's sleek venues and luxury hotels set the tone for modern weddings, corporate events, and high-end personal branding.",
		Neighbourhoods: []string{"Sandhurst", "Hyde Park", "Inanda", "Morningside"},
		VenueIdeas: []VenueIdea{
			{Name: "The Leonardo", Note: "Contemporary architecture with rooftop vistas for statement imagery."},
			{Name: "Inanda Country Base", Note: "Equestrian fields and elegant lounges for lifestyle and event coverage."},
			{Name: "Nelson Mandela Square", Note: "Iconic urban backdrop ideal for branded portraits and proposals."},
		},
		AvailabilityNote: "Corporate calendars drive weekday demand; secure evening sessions at least six weeks ahead to navigate traffic and load-shedding.",
	},
	{
		Slug:           "midrand",
		Name:           "Midrand",
		Summary:        "Midrand offers equestrian estates, modern conference centres, and rolling veld that bridge Johannesburg and Pretoria aesthetics.",
		Neighbourhoods: []string{"Waterfall", "Kyalami", "Beaulieu", "Carlswald"},
		VenueIdeas: []VenueIdea{
			{Name: "Waterfall Country Estate", Note: "Lakeside views and manicured lawns ideal for weddings and family sessions."},
			{Name: "Kyalami Grand Prix Circuit", Note: "Dynamic environments for automotive and corporate brand shoots."},
			{Name: "Lory Park Zoo", Note: "Whimsical backdrop for children's milestones and lifestyle imagery."},
		},
		AvailabilityNote: "Sunset sessions fill quickly thanks to unobstructed horizons; weekday bookings recommended for relaxed timelines.",
	},
	{
		Slug:           "centurion",
		Name:           "Centurion",
		Summary:        "Centurion's lakes, golf estates, and modern chapels provide calm, light-filled environments for families and weddings.",
		Neighbourhoods: []string{"Irene", "Eldoraigne", "Die Hoewes", "Copperleaf"},
		VenueIdeas: []VenueIdea{
			{Name: "Irene Dairy Farm", Note: "Pastoral charm for families, maternity, and intimate weddings."},
			{Name: "Royal Elephant Hotel", Note: "North-African inspired interiors perfect for opulent receptions."},
			{Name: "Rietvlei Nature Reserve", Note: "Wildlife-filled scenery for engagements and sunrise elopements."},
		},
		AvailabilityNote: "Golden-hour slots book 6–8 weeks ahead; sunrise sessions remain a serene option for young families.",
	},
	{
		Slug:           "soweto",
		Name:           "Soweto",
		Summary:        "Soweto's vibrant streets, heritage landmarks, and community energy produce storytelling-rich imagery for couples, families, and brands.",
		Neighbourhoods: []string{"Orlando West", "Vilakazi Street", "Kliptown", "Diepkloof"},
		VenueIdeas: []VenueIdea{
			{Name: "Vilakazi Street", Note: "Historic avenues alive with colour for lifestyle and couple sessions."},
			{Name: "Credo Mutwa Cultural Village", Note: "Textured art installations perfect for editorial campaigns."},
			{Name: "Ubuntu Kraal Brewery", Note: "A relaxed venue for celebrations and community events."},
		},
		AvailabilityNote: "Sunrise shoots keep streets quieter and cooler; weekend celebrations require permits secured at least one month in advance.",
	},
}
