package catalog

var services = []Service{
	{
		Slug:        "weddings-and-elopements",
		Name:        "Weddings & elopements",
		Headline:    "Wedding photography that feels like your story",
		Subheadline: "Editorial coverage for full-day celebrations and intimate vows across Gauteng and beyond.",
		Description: "From timeline planning to album design, Laxportraits guides you through every wedding detail so you can stay present. Expect relaxed direction, crisp colour grading, and galleries that feel like a cinematic retelling of the day.",
		Highlights: []string{
			"Tailored coverage from six hours to multi-day events",
			"Timeline co-creation with venue and planner coordination",
			"48-hour preview gallery plus full delivery within six weeks",
			"Heirloom album and wall-art design support",
		},
	},
	{
		Slug:        "lifestyle-portraits",
		Name:        "Lifestyle portraits",
		Headline:    "Lifestyle portraits with editorial polish",
		Subheadline: "Warm, movement-focused sessions crafted for maternity, couples, and personal branding.",
		Description: "Laxportraits sessions balance gentle prompts with natural movement so every portrait feels relaxed and editorial. Choose studio, home, or on-location settings that reflect your story.",
		Highlights: []string{
			"Location and wardrobe guidance tailored to your vision",
			"Professional posing cues that still feel like you",
			"Colour and black-and-white edits in every gallery",
			"Option to add hair, makeup, and styling support",
		},
	},
	{
		Slug:        "maternity-portraits",
		Name:        "Maternity portraits",
		Headline:    "Maternity portraits that feel intimate and elevated",
		Subheadline: "Soft, light-first sessions celebrating motherhood with gentle pacing and luxe styling touches.",
		Description: "Expectant parents receive calm, editorial direction with wardrobe support and considered posing that honours every stage. Choose studio, home, or outdoor settings to create luminous keepsakes before baby arrives.",
		Highlights: []string{
			"Studio, in-home, or outdoor sessions crafted around your comfort",
			"Wardrobe guide plus access to the Laxportraits gown and draping collection",
			"Gentle posing direction with room for partners and siblings",
			"Complimentary retouching on featured wall art and album selections",
		},
	},
	{
		Slug:        "corporate-and-events",
		Name:        "Corporate & events",
		Headline:    "Corporate and event photography with polish",
		Subheadline: "Professional coverage for conferences, leadership gatherings, launches, and awards evenings.",
		Description: "From executive headshots to multi-day summits, Laxportraits ensures your corporate imagery reflects the calibre of the occasion. Expect discreet coverage, consistent lighting, and rapid delivery for PR teams.",
		Highlights: []string{
			"Detailed shot lists aligned with stakeholder priorities",
			"On-site tethered previews when required for press releases",
			"Consistent edits optimised for web, social, and print",
			"Flexible hours, travel, and same-day turnaround options",
		},
	},
	{
		Slug:        "brand-campaigns",
		Name:        "Brand campaigns",
		Headline:    "Campaign imagery designed to convert",
		Subheadline: "Editorial visuals for products, hospitality, and lifestyle brands needing cohesive storytelling.",
		Description: "Whether you are launching a product line or refreshing website imagery, Laxportraits crafts campaign visuals that blend art direction, prop styling, and commercial edge.",
		Highlights: []string{
			"Creative direction, shot lists, and prop sourcing support",
			"Studio or on-location production with lighting crew",
			"Colour-managed workflow for consistent brand palettes",
			"Usage guidance for e-commerce, outdoor, and social placements",
		},
	},
	{
		Slug:        "family-milestones",
		Name:        "Family milestones",
		Headline:    "Celebrate every family milestone with heart",
		Subheadline: "Joyful, movement-rich sessions for birthdays, anniversaries, graduations, and reunions.",
		Description: "Family stories are told through the small gestures. Laxportraits documents those moments with sensitivity and colour-rich edits you will want to print immediately.",
		Highlights: []string{
			"Flexible scheduling for multi-generational groups",
			"Gentle direction that keeps kids and elders comfortable",
			"On-location or in-home sessions with candid storytelling",
			"Print and album design service for gifting",
		},
	},
	{
		Slug:        "fine-art-prints",
		Name:        "Fine art prints",
		Headline:    "Fine art prints and albums for your favourite moments",
		Subheadline: "Gallery-grade printing, framing, and album design tailored to your space and gifting needs.",
		Description: "Transform your galleries into tactile keepsakes. Laxportraits curates print collections, frames, and albums that match your home or studio, using archival materials sourced locally.",
		Highlights: []string{
			"Archival papers and pigment inks rated for 100-year longevity",
			"Custom framing with anti-glare glass and bespoke mouldings",
			"Album cover options in linen, leather, and vegan suede",
			"Design proofs with unlimited revisions before production",
		},
	},
}
