package models

// DefaultAdminUser returns the first-run operator identity.
func DefaultAdminUser() AdminUser {
	return AdminUser{Username: "admin", Password: "admin"}
}

// DefaultSnapshot returns the built-in site content used until the operator
// edits anything: five carousel slides, the seeded gallery categories and
// three reviews.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		HeroImages: []HeroImage{
			{
				ID:       "1",
				Src:      "https://images.unsplash.com/photo-1749731894795-4eae105fa60a?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
				Alt:      "Elegant wedding ceremony",
				Title:    "Elegant Ceremonies",
				Subtitle: "Capturing sacred moments",
			},
			{
				ID:       "2",
				Src:      "https://images.unsplash.com/photo-1625415002553-f23e2d1c05a8?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
				Alt:      "Romantic wedding couple outdoor portrait",
				Title:    "Romantic Portraits",
				Subtitle: "Love in every frame",
			},
			{
				ID:       "3",
				Src:      "https://images.unsplash.com/photo-1652492892191-487055a9b6bd?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
				Alt:      "Wedding reception celebration",
				Title:    "Joyful Celebrations",
				Subtitle: "Dancing through forever",
			},
			{
				ID:       "4",
				Src:      "https://images.unsplash.com/photo-1748203187699-4b97a1ef8698?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
				Alt:      "Wedding ring ceremony",
				Title:    "Intimate Moments",
				Subtitle: "Details that matter",
			},
			{
				ID:       "5",
				Src:      "https://images.unsplash.com/photo-1549871630-740049f93554?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
				Alt:      "Wedding bouquet",
				Title:    "Beautiful Details",
				Subtitle: "Artistry in bloom",
			},
		},
		PortfolioImages: map[PortfolioCategory][]PortfolioImage{
			CategoryWeddings: {
				{
					ID:          "1",
					Src:         "https://images.unsplash.com/photo-1749301071652-3928dbd4abb9?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					Alt:         "Elegant wedding ceremony",
					Title:       "Sarah & Michael",
					Location:    "Weddings",
					Description: "Romantic vineyard wedding with garden-inspired florals",
				},
			},
			CategoryHomecoming: {
				{
					ID:          "2",
					Src:         "https://images.unsplash.com/photo-1606217239566-1c893c2e110e?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					Alt:         "Wedding couple portrait",
					Title:       "Emma & James",
					Location:    "Homecoming",
					Description: "Elegant ballroom reception with classic styling",
				},
			},
			CategoryCasualShoots: {
				{
					ID:          "3",
					Src:         "https://images.unsplash.com/photo-1738669469338-801b4e9dbccf?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					Alt:         "Romantic wedding reception",
					Title:       "Lisa & David",
					Location:    "Casual Shoots",
					Description: "Intimate ceremony with tropical floral arrangements",
				},
			},
			CategoryEngagements:    {},
			CategoryCinematography: {},
			CategoryThanksCards: {
				{
					ID:          "4",
					Src:         "https://images.unsplash.com/photo-1684244276932-6ae853774c4d?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					Alt:         "Wedding details",
					Title:       "Anna & Chris",
					Location:    "Thanks Cards & Enlargements",
					Description: "Outdoor ceremony surrounded by natural beauty",
				},
			},
		},
		AmazingWorkImages: map[WorkStyle][]AmazingWorkImage{
			StyleFineArt: {
				{
					ID:        "1",
					Src:       "https://images.unsplash.com/photo-1752392253470-0e5a322e66f9?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					Alt:       "Intimate wedding moment",
					ClassName: SpanRow2,
				},
			},
			StyleArtistic: {
				{
					ID:        "2",
					Src:       "https://images.unsplash.com/photo-1547697932-14a499b46a2e?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					Alt:       "Artistic bride portrait with veil",
					ClassName: SpanRow1,
				},
			},
			StyleVintage: {
				{
					ID:        "3",
					Src:       "https://images.unsplash.com/photo-1660294502608-d65e5c62f244?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
					Alt:       "Golden hour wedding couple",
					ClassName: SpanRow2,
				},
			},
		},
		Testimonials: []Testimonial{
			{
				ID:       "1",
				Name:     "Sarah & Michael",
				Location: "Napa Valley",
				Text:     "Modern Scene captured our wedding day beautifully! Every photo tells a story, and their artistic vision exceeded our expectations. We're so grateful for these timeless memories.",
				Rating:   5,
			},
			{
				ID:       "2",
				Name:     "Emma & James",
				Location: "San Francisco",
				Text:     "From engagement photos to our wedding day, Modern Scene was incredible. Their modern style and attention to detail made us feel so comfortable, and the results are absolutely stunning.",
				Rating:   5,
			},
			{
				ID:       "3",
				Name:     "Lisa & David",
				Location: "Carmel",
				Text:     "We couldn't be happier with our wedding photography! Modern Scene perfectly captured the romance and joy of our special day. Every image is a work of art that we'll treasure forever.",
				Rating:   5,
			},
		},
	}
}
