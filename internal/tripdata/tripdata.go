// Package tripdata defines the built-in baseline catalog: a six-day
// Rome → Torino → Bordeaux → San Sebastián round trip. The catalog is
// frozen per release; annotations address its entries by position, so
// entries must only ever be appended, never reordered.
package tripdata

import (
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
	"github.com/tripdeck-labs/tripdeck-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TripSource = (*Source)(nil)

// Source serves the built-in catalog.
type Source struct{}

// NewSource creates a built-in trip source.
func NewSource() *Source {
	return &Source{}
}

// Load returns the baseline trip dataset.
func (s *Source) Load() (*domain.Trip, error) {
	return &domain.Trip{
		Name:     "San Sebastián 2026",
		StartsAt: "2026-02-01T16:10:00+01:00",
		Days:     days(),
		Guide: domain.GuideCatalog{
			PintxoBars:   pintxoBars(),
			MustSee:      mustSee(),
			BilbaoPlaces: bilbaoPlaces(),
			Films:        films(),
			Series:       series(),
			ReadingList:  readingList(),
		},
	}, nil
}

func days() []domain.DayPlan {
	return []domain.DayPlan{
		{
			Date: "1 February", ISODate: "2026-02-01", DayOfWeek: "Sunday",
			Title: "Roma → Torino", Subtitle: "Departure and a starred dinner",
			Location: "Roma / Torino",
			Bookings: []domain.Booking{
				{
					Type: domain.BookingTrain, Name: "Frecciarossa 9588", Code: "L8DZY5",
					Time: "16:10 → 21:00", Address: "Roma Termini → Torino Porta Nuova",
					Carriage: "2", Seat: "8D", Class: "Business", Price: "€115.90",
					Status:    domain.StatusConfirmed,
					TicketPDF: "tickets/frecciarossa-9588.pdf",
					Link:      "https://www.trenitalia.com/it/informazioni/ricerca_biglietti.html",
				},
				{
					Type: domain.BookingHotel, Name: "NH Torino Centro", Code: "0166478335",
					Phone: "+39 011 57521", Address: "Corso Vittorio Emanuele II, 104",
					Time: "Check-in 15:00 • Check-out 12:00", Price: "€73.90",
					Status: domain.StatusConfirmed,
				},
				{
					Type: domain.BookingRestaurant, Name: "Starred dinner",
					Notes:  "Still to book. Arrival ~21:30, dinner ~22:00",
					Status: domain.StatusTodo,
				},
			},
			FreeTime: &domain.FreeTime{
				Available: true, Hours: "Evening, after dinner",
				Suggestions: []domain.Activity{
					{
						Name: "Via Roma stroll", Type: domain.ActivityLeisure,
						Description: "The lit arcades are at their best at night",
						Duration:    "30 min",
					},
				},
			},
		},
		{
			Date: "2 February", ISODate: "2026-02-02", DayOfWeek: "Monday",
			Title: "Torino → San Sebastián", Subtitle: "Road trip across France and the Basque Country",
			Location: "On the road",
			Bookings: []domain.Booking{
				{
					Type: domain.BookingTrain, Name: "TGV INOUI 9242", Code: "5WQWQ6",
					Time: "07:19 → 13:19", Address: "Torino Porta Susa → Paris Gare de Lyon",
					Carriage: "12", Seat: "219", Class: "1st class", Price: "€134.00",
					Status: domain.StatusConfirmed, TicketPDF: "tickets/tgv-9242.pdf",
					Link: "https://www.sncf-connect.com/app/trips",
				},
				{
					Type: domain.BookingTrain, Name: "TGV INOUI 12265", Code: "47ZU26",
					Time: "14:05 → 16:30", Address: "Paris Montparnasse → Bordeaux Saint-Jean",
					Carriage: "3", Seat: "350", Class: "1st class",
					Notes: "Station change in Paris (metro or taxi)", Price: "€110.00",
					Status: domain.StatusConfirmed, TicketPDF: "tickets/tgv-12265.pdf",
					Link: "https://www.sncf-connect.com/app/trips",
				},
				{
					Type: domain.BookingCar, Name: "Renault Clio rental", Code: "D012917993",
					Phone: "+33 0 556 925 970", Address: "195 Cours de la Marne, Bordeaux Saint-Jean",
					Time: "Pick-up 16:00 • Return 5 Feb 22:00", Price: "€232.33",
					Notes:  "€1300 deposit on a credit card, 1000 km included, full-to-full",
					Status: domain.StatusConfirmed,
				},
				{
					Type: domain.BookingHotel, Name: "Hotel Villa Soro", Code: "6899069207",
					Phone: "+34 943 29 79 70", Address: "Av. de Ategorrieta, 61, San Sebastián",
					Time: "Check-in 15:00", Price: "€647.10 (3 nights, 2 rooms)",
					Status: domain.StatusConfirmed,
				},
			},
			RoadTrip: &domain.RoadTrip{
				From: "Bordeaux", To: "San Sebastián", Duration: "~3-4 h with stops",
				Stops: []domain.RoadStop{
					{
						Name:        "Dune du Pilat",
						Description: "The tallest sand dune in Europe, overlooking ocean and forest.",
						StayTime:    "45 min - 1h",
						Highlights:  []string{"Climb the dune", "Sunset", "Iconic photos"},
						MapLink:     "https://maps.google.com/?q=Dune+du+Pilat",
					},
					{
						Name:        "Biarritz",
						Description: "Belle Époque seaside town, Europe's surf capital.",
						StayTime:    "1h",
						Highlights:  []string{"Grande Plage", "Rocher de la Vierge"},
						MapLink:     "https://maps.google.com/?q=Biarritz+France",
					},
					{
						Name:        "Saint-Jean-de-Luz",
						Description: "Picturesque Basque-French fishing village.",
						StayTime:    "30-45 min",
						Highlights:  []string{"Harbour", "Saint-Jean-Baptiste church", "Macarons"},
						MapLink:     "https://maps.google.com/?q=Saint-Jean-de-Luz",
					},
					{
						Name:        "Hondarribia",
						Description: "Walled medieval town, first stop on the Spanish side.",
						StayTime:    "30 min",
						Highlights:  []string{"Old town", "Medieval walls"},
						MapLink:     "https://maps.google.com/?q=Hondarribia+Spain",
					},
				},
			},
		},
		{
			Date: "3 February", ISODate: "2026-02-03", DayOfWeek: "Tuesday",
			Title: "Meeting Day 1", Subtitle: "Consortium meeting",
			Location: "San Sebastián",
			Bookings: []domain.Booking{
				{
					Type: domain.BookingRestaurant, Name: "Baga Biga",
					Address: "Paseo Ramón María Lili, 8", Time: "from 19:00",
					Notes: "Team dinner, everyone pays their own", Status: domain.StatusConfirmed,
				},
			},
			FreeTime: &domain.FreeTime{
				Available: true, Hours: "Evening from 19:00",
				Suggestions: []domain.Activity{
					{
						Name: "Pintxos crawl in the Parte Vieja", Type: domain.ActivityFood,
						Description: "Every bar has its own specialty; hop between them.",
						Duration:    "2-3 h",
						Tips:        "One pintxo and one txakoli per bar, then move on",
					},
					{
						Name: "La Concha promenade", Type: domain.ActivityLeisure,
						Description: "Spain's most beautiful urban beach, best at sunset",
						Duration:    "1 h",
					},
				},
			},
		},
		{
			Date: "4 February", ISODate: "2026-02-04", DayOfWeek: "Wednesday",
			Title: "Meeting Day 2", Subtitle: "Meeting, maybe a Bilbao run",
			Location: "San Sebastián / Bilbao",
			Bookings: []domain.Booking{},
			FreeTime: &domain.FreeTime{
				Available: true, Hours: "Half day or evening",
				Suggestions: []domain.Activity{
					{
						Name: "Day trip to Bilbao", Type: domain.ActivityCulture,
						Description: "Only 1h15 by car; the Guggenheim alone is worth it",
						Duration:    "Half day",
						MapLink:     "https://maps.google.com/?q=Guggenheim+Bilbao",
					},
					{
						Name: "Monte Urgull", Type: domain.ActivityNature,
						Description: "Panoramic climb over the whole bay",
						Duration:    "1.5 h",
					},
				},
			},
		},
		{
			Date: "5 February", ISODate: "2026-02-05", DayOfWeek: "Thursday",
			Title: "Meeting Day 3 → Bordeaux", Subtitle: "Last meeting morning, drive back north",
			Location: "San Sebastián → Bordeaux",
			Bookings: []domain.Booking{
				{
					Type: domain.BookingHotel, Name: "Seeko'o Hotel",
					Address: "54 Quai de Bacalan, Bordeaux", Time: "Evening",
					Price: "~€222 (2 rooms)", Notes: "Design hotel on the Bassins à Flot",
					Link:   "https://www.booking.com/hotel/fr/seeko-o.html",
					Status: domain.StatusPending,
				},
			},
			RoadTrip: &domain.RoadTrip{
				From: "San Sebastián", To: "Bordeaux", Duration: "~3 h with stops",
				Stops: []domain.RoadStop{
					{
						Name:        "Getaria",
						Description: "Fishing village, home of txakoli wine.",
						StayTime:    "30 min",
						Highlights:  []string{"Harbour", "Txakoli tasting"},
						MapLink:     "https://maps.google.com/?q=Getaria+Spain",
					},
					{
						Name:        "Bayonne",
						Description: "Capital of the French Basque Country, chocolate and ham.",
						StayTime:    "45 min",
						Highlights:  []string{"Cathedral", "Petit Bayonne"},
						MapLink:     "https://maps.google.com/?q=Bayonne+France",
					},
				},
			},
			FreeTime: &domain.FreeTime{
				Available: true, Hours: "Evening in Bordeaux",
				Suggestions: []domain.Activity{
					{
						Name: "Miroir d'Eau", Type: domain.ActivityLeisure,
						Description: "The world's largest reflecting pool, best after dark",
						Duration:    "30 min",
					},
				},
			},
		},
		{
			Date: "6 February", ISODate: "2026-02-06", DayOfWeek: "Friday",
			Title: "Bordeaux → Roma", Subtitle: "The long way home",
			Location: "On the road",
			Bookings: []domain.Booking{
				{
					Type: domain.BookingTrain, Name: "TGV Paris → Zürich", Code: "VKWQDB",
					Time: "10:22 → 14:26", Address: "Paris Gare de Lyon → Zürich HB",
					Carriage: "11", Seat: "119", Class: "1st class",
					Notes:  "Get to Paris from Bordeaux on an early train",
					Status: domain.StatusConfirmed, TicketPDF: "tickets/tgv-paris-zurich.pdf",
				},
				{
					Type: domain.BookingTrain, Name: "EuroCity Zürich → Milano", Code: "RNAPU5",
					Time: "15:33 → 18:50", Address: "Zürich HB → Milano Centrale",
					Carriage: "9", Seat: "22", Class: "1st class",
					Status: domain.StatusConfirmed,
				},
				{
					Type: domain.BookingTrain, Name: "Frecciarossa 9663", Code: "RNAPU5",
					Time: "19:35 → 22:39", Address: "Milano Centrale → Roma Termini",
					Carriage: "2", Seat: "14D", Class: "Business", Price: "€235.90",
					Status: domain.StatusConfirmed,
				},
			},
		},
	}
}

func pintxoBars() []domain.PintxoBar {
	return []domain.PintxoBar{
		{Name: "La Cuchara de San Telmo", Specialty: "Carrillera de ternera", Area: "Parte Vieja"},
		{Name: "Gandarias", Specialty: "Solomillo", Area: "Parte Vieja"},
		{Name: "Bar Nestor", Specialty: "Tortilla (only two a day)", Area: "Parte Vieja"},
		{Name: "A Fuego Negro", Specialty: "Creative pintxos", Area: "Parte Vieja"},
		{Name: "Borda Berri", Specialty: "Mushroom risotto", Area: "Parte Vieja"},
		{Name: "Bar Txepetxa", Specialty: "Anchovies", Area: "Parte Vieja"},
	}
}

func mustSee() []domain.Place {
	return []domain.Place{
		{Name: "La Concha", Description: "The iconic beach", Time: "Anytime"},
		{Name: "Parte Vieja", Description: "Old town, pintxos central", Time: "Evening"},
		{Name: "Monte Urgull", Description: "Panoramic viewpoint", Time: "2h"},
		{Name: "Monte Igueldo", Description: "Funicular and a vintage funfair", Time: "2h"},
		{Name: "Peine del Viento", Description: "Chillida's sculptures against the sea", Time: "30min"},
	}
}

func bilbaoPlaces() []domain.Place {
	return []domain.Place{
		{
			Name: "Guggenheim Museum", Description: "Gehry's masterpiece; the building is the artwork",
			Time: "2-3h", MapLink: "https://maps.google.com/?q=Guggenheim+Bilbao",
		},
		{Name: "Casco Viejo", Description: "Seven historic streets of bars and shops", Time: "1-2h"},
		{Name: "Mercado de la Ribera", Description: "Europe's largest covered market", Time: "1h"},
		{Name: "Puente Zubizuri", Description: "Calatrava's footbridge", Time: "15min"},
		{Name: "Funicular de Artxanda", Description: "City panorama from above", Time: "1h"},
	}
}

func films() []domain.Film {
	return []domain.Film{
		{
			Title: "El Hoyo", Year: 2019, Rating: "7.0", Genre: "Thriller",
			Duration: "1h 34min", Streaming: "Netflix",
			Description: "Dystopian Spanish thriller about food and society.",
		},
		{
			Title: "Ocho apellidos vascos", Year: 2014, Rating: "6.5", Genre: "Comedy",
			Duration: "1h 38min", Streaming: "Prime Video",
			Description: "Cult comedy on Basque identity; learn the stereotypes before arriving.",
		},
		{
			Title: "Handia", Year: 2017, Rating: "7.1", Genre: "Historical drama",
			Duration: "1h 54min", Streaming: "Filmin",
			Description: "The true story of the Giant of Altzo, shot in Basque landscapes.",
		},
	}
}

func series() []domain.Series {
	return []domain.Series{
		{
			Title: "Chef's Table", Rating: "8.6", Seasons: 7, EpisodeDuration: "50 min",
			Streaming: "Netflix", Recommended: "S4E2 (Asador Etxebarri)",
			Description: "One episode is devoted to Asador Etxebarri in the Basque hills.",
		},
		{
			Title: "Somebody Feed Phil", Rating: "8.2", Seasons: 7, EpisodeDuration: "55 min",
			Streaming: "Netflix", Recommended: "S3E1 (San Sebastián)",
			Description: "The San Sebastián episode doubles as a food guide.",
		},
	}
}

func readingList() []domain.ReadingItem {
	return []domain.ReadingItem{
		{
			Title: "Basque Country, explained through its kitchens", Author: "Saveur",
			Description: "Why a region of three million people collects Michelin stars.",
			Topics:      []string{"Food", "Basque Country"}, ReadTime: "~20 min",
		},
	}
}
