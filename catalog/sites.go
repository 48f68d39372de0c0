package catalog

import (
	"eventhub-cli/booking"
	"eventhub-cli/model"
)

func danceSite() Site {
	return Site{
		Variant:    Dance,
		Name:       "DanceFlow",
		Tagline:    "Студия танца",
		Heading:    "Расписание занятий",
		Subheading: "Выберите направление и забронируйте место в группе",
		StageLabel: "ЗЕРКАЛО",
		Events: []model.Event{
			{ID: "1", Title: "Hip-Hop для начинающих", Date: "15 декабря 2024", Time: "19:00", Venue: "Студия DanceFlow, зал 1", Price: 1200, Category: "Hip-Hop", AvailableSeats: 15},
			{ID: "2", Title: "Contemporary для продолжающих", Date: "20 декабря 2024", Time: "20:00", Venue: "Студия DanceFlow, зал 2", Price: 1500, Category: "Contemporary", AvailableSeats: 12},
			{ID: "3", Title: "Latina Solo: Bachata", Date: "25 декабря 2024", Time: "18:30", Venue: "Студия DanceFlow, большой зал", Price: 1300, Category: "Latina", AvailableSeats: 20},
			{ID: "4", Title: "Breaking: Основы", Date: "28 декабря 2024", Time: "17:00", Venue: "Студия DanceFlow, зал 1", Price: 1400, Category: "Breaking", AvailableSeats: 10},
			{ID: "5", Title: "Vogue Femme: Choreo", Date: "5 января 2025", Time: "19:30", Venue: "Студия DanceFlow, зал 2", Price: 1600, Category: "Vogue", AvailableSeats: 15},
			{ID: "6", Title: "Jazz Funk: Интенсив", Date: "10 января 2025", Time: "20:30", Venue: "Студия DanceFlow, большой зал", Price: 1500, Category: "Jazz Funk", AvailableSeats: 18},
		},
		Tabs: []Tab{
			{Key: "all", Label: "Все"},
			{Key: "hiphop", Label: "Hip-Hop", Categories: []string{"Hip-Hop"}},
			{Key: "contemporary", Label: "Contemporary", Categories: []string{"Contemporary"}},
			{Key: "latina", Label: "Latina", Categories: []string{"Latina"}},
			{Key: "other", Label: "Другие", Other: true},
		},
		Layout: booking.LayoutSpec{
			Rows:        4,
			SeatsPerRow: 5,
			Booked:      []string{"1-2", "2-3"},
			BasePrice:   1500,
		},
	}
}

func concertSite() Site {
	return Site{
		Variant:    Concert,
		Name:       "EventHub",
		Tagline:    "Билеты на события",
		Heading:    "Афиша мероприятий",
		Subheading: "Выберите событие и забронируйте лучшие места",
		StageLabel: "СЦЕНА",
		Events: []model.Event{
			{ID: "1", Title: "Концерт симфонического оркестра", Date: "15 декабря 2024", Time: "19:00", Venue: "Концертный зал «Филармония»", Price: 1800, Category: "Концерт", AvailableSeats: 74},
			{ID: "2", Title: "Stand-up шоу: Вечер юмора", Date: "20 декабря 2024", Time: "20:00", Venue: "Клуб «Подвал»", Price: 1500, Category: "Stand-up", AvailableSeats: 40},
			{ID: "3", Title: "Джазовый вечер", Date: "22 декабря 2024", Time: "19:30", Venue: "Джаз-клуб «Синяя птица»", Price: 2000, Category: "Концерт", AvailableSeats: 30},
			{ID: "4", Title: "Спектакль «Вишнёвый сад»", Date: "27 декабря 2024", Time: "18:00", Venue: "Драматический театр", Price: 2500, Category: "Театр", AvailableSeats: 55},
			{ID: "5", Title: "Новогодний рок-фестиваль", Date: "30 декабря 2024", Time: "17:00", Venue: "Арена «Север»", Price: 3000, Category: "Фестиваль", AvailableSeats: 120},
			{ID: "6", Title: "Лекция: История кино", Date: "12 января 2025", Time: "16:00", Venue: "Лекторий «Пространство»", Price: 800, Category: "Лекция", AvailableSeats: 60},
		},
		Tabs: []Tab{
			{Key: "all", Label: "Все"},
			{Key: "concerts", Label: "Концерты", Categories: []string{"Концерт"}},
			{Key: "standup", Label: "Stand-up", Categories: []string{"Stand-up"}},
			{Key: "theatre", Label: "Театр", Categories: []string{"Театр"}},
			{Key: "other", Label: "Другие", Other: true},
		},
		Layout: booking.LayoutSpec{
			Rows:        8,
			SeatsPerRow: 10,
			Booked:      []string{"1-4", "1-5", "2-7", "4-2", "5-8", "7-6"},
			BasePrice:   1800,
			Tiers: []booking.PriceTier{
				{FromRow: 1, ToRow: 2, Price: 3500},
				{FromRow: 3, ToRow: 5, Price: 2500},
			},
		},
	}
}
