package store

import (
	"context"
	"errors"
	"log"

	models "Asteria/models/graph"
)

// Seed inserts development fixture data: a handful of users, their games and
// the Baltic countries. If the first user already exists the database has
// been seeded before and the rest is skipped.
func (s *GraphStore) Seed(ctx context.Context) error {
	u1 := models.User{Name: "Roberts", Surname: "Ivanovs", Username: "ivn"}
	u2 := models.User{Name: "Dzintars", Surname: "Čīča", Username: "dzintars"}
	u3 := models.User{Name: "Viņķeles", Surname: "Kundze", Username: "disco"}
	u4 := models.User{Name: "Raimonds", Surname: "Pauls", Username: "vecadziesma"}
	u5 := models.User{Name: "Raimonds", Surname: "Pauls", Username: "jaunadziesma"}

	for _, u := range []models.User{u1, u2, u3, u4, u5} {
		if err := s.CreateUser(ctx, u); err != nil {
			if errors.Is(err, ErrConflict) {
				log.Println("Seed data already present, skipping")
				return nil
			}
			return err
		}
	}

	games := []struct {
		game   models.Game
		player models.User
	}{
		{models.Game{Score: 12, Start: "2020-04-07T18:00:00Z", End: "2020-04-07T18:03:00Z"}, u1},
		{models.Game{Score: 19, Start: "2020-04-07T19:00:00Z", End: "2020-04-07T20:03:00Z"}, u2},
		{models.Game{Score: 33, Start: "1999-04-07T19:00:00Z", End: "1999-04-07T20:03:00Z"}, u3},
		{models.Game{Score: 33, Start: "2020-04-08T19:00:00Z", End: "2020-04-08T20:03:00Z"}, u1},
		{models.Game{Score: 100, Start: "2020-04-09T19:00:00Z", End: "2020-04-09T20:03:00Z"}, u1},
		{models.Game{Score: 44, Start: "2020-04-10T19:00:00Z", End: "2020-04-10T20:03:00Z"}, u1},
	}
	for _, g := range games {
		if _, err := s.CreateGame(ctx, g.game, g.player); err != nil {
			return err
		}
	}

	c1 := models.Country{Name: "Latvia", Population: 2000000}
	c2 := models.Country{Name: "Lithuania", Population: 3500000}
	c3 := models.Country{Name: "Estonia", Population: 1500000}
	for _, c := range []models.Country{c1, c2, c3} {
		if err := s.CreateCountry(ctx, c); err != nil {
			return err
		}
	}

	residences := []struct {
		country models.Country
		player  models.User
	}{
		{c1, u1}, {c2, u2}, {c3, u3}, {c1, u4}, {c2, u5},
	}
	for _, r := range residences {
		if err := s.SetUserCountry(ctx, r.country, r.player); err != nil {
			return err
		}
	}
	return nil
}
