package store

import (
	"context"
	"fmt"
	"log"

	constants "Asteria/constants/graph"
	models "Asteria/models/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// GraphStore is the data-access layer over the Neo4j graph. Every operation
// issues parameterized Cypher through the Runner; failures are logged here
// and surfaced as the tagged errors from errors.go.
type GraphStore struct {
	runner Runner
}

func NewGraphStore(runner Runner) *GraphStore {
	return &GraphStore{runner: runner}
}

var createUserCypher = fmt.Sprintf(`
CREATE (n:%s {name: $name, surname: $surname, username: $username})
RETURN n`, constants.LabelUser)

// CreateUser inserts a new user node. A duplicate username surfaces as
// ErrConflict once the uniqueness constraint exists.
func (s *GraphStore) CreateUser(ctx context.Context, user models.User) error {
	_, err := s.runner.Run(ctx, createUserCypher, map[string]any{
		"name":     user.Name,
		"surname":  user.Surname,
		"username": user.Username,
	})
	if err != nil {
		log.Printf("createUser: %v", err)
		return classify(err)
	}
	return nil
}

var createCountryCypher = fmt.Sprintf(`
CREATE (n:%s {name: $name, population: $population})
RETURN n`, constants.LabelCountry)

// CreateCountry inserts a new country node, keyed on name.
func (s *GraphStore) CreateCountry(ctx context.Context, country models.Country) error {
	_, err := s.runner.Run(ctx, createCountryCypher, map[string]any{
		"name":       country.Name,
		"population": country.Population,
	})
	if err != nil {
		log.Printf("createCountry: %v", err)
		return classify(err)
	}
	return nil
}

var createGameCypher = fmt.Sprintf(`
CREATE (newGame:%s {score: $score, start: $start, end: $end})
WITH newGame
MATCH (a:%s)
WHERE a.username = $username
CREATE (a)-[:%s]->(newGame)
RETURN newGame`, constants.LabelGame, constants.LabelUser, constants.RelScored)

// CreateGame inserts a game node and links it to the scoring user. When no
// user matches the username the game node is still created, orphaned, and
// ErrNotFound is returned because the statement yields no rows.
func (s *GraphStore) CreateGame(ctx context.Context, game models.Game, player models.User) (*models.Game, error) {
	result, err := s.runner.Run(ctx, createGameCypher, map[string]any{
		"score":    game.Score,
		"start":    game.Start,
		"end":      game.End,
		"username": player.Username,
	})
	if err != nil {
		log.Printf("createGame: %v", err)
		return nil, classify(err)
	}
	if len(result.Records) == 0 {
		return nil, ErrNotFound
	}
	node, ok := nodeValue(result.Records[0], "newGame")
	if !ok {
		return nil, ErrNotFound
	}
	created := gameFromNode(node)
	return &created, nil
}

var setUserCountryCypher = fmt.Sprintf(`
MATCH (a:%s {username: $username})
OPTIONAL MATCH (a)-[r:%s]->()
DELETE r
WITH DISTINCT a
MATCH (b:%s {name: $name})
CREATE (a)-[:%s]->(b)
RETURN b`, constants.LabelUser, constants.RelLivesIn, constants.LabelCountry, constants.RelLivesIn)

// SetUserCountry replaces the user's residence edge. Removing the previous
// LIVES_IN edges and creating the new one happens in a single statement, so
// a user can never be observed with two countries.
func (s *GraphStore) SetUserCountry(ctx context.Context, country models.Country, player models.User) error {
	result, err := s.runner.Run(ctx, setUserCountryCypher, map[string]any{
		"username": player.Username,
		"name":     country.Name,
	})
	if err != nil {
		log.Printf("setUserCountry: %v", err)
		return classify(err)
	}
	if len(result.Records) == 0 {
		return ErrNotFound
	}
	return nil
}

var listUsersCypher = fmt.Sprintf(`
MATCH (n:%s)
WHERE n.username STARTS WITH $username
AND n.name STARTS WITH $name
AND n.surname STARTS WITH $surname
RETURN n`, constants.LabelUser)

// ListUsers returns users whose fields start with the filter values. Empty
// filter fields match everything.
func (s *GraphStore) ListUsers(ctx context.Context, filter models.User) ([]models.User, error) {
	result, err := s.runner.Run(ctx, listUsersCypher, map[string]any{
		"username": filter.Username,
		"name":     filter.Name,
		"surname":  filter.Surname,
	})
	if err != nil {
		log.Printf("listUsers: %v", err)
		return nil, classify(err)
	}
	users := []models.User{}
	for _, record := range result.Records {
		if node, ok := nodeValue(record, "n"); ok {
			users = append(users, userFromNode(node))
		}
	}
	return users, nil
}

var listGameListingsCypher = fmt.Sprintf(`
MATCH (g:%s)<-[:%s]-(u:%s)-[:%s]->(c:%s)
RETURN g, u, c`, constants.LabelGame, constants.RelScored,
	constants.LabelUser, constants.RelLivesIn, constants.LabelCountry)

// ListGameListings joins every game with its scoring user and that user's
// current country. The match is an inner join: games without a SCORED edge
// and users without a LIVES_IN edge are excluded.
func (s *GraphStore) ListGameListings(ctx context.Context) ([]models.GameListing, error) {
	result, err := s.runner.Run(ctx, listGameListingsCypher, map[string]any{})
	if err != nil {
		log.Printf("listGameListings: %v", err)
		return nil, classify(err)
	}
	listings := []models.GameListing{}
	for _, record := range result.Records {
		g, okG := nodeValue(record, "g")
		u, okU := nodeValue(record, "u")
		c, okC := nodeValue(record, "c")
		if !okG || !okU || !okC {
			continue
		}
		listings = append(listings, models.GameListing{
			Game:    gameFromNode(g),
			User:    userFromNode(u),
			Country: countryFromNode(c),
		})
	}
	return listings, nil
}

const countNodesCypher = `MATCH (n) RETURN count(n) AS nodeCount`

// CountNodes is a diagnostic: the total number of nodes in the graph.
func (s *GraphStore) CountNodes(ctx context.Context) (int64, error) {
	result, err := s.runner.Run(ctx, countNodesCypher, map[string]any{})
	if err != nil {
		log.Printf("countNodes: %v", err)
		return 0, classify(err)
	}
	if len(result.Records) == 0 {
		return 0, ErrNotFound
	}
	value, ok := result.Records[0].Get("nodeCount")
	if !ok {
		return 0, ErrNotFound
	}
	count, _ := value.(int64)
	return count, nil
}

var deleteUserCypher = fmt.Sprintf(`
MATCH (n:%s {username: $username})
DETACH DELETE n
RETURN count(n) AS deleted`, constants.LabelUser)

// DeleteUser removes a user node and every edge attached to it. Deleting a
// username that does not exist returns ErrNotFound.
func (s *GraphStore) DeleteUser(ctx context.Context, username string) error {
	result, err := s.runner.Run(ctx, deleteUserCypher, map[string]any{
		"username": username,
	})
	if err != nil {
		log.Printf("deleteUser: %v", err)
		return classify(err)
	}
	if len(result.Records) == 0 {
		return ErrNotFound
	}
	value, _ := result.Records[0].Get("deleted")
	if deleted, _ := value.(int64); deleted == 0 {
		return ErrNotFound
	}
	return nil
}

var updateUserCypher = fmt.Sprintf(`
MATCH (n:%s {username: $username})
SET n.name = $name, n.surname = $surname, n.username = $newUsername
RETURN n`, constants.LabelUser)

// UpdateUser hard-replaces the user's properties, keyed on the old username.
func (s *GraphStore) UpdateUser(ctx context.Context, user models.User, username string) error {
	result, err := s.runner.Run(ctx, updateUserCypher, map[string]any{
		"username":    username,
		"newUsername": user.Username,
		"name":        user.Name,
		"surname":     user.Surname,
	})
	if err != nil {
		log.Printf("updateUser: %v", err)
		return classify(err)
	}
	if len(result.Records) == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureConstraints creates the uniqueness constraints once, at startup.
// Creating them here instead of after every insert is what makes duplicate
// usernames surface as conflicts rather than silently double-inserting.
func (s *GraphStore) EnsureConstraints(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE CONSTRAINT user_username_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.username IS UNIQUE`, constants.LabelUser),
		fmt.Sprintf(`CREATE CONSTRAINT country_name_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.name IS UNIQUE`, constants.LabelCountry),
		fmt.Sprintf(`CREATE CONSTRAINT game_pk_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.pk IS UNIQUE`, constants.LabelGame),
	}
	for _, statement := range statements {
		if _, err := s.runner.Run(ctx, statement, map[string]any{}); err != nil {
			log.Printf("ensureConstraints: %v", err)
			return classify(err)
		}
	}
	return nil
}

// nodeValue extracts a node from a record by key.
func nodeValue(record *neo4j.Record, key string) (neo4j.Node, bool) {
	value, ok := record.Get(key)
	if !ok {
		return neo4j.Node{}, false
	}
	node, ok := value.(neo4j.Node)
	return node, ok
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func floatProp(props map[string]any, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func intProp(props map[string]any, key string) int64 {
	switch v := props[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func userFromNode(node neo4j.Node) models.User {
	return models.User{
		Name:     stringProp(node.Props, "name"),
		Surname:  stringProp(node.Props, "surname"),
		Username: stringProp(node.Props, "username"),
	}
}

func countryFromNode(node neo4j.Node) models.Country {
	return models.Country{
		Name:       stringProp(node.Props, "name"),
		Population: intProp(node.Props, "population"),
	}
}

func gameFromNode(node neo4j.Node) models.Game {
	return models.Game{
		Score: floatProp(node.Props, "score"),
		Start: stringProp(node.Props, "start"),
		End:   stringProp(node.Props, "end"),
	}
}
