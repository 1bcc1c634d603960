package graph

/*
 * 'User' is a player node. The username is intended to be unique,
 * enforced by a database constraint created at startup.
 */
type User struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Username string `json:"username"`
}

// Country is a residence node. Name is intended to be unique.
type Country struct {
	Name       string `json:"name"`
	Population int64  `json:"population"`
}

// Game is one played round. Start and end are RFC3339 timestamps; games
// have no natural key and are never updated or deleted through the API.
type Game struct {
	Score float64 `json:"score"`
	Start string  `json:"start"`
	End   string  `json:"end"`
}

// GameListing is the joined view of one game with its scoring user and
// that user's current country.
type GameListing struct {
	Game    Game    `json:"game"`
	User    User    `json:"user"`
	Country Country `json:"country"`
}

// UserAggregate holds per-user totals derived from listings. Duration is
// accumulated in minutes. Country is the last one seen while folding,
// not a breakdown.
type UserAggregate struct {
	User     User    `json:"user"`
	Score    float64 `json:"score"`
	Duration float64 `json:"duration"`
	Count    int     `json:"count"`
	Country  Country `json:"country"`
}

// Leaderboard maps username to that user's aggregate.
type Leaderboard map[string]UserAggregate
