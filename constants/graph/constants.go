package graph_constants

// Node labels
const (
	LabelUser    = "user"
	LabelCountry = "country"
	LabelGame    = "game"
)

// Relationship types
const (
	RelScored  = "SCORED"
	RelLivesIn = "LIVES_IN"
)

// Username used when a game is submitted without one
const AnonymousUsername = "Anonymous"
