package models

// Mouse is the demo resource backed by the in-memory mock store. It is
// unrelated to the graph domain and is never persisted.
type Mouse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}
