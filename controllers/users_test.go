package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	models "Asteria/models/graph"
	"Asteria/routes"
	"Asteria/services/store"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
	"github.com/stretchr/testify/assert"
)

// fakeRunner records statements and replays canned results, so the whole
// router can be exercised without a database.
type fakeRunner struct {
	cypher  []string
	params  []map[string]any
	results []*neo4j.EagerResult
	errs    []error
}

func (f *fakeRunner) Run(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	call := len(f.cypher)
	f.cypher = append(f.cypher, cypher)
	f.params = append(f.params, params)
	if call < len(f.errs) && f.errs[call] != nil {
		return nil, f.errs[call]
	}
	if call < len(f.results) && f.results[call] != nil {
		return f.results[call], nil
	}
	return &neo4j.EagerResult{}, nil
}

func newRouter(runner store.Runner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router, store.NewGraphStore(runner))
	return router
}

func record(keys []string, values []any) *neo4j.EagerResult {
	return &neo4j.EagerResult{
		Keys:    keys,
		Records: []*neo4j.Record{{Keys: keys, Values: values}},
	}
}

func node(label string, props map[string]any) neo4j.Node {
	return neo4j.Node{Labels: []string{label}, Props: props}
}

func constraintViolation() error {
	return &db.Neo4jError{
		Code: "Neo.ClientError.Schema.ConstraintValidationFailed",
		Msg:  "node already exists",
	}
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateUserEndpoint(t *testing.T) {
	runner := &fakeRunner{}
	router := newRouter(runner)

	resp := perform(router, http.MethodPost, "/api/users",
		`{"name":"A","surname":"B","username":"ab"}`)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var body struct {
		Created bool `json:"created"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Created)
	assert.Equal(t, "ab", runner.params[0]["username"])
}

func TestCreateUserEndpointDuplicate(t *testing.T) {
	runner := &fakeRunner{errs: []error{constraintViolation()}}
	router := newRouter(runner)

	resp := perform(router, http.MethodPost, "/api/users",
		`{"name":"A","surname":"B","username":"ab"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"created":false`)
}

func TestGetUsersForwardsPrefixFilters(t *testing.T) {
	runner := &fakeRunner{results: []*neo4j.EagerResult{record(
		[]string{"n"},
		[]any{node("user", map[string]any{"name": "Roberts", "surname": "Ivanovs", "username": "ivn"})},
	)}}
	router := newRouter(runner)

	resp := perform(router, http.MethodGet, "/api/users?name=Ro", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	// omitted filters coalesce to empty prefixes, which match everything
	assert.Equal(t, "Ro", runner.params[0]["name"])
	assert.Equal(t, "", runner.params[0]["surname"])
	assert.Equal(t, "", runner.params[0]["username"])

	var body struct {
		Users []models.User `json:"users"`
	}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Users, 1)
	assert.Equal(t, "ivn", body.Users[0].Username)
}

func TestDeleteUserEndpoint(t *testing.T) {
	runner := &fakeRunner{results: []*neo4j.EagerResult{record([]string{"deleted"}, []any{int64(1)})}}
	router := newRouter(runner)

	resp := perform(router, http.MethodDelete, "/api/users/ivn", "")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "ivn", runner.params[0]["username"])
}

func TestDeleteUserEndpointNotFound(t *testing.T) {
	// deleting a username that does not exist must be a 400, never a 204
	runner := &fakeRunner{results: []*neo4j.EagerResult{record([]string{"deleted"}, []any{int64(0)})}}
	router := newRouter(runner)

	resp := perform(router, http.MethodDelete, "/api/users/ghost", "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"deleted":false`)
}

func TestUpdateUserEndpoint(t *testing.T) {
	runner := &fakeRunner{results: []*neo4j.EagerResult{record(
		[]string{"n"},
		[]any{node("user", map[string]any{"name": "R", "surname": "I", "username": "rob"})},
	)}}
	router := newRouter(runner)

	resp := perform(router, http.MethodPut, "/api/users/ivn",
		`{"name":"R","surname":"I","username":"rob"}`)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "ivn", runner.params[0]["username"])
	assert.Equal(t, "rob", runner.params[0]["newUsername"])
}

func TestUpdateUserEndpointAnonymousFallback(t *testing.T) {
	runner := &fakeRunner{results: []*neo4j.EagerResult{record(
		[]string{"n"},
		[]any{node("user", map[string]any{"username": "Anonymous"})},
	)}}
	router := newRouter(runner)

	resp := perform(router, http.MethodPut, "/api/users/ivn",
		`{"name":"R","surname":"I"}`)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "Anonymous", runner.params[0]["newUsername"])
}

func TestCountNodesEndpoint(t *testing.T) {
	runner := &fakeRunner{results: []*neo4j.EagerResult{record([]string{"nodeCount"}, []any{int64(14)})}}
	router := newRouter(runner)

	resp := perform(router, http.MethodGet, "/api/nodes", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"nodeCount":14`)
}

func TestCountNodesEndpointFailure(t *testing.T) {
	runner := &fakeRunner{errs: []error{assert.AnError}}
	router := newRouter(runner)

	resp := perform(router, http.MethodGet, "/api/nodes", "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
