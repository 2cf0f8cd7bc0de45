package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
)

func TestUsersClient_Current(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/current.json", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"user": {"id": 7, "login": "jsmith", "firstname": "John", "lastname": "Smith"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	user, err := c.Users().Current(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), user.ID)
	assert.Equal(t, "jsmith", user.Login)
}

func TestUsersClient_List_StatusFilter(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users.json", request.URL.Path)
		assert.Equal(t, "3", request.URL.Query().Get("status"))
		assert.Equal(t, "smith", request.URL.Query().Get("name"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"users": [{"id": 7, "login": "jsmith"}], "total_count": 1, "offset": 0, "limit": 100}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	status := redmine.UserStatusLocked
	name := "smith"
	users, err := c.Users().List(context.Background(), &redmine.UsersListOptions{
		Status: &status,
		Name:   &name,
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "jsmith", users[0].Login)
}

func TestUsersClient_Get_WithInclude(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users/7.json", request.URL.Path)
		assert.Equal(t, "memberships,groups", request.URL.Query().Get("include"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"user": {"id": 7, "login": "jsmith", "groups": [{"id": 2, "name": "Developers"}]}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	user, err := c.Users().Get(context.Background(), 7, &redmine.UserGetOptions{
		Include: []redmine.UserInclude{redmine.UserIncludeMemberships, redmine.UserIncludeGroups},
	})
	require.NoError(t, err)
	require.Len(t, user.Groups, 1)
	assert.Equal(t, "Developers", user.Groups[0].Name)
}

func TestUsersClient_MyAccount(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/my/account.json", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"user": {"id": 7, "login": "jsmith", "api_key": "0123456789abcdef"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	user, err := c.Users().MyAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", user.APIKey)
}

func TestUsersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/users.json", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body struct {
			User redmine.UserCreateRequest `json:"user"`
		}

		err := json.NewDecoder(request.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "jsmith", body.User.Login)
		assert.True(t, body.User.GeneratePassword)

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"user": {"id": 8, "login": "jsmith"}}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	user, err := c.Users().Create(context.Background(), &redmine.UserCreateRequest{
		Login:            "jsmith",
		Firstname:        "John",
		Lastname:         "Smith",
		Mail:             "jsmith@example.com",
		GeneratePassword: true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(8), user.ID)
}
