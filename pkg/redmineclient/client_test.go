package redmineclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmine-go/redmine/pkg/redmine"
	"github.com/redmine-go/redmine/pkg/redmineclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "secret", request.Header.Get("x-redmine-api-key"))

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"user": {"id": 1, "login": "admin"}}`))
	}))
	defer server.Close()

	cli, err := redmineclient.New(&redmine.Config{BaseURL: server.URL, APIKey: "secret"})
	require.NoError(t, err)

	user, err := cli.Users().Current(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Login)
}

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	cli, err := redmineclient.New(nil)
	require.ErrorIs(t, err, redmine.ErrConfigRequired)
	assert.Nil(t, cli)
}

func TestNew_DefaultsToHTTPS(t *testing.T) {
	t.Parallel()

	cli, err := redmineclient.NewWithAPIKey("redmine.example.com", "secret")
	require.NoError(t, err)

	target, err := cli.IssueURL(7)
	require.NoError(t, err)
	assert.Equal(t, "https://redmine.example.com/issues/7", target.String())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("REDMINE_URL", "https://redmine.example.com")
	t.Setenv("REDMINE_API_KEY", "secret")

	cli, err := redmineclient.FromEnv()
	require.NoError(t, err)
	assert.NotNil(t, cli)
}

func TestFromEnv_MissingURL(t *testing.T) {
	t.Setenv("REDMINE_URL", "")
	t.Setenv("REDMINE_API_KEY", "secret")

	cli, err := redmineclient.FromEnv()
	require.Error(t, err)
	assert.Nil(t, cli)

	var configErr *redmine.ConfigError

	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "REDMINE_URL", configErr.Name)
}

func TestFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("REDMINE_URL", "https://redmine.example.com")
	t.Setenv("REDMINE_API_KEY", "")

	cli, err := redmineclient.FromEnv()
	require.Error(t, err)
	assert.Nil(t, cli)

	var configErr *redmine.ConfigError

	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "REDMINE_API_KEY", configErr.Name)
}
