package database

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoURI(t *testing.T) {
	raw := MongoURI(MongoOptions{
		Endpoint: "docdb.cluster.local",
		User:     "dbAdmin",
		Password: "p@ss:word/1",
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "mongodb", u.Scheme)
	assert.Equal(t, "docdb.cluster.local:27017", u.Host)
	assert.Equal(t, "dbAdmin", u.User.Username())
	pw, ok := u.User.Password()
	assert.True(t, ok)
	assert.Equal(t, "p@ss:word/1", pw)

	q := u.Query()
	assert.Equal(t, "true", q.Get("ssl"))
	assert.Equal(t, "rs0", q.Get("replicaSet"))
	assert.Equal(t, "secondaryPreferred", q.Get("readPreference"))
	assert.Equal(t, "false", q.Get("retryWrites"))
	assert.False(t, q.Has("tlsCAFile"))
}

func TestMongoURI_NoUserWithCAFile(t *testing.T) {
	raw := MongoURI(MongoOptions{
		Endpoint:  "localhost",
		Port:      27018,
		TLSCAFile: "/opt/global-bundle.pem",
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Nil(t, u.User)
	assert.Equal(t, "localhost:27018", u.Host)
	assert.Equal(t, "/opt/global-bundle.pem", u.Query().Get("tlsCAFile"))
}

func TestConnectMongo_Unreachable(t *testing.T) {
	start := time.Now()
	_, err := ConnectMongo(context.Background(), MongoOptions{
		Endpoint:       "127.0.0.1",
		Port:           1,
		ConnectTimeout: 500 * time.Millisecond,
		WaitTimeout:    500 * time.Millisecond,
	})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
}
