package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoOptions describes how to reach the DocumentDB cluster.
type MongoOptions struct {
	Endpoint       string
	Port           int
	User           string
	Password       string
	TLSCAFile      string
	ConnectTimeout time.Duration
	// WaitTimeout bounds server selection, so a request blocked on an
	// unreachable cluster or an exhausted pool fails instead of hanging.
	WaitTimeout time.Duration
	MaxPoolSize uint64
}

// MongoURI builds the DocumentDB connection string: TLS on, replica set rs0,
// reads from secondaries when possible and retryable writes off (DocumentDB
// does not support them).
func MongoURI(o MongoOptions) string {
	port := o.Port
	if port == 0 {
		port = 27017
	}

	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(o.Endpoint, strconv.Itoa(port)),
		Path:   "/",
	}
	if o.User != "" {
		u.User = url.UserPassword(o.User, o.Password)
	}

	q := url.Values{}
	q.Set("ssl", "true")
	q.Set("replicaSet", "rs0")
	q.Set("readPreference", "secondaryPreferred")
	q.Set("retryWrites", "false")
	if o.TLSCAFile != "" {
		q.Set("tlsCAFile", o.TLSCAFile)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// ConnectMongo creates a client and verifies the cluster is reachable.
func ConnectMongo(ctx context.Context, o MongoOptions) (*mongo.Client, error) {
	connectTimeout := o.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(MongoURI(o)).
		SetConnectTimeout(connectTimeout)
	if o.WaitTimeout > 0 {
		opts.SetServerSelectionTimeout(o.WaitTimeout)
	}
	if o.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(o.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	// Check connection
	if err := client.Ping(ctx, readpref.PrimaryPreferred()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}
