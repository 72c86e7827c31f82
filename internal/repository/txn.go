package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// WithTxn runs fn inside a multi-document transaction. Every cross-document
// relational write (likes, follow pairs, accepts, post delete cascade) goes
// through here so a failed half never leaves the two sides out of sync.
func WithTxn(ctx context.Context, client *mongo.Client, fn func(ctx context.Context) error) error {
	session, err := client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}
