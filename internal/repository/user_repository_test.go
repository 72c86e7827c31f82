package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestUsernameFilterAnchorsAndEscapes(t *testing.T) {
	filter := usernameFilter("ali.ce")

	inner, ok := filter["username"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, `^ali\.ce$`, inner["$regex"])
	assert.Equal(t, "i", inner["$options"])
}

func TestUsernameFilterCaseInsensitiveOption(t *testing.T) {
	inner := usernameFilter("Alice")["username"].(bson.M)
	assert.Equal(t, "i", inner["$options"], "legacy mixed-case entries must still collide")
}

func TestIsDuplicateKey(t *testing.T) {
	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
	other := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121}}}

	assert.True(t, isDuplicateKey(dup))
	assert.False(t, isDuplicateKey(other))
	assert.False(t, isDuplicateKey(mongo.WriteException{}))
	assert.False(t, isDuplicateKey(errors.New("network down")))
	assert.False(t, isDuplicateKey(nil))
}
