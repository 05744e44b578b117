package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectRequiresDSN(t *testing.T) {
	db, err := Connect("")

	assert.Nil(t, db)
	assert.ErrorContains(t, err, "DATABASE_URL is required")
}
