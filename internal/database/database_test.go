package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"wordles", "players", "scores"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name, "The '%s' table should be created", table)
	}
}

func TestInitDB_ScoreUniqueness(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO players (discord_id, discord_name) VALUES ('u1', 'User One')")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO wordles (game_number) VALUES (100)")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO scores (discord_id, game_number, attempts) VALUES ('u1', 100, '3')")
	require.NoError(t, err)

	// The composite primary key must reject a second score for the same
	// player and game.
	_, err = db.Exec("INSERT INTO scores (discord_id, game_number, attempts) VALUES ('u1', 100, '5')")
	assert.Error(t, err, "duplicate (player, game) insert should be rejected")

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM scores").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
