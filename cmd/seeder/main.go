package main

import (
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/clarkio/discord-wordle-bot/internal/database"
	"github.com/clarkio/discord-wordle-bot/internal/wordle"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME": "wordle.db",
	}
	optional := []string{"DB_NAME", "TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN", "BOT_TOKEN", "TARGET_CHANNEL_ID"}
	for _, key := range optional {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	history := flag.Bool("history", false, "backfill scores from the Discord channel history instead of generating dummy data")
	limit := flag.Int("limit", 100, "maximum number of channel messages to process in history mode")
	flag.Parse()

	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_DATABASE_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := wordle.New(db)

	if *history {
		seedFromHistory(cfg, store, *limit)
		return
	}
	seedDummyData(db, store)
}

// seedFromHistory walks the target channel backwards and ingests every game
// result it finds, then reclassifies the affected rounds.
func seedFromHistory(cfg map[string]string, store wordle.ScoreStore, limit int) {
	for _, key := range []string{"BOT_TOKEN", "TARGET_CHANNEL_ID"} {
		if cfg[key] == "" {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}

	session, err := discordgo.New("Bot " + cfg["BOT_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to create Discord session: %s", err)
	}

	channelID := cfg["TARGET_CHANNEL_ID"]
	games := make(map[int]bool)
	processed := 0
	ingested := 0
	beforeID := ""

	for processed < limit {
		messages, err := session.ChannelMessages(channelID, 100, beforeID, "", "")
		if err != nil {
			log.Fatalf("Failed to fetch channel messages: %s", err)
		}
		if len(messages) == 0 {
			break
		}

		for _, message := range messages {
			processed++
			if message.Author == nil || message.Author.Bot {
				continue
			}
			result, ok := wordle.ParseResult(message.Author.ID, message.Author.Username, message.Content)
			if !ok {
				continue
			}

			existing, err := store.GetScoreByIDAndNumber(result.DiscordID, result.GameNumber, false)
			if err != nil {
				log.Error("Failed to check for existing score", "error", err, "gameNumber", result.GameNumber)
				continue
			}
			if existing != nil {
				log.Info("Result already exists", "player", result.DiscordName, "gameNumber", result.GameNumber)
				continue
			}

			store.CreatePlayer(result.DiscordID, result.DiscordName)
			store.CreateWordle(result.GameNumber)
			store.CreateScore(result.DiscordID, result.GameNumber, result.Attempts, false, false)
			games[result.GameNumber] = true
			ingested++
		}

		log.Info("Total fetched messages", "count", processed)
		beforeID = messages[len(messages)-1].ID
	}

	for gameNumber := range games {
		reclassifyGame(store, gameNumber)
	}

	log.Info("History backfill finished", "messages", processed, "ingested", ingested, "games", len(games))
}

// seedDummyData fills the database with generated players and a plausible
// score history for local development.
func seedDummyData(db *sql.DB, store wordle.ScoreStore) {
	const numPlayers = 8
	const numGames = 500
	const batchSize = 100

	type dummyPlayer struct {
		id   string
		name string
	}

	players := make([]dummyPlayer, 0, numPlayers)
	for i := 0; i < numPlayers; i++ {
		players = append(players, dummyPlayer{
			id:   uuid.NewString(),
			name: gofakeit.Username(),
		})
	}

	for _, p := range players {
		_, err := db.Exec("INSERT OR IGNORE INTO players (discord_id, discord_name, is_opted_in) VALUES (?, ?, 1)", p.id, p.name)
		if err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", p.name, err)
		}
	}
	log.Info("Ensured dummy players exist.", "count", numPlayers)

	log.Info("Preparing to insert dummy scores...", "games", numGames, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	firstGame := 1
	gameValues := make([]string, 0, batchSize)
	gameArgs := make([]interface{}, 0, batchSize)
	scoreValues := make([]string, 0, batchSize)
	scoreArgs := make([]interface{}, 0, batchSize*5)

	flushScores := func() {
		if len(gameValues) > 0 {
			stmt := fmt.Sprintf("INSERT OR IGNORE INTO wordles (game_number) VALUES %s;", strings.Join(gameValues, ","))
			if _, err := tx.Exec(stmt, gameArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute game batch insert: %s", err)
			}
			gameValues = gameValues[:0]
			gameArgs = gameArgs[:0]
		}
		if len(scoreValues) > 0 {
			stmt := fmt.Sprintf(`
				INSERT OR IGNORE INTO scores (discord_id, game_number, attempts, is_win, is_tie)
				VALUES %s;`, strings.Join(scoreValues, ","))
			if _, err := tx.Exec(stmt, scoreArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute score batch insert: %s", err)
			}
			scoreValues = scoreValues[:0]
			scoreArgs = scoreArgs[:0]
		}
	}

	for i := 0; i < numGames; i++ {
		gameNumber := firstGame + i
		gameValues = append(gameValues, "(?)")
		gameArgs = append(gameArgs, gameNumber)

		for _, p := range players {
			// Not everyone plays every day.
			if rand.Intn(100) < 25 {
				continue
			}
			scoreValues = append(scoreValues, "(?, ?, ?, 0, 0)")
			scoreArgs = append(scoreArgs, p.id, gameNumber, randomAttempts())
		}

		if (i+1)%batchSize == 0 || (i+1) == numGames {
			flushScores()
			log.Info("Inserted batch", "completed", i+1, "total", numGames)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	for i := 0; i < numGames; i++ {
		reclassifyGame(store, firstGame+i)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy scores.", "duration", duration)
}

func reclassifyGame(store wordle.ScoreStore, gameNumber int) {
	scores, err := store.GetScoresByNumber(gameNumber)
	if err != nil {
		log.Error("Failed to load scores for game", "error", err, "gameNumber", gameNumber)
		return
	}
	outcome := wordle.ResolveRound(scores)
	for _, score := range outcome.Classified {
		store.UpdateScore(score.DiscordID, score.GameNumber, score.Attempts, score.IsWin, score.IsTie)
	}
}

func randomAttempts() string {
	// Roughly bell-shaped around 4, with the occasional failure.
	roll := rand.Intn(100)
	switch {
	case roll < 2:
		return "1"
	case roll < 10:
		return "2"
	case roll < 30:
		return "3"
	case roll < 60:
		return "4"
	case roll < 82:
		return "5"
	case roll < 94:
		return "6"
	default:
		return "X"
	}
}
