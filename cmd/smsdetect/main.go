package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"sms-transaction-detector/internal/gateway"
	"sms-transaction-detector/internal/logger"
	"sms-transaction-detector/internal/usecase"
)

func main() {
	// Define command-line flags
	messagesFile := flag.String("messages", "", "Path to the SMS export JSON file (required)")
	dbPath := flag.String("db", "smsdetect.db", "Path to the sqlite database holding the ledger and transactions")
	since := flag.Int64("since", 0, "Only consider messages at or after this unix-millisecond timestamp")
	maxCount := flag.Int("max", 0, "Maximum number of messages to consider (0 = no cap)")
	sendersStr := flag.String("senders", "", "Comma-separated sender allow-list tokens (empty = all senders)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := logger.New().Level(zerolog.InfoLevel)
	if *debug {
		log = log.Level(zerolog.DebugLevel)
	}

	if *messagesFile == "" {
		fmt.Println("Error: -messages is required.")
		flag.Usage()
		os.Exit(1)
	}

	var senders []string
	if *sendersStr != "" {
		senders = strings.Split(*sendersStr, ",")
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Open the sqlite store (ledger + transactions, outermost layer)
	store, err := gateway.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer store.Close()

	// 2. Create the pipeline and inject the stores (the core logic layer)
	pipeline := usecase.NewPipeline(store, store, usecase.DefaultConfig(), log)

	// 3. Create the message source
	source := gateway.NewFileMessageSource()

	// --- Fetch, prefilter and process ---
	ctx := context.Background()

	messages, err := source.GetMessages(ctx, *messagesFile, gateway.MessageFilter{
		MaxCount:         *maxCount,
		SinceTimestampMs: *since,
		SenderAllowList:  senders,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read messages")
	}

	// Drop messages already in the ledger before extraction even starts.
	messages, err = pipeline.FilterNew(ctx, messages)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to filter processed messages")
	}

	summary := pipeline.ProcessBatch(ctx, messages)

	// --- Present the Output ---
	output, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate JSON summary")
	}

	fmt.Println(string(output))
}
