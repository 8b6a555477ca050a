//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/coverage-planner/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	inputPath := flag.String("input", "", "JSON file with SimulationInput (office sample if empty)")
	scenario := flag.String("scenario", "", "Saved scenario UUID instead of inline input")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.SimulationRequestEvent{RequestID: uuid.New()}
	switch {
	case *scenario != "":
		id, err := uuid.Parse(*scenario)
		if err != nil {
			log.Fatalf("Invalid scenario id: %v", err)
		}
		event.ScenarioID = &id
	case *inputPath != "":
		raw, err := os.ReadFile(*inputPath)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		var input domain.SimulationInput
		if err := json.Unmarshal(raw, &input); err != nil {
			log.Fatalf("Failed to parse input: %v", err)
		}
		event.Input = &input
	default:
		event.Input = &domain.SimulationInput{
			TechnologyID: domain.TechnologyWiFi,
			Band:         "5GHz",
			Building:     domain.Building{LengthM: 60, WidthM: 40, FloorHeightM: 3.5, FloorCount: 3},
			Obstacles: []domain.Obstacle{
				{ID: "core", MaterialID: "concrete", X: 25, Y: 15, Width: 10, Height: 10, FloorLevel: 1},
			},
			Link: domain.LinkParameters{TxPowerDbm: 20, TargetRssiDbm: -67, SafetyMarginDb: 10},
		}
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	msgID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamCoverageSimulate,
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamCoverageSimulate)
	fmt.Printf("   Message ID: %s\n", msgID)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamCoverageDone)

	deadline := time.Now().Add(30 * time.Second)
	lastID := "0"
	for time.Now().Before(deadline) {
		results, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{domain.StreamCoverageDone, lastID},
			Count:   50,
			Block:   time.Second,
		}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			log.Printf("XRead failed: %v", err)
			time.Sleep(time.Second)
			continue
		}

		for _, stream := range results {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				dataStr, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var done domain.SimulationDoneEvent
				if err := json.Unmarshal([]byte(dataStr), &done); err != nil {
					continue
				}
				if done.RequestID != event.RequestID {
					continue
				}

				fmt.Printf("\nResponse received\n")
				pretty, _ := json.MarshalIndent(done, "", "  ")
				fmt.Printf("%s\n", pretty)
				return
			}
		}
	}

	fmt.Println("Timeout waiting for response")
	os.Exit(1)
}
