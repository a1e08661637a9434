package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"repo-analyst/backend/internal/agent"
	"repo-analyst/backend/pkg/config"
	"repo-analyst/backend/pkg/logger"
)

func main() {
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	analyst := agent.New(cfg)
	sessionID := analyst.CreateSession("interactive_session")

	fmt.Println("GitHub Project Analyst - ask about any repository (quit/exit to leave)")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		}

		answer, err := analyst.Send(context.Background(), input, sessionID)
		if err != nil {
			// Keep the loop alive; a failed turn is not fatal
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("\nAnalyst: %s\n", answer)
	}

	if err := scanner.Err(); err != nil {
		log.Error("Input error", zap.Error(err))
	}
}
