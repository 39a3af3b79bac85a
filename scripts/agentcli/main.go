package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"devforge/internal/config"
	agentModels "devforge/internal/domain/models/agent"
	agentService "devforge/internal/service/agent"
	serviceLLM "devforge/internal/service/llm"

	"github.com/joho/godotenv"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// CLI drives the generation pipeline from a terminal, without the HTTP
// server in between. Useful for poking at prompts and providers.
type CLI struct {
	ctx     context.Context
	agent   *agentService.Service
	scanner *bufio.Scanner
	role    agentModels.Role
	mode    agentModels.Mode
	convID  string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Quiet logger; the CLI prints its own output
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	_, client, err := serviceLLM.SetupProviders(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup LLM providers: %v", err)
	}

	store := agentService.NewMemoryStore()
	cli := &CLI{
		ctx:     context.Background(),
		agent:   agentService.NewService(store, client, logger),
		scanner: bufio.NewScanner(os.Stdin),
		role:    agentModels.ParseRole("developer"),
		mode:    agentModels.ParseMode("direct"),
		convID:  "cli",
	}

	fmt.Printf("%sagent cli%s (provider: %s)\n", colorCyan, colorReset, cfg.DefaultProvider)
	fmt.Println("commands: /role <name>, /mode <name>, /clear, /quit")

	cli.run(store)
}

func (c *CLI) run(store *agentService.MemoryStore) {
	for {
		fmt.Printf("%s%s/%s>%s ", colorBlue, c.role, c.mode, colorReset)
		if !c.scanner.Scan() {
			return
		}
		line := strings.TrimSpace(c.scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit" || line == "/exit":
			return
		case line == "/clear":
			store.Clear(c.convID)
			fmt.Printf("%sconversation cleared%s\n", colorYellow, colorReset)
			continue
		case strings.HasPrefix(line, "/role "):
			c.role = agentModels.ParseRole(strings.TrimSpace(strings.TrimPrefix(line, "/role ")))
			continue
		case strings.HasPrefix(line, "/mode "):
			c.mode = agentModels.ParseMode(strings.TrimSpace(strings.TrimPrefix(line, "/mode ")))
			continue
		}

		c.respond(line)
	}
}

func (c *CLI) respond(input string) {
	st, err := c.agent.StreamResponse(c.ctx, c.role, c.mode, input, "", c.convID)
	if err != nil {
		fmt.Printf("%serror: %v%s\n", colorRed, err, colorReset)
		return
	}

	failed := false
	for chunk := range st.Chunks {
		if chunk.Err != nil {
			failed = true
			fmt.Printf("\n%sstream error: %v%s\n", colorRed, chunk.Err, colorReset)
			continue
		}
		fmt.Printf("%s%s%s", colorGreen, chunk.Content, colorReset)
	}
	if !failed {
		st.Finalize()
		fmt.Println()
	}
}
