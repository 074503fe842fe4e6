package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/kardolus/reasoning-cli/api"
	"github.com/kardolus/reasoning-cli/api/client"
	"github.com/kardolus/reasoning-cli/api/response"
	"github.com/kardolus/reasoning-cli/config"
	"github.com/kardolus/reasoning-cli/history"
	"github.com/kardolus/reasoning-cli/service"
	"go.uber.org/zap"
)

func runInteractive(ctx context.Context, c *client.Client, hm *history.Manager, cfg config.Config, effort api.ReasoningEffort) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          config.FormatPrompt(cfg.CommandPrompt, 1, 0, effort.String(), time.Now()),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	if prompts, err := hm.ParseUserHistory(cfg.Thread); err == nil {
		for _, p := range prompts {
			_ = rl.SaveHistory(p)
		}
	}

	sugar := zap.S()
	sugar.Infof("thread %s, effort %s. Type 'exit' or press Ctrl+D to quit.", cfg.Thread, effort)

	counter, usage := 1, 0
	for {
		rl.SetPrompt(config.FormatPrompt(cfg.CommandPrompt, counter, usage, effort.String(), time.Now()))

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit", "/q":
			return nil
		}

		messages := []api.Message{}
		if !cfg.OmitHistory {
			if messages, err = hm.Messages(); err != nil {
				return err
			}
		}
		question := api.Message{Role: api.UserRole, Content: line}

		result, err := c.Send(ctx, append(messages, question), effort)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sugar.Error(err)
			continue
		}

		text := service.ExtractSafeContent(result)
		if text != "" {
			fmt.Println(text)
		}
		if s, ok := result.(response.Success); ok {
			usage += s.TotalTokens()
		}

		if text != "" && !cfg.OmitHistory {
			if err := hm.Append(question, api.Message{Role: api.AssistantRole, Content: text}); err != nil {
				sugar.Warnf("could not save history: %v", err)
			}
		}
		counter++
	}
}
