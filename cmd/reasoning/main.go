package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kardolus/reasoning-cli/api"
	"github.com/kardolus/reasoning-cli/api/client"
	"github.com/kardolus/reasoning-cli/api/http"
	"github.com/kardolus/reasoning-cli/chat"
	"github.com/kardolus/reasoning-cli/config"
	"github.com/kardolus/reasoning-cli/history"
	"github.com/kardolus/reasoning-cli/internal"
	"github.com/kardolus/reasoning-cli/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "REASONING"

var GitVersion string

func main() {
	internal.InitLogger()

	// a missing .env is fine
	_ = godotenv.Load()

	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		zap.S().Error(err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "reasoning [prompt]",
		Short:         "Ask reasoning models from the terminal",
		Long:          "Send prompts to the OpenAI responses API with a reasoning effort and print the normalized answer.\n\n" + config.CompletionsHelp,
		Version:       GitVersion,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringP("effort", "e", "", "Reasoning effort: minimal, low, medium or high")
	flags.StringP("model", "m", "", "Model to use for reasoning requests")
	flags.Bool("text-only", false, "Print only the answer text")
	flags.BoolP("verbose", "v", false, "Print effort, reasoning trace and token usage")
	flags.Bool("chat", false, "Use the plain chat provider instead of a reasoning request")
	flags.BoolP("interactive", "i", false, "Start an interactive session")
	flags.String("thread", "", "History thread used by interactive mode")
	flags.Bool("new-thread", false, "Start interactive mode on a fresh thread")
	flags.Bool("show-config", false, "Print the resolved configuration")
	flags.Bool("history", false, "Print the history of the current thread")
	flags.Bool("delete-thread", false, "Delete the current thread")
	flags.String("set-completions", "", "Print the completion script for bash, zsh, fish or powershell")
	flags.Bool("debug", false, "Log requests as cURL commands and print raw responses")
	flags.String("config", "", "Path to a config.yaml")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	if shell := viper.GetString("set-completions"); shell != "" {
		return config.GenCompletions(cmd.Root(), shell, cmd.OutOrStdout())
	}

	store := config.New()
	if path := viper.GetString("config"); path != "" {
		store.WithConfigPath(path)
	}
	cm := config.NewManager(store).WithEnvironment()
	if err := cm.ResolveAPIKey(); err != nil {
		return err
	}
	applyFlags(&cm.Config)
	cfg := cm.Config

	if cfg.Debug {
		internal.SetAllowedLogLevels(zapcore.InfoLevel, zapcore.DebugLevel)
	}

	if viper.GetBool("show-config") {
		out, err := cm.ShowConfig()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	hs, err := history.New()
	if err != nil {
		return err
	}
	if viper.GetBool("new-thread") {
		cfg.Thread = internal.GenerateUniqueSlug("int_")
	}
	hs.SetThread(cfg.Thread)
	hm := history.NewManager(hs)

	if viper.GetBool("history") {
		out, err := hm.Print(cfg.Thread)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if viper.GetBool("delete-thread") {
		if err := hs.Delete(); err != nil {
			return err
		}
		zap.S().Infof("deleted thread %s", cfg.Thread)
		return nil
	}

	if cfg.APIKey == "" {
		return errors.New("missing environment variable: " + cm.APIKeyEnvVarName())
	}

	effort, err := api.ParseReasoningEffort(cfg.Effort)
	if err != nil {
		return err
	}

	c := client.New(http.RealCallerFactory, cfg)
	ctx := cmd.Context()

	if viper.GetBool("interactive") {
		return runInteractive(ctx, c, hm, cfg, effort)
	}

	prompt := strings.Join(args, " ")
	if strings.TrimSpace(prompt) == "" {
		return errors.New("you must specify your prompt")
	}

	provider, err := chat.New(cfg)
	if err != nil {
		return err
	}
	svc := service.New(provider, c)
	out := cmd.OutOrStdout()

	switch {
	case viper.GetBool("chat"):
		answer, err := svc.NormalAnswer(ctx, prompt)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, answer)
		return nil
	case viper.GetBool("text-only"):
		text, err := svc.TextAnswer(ctx, prompt, effort)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
		return nil
	default:
		result, err := svc.ReasoningAnswerWithEffort(ctx, prompt, effort)
		if err != nil {
			return err
		}
		return render(out, result, viper.GetBool("verbose"))
	}
}

// applyFlags lets flags and REASONING_* variables win over the config file.
func applyFlags(cfg *config.Config) {
	if v := viper.GetString("effort"); v != "" {
		cfg.Effort = v
	}
	if v := viper.GetString("model"); v != "" {
		cfg.Model = v
	}
	if v := viper.GetString("thread"); v != "" {
		cfg.Thread = v
	}
	if viper.GetBool("debug") {
		cfg.Debug = true
	}
}
