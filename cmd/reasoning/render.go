package main

import (
	"fmt"
	"io"

	"github.com/kardolus/reasoning-cli/api/response"
	"github.com/kardolus/reasoning-cli/service"
)

// render prints an outcome. Error outcomes are returned as errors so the
// process exits non-zero.
func render(w io.Writer, r response.Response, verbose bool) error {
	switch v := r.(type) {
	case response.Success:
		fmt.Fprintln(w, v.Text)
		if verbose {
			summary := service.Summarize(v)
			fmt.Fprintf(w, "\neffort: %s\n", v.ReasoningEffort)
			if v.ReasoningTrace != "" {
				fmt.Fprintf(w, "reasoning: %s\n", v.ReasoningTrace)
			}
			fmt.Fprintf(w, "tokens: %d in, %d out, %d total\n", v.InputTokens, v.OutputTokens, summary.TotalTokens)
		}
		return nil
	case response.Partial:
		if v.AvailableText != "" {
			fmt.Fprintln(w, v.AvailableText)
		}
		fmt.Fprintf(w, "(partial: %s)\n", v.Reason)
		return nil
	case response.Error:
		return fmt.Errorf("error [%s]: %s", v.Code, v.Message)
	default:
		return fmt.Errorf("unexpected response %T", r)
	}
}
