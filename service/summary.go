package service

import (
	"unicode/utf8"

	"github.com/kardolus/reasoning-cli/api/response"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusPartial Status = "partial"
)

// Summary condenses an outcome for logs and --verbose output. Details holds
// the reasoning effort, the error code or the partial reason.
type Summary struct {
	Status        Status
	ContentLength int
	TotalTokens   int
	Details       string
}

func Summarize(r response.Response) Summary {
	switch v := r.(type) {
	case response.Success:
		return Summary{
			Status:        StatusSuccess,
			ContentLength: utf8.RuneCountInString(v.Text),
			TotalTokens:   v.TotalTokens(),
			Details:       v.ReasoningEffort,
		}
	case response.Error:
		return Summary{Status: StatusError, Details: v.Code}
	case response.Partial:
		return Summary{
			Status:        StatusPartial,
			ContentLength: utf8.RuneCountInString(v.AvailableText),
			Details:       v.Reason,
		}
	default:
		return Summary{}
	}
}
