package history

import (
	"time"

	"github.com/kardolus/reasoning-cli/api"
)

type History struct {
	api.Message
	Timestamp time.Time `json:"timestamp"`
}
