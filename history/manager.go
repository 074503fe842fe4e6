package history

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kardolus/reasoning-cli/api"
)

type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

func (h *Manager) WithClock(now func() time.Time) *Manager {
	h.now = now
	return h
}

// Messages returns the conversation of the current thread. A thread that was
// never written is empty.
func (h *Manager) Messages() ([]api.Message, error) {
	entries, err := h.store.Read()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []api.Message{}, nil
		}
		return nil, err
	}

	result := make([]api.Message, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Message)
	}

	return result, nil
}

// Append stamps messages with the current time and adds them to the current
// thread.
func (h *Manager) Append(messages ...api.Message) error {
	entries, err := h.store.Read()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	now := h.now()
	for _, m := range messages {
		entries = append(entries, History{Message: m, Timestamp: now})
	}

	return h.store.Write(entries)
}

// ParseUserHistory lists the user prompts of a thread, oldest first.
func (h *Manager) ParseUserHistory(thread string) ([]string, error) {
	var result []string

	historyEntries, err := h.store.ReadThread(thread)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	for _, entry := range historyEntries {
		if entry.Role == api.UserRole {
			result = append(result, entry.Content)
		}
	}

	return result, nil
}

// Print renders a thread as a markdown transcript. Consecutive user entries
// are merged into one block.
func (h *Manager) Print(thread string) (string, error) {
	var sb strings.Builder

	historyEntries, err := h.store.ReadThread(thread)
	if err != nil {
		return "", err
	}

	var (
		lastRole            string
		concatenatedMessage string
		userTimestamp       time.Time
	)

	for _, entry := range historyEntries {
		if entry.Role == api.UserRole && lastRole == api.UserRole {
			concatenatedMessage += entry.Content
		} else {
			if lastRole == api.UserRole && concatenatedMessage != "" {
				sb.WriteString(formatHistory(History{
					Message:   api.Message{Role: api.UserRole, Content: concatenatedMessage},
					Timestamp: userTimestamp,
				}))
				concatenatedMessage = ""
			}

			if entry.Role == api.UserRole {
				concatenatedMessage = entry.Content
				userTimestamp = entry.Timestamp
			} else {
				sb.WriteString(formatHistory(entry))
			}
		}

		lastRole = entry.Role
	}

	if lastRole == api.UserRole && concatenatedMessage != "" {
		sb.WriteString(formatHistory(History{
			Message:   api.Message{Role: api.UserRole, Content: concatenatedMessage},
			Timestamp: userTimestamp,
		}))
	}

	return sb.String(), nil
}

func formatHistory(entry History) string {
	var (
		emoji     string
		prefix    string
		timestamp string
	)

	switch entry.Role {
	case api.SystemRole:
		emoji = "💻"
		prefix = "\n"
	case api.UserRole:
		emoji = "👤"
		prefix = "---\n"
		if !entry.Timestamp.IsZero() {
			timestamp = fmt.Sprintf(" [%s]", entry.Timestamp.Format("2006-01-02 15:04:05"))
		}
	case api.AssistantRole:
		emoji = "🤖"
		prefix = "\n"
	}

	return fmt.Sprintf("%s**%s** %s%s:\n%s\n", prefix, strings.ToUpper(entry.Role), emoji, timestamp, entry.Content)
}
