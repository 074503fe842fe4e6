package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kardolus/reasoning-cli/internal"
)

const jsonExtension = ".json"

//go:generate mockgen -destination=historymocks_test.go -package=history_test github.com/kardolus/reasoning-cli/history Store
type Store interface {
	Delete() error
	Read() ([]History, error)
	ReadThread(string) ([]History, error)
	Write([]History) error
	SetThread(thread string)
	GetThread() string
}

// Ensure FileIO implements Store interface
var _ Store = &FileIO{}

// FileIO keeps one JSON file per thread under historyDir.
type FileIO struct {
	historyDir string
	thread     string
}

func New() (*FileIO, error) {
	dir, err := internal.GetDataHome()
	if err != nil {
		return nil, err
	}

	return &FileIO{historyDir: dir}, nil
}

func (f *FileIO) WithDirectory(historyDir string) *FileIO {
	f.historyDir = historyDir
	return f
}

func (f *FileIO) SetThread(thread string) {
	f.thread = thread
}

func (f *FileIO) GetThread() string {
	return f.thread
}

func (f *FileIO) Delete() error {
	path := f.getPath(f.thread)
	if _, err := os.Stat(path); err == nil {
		return os.Remove(path)
	}

	return nil
}

func (f *FileIO) Read() ([]History, error) {
	return f.ReadThread(f.thread)
}

func (f *FileIO) ReadThread(thread string) ([]History, error) {
	return parseFile(f.getPath(thread))
}

func (f *FileIO) Write(entries []History) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(f.historyDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(f.getPath(f.thread), data, 0o600)
}

func (f *FileIO) getPath(thread string) string {
	return filepath.Join(f.historyDir, thread+jsonExtension)
}

func parseFile(fileName string) ([]History, error) {
	var result []History

	buf, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(buf, &result); err != nil {
		return nil, err
	}

	return result, nil
}
