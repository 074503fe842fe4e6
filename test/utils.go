package test

import (
	"os"
	"path/filepath"
	"runtime"

	. "github.com/onsi/gomega"
)

// FileToBytes reads a fixture from test/data.
func FileToBytes(fileName string) ([]byte, error) {
	_, thisFile, _, _ := runtime.Caller(0)

	dataPath, err := filepath.Abs(filepath.Join(filepath.Dir(thisFile), "data", fileName))
	if err != nil {
		return nil, err
	}

	Expect(dataPath).To(BeAnExistingFile())

	return os.ReadFile(dataPath)
}
