package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/bft-labs/apiq/internal/domain"
)

// FileReader reads a whole file. os.ReadFile satisfies it.
type FileReader func(path string) ([]byte, error)

// BodyResolver turns a body spec into request bytes.
type BodyResolver struct {
	readFile FileReader
}

// NewBodyResolver creates a BodyResolver. A nil reader uses os.ReadFile.
func NewBodyResolver(readFile FileReader) *BodyResolver {
	if readFile == nil {
		readFile = os.ReadFile
	}
	return &BodyResolver{readFile: readFile}
}

// Resolve returns the body for spec: the contents of the named file when
// spec starts with '@', the literal spec otherwise. The body is not validated.
func (r *BodyResolver) Resolve(spec string) ([]byte, error) {
	path, isFile := strings.CutPrefix(spec, "@")
	if !isFile {
		return []byte(spec), nil
	}
	data, err := r.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read body file: %w", domain.ErrIO, err)
	}
	return data, nil
}
