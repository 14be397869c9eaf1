package tokens

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the bearer tokens used for publishing, one file per
// provider. Values are opaque: they are never parsed and never logged.
type Store struct {
	basePath string
}

const (
	ProviderGitHub      = "github"
	ProviderHuggingFace = "huggingface"
)

var ErrUnknownProvider = errors.New("unknown token provider")

func ValidProvider(provider string) bool {
	return provider == ProviderGitHub || provider == ProviderHuggingFace
}

func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, err
	}
	return &Store{basePath: basePath}, nil
}

func (s *Store) pathFor(provider string) string {
	return filepath.Join(s.basePath, provider+".token")
}

func (s *Store) Save(provider, token string) error {
	if !ValidProvider(provider) {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	return os.WriteFile(s.pathFor(provider), []byte(token), 0o600)
}

// Get returns the stored token, or an empty string when none was saved.
func (s *Store) Get(provider string) (string, error) {
	if !ValidProvider(provider) {
		return "", fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	data, err := os.ReadFile(s.pathFor(provider))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Store) Delete(provider string) error {
	if !ValidProvider(provider) {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	err := os.Remove(s.pathFor(provider))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
