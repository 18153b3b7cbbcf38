package archive

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ArchiveApi manages the folders of previously downloaded generation
// outputs under a single root directory.
type ArchiveApi interface {
	ListEntries() ([]string, error)
	DeleteAll() (int, error)
}

type archiveService struct {
	root string
}

func (s *archiveService) ListEntries() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}

		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// DeleteAll removes every entry under the root. Best effort: a failure
// stops the batch and reports how many entries were already removed.
func (s *archiveService) DeleteAll() (int, error) {
	names, err := s.ListEntries()
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, name := range names {
		target := filepath.Join(s.root, name)

		err = os.RemoveAll(target)
		if err != nil {
			log.Err(err).Msgf("Failed to delete downloaded folder %s", target)

			return deleted, err
		}

		log.Info().Msgf("Deleted downloaded folder %s", target)
		deleted++
	}

	return deleted, nil
}

func NewArchiveService(root string) ArchiveApi {
	return &archiveService{root: root}
}
