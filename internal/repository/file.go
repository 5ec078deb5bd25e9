package repository

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/venuepulse/gigcal/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileRepository loads static venue configuration and exchanges event
// golden data as CSV.
type FileRepository struct {
	log zerolog.Logger
}

func NewFileRepository(log zerolog.Logger) *FileRepository {
	return &FileRepository{
		log: log.With().Str("module", "repository").Logger(),
	}
}

var _ domain.VenueConfigRepo = (*FileRepository)(nil)

type venuesFile struct {
	Venues []domain.Venue `yaml:"venues"`
}

// Load reads venue configuration from a YAML file. Disabled venues are
// kept in the result; callers filter with IsEnabled.
func (r *FileRepository) Load(ctx context.Context, path string) ([]domain.Venue, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file does not exist: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var vf venuesFile
	if err := yaml.Unmarshal(body, &vf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml from %s: %w", path, err)
	}

	for i, v := range vf.Venues {
		if v.Name == "" || v.BaseURL == "" || v.Scraper == "" {
			return nil, fmt.Errorf("venue #%d in %s is missing name, base_url, or scraper", i, path)
		}
		if vf.Venues[i].CalendarPath == "" {
			vf.Venues[i].CalendarPath = "/calendar/"
		}
	}

	r.log.Debug().Str("path", path).Int("count", len(vf.Venues)).Msg("loaded venue config")
	return vf.Venues, nil
}
