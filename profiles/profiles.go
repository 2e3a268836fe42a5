package profiles

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"actions_lab/models"
)

// Default is the profile used when none is configured
const Default = "python"

// ErrUnknownProfile is returned when no template exists for the requested profile
var ErrUnknownProfile = errors.New("unknown profile")

//go:embed templates/*.yaml
var templates embed.FS

// Load loads the output profile with the given name
func Load(name string) (models.Profile, error) {
	templateFile := fmt.Sprintf("templates/%s.yaml", name)

	log.Debug().
		Str("template_file", templateFile).
		Msg("Loading profile template")

	data, err := templates.ReadFile(templateFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Profile{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownProfile, name, strings.Join(Names(), ", "))
		}
		return models.Profile{}, fmt.Errorf("failed to read profile template: %w", err)
	}

	var profile models.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		log.Error().
			Str("template_file", templateFile).
			Err(err).
			Msg("Failed to unmarshal profile template")
		return models.Profile{}, fmt.Errorf("failed to unmarshal profile template: %w", err)
	}

	if err := validate(profile); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile %s: %w", name, err)
	}

	return profile, nil
}

// Names lists the available profiles
func Names() []string {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	return names
}

func validate(p models.Profile) error {
	switch {
	case p.Title == "":
		return errors.New("missing title")
	case p.VersionLabel == "":
		return errors.New("missing version_label")
	case p.Closing == "":
		return errors.New("missing closing")
	}
	for _, key := range p.ExtraFields {
		if _, _, ok := (models.HostInfo{}).Field(key); !ok {
			return fmt.Errorf("unknown extra field %q", key)
		}
	}
	return nil
}
