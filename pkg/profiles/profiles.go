// Package profiles resolves named default-settings profiles from a YAML
// catalog. A request's own settings always win, profile values only fill the
// gaps.
package profiles

import (
	"dario.cat/mergo"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/browsermux/browsermux/pkg/models"
)

const DefaultProfile = "default"

var builtinDefaults = models.Settings{
	Kind:     models.DefaultEngine,
	Viewport: &models.Viewport{Width: 1280, Height: 720},
}

type Catalog interface {
	Resolve(name string, s models.Settings) (models.Settings, error)
	Names() []string
}

type YamlCatalog struct {
	profiles map[string]models.Settings
}

func NewYamlCatalog(data []byte) (*YamlCatalog, error) {
	profiles := make(map[string]models.Settings)
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &profiles); err != nil {
			return nil, errors.Wrap(err, "failed to parse profiles catalog")
		}
	}
	for name, p := range profiles {
		if p.Kind != "" && !p.Kind.Valid() {
			return nil, errors.Errorf("profile %s: unknown engine kind %q", name, p.Kind)
		}
	}
	return &YamlCatalog{profiles: profiles}, nil
}

func (c *YamlCatalog) Resolve(name string, s models.Settings) (models.Settings, error) {
	if name == "" {
		name = DefaultProfile
	}
	defaults, ok := c.profiles[name]
	if !ok {
		if name != DefaultProfile {
			return models.Settings{}, models.NewNotFoundError(errors.Errorf("profile %s doesn't exist", name))
		}
		defaults = models.Settings{}
	}

	if err := mergo.Merge(&s, defaults); err != nil {
		return models.Settings{}, errors.Wrap(err, "failed to merge profile defaults")
	}
	if err := mergo.Merge(&s, builtinDefaults); err != nil {
		return models.Settings{}, errors.Wrap(err, "failed to merge builtin defaults")
	}

	if !s.Kind.Valid() {
		return models.Settings{}, models.NewBadRequestError(errors.Errorf("unknown engine kind %q", s.Kind))
	}
	return s, nil
}

func (c *YamlCatalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	return names
}
