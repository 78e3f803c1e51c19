package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/default.yaml
var defaultFixture []byte

// Fixture is the YAML description of catalog content used by Seed.
type Fixture struct {
	LangWords map[string]map[string]string `yaml:"lang_words"`
	Models    []FixtureModel               `yaml:"models"`
}

type FixtureModel struct {
	Name     string                       `yaml:"name"`
	Version  string                       `yaml:"version"`
	Created  string                       `yaml:"created"`
	Lang     string                       `yaml:"lang"`
	Descr    string                       `yaml:"descr"`
	Note     string                       `yaml:"note"`
	Types    []FixtureType                `yaml:"types"`
	Params   []FixtureParam               `yaml:"params"`
	Tables   []FixtureTable               `yaml:"tables"`
	Runs     []FixtureRun                 `yaml:"runs"`
	Worksets []FixtureWorkset             `yaml:"worksets"`
	Words    map[string]map[string]string `yaml:"words"`
}

type FixtureType struct {
	ID    int           `yaml:"id"`
	Name  string        `yaml:"name"`
	Descr string        `yaml:"descr"`
	Enums []FixtureEnum `yaml:"enums"`
}

type FixtureEnum struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Descr string `yaml:"descr"`
}

type FixtureParam struct {
	ID     int          `yaml:"id"`
	Name   string       `yaml:"name"`
	Type   int          `yaml:"type"`
	Hidden bool         `yaml:"hidden"`
	Descr  string       `yaml:"descr"`
	Note   string       `yaml:"note"`
	Dims   []FixtureDim `yaml:"dims"`
}

type FixtureDim struct {
	Name  string `yaml:"name"`
	Type  int    `yaml:"type"`
	Total bool   `yaml:"total"`
	Size  int    `yaml:"size"`
	Descr string `yaml:"descr"`
}

type FixtureTable struct {
	ID     int           `yaml:"id"`
	Name   string        `yaml:"name"`
	Sparse bool          `yaml:"sparse"`
	Hidden bool          `yaml:"hidden"`
	Descr  string        `yaml:"descr"`
	Note   string        `yaml:"note"`
	Dims   []FixtureDim  `yaml:"dims"`
	Exprs  []FixtureExpr `yaml:"exprs"`
	Accs   []FixtureAcc  `yaml:"accs"`
}

type FixtureExpr struct {
	Name  string `yaml:"name"`
	Src   string `yaml:"src"`
	Descr string `yaml:"descr"`
}

type FixtureAcc struct {
	Name    string `yaml:"name"`
	Derived bool   `yaml:"derived"`
	Src     string `yaml:"src"`
	Descr   string `yaml:"descr"`
}

type FixtureRun struct {
	Name      string              `yaml:"name"`
	Status    string              `yaml:"status"`
	SubCount  int                 `yaml:"sub_count"`
	Completed int                 `yaml:"completed"`
	Created   string              `yaml:"created"`
	Updated   string              `yaml:"updated"`
	Descr     string              `yaml:"descr"`
	Note      string              `yaml:"note"`
	Params    []FixtureParamValue `yaml:"params"`
}

type FixtureWorkset struct {
	Name     string              `yaml:"name"`
	BaseRun  string              `yaml:"base_run"`
	Readonly bool                `yaml:"readonly"`
	Updated  string              `yaml:"updated"`
	Descr    string              `yaml:"descr"`
	Note     string              `yaml:"note"`
	Params   []FixtureParamValue `yaml:"params"`
}

type FixtureParamValue struct {
	Name     string `yaml:"name"`
	SubCount int    `yaml:"sub_count"`
	Note     string `yaml:"note"`
}

// DefaultFixture returns the built-in demo catalog.
func DefaultFixture() (Fixture, error) {
	return ParseFixture(defaultFixture)
}

// LoadFixture reads a YAML fixture file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes and checks a YAML fixture.
func ParseFixture(data []byte) (Fixture, error) {
	var fx Fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	seen := map[string]bool{}
	for _, m := range fx.Models {
		if m.Name == "" {
			return Fixture{}, fmt.Errorf("parse fixture: model without name")
		}
		if seen[m.Name] {
			return Fixture{}, fmt.Errorf("parse fixture: duplicate model %q", m.Name)
		}
		seen[m.Name] = true
	}
	return fx, nil
}

// ModelDigest returns the stable digest of a fixture model.
func (m FixtureModel) ModelDigest() string {
	return digestOf("model", m.Name, m.Version)
}

func digestOf(parts ...string) string {
	name := ""
	for k, p := range parts {
		if k > 0 {
			name += ":"
		}
		name += p
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
