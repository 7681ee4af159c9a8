package connector

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlProfile is the on-disk shape of a user-defined profile. Rules are a
// YAML sequence, so table order survives the round trip.
type yamlProfile struct {
	Name        string            `yaml:"name"`
	Extensions  []string          `yaml:"extensions"`
	Tree        bool              `yaml:"tree"`
	SplitPhases bool              `yaml:"split_phases"`
	LooseTime   bool              `yaml:"loose_time_match"`
	Create      yamlPhase         `yaml:"create"`
	Read        yamlPhase         `yaml:"read"`
	CountKinds  map[string]string `yaml:"count_kinds"`
}

type yamlPhase struct {
	TimeOperation string         `yaml:"time_operation"`
	Columns       []string       `yaml:"columns"`
	Rules         []CategoryRule `yaml:"rules"`
}

// LoadProfile reads a connector profile from a YAML file. Mapping tables are
// data, not code: this is how a new producer gets wired in without a build.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var yp yamlProfile
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("parse profile file: %w", err)
	}

	p := &Profile{
		Name:           yp.Name,
		Extensions:     yp.Extensions,
		Tree:           yp.Tree,
		SplitPhases:    yp.SplitPhases,
		LooseTimeMatch: yp.LooseTime,
		CreateTable:    CategoryTable(yp.Create.Rules),
		ReadTable:      CategoryTable(yp.Read.Rules),
		CreateTimeOp:   yp.Create.TimeOperation,
		ReadTimeOp:     yp.Read.TimeOperation,
		CreateColumns:  yp.Create.Columns,
		ReadColumns:    yp.Read.Columns,
		CountKinds:     yp.CountKinds,
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func (p *Profile) validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(p.CreateTable) == 0 && len(p.ReadTable) == 0 {
		return fmt.Errorf("at least one category rule is required")
	}
	for _, t := range []CategoryTable{p.CreateTable, p.ReadTable} {
		for _, r := range t {
			if r.Pattern == "" || r.Category == "" {
				return fmt.Errorf("rule with empty pattern or category")
			}
		}
	}
	if len(p.Extensions) == 0 {
		if p.Tree {
			p.Extensions = []string{".json"}
		} else {
			p.Extensions = []string{".csv"}
		}
	}
	for i, e := range p.Extensions {
		if !strings.HasPrefix(e, ".") {
			p.Extensions[i] = "." + e
		}
	}
	if len(p.CreateColumns) == 0 {
		p.CreateColumns = p.CreateTable.Categories()
	}
	if len(p.ReadColumns) == 0 {
		p.ReadColumns = p.ReadTable.Categories()
	}
	return nil
}
