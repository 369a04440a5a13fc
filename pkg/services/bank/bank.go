// Package bank owns the question-bank data: the built-in assessment domains
// and the loader for user-supplied banks.
package bank

import (
	_ "embed"
	"fmt"

	"github.com/de-tools/risk-atlas/pkg/models/domain"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

//go:embed bank.yaml
var defaultBank []byte

// Bank is an ordered, read-only set of assessment domains.
type Bank struct {
	Domains []domain.Domain
}

type bankFile struct {
	Domains []domainSpec `yaml:"domains" mapstructure:"domains"`
}

type domainSpec struct {
	ID        string         `yaml:"id" mapstructure:"id"`
	Name      string         `yaml:"name" mapstructure:"name"`
	Questions []questionSpec `yaml:"questions" mapstructure:"questions"`
}

type questionSpec struct {
	ID          string  `yaml:"id" mapstructure:"id"`
	Text        string  `yaml:"text" mapstructure:"text"`
	Weight      float64 `yaml:"weight" mapstructure:"weight"`
	Remediation string  `yaml:"remediation" mapstructure:"remediation"`
}

// Default returns the built-in bank: the five standard IT risk domains.
func Default() (Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(defaultBank, &f); err != nil {
		return Bank{}, fmt.Errorf("failed to parse built-in question bank: %w", err)
	}
	return fromFile(f)
}

// Load reads a custom question bank from path. The format follows the file
// extension (yaml, json, toml).
func Load(path string) (Bank, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Bank{}, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}

	var f bankFile
	if err := v.Unmarshal(&f); err != nil {
		return Bank{}, fmt.Errorf("failed to parse question bank %s: %w", path, err)
	}
	return fromFile(f)
}

func fromFile(f bankFile) (Bank, error) {
	b := Bank{Domains: make([]domain.Domain, 0, len(f.Domains))}
	for _, ds := range f.Domains {
		d := domain.Domain{
			ID:        ds.ID,
			Name:      ds.Name,
			Questions: make([]domain.Question, 0, len(ds.Questions)),
		}
		for _, qs := range ds.Questions {
			weight := qs.Weight
			if weight == 0 {
				weight = 1
			}
			d.Questions = append(d.Questions, domain.Question{
				ID:          qs.ID,
				Text:        qs.Text,
				Weight:      weight,
				Remediation: qs.Remediation,
			})
		}
		b.Domains = append(b.Domains, d)
	}

	if err := b.Validate(); err != nil {
		return Bank{}, err
	}
	return b, nil
}

// Validate checks the structural invariants: at least one domain, every
// domain has at least one question, IDs are present and unique bank-wide,
// weights are positive.
func (b Bank) Validate() error {
	if len(b.Domains) == 0 {
		return fmt.Errorf("question bank has no domains: %w", domain.ErrInvalidInput)
	}

	seen := make(map[string]struct{})
	for _, d := range b.Domains {
		if d.ID == "" || d.Name == "" {
			return fmt.Errorf("domain is missing an id or name: %w", domain.ErrInvalidInput)
		}
		if len(d.Questions) == 0 {
			return fmt.Errorf("domain %q has no questions: %w", d.ID, domain.ErrInvalidInput)
		}
		for _, q := range d.Questions {
			if q.ID == "" || q.Text == "" {
				return fmt.Errorf("domain %q has a question missing an id or text: %w", d.ID, domain.ErrInvalidInput)
			}
			if _, dup := seen[q.ID]; dup {
				return fmt.Errorf("duplicate question id %q: %w", q.ID, domain.ErrInvalidInput)
			}
			seen[q.ID] = struct{}{}
			if q.Weight <= 0 {
				return fmt.Errorf("question %q has non-positive weight %v: %w", q.ID, q.Weight, domain.ErrInvalidInput)
			}
		}
	}
	return nil
}

// QuestionCount returns the total number of questions across all domains.
func (b Bank) QuestionCount() int {
	n := 0
	for _, d := range b.Domains {
		n += len(d.Questions)
	}
	return n
}
