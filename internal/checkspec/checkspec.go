// Package checkspec holds the declarative table of specialized contract checks. The
// table is the single place binding a check name to its catalog code, checks_gen.go is
// rendered from it.
package checkspec

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/contract/errcode"
)

//go:embed checks.yaml
var checksYAML []byte

// Check describes one specialized check.
type Check struct {
	Name   string `yaml:"name"`
	Kind   Kind   `yaml:"kind"`
	Domain Domain `yaml:"domain"`
	Code   string `yaml:"code"`
	Form   Form   `yaml:"form"`
	Doc    string `yaml:"doc"`
}

// Bound resolves the catalog code of the check.
func (c *Check) Bound() (errcode.Code, error) {
	code, ok := errcode.ByName(c.Code)
	if !ok {
		return 0, fmt.Errorf("unknown catalog code %q", c.Code)
	}

	return code, nil
}

// Load parses and validates the embedded table.
func Load() ([]Check, error) {
	return Parse(checksYAML)
}

// Parse parses and validates a check table.
func Parse(data []byte) ([]Check, error) {
	var checks []Check
	if err := yaml.Unmarshal(data, &checks); err != nil {
		return nil, fmt.Errorf("decode check table: %w", err)
	}

	if err := validate(checks); err != nil {
		return nil, fmt.Errorf("validate check table: %w", err)
	}

	return checks, nil
}

func validate(checks []Check) error {
	var errs []error
	names := make(map[string]struct{}, len(checks))
	for i := range checks {
		c := &checks[i]
		if c.Form == formDefault {
			c.Form = FormBool
		}

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("check #%d: missing name", i))
			continue
		}
		if _, ok := names[c.Name]; ok {
			errs = append(errs, fmt.Errorf("check %s: declared twice", c.Name))
		}
		names[c.Name] = struct{}{}

		if c.Kind == kindInvalid {
			errs = append(errs, fmt.Errorf("check %s: missing kind", c.Name))
		}
		if c.Domain == domainInvalid {
			errs = append(errs, fmt.Errorf("check %s: missing domain", c.Name))
		} else if !c.Kind.allows(c.Domain) {
			errs = append(errs, fmt.Errorf("check %s: domain %s is not a %s domain", c.Name, c.Domain, c.Kind))
		}
		if _, err := c.Bound(); err != nil {
			errs = append(errs, fmt.Errorf("check %s: %w", c.Name, err))
		}
		if c.Doc == "" {
			errs = append(errs, fmt.Errorf("check %s: missing doc", c.Name))
		}
	}

	return errors.Join(errs...)
}
