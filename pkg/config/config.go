// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-telingo/pkg/theory"
	"gopkg.in/yaml.v3"
)

// Config determines the names used when rewriting temporal formulas.  A
// configuration can be read from a YAML file, such as:
//
//	theory: tel
//	definition_theory: tel_def
//	aux_predicate: __aux
//
// where any missing key takes its default value.
type Config struct {
	// Name of theory atoms holding temporal formulas.
	Theory string `yaml:"theory"`
	// Name of theory atoms emitted for auxiliary definitions.
	DefinitionTheory string `yaml:"definition_theory"`
	// Name of the predicate used for auxiliary atoms.
	AuxPredicate string `yaml:"aux_predicate"`
	// Name of the symbol denoting the current step.
	TimeMarker string `yaml:"time_marker"`
	// Name of the variable denoting the step at which a formula is anchored.
	StartMarker string `yaml:"start_marker"`
	// Name of the variable used for counting down bounded operators.
	CountdownMarker string `yaml:"countdown_marker"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Theory:           "tel",
		DefinitionTheory: "tel_def",
		AuxPredicate:     "__aux",
		TimeMarker:       "__t",
		StartMarker:      "__S",
		CountdownMarker:  "__K",
	}
}

// Load reads a configuration from a given YAML file.  Keys missing from the
// file take their default values, and the result is validated.
func Load(filename string) (Config, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	//
	cfg, err := Parse(bytes)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	//
	return cfg, nil
}

// Parse a configuration from the given YAML text.  Keys missing from the text
// take their default values, and the result is validated.
func Parse(bytes []byte) (Config, error) {
	cfg := Default()
	//
	if err := yaml.Unmarshal(bytes, &cfg); err != nil {
		return Config{}, err
	} else if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	//
	return cfg, nil
}

// Validate checks that every name is well-formed.  Predicate and symbol names
// must be identifiers, whilst markers which denote variables must be variable
// names.  Furthermore, the markers must be distinct.
func (c *Config) Validate() error {
	var errs []error
	//
	for _, field := range []struct{ key, value string }{
		{"theory", c.Theory},
		{"definition_theory", c.DefinitionTheory},
		{"aux_predicate", c.AuxPredicate},
		{"time_marker", c.TimeMarker},
	} {
		if !theory.IsIdentifier(field.value) {
			errs = append(errs, fmt.Errorf("%s: invalid identifier \"%s\"", field.key, field.value))
		}
	}
	//
	for _, field := range []struct{ key, value string }{
		{"start_marker", c.StartMarker},
		{"countdown_marker", c.CountdownMarker},
	} {
		if !theory.IsVariable(field.value) {
			errs = append(errs, fmt.Errorf("%s: invalid variable \"%s\"", field.key, field.value))
		}
	}
	//
	if c.StartMarker == c.CountdownMarker {
		errs = append(errs, fmt.Errorf("start_marker and countdown_marker both \"%s\"", c.StartMarker))
	}
	//
	if c.Theory == c.DefinitionTheory {
		errs = append(errs, fmt.Errorf("theory and definition_theory both \"%s\"", c.Theory))
	}
	//
	return errors.Join(errs...)
}
