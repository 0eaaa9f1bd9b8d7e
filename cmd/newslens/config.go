package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newslens"
	"gopkg.in/yaml.v3"
)

// YAMLLoader is a kong.ConfigurationLoader for flat YAML files whose keys
// are flag names. Dashes and underscores are interchangeable.
func YAMLLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, newslens.Errorf(newslens.EINVALID, "invalid config file: %v", err)
	}

	normalized := make(map[string]string, len(values))
	for k, v := range values {
		switch v.(type) {
		case map[string]any, []any:
			return nil, newslens.Errorf(newslens.EINVALID, "config key %q must be a scalar", k)
		}
		normalized[strings.ReplaceAll(k, "_", "-")] = fmt.Sprint(v)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := normalized[flag.Name]; ok {
			return v, nil
		}
		return nil, nil
	}), nil
}
