// Command datekit-locales turns CLDR core data into datekit locale
// definition files.
//
//	datekit-locales --cldr ./cldr/common --locale es --locale pt:BR --out data/locales
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
	"gopkg.in/yaml.v3"

	datekit "github.com/goliatone/go-datekit"
)

const generatedHeader = "# Code generated by datekit-locales. DO NOT EDIT.\n"

type localeSpec struct {
	Locale    string
	Territory string
}

type generatorConfig struct {
	out      string
	cldrPath string
	stdout   bool
	locales  []localeSpec
}

var emptyRegion language.Region

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datekit-locales: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (generatorConfig, error) {
	var cfg generatorConfig
	var localeList []string

	flags := pflag.NewFlagSet("datekit-locales", pflag.ContinueOnError)
	flags.StringVar(&cfg.out, "out", filepath.Join("data", "locales"), "directory receiving one YAML file per locale")
	flags.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects main/ and supplemental/)")
	flags.StringSliceVar(&localeList, "locale", nil, "locale to generate, optionally with a territory as locale:REGION. Repeat or comma separate.")
	flags.BoolVar(&cfg.stdout, "stdout", false, "write a single locales document to stdout instead of files")

	if err := flags.Parse(args); err != nil {
		return generatorConfig{}, err
	}

	if len(localeList) == 0 {
		return generatorConfig{}, errors.New("at least one --locale value is required")
	}

	for _, spec := range localeList {
		parsed, err := parseLocaleSpec(spec)
		if err != nil {
			return generatorConfig{}, err
		}
		cfg.locales = append(cfg.locales, parsed)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set --cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig, stdout io.Writer) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	definitions, err := buildDefinitions(data, cfg.locales)
	if err != nil {
		return err
	}

	if cfg.stdout {
		source, err := renderDocument(definitions)
		if err != nil {
			return err
		}
		_, err = stdout.Write(source)
		return err
	}

	if err := os.MkdirAll(cfg.out, 0o755); err != nil {
		return err
	}
	for _, definition := range definitions {
		source, err := renderDefinition(definition)
		if err != nil {
			return fmt.Errorf("render %s: %w", definition.Name, err)
		}
		path := filepath.Join(cfg.out, definition.Name+".yaml")
		if err := os.WriteFile(path, source, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// buildDefinitions extracts every requested locale and checks that the
// result builds into a datekit catalog.
func buildDefinitions(data *cldr.CLDR, specs []localeSpec) ([]datekit.LocaleDefinition, error) {
	supplemental := data.Supplemental()
	definitions := make([]datekit.LocaleDefinition, 0, len(specs))

	for _, spec := range specs {
		if err := normalizeLocaleSpec(&spec); err != nil {
			return nil, err
		}
		definition, err := buildDefinition(data, supplemental, spec)
		if err != nil {
			return nil, fmt.Errorf("build definition for %s: %w", spec.Locale, err)
		}
		definitions = append(definitions, definition)
	}

	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Name < definitions[j].Name
	})

	if _, err := datekit.NewLocaleCatalog(definitions, nil); err != nil {
		return nil, fmt.Errorf("validate definitions: %w", err)
	}
	return definitions, nil
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetDirFilter("main", "supplemental")
	decoder.SetSectionFilter("dates", "numbers", "localeDisplayNames")
	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func parseLocaleSpec(input string) (localeSpec, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return localeSpec{}, errors.New("empty locale value")
	}

	spec := localeSpec{}
	if strings.Contains(input, ":") {
		parts := strings.SplitN(input, ":", 2)
		spec.Locale = strings.TrimSpace(parts[0])
		spec.Territory = strings.ToUpper(strings.TrimSpace(parts[1]))
	} else {
		spec.Locale = input
	}

	if spec.Locale == "" {
		return localeSpec{}, fmt.Errorf("invalid locale spec %q", input)
	}

	return spec, nil
}

func normalizeLocaleSpec(spec *localeSpec) error {
	if spec == nil {
		return errors.New("nil locale spec")
	}

	spec.Locale = strings.ReplaceAll(strings.TrimSpace(spec.Locale), "_", "-")
	if spec.Locale == "" {
		return errors.New("empty locale identifier")
	}

	if spec.Territory != "" {
		spec.Territory = strings.ToUpper(spec.Territory)
		return nil
	}

	// Week data is keyed by territory; use the likely region of the tag.
	if tag, err := language.Parse(spec.Locale); err == nil {
		if region, _ := tag.Region(); region != emptyRegion {
			spec.Territory = strings.ToUpper(region.String())
			return nil
		}
	}

	spec.Territory = ""
	return nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}

	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}

	return data.RawLDML("root")
}

func renderDefinition(definition datekit.LocaleDefinition) ([]byte, error) {
	return encodeYAML(definition)
}

func renderDocument(definitions []datekit.LocaleDefinition) ([]byte, error) {
	return encodeYAML(struct {
		Locales []datekit.LocaleDefinition `yaml:"locales"`
	}{Locales: definitions})
}

func encodeYAML(value any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
