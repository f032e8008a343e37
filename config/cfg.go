package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"text/template"

	validator "github.com/go-playground/validator/v10"
	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/rupor-github/gencfg"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"msfmt/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	MarginsConfig struct {
		Top     float64 `yaml:"top" validate:"gte=0"`
		Bottom  float64 `yaml:"bottom" validate:"gte=0"`
		Inside  float64 `yaml:"inside" validate:"gte=0"`
		Outside float64 `yaml:"outside" validate:"gte=0"`
		// Auto derives inside margin from estimated page count.
		Auto bool `yaml:"auto"`
	}

	IndentConfig struct {
		Enable    bool    `yaml:"enable"`
		Size      float64 `yaml:"size" validate:"gte=0"`
		SkipFirst bool    `yaml:"skip_first"`
	}

	SpacingConfig struct {
		Line   string  `yaml:"line" validate:"oneof=single 1.15 1.5 double"`
		Before float64 `yaml:"before" validate:"gte=0"`
		After  float64 `yaml:"after" validate:"gte=0"`
	}

	FontConfig struct {
		Family      string  `yaml:"family" validate:"required"`
		Size        float64 `yaml:"size" validate:"gt=0"`
		HeadingSize float64 `yaml:"heading_size" validate:"gt=0"`
		HeadingTop  float64 `yaml:"heading_top" validate:"gte=0"`
	}

	TypographyConfig struct {
		CurlyQuotes bool `yaml:"curly_quotes"`
		EmDashes    bool `yaml:"em_dashes"`
		Ellipsis    bool `yaml:"ellipsis"`
	}

	TOCConfig struct {
		Enable bool   `yaml:"enable"`
		Title  string `yaml:"title" validate:"required_if=Enable true"`
	}

	TrimConfig struct {
		Width  float64 `yaml:"width" validate:"gte=0"`
		Height float64 `yaml:"height" validate:"gte=0"`
	}

	HeaderFooterConfig struct {
		Enable     bool                  `yaml:"enable"`
		Template   string                `yaml:"template"`
		Position   common.HeaderPosition `yaml:"position" validate:"gte=0"`
		PageNumber bool                  `yaml:"page_number"`
	}

	PageNumbersConfig struct {
		Style common.PageNumberStyle `yaml:"style" validate:"gte=0"`
		Start int                    `yaml:"start" validate:"gte=0"`
	}

	FormatConfig struct {
		Margins     MarginsConfig      `yaml:"margins"`
		Indent      IndentConfig       `yaml:"indent"`
		Spacing     SpacingConfig      `yaml:"spacing"`
		Font        FontConfig         `yaml:"font"`
		Typography  TypographyConfig   `yaml:"typography"`
		TOC         TOCConfig          `yaml:"toc"`
		Alignment   common.TextAlign   `yaml:"alignment" validate:"gte=0"`
		Trim        TrimConfig         `yaml:"trim"`
		Header      HeaderFooterConfig `yaml:"header"`
		Footer      HeaderFooterConfig `yaml:"footer"`
		PageNumbers PageNumbersConfig  `yaml:"page_numbers"`
		Author      string             `yaml:"author"`
		Title       string             `yaml:"title"`
		Language    string             `yaml:"language"`
	}

	PreviewConfig struct {
		Sanitize       bool   `yaml:"sanitize"`
		StylesheetPath string `yaml:"stylesheet_path" sanitize:"assure_file_access"`
	}

	DocumentConfig struct {
		Preset                string        `yaml:"preset" validate:"omitempty,oneof=standard manuscript novel ebook"`
		Format                FormatConfig  `yaml:"format"`
		FixZip                bool          `yaml:"fix_zip"`
		OutputNameTemplate    string        `yaml:"output_name_template"`
		FileNameTransliterate bool          `yaml:"file_name_transliterate"`
		Preview               PreviewConfig `yaml:"preview"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`

		// format values explicitly set by user, they always win over preset
		overrides *yaml.Node
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName   TemplateFieldName = "output_name_template"
	HeaderFooterTemplateFieldName TemplateFieldName = "template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(HeaderFooterTemplateFieldName)),
)

// LanguageTag returns parsed document language, undetermined when not set.
func (f *FormatConfig) LanguageTag() language.Tag {
	if f.Language == "" {
		return language.Und
	}
	tag, err := language.Parse(f.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

func checkConfig(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if lang := cfg.Document.Format.Language; lang != "" {
		if _, err := language.Parse(lang); err != nil {
			sl.ReportError(lang, "Document.Format.Language", "Language", "bcp47", "")
		}
	}
	for _, field := range []struct {
		name, value string
	}{
		{"Document.Format.Header.Template", cfg.Document.Format.Header.Template},
		{"Document.Format.Footer.Template", cfg.Document.Format.Footer.Template},
		{"Document.OutputNameTemplate", cfg.Document.OutputNameTemplate},
	} {
		if _, err := template.New(field.name).Funcs(sprig.FuncMap()).Parse(field.value); err != nil {
			sl.ReportError(field.value, field.name, "Template", "gotemplate", "")
		}
	}
}

func validate(cfg *Config) error {
	if err := gencfg.Sanitize(cfg); err != nil {
		return err
	}
	return gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig))
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := validate(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return cfg, nil
}

// formatOverrides extracts document.format subtree from the user supplied
// configuration, nil if there is none.
func formatOverrides(data []byte) (*yaml.Node, error) {
	var partial struct {
		Document struct {
			Format yaml.Node `yaml:"format"`
		} `yaml:"document"`
	}
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return nil, fmt.Errorf("failed to decode format overrides: %w", err)
	}
	if partial.Document.Format.Kind == 0 {
		return nil, nil
	}
	return &partial.Document.Format, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults, applies requested preset and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, cfg.ApplyPreset(cfg.Document.Preset)
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if cfg, err = unmarshalConfig(data, cfg, false); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	if cfg.overrides, err = formatOverrides(data); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	if err := cfg.ApplyPreset(cfg.Document.Preset); err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// ApplyPreset replaces format settings with named preset, re-applies format
// values user set explicitly and validates the result. Empty name keeps
// current format settings.
func (cfg *Config) ApplyPreset(name string) error {
	if name != "" {
		preset, err := LoadPreset(name)
		if err != nil {
			return err
		}
		cfg.Document.Preset = name
		cfg.Document.Format = *preset
		if cfg.overrides != nil {
			if err := cfg.overrides.Decode(&cfg.Document.Format); err != nil {
				return fmt.Errorf("failed to apply format overrides: %w", err)
			}
		}
	}
	return validate(cfg)
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("nothing to dump")
	}
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
