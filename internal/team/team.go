// Package team loads language team declarations.
//
// A declaration maps a language code to the Weblate users working on it:
//
//	ko:
//	  language: Korean
//	  translators: [1001, "1002"]
//	  reviewers: [alice]
//	  coordinators: [bob]
package team

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/utils"
)

// LanguageTeam is the immutable definition of one language team.
type LanguageTeam struct {
	LanguageCode string
	Language     string
	Translators  []string
	Reviewers    []string
	Coordinators []string
}

// ID is a Weblate user identifier. Purely numeric IDs are valid in Weblate
// and YAML would read an unquoted one as an integer, so the scalar text is
// kept verbatim.
type ID string

// UnmarshalYAML accepts any scalar and keeps its literal value.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: user id must be a scalar", node.Line)
	}
	*id = ID(node.Value)
	return nil
}

type teamInfo struct {
	Language     string `yaml:"language" validate:"required"`
	Translators  []ID   `yaml:"translators" validate:"required,dive,required"`
	Reviewers    []ID   `yaml:"reviewers" validate:"omitempty,dive,required"`
	Coordinators []ID   `yaml:"coordinators" validate:"omitempty,dive,required"`
}

var validate = validator.New()

// Load reads the team declaration at path. When langs is non-empty only
// those language codes are returned, and every one of them must be
// declared.
func Load(path string, langs []string) ([]LanguageTeam, error) {
	if err := utils.ValidateFilePath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeFile, "file_read_failed", path)
	}

	return parse(data, path, langs)
}

// LoadBytes parses an in-memory declaration.
func LoadBytes(data []byte, langs []string) ([]LanguageTeam, error) {
	return parse(data, "<memory>", langs)
}

func parse(data []byte, source string, langs []string) ([]LanguageTeam, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeData, "team_file_parse_failed", source)
	}

	// an empty file decodes to a zero node
	var root *yaml.Node
	if len(doc.Content) > 0 {
		root = doc.Content[0]
	}
	if root != nil && root.Kind != yaml.MappingNode {
		return nil, errors.WrapError(
			fmt.Errorf("line %d: top level must be a mapping of language codes", root.Line),
			errors.ErrorTypeData, "team_file_parse_failed", source)
	}

	var (
		teams    []LanguageTeam
		declared []string
		seen     = make(map[string]bool)
	)
	if root != nil {
		for i := 0; i+1 < len(root.Content); i += 2 {
			code := root.Content[i].Value
			if seen[code] {
				return nil, errors.WrapError(
					fmt.Errorf("line %d: language %s declared twice", root.Content[i].Line, code),
					errors.ErrorTypeData, "team_file_parse_failed", source)
			}
			seen[code] = true
			declared = append(declared, code)

			var info teamInfo
			if err := root.Content[i+1].Decode(&info); err != nil {
				return nil, errors.WrapError(err, errors.ErrorTypeData, "team_file_parse_failed", source)
			}
			if err := validate.Struct(info); err != nil {
				return nil, errors.InvalidTeam(code, describe(err))
			}
			teams = append(teams, newLanguageTeam(code, info))
		}
	}

	if len(langs) == 0 {
		return teams, nil
	}

	var missing []string
	wanted := make(map[string]bool, len(langs))
	for _, lang := range langs {
		wanted[lang] = true
		if !seen[lang] {
			missing = append(missing, lang)
		}
	}
	if len(missing) > 0 {
		return nil, errors.LanguageNotFound(missing, source, declared)
	}

	selected := make([]LanguageTeam, 0, len(langs))
	for _, t := range teams {
		if wanted[t.LanguageCode] {
			selected = append(selected, t)
		}
	}
	return selected, nil
}

func newLanguageTeam(code string, info teamInfo) LanguageTeam {
	return LanguageTeam{
		LanguageCode: code,
		Language:     info.Language,
		Translators:  toStrings(info.Translators),
		Reviewers:    toStrings(info.Reviewers),
		Coordinators: toStrings(info.Coordinators),
	}
}

func toStrings(ids []ID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	reasons := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		reasons = append(reasons, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(reasons, ", ")
}
