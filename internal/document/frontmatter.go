package document

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter holds the metadata a document may carry in a leading
// YAML block between "---" delimiters.
type FrontMatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// ExtractFrontMatter splits a leading YAML front matter block off the
// document body. Documents without front matter, or with a block that
// fails to parse, come back unchanged with empty metadata.
func ExtractFrontMatter(content string) (FrontMatter, string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return FrontMatter{}, content
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			end = i
			break
		}
	}
	if end == -1 {
		return FrontMatter{}, content
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:end], "\n")), &fm); err != nil {
		return FrontMatter{}, content
	}

	body := lines[end+1:]
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}

	return fm, strings.Join(body, "\n")
}
