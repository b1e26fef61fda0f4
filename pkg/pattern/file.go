package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"sparse-life/pkg/life"
)

// fileSpec is the YAML layout of a pattern file. Cells and rows may be mixed;
// their union forms the pattern.
type fileSpec struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Cells       [][2]int `yaml:"cells,omitempty"`
	Rows        []string `yaml:"rows,omitempty"`
}

// Load reads a pattern file. Files ending in .cells use the plaintext
// format; anything else is parsed as YAML.
func Load(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("reading pattern file: %w", err)
	}
	defer f.Close()

	var p Pattern
	if strings.EqualFold(filepath.Ext(path), ".cells") {
		p, err = ParsePlaintext(f)
	} else {
		p, err = DecodeYAML(f)
	}
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}
	logrus.Debugf("loaded pattern %q with %d cells from %s", p.Name, len(p.Cells), path)
	return p, nil
}

// DecodeYAML parses a YAML pattern. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (Pattern, error) {
	var spec fileSpec
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return Pattern{}, fmt.Errorf("parsing pattern: %w", err)
	}

	cells := make([]life.Cell, 0, len(spec.Cells))
	for _, xy := range spec.Cells {
		cells = append(cells, life.Cell{X: xy[0], Y: xy[1]})
	}
	fromRows, err := FromRows(spec.Rows)
	if err != nil {
		return Pattern{}, fmt.Errorf("parsing pattern rows: %w", err)
	}
	cells = append(cells, fromRows...)

	return Pattern{Name: spec.Name, Description: spec.Description, Cells: cells}, nil
}

// EncodeYAML writes p in the format DecodeYAML reads.
func EncodeYAML(w io.Writer, p Pattern) error {
	spec := fileSpec{Name: p.Name, Description: p.Description}
	for _, c := range p.Cells {
		spec.Cells = append(spec.Cells, [2]int{c.X, c.Y})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return fmt.Errorf("encoding pattern: %w", err)
	}
	return enc.Close()
}

// ParsePlaintext reads the plaintext .cells format. Lines starting with '!'
// are comments; a "!Name:" comment names the pattern.
func ParsePlaintext(r io.Reader) (Pattern, error) {
	var p Pattern
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			} else if p.Name != "" && p.Description == "" {
				p.Description = strings.TrimSpace(line[1:])
			}
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return Pattern{}, fmt.Errorf("reading plaintext pattern: %w", err)
	}

	cells, err := FromRows(rows)
	if err != nil {
		return Pattern{}, fmt.Errorf("parsing plaintext pattern: %w", err)
	}
	p.Cells = cells
	return p, nil
}
