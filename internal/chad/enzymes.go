package chad

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Enzyme is a restriction enzyme and the recognition sites that may not appear in
// a generated sequence. Forward and reverse complement sites are both listed.
type Enzyme struct {
	Name  string   `yaml:"name"`
	Sites []string `yaml:"sites"`
}

// DefaultEnzymes returns the Golden Gate enzymes whose sites are forbidden when
// no enzyme table is configured.
func DefaultEnzymes() []Enzyme {
	return []Enzyme{
		{Name: "BsaI", Sites: []string{"GGTCTC", "GAGACC"}},
		{Name: "BbsI", Sites: []string{"GAAGAC", "GTCTTC"}},
		{Name: "SapI", Sites: []string{"GCTCTTC", "GAAGAGC"}},
	}
}

// CloningChecker rejects sequences containing any enzyme recognition site.
type CloningChecker struct {
	enzymes []Enzyme
}

// NewCloningChecker returns a checker that forbids every site of every enzyme.
func NewCloningChecker(enzymes []Enzyme) *CloningChecker {
	return &CloningChecker{enzymes: enzymes}
}

// Enzymes returns the enzymes whose sites are forbidden.
func (c *CloningChecker) Enzymes() []Enzyme {
	return c.enzymes
}

// Check returns whether the candidate is free of every recognition site.
func (c *CloningChecker) Check(candidate string) bool {
	for _, enz := range c.enzymes {
		for _, site := range enz.Sites {
			if strings.Contains(candidate, site) {
				return false
			}
		}
	}
	return true
}

// Violations returns the names of the enzymes with a site in the candidate.
func (c *CloningChecker) Violations(candidate string) (names []string) {
	for _, enz := range c.enzymes {
		for _, site := range enz.Sites {
			if strings.Contains(candidate, site) {
				names = append(names, enz.Name)
				break
			}
		}
	}
	return
}

// ReadEnzymes reads an enzyme table from the local filesystem. Files ending in
// .yaml or .yml are a list of {name, sites}. Anything else is read as tab
// separated lines of an enzyme name followed by one or more recognition sites.
func ReadEnzymes(path string) ([]Enzyme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open enzyme table: %w", err)
	}
	defer f.Close()

	var enzymes []Enzyme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		enzymes, err = parseEnzymesYAML(f)
	default:
		enzymes, err = parseEnzymesTSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return enzymes, nil
}

func parseEnzymesYAML(r io.Reader) ([]Enzyme, error) {
	var enzymes []Enzyme
	if err := yaml.NewDecoder(r).Decode(&enzymes); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	for i := range enzymes {
		if err := enzymes[i].normalize(); err != nil {
			return nil, err
		}
	}
	return enzymes, nil
}

func parseEnzymesTSV(r io.Reader) ([]Enzyme, error) {
	var enzymes []Enzyme

	// https://golang.org/pkg/bufio/#example_Scanner_lines
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		columns := strings.Split(line, "\t")
		if len(columns) < 2 {
			return nil, fmt.Errorf("%w: %q has no recognition site", ErrInvalidSite, line)
		}

		enz := Enzyme{Name: strings.TrimSpace(columns[0])}
		for _, site := range columns[1:] {
			if site = strings.TrimSpace(site); site != "" {
				enz.Sites = append(enz.Sites, site)
			}
		}
		if err := enz.normalize(); err != nil {
			return nil, err
		}
		enzymes = append(enzymes, enz)
	}

	return enzymes, scanner.Err()
}

var nonACGT = regexp.MustCompile("[^ACGT]")

// normalize upper-cases the sites, removes cut markers (^ and _) and adds the
// reverse complement of an enzyme listed with a single site.
func (e *Enzyme) normalize() error {
	if len(e.Sites) == 0 {
		return fmt.Errorf("%w: %s has no recognition site", ErrInvalidSite, e.Name)
	}

	for i, site := range e.Sites {
		site = strings.ToUpper(site)
		site = strings.NewReplacer("^", "", "_", "").Replace(site)
		if site == "" || nonACGT.MatchString(site) {
			return fmt.Errorf("%w: %s site %q", ErrInvalidSite, e.Name, e.Sites[i])
		}
		e.Sites[i] = site
	}

	if len(e.Sites) == 1 {
		if rc := revComp(e.Sites[0]); rc != e.Sites[0] {
			e.Sites = append(e.Sites, rc)
		}
	}
	return nil
}

// revComp returns the reverse complement of a DNA sequence.
func revComp(seq string) string {
	comp := map[byte]byte{
		'A': 'T',
		'T': 'A',
		'G': 'C',
		'C': 'G',
	}

	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		rc[len(seq)-1-i] = comp[seq[i]]
	}
	return string(rc)
}

// FindEnzymes returns the enzyme named name if there is one. Otherwise it returns
// the enzymes whose names contain name or are within a small edit distance of it.
func FindEnzymes(enzymes []Enzyme, name string) []Enzyme {
	for _, enz := range enzymes {
		if enz.Name == name {
			return []Enzyme{enz}
		}
	}

	ldCutoff := 2
	var containing, lowDistance []Enzyme
	for _, enz := range enzymes {
		if strings.Contains(strings.ToUpper(enz.Name), strings.ToUpper(name)) {
			containing = append(containing, enz)
		} else if len(enz.Name) > ldCutoff && ld(name, enz.Name, true) <= ldCutoff {
			lowDistance = append(lowDistance, enz)
		}
	}

	// a couple of partial name matches are no better than near misses
	if len(containing) < 3 {
		containing = append(containing, lowDistance...)
	}

	sort.Slice(containing, func(i, j int) bool {
		return containing[i].Name < containing[j].Name
	})
	return containing
}

// ld compares two strings and returns the levenshtein distance between them.
func ld(s, t string, ignoreCase bool) int {
	if ignoreCase {
		s = strings.ToUpper(s)
		t = strings.ToUpper(t)
	}
	d := make([][]int, len(s)+1)
	for i := range d {
		d[i] = make([]int, len(t)+1)
	}
	for i := range d {
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for j := 1; j <= len(t); j++ {
		for i := 1; i <= len(s); i++ {
			if s[i-1] == t[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				min := d[i-1][j]
				if d[i][j-1] < min {
					min = d[i][j-1]
				}
				if d[i-1][j-1] < min {
					min = d[i-1][j-1]
				}
				d[i][j] = min + 1
			}
		}
	}
	return d[len(s)][len(t)]
}
