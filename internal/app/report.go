package app

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/abba/bfs"
)

// Report is the answer to one query.
type Report struct {
	N        int      `yaml:"n"`
	Alphabet string   `yaml:"alphabet"`
	Start    string   `yaml:"start"`
	Distance int      `yaml:"distance"`
	Target   string   `yaml:"target,omitempty"`
	Path     []string `yaml:"path,omitempty,flow"`
	Visited  int      `yaml:"visited"`
	Graph    string   `yaml:"graph,omitempty"`
	Error    string   `yaml:"error,omitempty"`
}

func (r Report) failed(err error) (Report, error) {
	r.Error = err.Error()
	return r, err
}

// writeText renders r as one summary line, plus the graph when present.
//
//	once: distance 2 to ecce via once -> ence -> ecce (n=4, alphabet {o, n, c, e}, visited 29)
func writeText(w io.Writer, r Report) error {
	var b strings.Builder
	if r.Graph != "" {
		fmt.Fprintf(&b, "graph n=%d alphabet %s: %s\n", r.N, r.Alphabet, r.Graph)
	}

	params := fmt.Sprintf("n=%d, alphabet %s", r.N, r.Alphabet)
	switch {
	case r.Error != "":
		fmt.Fprintf(&b, "%s: error: %s (%s)\n", r.Start, r.Error, params)
	case r.Distance == bfs.Unreachable:
		fmt.Fprintf(&b, "%s: no palindrome reachable (%s, visited %d)\n", r.Start, params, r.Visited)
	default:
		fmt.Fprintf(&b, "%s: distance %d to %s via %s (%s, visited %d)\n",
			r.Start, r.Distance, r.Target, strings.Join(r.Path, " -> "), params, r.Visited)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeYAML renders every report as one YAML document under "results".
func writeYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Results []Report `yaml:"results"`
	}{reports}); err != nil {
		return fmt.Errorf("app: encoding yaml report: %w", err)
	}

	return enc.Close()
}
