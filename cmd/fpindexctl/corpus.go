package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/skolem/fpindex/term"
)

// yamlCorpus is the shape read from a .yaml/.yml corpus file: a flat
// list of term literals in the same small grammar the plain-text loader
// uses line by line.
type yamlCorpus struct {
	Terms []string `yaml:"terms"`
}

// loadCorpus reads every term literal from path, aggregating every
// malformed line into a single error via go-multierror instead of
// stopping at the first, the way hashicorp/nomad's allocrunner collects
// independent per-task failures.
func loadCorpus(path string) ([]term.Term, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var literals []string
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var doc yamlCorpus
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
		}
		literals = doc.Terms
	default:
		scanner := bufio.NewScanner(strings.NewReader(string(data)))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			literals = append(literals, line)
		}
	}

	var terms []term.Term
	var errs *multierror.Error
	for i, lit := range literals {
		t, perr := parseTerm(lit)
		if perr != nil {
			errs = multierror.Append(errs, fmt.Errorf("entry %d (%q): %w", i, lit, perr))
			continue
		}
		terms = append(terms, t)
	}
	return terms, errs.ErrorOrNil()
}

// parseTerm parses a small Prolog-flavored grammar: an uppercase-leading
// bare name is a variable, everything else is a function/predicate
// symbol optionally followed by a parenthesized, comma-separated
// argument list. Predicate-vs-function is decided by a leading "p:"
// prefix (e.g. "p:likes(X,Y)"), since the plain grammar has no other
// signal for it.
func parseTerm(s string) (term.Term, error) {
	p := &termParser{input: s}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("trailing input at %q", p.input[p.pos:])
	}
	return t, nil
}

type termParser struct {
	input string
	pos   int
}

func (p *termParser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *termParser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

func (p *termParser) parseTerm() (term.Term, error) {
	isPred := false
	if strings.HasPrefix(p.input[p.pos:], "p:") {
		isPred = true
		p.pos += 2
	}

	start := p.pos
	for !p.atEnd() && isIdentByte(p.peek()) {
		p.pos++
	}
	name := p.input[start:p.pos]
	if name == "" {
		return nil, fmt.Errorf("expected a symbol or variable name at %q", p.input[p.pos:])
	}

	if p.peek() != '(' {
		if isVariableName(name) {
			if isPred {
				return nil, fmt.Errorf("variable %q cannot be marked as a predicate", name)
			}
			return term.Var(name), nil
		}
		if isPred {
			return term.Pred(name), nil
		}
		return term.Func(name), nil
	}

	p.pos++ // consume '('
	var args []term.Term
	for {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch p.peek() {
		case ',':
			p.pos++
			continue
		case ')':
			p.pos++
		default:
			return nil, fmt.Errorf("expected ',' or ')' at %q", p.input[p.pos:])
		}
		break
	}

	if isVariableName(name) {
		return nil, fmt.Errorf("variable %q cannot take arguments", name)
	}
	if isPred {
		return term.Pred(name, args...), nil
	}
	return term.Func(name, args...), nil
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isVariableName(name string) bool {
	return name[0] >= 'A' && name[0] <= 'Z'
}
