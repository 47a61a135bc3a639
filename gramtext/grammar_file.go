package gramtext

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/halvard/graphgram/grammar"
	"github.com/halvard/graphgram/rule"
)

const defaultVersion = "0.1"

var reservedKeys = map[string]bool{"version": true, "start": true, "extensions": true}

// ParseGrammarFile parses a grammar document: a YAML mapping with
// version/start/extensions plus arbitrary rule keys, each a left-hand
// graph string mapped to a right-hand graph string (deterministic rule)
// or a sequence of right-hand graph strings (choice rule).
func ParseGrammarFile(data []byte) (*grammar.Grammar, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Message: "invalid grammar document: " + err.Error()}
	}

	if err := checkVersion(doc); err != nil {
		return nil, err
	}

	startStr, ok := doc["start"].(string)
	if !ok {
		return nil, &ParseError{Message: "grammar document missing a string 'start' key"}
	}
	start, err := ParseGraph(startStr, HintUndirected)
	if err != nil {
		return nil, err
	}

	var extensions map[string]any
	if e, ok := doc["extensions"]; ok {
		extensions, _ = e.(map[string]any)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		if !reservedKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	prods := make([]grammar.Production, 0, len(keys))
	var rerr *multierror.Error
	for _, lhs := range keys {
		prod, err := parseProduction(lhs, doc[lhs])
		if err != nil {
			rerr = multierror.Append(rerr, err)
			continue
		}
		prods = append(prods, prod)
	}
	if rerr != nil {
		return nil, rerr.ErrorOrNil()
	}

	gr := grammar.New(start, prods)
	gr.Extensions = extensions
	return gr, nil
}

func checkVersion(doc map[string]any) error {
	v, ok := doc["version"]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok || s != defaultVersion {
		return &ParseError{Message: fmt.Sprintf("unsupported grammar version %v", v)}
	}
	return nil
}

func parseProduction(lhs string, rhs any) (grammar.Production, error) {
	l, lNames, err := parseLeftSide(lhs)
	if err != nil {
		return nil, err
	}

	switch v := rhs.(type) {
	case string:
		return buildRule(l, lNames, v)
	case []any:
		if len(v) == 0 {
			return nil, &ParseError{Message: fmt.Sprintf("rule %q has no alternatives", lhs)}
		}
		alts := make([]*rule.Rule, 0, len(v))
		for _, item := range v {
			rhsStr, ok := item.(string)
			if !ok {
				return nil, &ParseError{Message: fmt.Sprintf("rule %q has a non-string alternative", lhs)}
			}
			rl, err := buildRule(l, lNames, rhsStr)
			if err != nil {
				return nil, err
			}
			alts = append(alts, rl)
		}
		return &rule.ChoiceRule{L: l, Alternatives: alts}, nil
	default:
		return nil, &ParseError{Message: fmt.Sprintf("rule %q has an unsupported right-hand value", lhs)}
	}
}
