package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	keyVersion = "version"
	keySkills  = "skills"
)

// UnmarshalJSON decodes a rule file, keeping skills in file order
func (s *RuleSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("rule file must be a JSON object: %w", err)
	}

	var sawSkills bool
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return err
		}

		switch key {
		case keyVersion:
			var v interface{}
			if err := dec.Decode(&v); err != nil {
				return fmt.Errorf("invalid version: %w", err)
			}
			s.Version = versionString(v)
		case keySkills:
			if err := s.decodeSkills(dec); err != nil {
				return err
			}
			sawSkills = true
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return fmt.Errorf("invalid value for %q: %w", key, err)
			}
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return err
	}
	if !sawSkills {
		return fmt.Errorf("rule file has no %q object", keySkills)
	}
	return nil
}

func (s *RuleSet) decodeSkills(dec *json.Decoder) error {
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("%q must be an object: %w", keySkills, err)
	}

	for dec.More() {
		name, err := objectKey(dec)
		if err != nil {
			return err
		}

		var rule Rule
		if err := dec.Decode(&rule); err != nil {
			return fmt.Errorf("invalid rule for skill %q: %w", name, err)
		}
		s.add(name, rule)
	}

	return expectDelim(dec, '}')
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return fmt.Errorf("unexpected end of input, expected %q", want)
	}
	if err != nil {
		return err
	}
	if got, ok := tok.(json.Delim); !ok || got != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func versionString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// UnmarshalYAML decodes a YAML rule file, keeping skills in file order
func (s *RuleSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: rule file must be a mapping", node.Line)
	}

	var sawSkills bool
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		case keyVersion:
			s.Version = value.Value
		case keySkills:
			if value.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: %q must be a mapping", value.Line, keySkills)
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				name := value.Content[j].Value
				var rule Rule
				if err := value.Content[j+1].Decode(&rule); err != nil {
					return fmt.Errorf("invalid rule for skill %q: %w", name, err)
				}
				s.add(name, rule)
			}
			sawSkills = true
		}
	}

	if !sawSkills {
		return fmt.Errorf("rule file has no %q mapping", keySkills)
	}
	return nil
}
