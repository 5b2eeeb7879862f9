package vars

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadDotEnv reads KEY=value pairs used as substitution variables. Double
// quoted and bare values may reference earlier keys with $KEY or ${KEY};
// single quoted values stay literal.
func LoadDotEnv(path string) (values map[string]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variables file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close variables file %s: %w", path, closeErr)
		}
	}()
	return ParseDotEnv(f)
}

func ParseDotEnv(r io.Reader) (map[string]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	values := make(map[string]string)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' || text[0] == ';' {
			continue
		}
		key, raw, err := splitAssignment(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		value, literal, err := unquote(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !literal {
			if value, err = interpolate(value, values); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read variables: %w", err)
	}
	return values, nil
}

func splitAssignment(text string) (string, string, error) {
	if rest, ok := strings.CutPrefix(text, "export "); ok {
		text = strings.TrimSpace(rest)
	}
	key, value, ok := strings.Cut(text, "=")
	if !ok {
		return "", "", fmt.Errorf("expected KEY=value")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("missing key")
	}
	return key, strings.TrimLeft(value, " \t"), nil
}

// unquote returns the value and whether it must be kept literal.
func unquote(raw string) (string, bool, error) {
	if raw == "" {
		return "", false, nil
	}
	quote := raw[0]
	if quote != '"' && quote != '\'' {
		return stripComment(raw), false, nil
	}

	var b strings.Builder
	for i := 1; i < len(raw); i++ {
		ch := raw[i]
		if ch == '\\' && i+1 < len(raw) {
			i++
			if quote == '"' {
				b.WriteByte(escape(raw[i]))
			} else {
				b.WriteByte(raw[i])
			}
			continue
		}
		if ch == quote {
			tail := strings.TrimSpace(raw[i+1:])
			if tail != "" && tail[0] != '#' && tail[0] != ';' {
				return "", false, fmt.Errorf("unexpected content after quoted value")
			}
			return b.String(), quote == '\'', nil
		}
		b.WriteByte(ch)
	}
	return "", false, fmt.Errorf("unterminated quoted value")
}

func stripComment(value string) string {
	for i := 1; i < len(value); i++ {
		if (value[i] == '#' || value[i] == ';') && (value[i-1] == ' ' || value[i-1] == '\t') {
			return strings.TrimSpace(value[:i])
		}
	}
	return strings.TrimSpace(value)
}

func interpolate(value string, known map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if ch == '\\' && i+1 < len(value) && value[i+1] == '$' {
			b.WriteByte('$')
			i++
			continue
		}
		if ch != '$' || i+1 >= len(value) {
			b.WriteByte(ch)
			continue
		}
		var name string
		switch {
		case value[i+1] == '{':
			end := strings.IndexByte(value[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("missing closing brace for ${")
			}
			name = strings.TrimSpace(value[i+2 : i+2+end])
			i += end + 2
		case isNameChar(value[i+1]):
			j := i + 1
			for j < len(value) && isNameChar(value[j]) {
				j++
			}
			name = value[i+1 : j]
			i = j - 1
		default:
			b.WriteByte(ch)
			continue
		}
		if name == "" {
			return "", fmt.Errorf("empty variable name")
		}
		replacement, ok := known[name]
		if !ok {
			replacement, ok = os.LookupEnv(name)
		}
		if !ok {
			return "", fmt.Errorf("variable %q is not defined", name)
		}
		b.WriteString(replacement)
	}
	return b.String(), nil
}

func isNameChar(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

func escape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return ch
	}
}
