package logreflector

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const truncatedSuffix = "...(truncated)"

// JSONSerializer renders values as JSON. Protobuf messages go through
// protojson so that field names and well-known types follow the proto JSON
// mapping; errors are rendered as their message.
type JSONSerializer struct {
	maxSize int
}

var _ Serializer = (*JSONSerializer)(nil)

// NewJSONSerializer builds a serializer honouring cfg.MaxValueSize.
func NewJSONSerializer(cfg Config) *JSONSerializer {
	return &JSONSerializer{maxSize: cfg.MaxValueSize}
}

// Serialize returns the JSON form of v, truncated to the configured size.
func (s *JSONSerializer) Serialize(v any) (string, error) {
	var (
		b   []byte
		err error
	)

	switch val := v.(type) {
	case nil:
		return "null", nil
	case proto.Message:
		b, err = protojson.Marshal(val)
	case error:
		b, err = json.Marshal(val.Error())
	default:
		b, err = json.Marshal(val)
	}
	if err != nil {
		return "", fmt.Errorf("serialize %T: %w", v, err)
	}
	return s.truncate(string(b)), nil
}

func (s *JSONSerializer) truncate(out string) string {
	if s.maxSize <= 0 || len(out) <= s.maxSize {
		return out
	}
	n := s.maxSize
	for n > 0 && !utf8.RuneStart(out[n]) {
		n--
	}
	return out[:n] + truncatedSuffix
}
