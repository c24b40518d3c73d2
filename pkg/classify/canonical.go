package classify

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// CanonicalHash computes the deterministic source hash of a host event:
// SHA-256 over the canonical JSON of {type, properties}. Canonical JSON sorts
// object keys recursively and lexicographically; array order is preserved.
// Any two logically equivalent events hash identically — this byte format is
// a contract shared with every other writer of the punch table.
func CanonicalHash(eventType string, properties map[string]any) string {
	payload := map[string]any{
		"type":       eventType,
		"properties": properties,
	}
	return HashValue(payload)
}

// HashValue hashes an arbitrary JSON-shaped value with the canonical encoding.
func HashValue(v any) string {
	var buf bytes.Buffer
	writeCanonical(&buf, v)
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

func writeCanonical(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONScalar(buf, k)
			buf.WriteByte(':')
			writeCanonical(buf, val[k])
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonical(buf, item)
		}
		buf.WriteByte(']')
	default:
		writeJSONScalar(buf, v)
	}
}

// writeJSONScalar encodes a leaf value as standard JSON. Marshal errors are
// impossible for JSON-decoded input; unmarshalable leaves degrade to their
// fmt representation so the hash stays total.
func writeJSONScalar(buf *bytes.Buffer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		b, _ = json.Marshal(fmt.Sprintf("%v", v))
	}
	buf.Write(b)
}
