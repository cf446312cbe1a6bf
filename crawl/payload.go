package crawl

import (
	"encoding/json"
	"strings"

	"github.com/harvestkit/harvest"
)

// noopFlag is an artifact of the extraction step: models emit an extra
// boolean "error": false on otherwise healthy candidates. It is not a
// content field and is stripped during normalization so it cannot be
// miscounted against the schema.
const noopFlag = "error"

// ParseCandidates parses a raw extraction payload into normalized candidates.
// The payload must be a JSON list of objects. Scalar values are coerced to
// text; nested values and nulls are dropped, which makes them fail the
// completeness check if their field was required.
func ParseCandidates(payload string) ([]harvest.Candidate, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, harvest.Errorf(harvest.EINVALID, "payload is not a list of records: %v", err)
	}

	candidates := make([]harvest.Candidate, 0, len(raw))
	for _, obj := range raw {
		candidates = append(candidates, normalize(obj))
	}
	return candidates, nil
}

// normalize converts one decoded payload object into a Candidate.
func normalize(obj map[string]any) harvest.Candidate {
	c := make(harvest.Candidate, len(obj))
	for k, v := range obj {
		if k == noopFlag {
			if b, ok := v.(bool); ok && !b {
				continue
			}
		}
		switch val := v.(type) {
		case string:
			c[k] = val
		case json.Number:
			c[k] = val.String()
		case bool:
			if val {
				c[k] = "true"
			} else {
				c[k] = "false"
			}
		}
	}
	return c
}
