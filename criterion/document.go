package criterion

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/teranos/benchsift/errors"
)

// DecodeDocument parses buf as a self-describing CBOR value. The result is
// a generic tree (maps, text keys, numeric leaves) navigated by
// PointEstimate. A truncated or malformed buffer means the dataset cannot
// be trusted, so the error wraps ErrCorruptDocument and is fatal for the
// dataset.
func DecodeDocument(buf []byte) (interface{}, error) {
	var doc interface{}
	if err := cbor.Unmarshal(buf, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptDocument, "%v", err)
	}
	return doc, nil
}

// PointEstimate navigates doc through "estimates" -> "median" ->
// "point_estimate" and returns the float leaf. It reports false when any
// step is absent or has the wrong shape; callers drop such documents
// rather than failing the run.
func PointEstimate(doc interface{}) (float64, bool) {
	root, ok := doc.(map[interface{}]interface{})
	if !ok {
		return 0, false
	}
	estimates, ok := root["estimates"].(map[interface{}]interface{})
	if !ok {
		return 0, false
	}
	median, ok := estimates["median"].(map[interface{}]interface{})
	if !ok {
		return 0, false
	}
	v, ok := median["point_estimate"].(float64)
	return v, ok
}
