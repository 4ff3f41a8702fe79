package criterion

import (
	"os"

	"github.com/teranos/benchsift/errors"
)

// Point is one correlated (input size, measured duration) sample.
type Point struct {
	Index int     `json:"index"`
	Time  float64 `json:"time"`
}

// Extract reads and decodes every located measurement, correlating each
// index with the document's median point estimate. Input order is
// preserved. Documents whose shape does not carry the estimate are dropped,
// not fatal; the dropped count is returned so callers can surface it.
// Unreadable or undecodable files abort the dataset: once a measurement
// file is located, failing to read it back means the tree is not trustworthy.
func Extract(files []IndexedMeasurement) ([]Point, int, error) {
	points := make([]Point, 0, len(files))
	dropped := 0

	for _, f := range files {
		buf, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, dropped, errors.Wrapf(err, "failed to read measurement %s", f.Path)
		}

		doc, err := DecodeDocument(buf)
		if err != nil {
			return nil, dropped, errors.Wrapf(err, "measurement %s", f.Path)
		}

		v, ok := PointEstimate(doc)
		if !ok {
			dropped++
			continue
		}

		points = append(points, Point{Index: f.Index, Time: v})
	}

	return points, dropped, nil
}
