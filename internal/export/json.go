package export

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/san-kum/mandelterm/internal/automation"
	"github.com/san-kum/mandelterm/internal/metrics"
)

type BenchReport struct {
	Tour    string             `json:"tour"`
	Cols    int                `json:"cols"`
	Rows    int                `json:"rows"`
	Workers int                `json:"workers"`
	Cache   string             `json:"cache"`
	Frames  []BenchFrame       `json:"frames"`
	Metrics map[string]float64 `json:"metrics"`
}

type BenchFrame struct {
	Step      int     `json:"step"`
	Action    string  `json:"action"`
	Millis    float64 `json:"ms"`
	Threshold int     `json:"threshold"`
	Cached    bool    `json:"cached"`
	CacheHits uint64  `json:"cache_hits"`
	Escaped   int     `json:"escaped"`
}

// NewBenchReport collects tour results and the final metric values.
func NewBenchReport(tour string, results []automation.FrameResult, ms []metrics.Metric) *BenchReport {
	r := &BenchReport{
		Tour:    tour,
		Frames:  make([]BenchFrame, len(results)),
		Metrics: make(map[string]float64, len(ms)),
	}
	for i, res := range results {
		r.Frames[i] = BenchFrame{
			Step:      res.Step,
			Action:    res.Action,
			Millis:    float64(res.Stats.Elapsed) / float64(time.Millisecond),
			Threshold: res.Stats.Threshold,
			Cached:    res.Stats.Cached,
			CacheHits: res.Stats.CacheHits,
			Escaped:   res.Foreground,
		}
	}
	for _, m := range ms {
		r.Metrics[m.Name()] = m.Value()
	}
	return r
}

func (r *BenchReport) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func WriteJSON(path string, r *BenchReport) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.Encode(file)
}
