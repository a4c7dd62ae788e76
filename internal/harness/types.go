package harness

// Operation names recorded in the trace.
const (
	OpFormat = "format"
	OpParse  = "parse"
)

// Error kinds a case can expect.
const (
	ErrKindOutOfRange = "out_of_range"
	ErrKindNoMatch    = "no_match"
)

// TraceEvent records a single conversion.
type TraceEvent struct {
	Seq    int64  `json:"seq"`
	Op     string `json:"op"`
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every case and assertion held.
	Pass bool `json:"pass"`

	// Trace contains one event per case, in scenario order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a conversion to the trace.
func (r *Result) AddTrace(op, input, output, errKind string) {
	r.Trace = append(r.Trace, TraceEvent{
		Seq:    int64(len(r.Trace) + 1),
		Op:     op,
		Input:  input,
		Output: output,
		Error:  errKind,
	})
}
