package output

// Result is the outcome of replaying one input line.
type Result struct {
	Line       int      `json:"line"`
	File       string   `json:"file,omitempty"`
	InitialFEN string   `json:"initialFEN"`
	FinalFEN   string   `json:"finalFEN,omitempty"`
	Moves      []string `json:"moves,omitempty"`
	PlyCount   int      `json:"plyCount"`
	Hash       string   `json:"hash,omitempty"`
	Board      string   `json:"board,omitempty"`
	Bitboards  string   `json:"bitboards,omitempty"`
	Legal      []string `json:"legal,omitempty"`
	Flags      []string `json:"flags,omitempty"`
	Verified   bool     `json:"verified,omitempty"`
	Duplicate  bool     `json:"duplicate,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*Result `json:"results"`
}

// Failed reports whether the replay stopped on an error.
func (r *Result) Failed() bool {
	return r.Error != ""
}
