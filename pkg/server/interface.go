/*
Package server implements msgpack IPC for spelling correction.

Clients write a stream of msgpack maps to the server input and read one
msgpack map per request from its output. Requests are handled in order and
each response carries the request ID and timing info.

Correction requests carry a word:

	{"id": "req_001", "w": "Teh"}

The server answers with case-matched suggestions sorted case-insensitively.
"k" reports whether the word itself is in the dictionary; known words get no
suggestions:

	{"id": "req_001", "s": ["Eh", "The"], "c": 2, "t": 41, "k": false}

Requests with an action field query the server instead:

	{"id": "chk_001", "action": "is_word", "w": "the"}
	{"id": "st_001", "action": "stats"}

Failed requests produce an error map with an HTTP-like code:

	{"id": "req_002", "e": "word exceeds maximum length of 64", "c": 400}
*/
package server

// Actions understood in Request.Action. An empty action is a correction.
const (
	ActionCorrect = ""
	ActionIsWord  = "is_word"
	ActionStats   = "stats"
)

// Error codes sent in CorrectionError.Code.
const (
	CodeBadRequest = 400
	CodeInternal   = 500
)

// Request is any client message.
type Request struct {
	ID     string `msgpack:"id"`
	Word   string `msgpack:"w,omitempty"`
	Action string `msgpack:"action,omitempty"`
}

// CorrectionResponse answers a correction request.
type CorrectionResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	// TimeTaken is in microseconds.
	TimeTaken int64 `msgpack:"t"`
	Known     bool  `msgpack:"k"`
}

// WordResponse answers an is_word request.
type WordResponse struct {
	ID    string `msgpack:"id"`
	Known bool   `msgpack:"k"`
}

// StatsResponse answers a stats request.
type StatsResponse struct {
	ID        string `msgpack:"id"`
	Words     int    `msgpack:"words"`
	Requests  int    `msgpack:"requests"`
	Corrector string `msgpack:"corrector"`
}

// CorrectionError holds basic error information for failed requests
type CorrectionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
