package quiz

// Option is one answer choice of a multiple-choice question.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Quiz is a single four-option question.
type Quiz struct {
	Question string `json:"question"`
	A        Option `json:"a"`
	B        Option `json:"b"`
	C        Option `json:"c"`
	D        Option `json:"d"`
}

// Response is the fixed shape returned to clients and demanded from the model.
type Response struct {
	Quizzes []Quiz `json:"quizzes"`
}
