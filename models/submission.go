package models

// Submission is an operation form as the stub service receives it: the
// declared schema next to the values posted for it.
type Submission struct {
	Fields []FieldSchema
	Values FormValues
}

// OperationRef names the operation an echo answers.
type OperationRef struct {
	Category string `json:"category"`
	Entry    string `json:"entry"`
	Name     string `json:"name"`
}

// OperationEcho is the stub service reply to an accepted submission.
type OperationEcho struct {
	Data      FormValues   `json:"data"`
	Operation OperationRef `json:"operation"`
}
