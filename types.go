package main

import "fmt"

// UploadRequest holds the data submitted as one upload. It is built once
// from CLI input and the content file and never mutated.
type UploadRequest struct {
	Source  string
	Content string
}

// SubmissionStatus represents the outcome status of a submission attempt
type SubmissionStatus string

const (
	StatusSuccess          SubmissionStatus = "success"
	StatusValidationFailed SubmissionStatus = "validation_failed"
	StatusUnexpected       SubmissionStatus = "unexpected"
)

// SubmissionResult tracks the outcome of one upload attempt
type SubmissionResult struct {
	Status     SubmissionStatus
	StatusCode int
	Location   string   // redirect target on 302
	Errors     []string // server validation messages on 422
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}
