package util

import "errors"

// NotFound
var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrPartnerNotAssigned = errors.New("no partner assigned")
)

// EmptyCollection
var (
	ErrEmptyAssignment = errors.New("assignment has no questions")
	ErrNoAnswers       = errors.New("no answers found for question")
	ErrNoCorrectAnswer = errors.New("no correct answer found in sample")
)

var ErrInvalidAttemptNumber = errors.New("attempt number must be at least 1")

func IsNotFound(err error) bool {
	return errors.Is(err, ErrAssignmentNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrPartnerNotAssigned)
}

func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyAssignment) ||
		errors.Is(err, ErrNoAnswers) ||
		errors.Is(err, ErrNoCorrectAnswer)
}
