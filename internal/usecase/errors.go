package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrCandidateNotFound   = errors.New("Candidate not found")
	ErrOpportunityNotFound = errors.New("Opportunity not found")
)
