// Package errors provides standardized error types and helpers for the Standings codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the pipeline's failure kinds
var (
	// ErrSourceUnavailable indicates the input source could not be opened or read
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrInvalidMatch indicates a match record with the same team on both sides
	ErrInvalidMatch = errors.New("invalid match")
	// ErrInvalidScore indicates a score field that is not an integer
	ErrInvalidScore = errors.New("invalid score")
	// ErrDestinationUnwritable indicates the report destination could not be written
	ErrDestinationUnwritable = errors.New("destination unwritable")
)

// SourceError represents a failure to open or read the input source
type SourceError struct {
	Path string // Source path that could not be read
	Err  error  // Underlying error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read source %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read source %s", e.Path)
}

func (e *SourceError) Unwrap() error {
	return ErrSourceUnavailable
}

// MatchError represents a match record that names the same team twice
type MatchError struct {
	Team string // Team appearing on both sides of the record
}

func (e *MatchError) Error() string {
	if e.Team != "" {
		return fmt.Sprintf("invalid match: %s cannot play itself", e.Team)
	}
	return "invalid match: a team cannot play itself"
}

func (e *MatchError) Unwrap() error {
	return ErrInvalidMatch
}

// ScoreError represents a score field that could not be parsed as an integer
type ScoreError struct {
	Team  string // Team the score belongs to
	Value string // Raw score text that failed to parse
	Err   error  // Underlying error, if any
}

func (e *ScoreError) Error() string {
	if e.Team != "" {
		return fmt.Sprintf("invalid score %q for %s", e.Value, e.Team)
	}
	return fmt.Sprintf("invalid score %q", e.Value)
}

func (e *ScoreError) Unwrap() error {
	return ErrInvalidScore
}

// DestinationError represents a failure to write the report destination
type DestinationError struct {
	Path string // Destination path that could not be written
	Err  error  // Underlying error
}

func (e *DestinationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot write report to %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot write report to %s", e.Path)
}

func (e *DestinationError) Unwrap() error {
	return ErrDestinationUnwritable
}

// NewSource creates a SourceError
func NewSource(path string, err error) *SourceError {
	return &SourceError{
		Path: path,
		Err:  err,
	}
}

// NewMatch creates a MatchError
func NewMatch(team string) *MatchError {
	return &MatchError{
		Team: team,
	}
}

// NewScore creates a ScoreError
func NewScore(team, value string, err error) *ScoreError {
	return &ScoreError{
		Team:  team,
		Value: value,
		Err:   err,
	}
}

// NewDestination creates a DestinationError
func NewDestination(path string, err error) *DestinationError {
	return &DestinationError{
		Path: path,
		Err:  err,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
