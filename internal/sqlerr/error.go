package sqlerr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConnectionUnavailable marks failures to obtain a database connection
// at all, as opposed to failures of a statement on a live connection.
var ErrConnectionUnavailable = errors.New("database connection unavailable")

// Code is a driver-independent classification of a database error.
type Code string

const (
	Other                 Code = "other"
	NotNullViolation      Code = "not_null_violation"
	ForeignKeyViolation   Code = "foreign_key_violation"
	UniqueViolation       Code = "unique_violation"
	CheckViolation        Code = "check_violation"
	ExclusionViolation    Code = "exclusion_violation"
	StringTooLong         Code = "string_data_right_truncation"
	InvalidTextRepr       Code = "invalid_text_representation"
	NumericOutOfRange     Code = "numeric_value_out_of_range"
	SerializationFailure  Code = "serialization_failure"
	DeadlockDetected      Code = "deadlock_detected"
	QueryCanceled         Code = "query_canceled"
	TooManyConnections    Code = "too_many_connections"
	ConnectionException   Code = "connection_exception"
	UndefinedTable        Code = "undefined_table"
	InsufficientPrivilege Code = "insufficient_privilege"
)

// MapCode maps a PostgreSQL SQLSTATE onto a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22001":
		return StringTooLong
	case "22P02":
		return InvalidTextRepr
	case "22003":
		return NumericOutOfRange
	case "40001":
		return SerializationFailure
	case "40P01":
		return DeadlockDetected
	case "57014":
		return QueryCanceled
	case "53300":
		return TooManyConnections
	case "42P01":
		return UndefinedTable
	case "42501":
		return InsufficientPrivilege
	}

	// Class 08 covers every connection exception (08000, 08003, 08006, ...).
	if strings.HasPrefix(sqlState, "08") {
		return ConnectionException
	}

	return Other
}

// Severity mirrors the PostgreSQL error severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity maps the raw severity string onto a Severity.
func MapSeverity(severity string) Severity {
	switch Severity(strings.ToUpper(severity)) {
	case SeverityFatal:
		return SeverityFatal
	case SeverityPanic:
		return SeverityPanic
	case SeverityWarning:
		return SeverityWarning
	case SeverityNotice:
		return SeverityNotice
	case SeverityDebug:
		return SeverityDebug
	case SeverityInfo:
		return SeverityInfo
	case SeverityLog:
		return SeverityLog
	default:
		return SeverityError
	}
}

// Error is the normalized form of a database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}
