package redmine

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParamValue is a typed query-parameter value. The set of implementations
// is fixed: booleans, integers, floats, strings, dates, timestamps, and
// comma-joined lists of those. Values are rendered unescaped; the URL
// writer percent-encodes them when the query string is assembled.
type ParamValue interface {
	paramValue() (string, error)
}

type boolValue bool

func (v boolValue) paramValue() (string, error) {
	return strconv.FormatBool(bool(v)), nil
}

type intValue int64

func (v intValue) paramValue() (string, error) {
	return strconv.FormatInt(int64(v), 10), nil
}

type uintValue uint64

func (v uintValue) paramValue() (string, error) {
	return strconv.FormatUint(uint64(v), 10), nil
}

type floatValue float64

func (v floatValue) paramValue() (string, error) {
	return strconv.FormatFloat(float64(v), 'f', -1, 64), nil
}

type stringValue string

func (v stringValue) paramValue() (string, error) {
	return string(v), nil
}

type dateValue time.Time

func (v dateValue) paramValue() (string, error) {
	return time.Time(v).Format("2006-01-02"), nil
}

type timestampValue time.Time

func (v timestampValue) paramValue() (string, error) {
	t := time.Time(v)
	if year := t.Year(); year < 0 || year > 9999 {
		return "", &TimeFormatError{Value: t}
	}

	return t.Format(time.RFC3339), nil
}

type listValue []ParamValue

func (v listValue) paramValue() (string, error) {
	parts := make([]string, 0, len(v))

	for _, elem := range v {
		s, err := elem.paramValue()
		if err != nil {
			return "", err
		}

		parts = append(parts, s)
	}

	return strings.Join(parts, ","), nil
}

// Bool wraps a boolean parameter value ("true"/"false").
func Bool(b bool) ParamValue { return boolValue(b) }

// Int wraps a signed integer parameter value.
func Int(i int64) ParamValue { return intValue(i) }

// Uint wraps an unsigned integer parameter value.
func Uint(u uint64) ParamValue { return uintValue(u) }

// Float wraps a floating point parameter value, rendered as the shortest
// decimal that round-trips.
func Float(f float64) ParamValue { return floatValue(f) }

// String wraps a string parameter value, passed through verbatim.
func String(s string) ParamValue { return stringValue(s) }

// DateParam wraps a date parameter value, rendered as YYYY-MM-DD.
func DateParam(t time.Time) ParamValue { return dateValue(t) }

// TimestampParam wraps a timestamp parameter value, rendered as RFC 3339.
func TimestampParam(t time.Time) ParamValue { return timestampValue(t) }

// List joins values with "," into a single parameter value.
func List(values ...ParamValue) ParamValue { return listValue(values) }

// UintList joins unsigned integers with "," into a single parameter value.
// Returns nil when ids is empty so it composes with PushOpt.
func UintList(ids []uint64) ParamValue {
	if len(ids) == 0 {
		return nil
	}

	values := make(listValue, 0, len(ids))
	for _, id := range ids {
		values = append(values, uintValue(id))
	}

	return values
}

// StringList joins strings with "," into a single parameter value.
// Returns nil when elems is empty so it composes with PushOpt.
func StringList(elems []string) ParamValue {
	if len(elems) == 0 {
		return nil
	}

	values := make(listValue, 0, len(elems))
	for _, elem := range elems {
		values = append(values, stringValue(elem))
	}

	return values
}

// OptBool wraps an optional boolean; nil means absent.
func OptBool(b *bool) ParamValue {
	if b == nil {
		return nil
	}

	return boolValue(*b)
}

// OptInt wraps an optional signed integer; nil means absent.
func OptInt(i *int64) ParamValue {
	if i == nil {
		return nil
	}

	return intValue(*i)
}

// OptUint wraps an optional unsigned integer; nil means absent.
func OptUint(u *uint64) ParamValue {
	if u == nil {
		return nil
	}

	return uintValue(*u)
}

// OptFloat wraps an optional float; nil means absent.
func OptFloat(f *float64) ParamValue {
	if f == nil {
		return nil
	}

	return floatValue(*f)
}

// OptString wraps an optional string; nil means absent.
func OptString(s *string) ParamValue {
	if s == nil {
		return nil
	}

	return stringValue(*s)
}

// OptDate wraps an optional date; nil means absent.
func OptDate(t *time.Time) ParamValue {
	if t == nil {
		return nil
	}

	return dateValue(*t)
}

// OptTimestamp wraps an optional timestamp; nil means absent.
func OptTimestamp(t *time.Time) ParamValue {
	if t == nil {
		return nil
	}

	return timestampValue(*t)
}

type paramPair struct {
	key   string
	value string
}

// QueryParams is an ordered sequence of query-string pairs. Duplicate keys
// are permitted and preserved in insertion order. Encoding failures stick
// to the QueryParams value and surface before any request is sent.
type QueryParams struct {
	pairs []paramPair
	err   error
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// Push appends a single parameter pair.
func (q *QueryParams) Push(key string, value ParamValue) *QueryParams {
	if q.err != nil {
		return q
	}

	encoded, err := value.paramValue()
	if err != nil {
		q.err = err

		return q
	}

	q.pairs = append(q.pairs, paramPair{key: key, value: encoded})

	return q
}

// PushOpt appends a parameter pair when value is non-nil and is a no-op
// otherwise. This is the sole mechanism for conditionally including a
// filter.
func (q *QueryParams) PushOpt(key string, value ParamValue) *QueryParams {
	if value == nil {
		return q
	}

	return q.Push(key, value)
}

// Len returns the number of pairs pushed so far.
func (q *QueryParams) Len() int {
	if q == nil {
		return 0
	}

	return len(q.pairs)
}

// Clone returns an independent copy of q. A nil receiver clones to an
// empty QueryParams.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := &QueryParams{err: q.err}
	clone.pairs = append(clone.pairs, q.pairs...)

	return clone
}

// Encode renders the pairs as a percent-encoded query string, preserving
// insertion order and duplicates. Equal inputs produce byte-identical
// output.
func (q *QueryParams) Encode() (string, error) {
	if q == nil {
		return "", nil
	}

	if q.err != nil {
		return "", q.err
	}

	var builder strings.Builder

	for i, pair := range q.pairs {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.value))
	}

	return builder.String(), nil
}
