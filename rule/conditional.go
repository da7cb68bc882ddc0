package rule

import (
	"fmt"
	"strings"
)

// FieldsRule conditions a field on the presence or absence of other fields.
type FieldsRule struct {
	keyword string
	fields  []string
}

func newFieldsRule(keyword string, fields []string) (FieldsRule, error) {
	if len(fields) == 0 {
		return FieldsRule{}, fmt.Errorf("%w: %s needs at least one field", ErrInvalidRule, keyword)
	}

	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return FieldsRule{}, fmt.Errorf("%w: %s has an empty field reference", ErrInvalidRule, keyword)
		}
	}

	return FieldsRule{keyword: keyword, fields: fields}, nil
}

// RequiredWith requires the field when any of fields is present.
func RequiredWith(fields ...string) (FieldsRule, error) {
	return newFieldsRule(KeywordRequiredWith, fields)
}

// RequiredWithout requires the field when any of fields is absent.
func RequiredWithout(fields ...string) (FieldsRule, error) {
	return newFieldsRule(KeywordRequiredWithout, fields)
}

// MissingWith requires the field to be absent when any of fields is present.
func MissingWith(fields ...string) (FieldsRule, error) {
	return newFieldsRule(KeywordMissingWith, fields)
}

func (r FieldsRule) Keyword() string { return r.keyword }

// Fields returns the referenced fields.
func (r FieldsRule) Fields() []string { return r.fields }

func (r FieldsRule) Parameters() []string {
	params := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		params = append(params, Parameter(f))
	}

	return params
}

func (r FieldsRule) String() string { return Format(r) }

// ValueRule conditions a field on another field holding one of some values.
type ValueRule struct {
	keyword string
	field   string
	values  []any
}

func newValueRule(keyword, field string, values []any) (ValueRule, error) {
	if strings.TrimSpace(field) == "" {
		return ValueRule{}, fmt.Errorf("%w: %s has an empty field reference", ErrInvalidRule, keyword)
	}

	values = flatten(values)
	if len(values) == 0 {
		return ValueRule{}, fmt.Errorf("%w: %s needs at least one value", ErrInvalidRule, keyword)
	}

	return ValueRule{keyword: keyword, field: field, values: values}, nil
}

// RequiredIf requires the field when field equals any of values.
func RequiredIf(field string, values ...any) (ValueRule, error) {
	return newValueRule(KeywordRequiredIf, field, values)
}

// PresentIf requires the key to be present when field equals any of values.
func PresentIf(field string, values ...any) (ValueRule, error) {
	return newValueRule(KeywordPresentIf, field, values)
}

// ProhibitedIf requires the field to be empty or absent when field equals any
// of values.
func ProhibitedIf(field string, values ...any) (ValueRule, error) {
	return newValueRule(KeywordProhibitedIf, field, values)
}

func (r ValueRule) Keyword() string { return r.keyword }

// Field returns the referenced field.
func (r ValueRule) Field() string { return r.field }

func (r ValueRule) Parameters() []string {
	params := make([]string, 0, len(r.values)+1)
	params = append(params, Parameter(r.field))

	for _, v := range r.values {
		params = append(params, Parameter(v))
	}

	return params
}

func (r ValueRule) String() string { return Format(r) }
