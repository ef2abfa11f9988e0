package parsers

import (
	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Field types with a dedicated value decoder.
const (
	FieldTypeFloat   = "com.atlassian.jira.plugin.system.customfieldtypes:float"
	FieldTypeString  = "java.lang.String"
	FieldTypeNumber  = "number"
	FieldTypeText    = "string"
	FieldTypeComment = "com.atlassian.jira.Comment"
)

// ValueDecoder decodes a non-null field value.
type ValueDecoder func(value jsonparse.Node) (any, error)

// FieldTypeRegistry maps a field type to the decoder of its values.
type FieldTypeRegistry map[string]ValueDecoder

// DefaultFieldTypes decodes float fields as float64 and string fields as
// strings. Other types keep their raw text.
func DefaultFieldTypes() FieldTypeRegistry {
	float := func(value jsonparse.Node) (any, error) {
		return value.Float()
	}
	text := func(value jsonparse.Node) (any, error) {
		return value.Text(), nil
	}

	return FieldTypeRegistry{
		FieldTypeFloat:  float,
		FieldTypeNumber: float,
		FieldTypeString: text,
		FieldTypeText:   text,
	}
}

// systemFields are decoded into dedicated Issue members and never reported
// as generic fields.
var systemFields = map[string]struct{}{
	"summary": {}, "description": {}, "project": {}, "issuetype": {}, "status": {},
	"priority": {}, "resolution": {}, "reporter": {}, "assignee": {}, "created": {},
	"updated": {}, "watches": {}, "fixVersions": {}, "versions": {}, "components": {},
	"labels": {}, "comment": {}, "worklog": {}, "attachment": {}, "issuelinks": {},
}

// FieldDecoder decodes issue fields whose value shape depends on the field
// type. The registry is fixed at construction.
type FieldDecoder struct {
	registry FieldTypeRegistry
}

// NewFieldDecoder creates a field decoder. A nil registry stringifies every
// value.
func NewFieldDecoder(registry FieldTypeRegistry) *FieldDecoder {
	if registry == nil {
		registry = FieldTypeRegistry{}
	}

	return &FieldDecoder{registry: registry}
}

// Value decodes one value of the given type. A null value yields nil.
func (d *FieldDecoder) Value(fieldType string, value jsonparse.Node) (any, error) {
	if value.IsNull() {
		return nil, nil
	}

	if decode, ok := d.registry[fieldType]; ok {
		return decode(value)
	}

	return value.Text(), nil
}

// Decoder returns a decoder for a standalone field object
// { "name": ..., "type": ..., "value": ... }.
func (d *FieldDecoder) Decoder() jsonparse.Decoder[jira.Field] {
	return jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.Field, error) {
		r := newReader(node)
		name := r.str("name")
		fieldType := r.str("type")

		if r.err != nil {
			return jira.Field{}, r.err
		}

		if name == "comment" {
			fieldType = FieldTypeComment
		}

		field := jira.Field{ID: r.optional("id", name), Name: name, Type: fieldType}

		value, ok := node.Get("value")
		if !ok {
			return field, nil
		}

		decoded, err := d.Value(fieldType, value)
		if err != nil {
			return jira.Field{}, err
		}

		field.Value = decoded

		return field, nil
	})
}

// IssueFields decodes the non-system members of an issue's "fields"
// object. Names and types come from the issue's "names" and "schema"
// members when the issue was fetched with those expanded.
func (d *FieldDecoder) IssueFields(issue jsonparse.Node) ([]jira.Field, error) {
	fields, err := jsonparse.NestedObject(issue, "fields")
	if err != nil {
		return nil, err
	}

	names, _, err := jsonparse.NestedOptionalObject(issue, "names")
	if err != nil {
		return nil, err
	}

	schema, _, err := jsonparse.NestedOptionalObject(issue, "schema")
	if err != nil {
		return nil, err
	}

	result := make([]jira.Field, 0)

	err = fields.ForEach(func(id string, value jsonparse.Node) error {
		if _, system := systemFields[id]; system {
			return nil
		}

		fieldType := fieldTypeOf(schema, id)

		decoded, err := d.Value(fieldType, value)
		if err != nil {
			return err
		}

		result = append(result, jira.Field{
			ID:    id,
			Name:  jsonparse.OptionalString(names, id, id),
			Type:  fieldType,
			Value: decoded,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func fieldTypeOf(schema jsonparse.Node, id string) string {
	entry, ok, err := jsonparse.NestedOptionalObject(schema, id)
	if err != nil || !ok {
		return ""
	}

	if custom := jsonparse.OptionalString(entry, "custom", ""); custom != "" {
		return custom
	}

	return jsonparse.OptionalString(entry, "type", "")
}
