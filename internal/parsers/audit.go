package parsers

import (
	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// AuditAssociatedItemDecoder decodes an object referenced by an audit record.
var AuditAssociatedItemDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.AuditAssociatedItem, error) {
	r := newReader(node)

	item := jira.AuditAssociatedItem{
		ID:         r.nullable("id"),
		Name:       r.str("name"),
		TypeName:   r.str("typeName"),
		ParentID:   r.nullable("parentId"),
		ParentName: r.nullable("parentName"),
	}

	return item, r.err
})

// AuditChangedValueDecoder decodes one recorded field change.
var AuditChangedValueDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.AuditChangedValue, error) {
	r := newReader(node)

	value := jira.AuditChangedValue{
		FieldName:   r.str("fieldName"),
		ChangedTo:   r.nullable("changedTo"),
		ChangedFrom: r.nullable("changedFrom"),
	}

	return value, r.err
})

// AuditRecordDecoder decodes one audit record. Associated items and changed
// values stay nil when the record does not carry them.
var AuditRecordDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (jira.AuditRecord, error) {
	r := newReader(node)

	record := jira.AuditRecord{
		ID:              r.integer("id"),
		Summary:         r.str("summary"),
		RemoteAddress:   r.nullable("remoteAddress"),
		AuthorKey:       r.nullable("authorKey"),
		Created:         r.dateTime("created"),
		Category:        r.str("category"),
		EventSource:     r.nullable("eventSource"),
		Description:     r.nullable("description"),
		ObjectItem:      optObject(r, "objectItem", AuditAssociatedItemDecoder),
		AssociatedItems: optArray(r, "associatedItems", AuditAssociatedItemDecoder),
		ChangedValues:   optArray(r, "changedValues", AuditChangedValueDecoder),
	}

	return record, r.err
})

// AuditRecordsDecoder decodes one page of audit records.
var AuditRecordsDecoder = jsonparse.ObjectDecoder(func(node jsonparse.Node) (*jira.AuditRecordsData, error) {
	r := newReader(node)

	data := &jira.AuditRecordsData{
		Offset:  int(r.integer("offset")),
		Limit:   int(r.integer("limit")),
		Total:   int(r.integer("total")),
		Records: array(r, "records", AuditRecordDecoder),
	}

	if r.err != nil {
		return nil, r.err
	}

	return data, nil
})
