package client

import (
	"context"
	"fmt"

	"github.com/google/go-querystring/query"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	"github.com/fivetwenty-io/jira-client/internal/parsers"
	"github.com/fivetwenty-io/jira-client/internal/rest"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// AuditClient implements jira.AuditClient.
type AuditClient struct {
	rest *rest.Client
}

// NewAuditClient creates a new audit client.
func NewAuditClient(restClient *rest.Client) *AuditClient {
	return &AuditClient{rest: restClient}
}

// GetAuditRecords implements jira.AuditClient.GetAuditRecords.
func (c *AuditClient) GetAuditRecords(
	ctx context.Context, input jira.AuditRecordSearchInput,
) *jira.Promise[*jira.AuditRecordsData] {
	params, err := query.Values(input)
	if err != nil {
		return jira.Rejected[*jira.AuditRecordsData](
			jira.NewTransportError(fmt.Errorf("encoding audit search: %w", err)))
	}

	path := withQuery(constants.APIPathAuditRecords, params)

	return rest.GetAndParse(ctx, c.rest, path, parsers.AuditRecordsDecoder)
}

// AddAuditRecord implements jira.AuditClient.AddAuditRecord.
func (c *AuditClient) AddAuditRecord(ctx context.Context, input jira.AuditRecordInput) *jira.Promise[jira.Void] {
	return rest.Post(ctx, c.rest, constants.APIPathAuditRecords, input, parsers.AuditRecordInputEncoder)
}
