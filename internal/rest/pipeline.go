// Package rest is the asynchronous call pipeline every resource client is
// built on. A call is dispatched without blocking, and its raw response is
// classified by status code once it arrives:
//
//   - 200 and 201 are decoded with the caller's decoder;
//   - 204 (and 200/201) complete void calls without decoding;
//   - anything else becomes a *jira.ClientError carrying the status code
//     and the error records extracted from the body.
//
// Every failure crossing this package is a *jira.ClientError. The pipeline
// never retries.
package rest

import (
	"context"
	"net/http"

	"github.com/fivetwenty-io/jira-client/internal/constants"
	jirahttp "github.com/fivetwenty-io/jira-client/internal/http"
	"github.com/fivetwenty-io/jira-client/internal/jsonparse"
	"github.com/fivetwenty-io/jira-client/pkg/jira"
)

// Transport issues requests and resolves exactly once per call.
type Transport interface {
	Issue(ctx context.Context, req *jirahttp.Request) *jira.Promise[*jirahttp.Response]
}

// Client dispatches calls through a transport.
type Client struct {
	transport Transport
	logger    jira.Logger
}

// NewClient creates a pipeline client. logger may be nil.
func NewClient(transport Transport, logger jira.Logger) *Client {
	return &Client{transport: transport, logger: logger}
}

// Dispatch issues a call and returns the pending raw response. entity may be nil.
func (c *Client) Dispatch(ctx context.Context, method, uri string, entity *Entity) *jira.Promise[*jirahttp.Response] {
	req := &jirahttp.Request{Method: method, Path: uri}

	if entity != nil {
		req.Body = entity.Body
		req.Headers = map[string]string{constants.HeaderContentType: entity.ContentType}
	}

	return c.transport.Issue(ctx, req)
}

// Transform attaches the decoding continuation to a pending raw response.
func Transform[T any](c *Client, raw *jira.Promise[*jirahttp.Response], decoder jsonparse.Decoder[T]) *jira.Promise[T] {
	return jira.Handle(raw, func(resp *jirahttp.Response, err error) (T, error) {
		var zero T

		if err != nil {
			return zero, c.transportFailure(err)
		}

		switch resp.StatusCode {
		case constants.HTTPStatusOK, constants.HTTPStatusCreated:
			value, err := decoder.DecodeBody(resp.Body)
			if err != nil {
				c.debug("Response decode failed", resp.StatusCode, err)

				return zero, jira.NewDecodeFailure(resp.StatusCode, err)
			}

			return value, nil
		default:
			return zero, c.statusFailure(resp)
		}
	})
}

// TransformVoid completes a call that carries no payload.
func TransformVoid(c *Client, raw *jira.Promise[*jirahttp.Response]) *jira.Promise[jira.Void] {
	return jira.Handle(raw, func(resp *jirahttp.Response, err error) (jira.Void, error) {
		if err != nil {
			return jira.Void{}, c.transportFailure(err)
		}

		switch resp.StatusCode {
		case constants.HTTPStatusOK, constants.HTTPStatusCreated, constants.HTTPStatusNoContent:
			return jira.Void{}, nil
		default:
			return jira.Void{}, c.statusFailure(resp)
		}
	})
}

func (c *Client) transportFailure(err error) error {
	if clientErr, ok := jira.AsClientError(err); ok {
		return clientErr
	}

	c.debug("Transport failed", 0, err)

	return jira.NewTransportError(err)
}

func (c *Client) statusFailure(resp *jirahttp.Response) error {
	records, err := ExtractErrors(resp.Body)
	if err != nil {
		c.debug("Error payload unreadable", resp.StatusCode, err)

		return &jira.ClientError{StatusCode: resp.StatusCode, Errors: []jira.ErrorRecord{}, Cause: err}
	}

	if c.logger != nil {
		c.logger.Debug("API call failed", map[string]interface{}{
			"status": resp.StatusCode,
			"errors": len(records),
		})
	}

	return jira.NewStatusError(resp.StatusCode, records)
}

func (c *Client) debug(msg string, status int, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Debug(msg, map[string]interface{}{
		"status": status,
		"error":  err.Error(),
	})
}

// GetAndParse fetches uri and decodes the response.
func GetAndParse[T any](ctx context.Context, c *Client, uri string, decoder jsonparse.Decoder[T]) *jira.Promise[T] {
	return Transform(c, c.Dispatch(ctx, http.MethodGet, uri, nil), decoder)
}

// PostAndParse encodes value, posts it and decodes the response.
func PostAndParse[I, T any](
	ctx context.Context, c *Client, uri string, value I, encoder Encoder[I], decoder jsonparse.Decoder[T],
) *jira.Promise[T] {
	entity, err := Serialize(value, encoder)
	if err != nil {
		return jira.Rejected[T](err)
	}

	return Transform(c, c.Dispatch(ctx, http.MethodPost, uri, entity), decoder)
}

// Post encodes value and posts it, ignoring the response body.
func Post[I any](ctx context.Context, c *Client, uri string, value I, encoder Encoder[I]) *jira.Promise[jira.Void] {
	entity, err := Serialize(value, encoder)
	if err != nil {
		return jira.Rejected[jira.Void](err)
	}

	return TransformVoid(c, c.Dispatch(ctx, http.MethodPost, uri, entity))
}

// PostEmpty posts an empty JSON entity.
func PostEmpty(ctx context.Context, c *Client, uri string) *jira.Promise[jira.Void] {
	return TransformVoid(c, c.Dispatch(ctx, http.MethodPost, uri, EmptyEntity()))
}

// PostRaw posts text that already is JSON.
func PostRaw(ctx context.Context, c *Client, uri, text string) *jira.Promise[jira.Void] {
	return TransformVoid(c, c.Dispatch(ctx, http.MethodPost, uri, RawEntity(text)))
}

// PutAndParse encodes value, puts it and decodes the response.
func PutAndParse[I, T any](
	ctx context.Context, c *Client, uri string, value I, encoder Encoder[I], decoder jsonparse.Decoder[T],
) *jira.Promise[T] {
	entity, err := Serialize(value, encoder)
	if err != nil {
		return jira.Rejected[T](err)
	}

	return Transform(c, c.Dispatch(ctx, http.MethodPut, uri, entity), decoder)
}

// Put encodes value and puts it, ignoring the response body.
func Put[I any](ctx context.Context, c *Client, uri string, value I, encoder Encoder[I]) *jira.Promise[jira.Void] {
	entity, err := Serialize(value, encoder)
	if err != nil {
		return jira.Rejected[jira.Void](err)
	}

	return TransformVoid(c, c.Dispatch(ctx, http.MethodPut, uri, entity))
}

// Delete deletes uri.
func Delete(ctx context.Context, c *Client, uri string) *jira.Promise[jira.Void] {
	return TransformVoid(c, c.Dispatch(ctx, http.MethodDelete, uri, nil))
}
