package odoo

import (
	"fmt"
	"strings"

	"github.com/kolo/xmlrpc"
	"github.com/rs/zerolog/log"
)

const (
	commonEndpoint = "/xmlrpc/2/common"
	objectEndpoint = "/xmlrpc/2/object"
)

// Config is the process-wide connection configuration: the ERP base URL
// and the tenant database name. Resolved once at startup and injected
// here, never read from the environment inside this package.
type Config struct {
	URL string
	DB  string
}

type caller interface {
	Call(method string, args any, reply any) error
}

type dialFunc func(endpoint string) (caller, error)

func xmlrpcDial(baseURL string) dialFunc {
	return func(endpoint string) (caller, error) {
		return xmlrpc.NewClient(strings.TrimRight(baseURL, "/")+endpoint, nil)
	}
}

// Client issues authenticated execute_kw calls against the ERP's object
// endpoint. A client is bound to the credentials it was constructed
// with; build a fresh one per request from the session and never reuse
// it across requests, since the secret can rotate under it.
type Client struct {
	cfg      Config
	uid      int
	password string
	dial     dialFunc
}

func NewClient(cfg Config, uid int, password string) *Client {
	return &Client{
		cfg:      cfg,
		uid:      uid,
		password: password,
		dial:     xmlrpcDial(cfg.URL),
	}
}

// Options carries optional pagination for SearchRead and Search. Zero
// values are omitted from the call entirely; the ERP would read an
// explicit limit of 0 as "no rows".
type Options struct {
	Limit  int
	Offset int
}

func (c *Client) executeKW(model, method string, args []any, kwargs map[string]any) (any, error) {
	conn, err := c.dial(objectEndpoint)
	if err != nil {
		return nil, remoteErr(model, method, err)
	}

	var reply any
	params := []any{c.cfg.DB, c.uid, c.password, model, method, args, kwargs}
	if err := conn.Call("execute_kw", params, &reply); err != nil {
		log.Error().
			Err(err).
			Str("model", model).
			Str("method", method).
			Msg("Odoo RPC call failed")
		return nil, remoteErr(model, method, err)
	}

	return reply, nil
}

// SearchRead returns records matching domain, restricted to the given
// fields. Handlers must always pass an explicit field list; an empty
// one falls back to the remote default set, which is slow on wide
// models.
func (c *Client) SearchRead(model string, domain Domain, fields []string, opts Options) ([]Record, error) {
	kwargs := map[string]any{"fields": fields}
	if opts.Limit > 0 {
		kwargs["limit"] = opts.Limit
	}
	if opts.Offset > 0 {
		kwargs["offset"] = opts.Offset
	}

	reply, err := c.executeKW(model, "search_read", []any{domain.Wire()}, kwargs)
	if err != nil {
		return nil, err
	}

	return toRecords(model, "search_read", reply)
}

// Create inserts a record and returns the id the ERP assigned.
func (c *Client) Create(model string, values map[string]any) (int, error) {
	reply, err := c.executeKW(model, "create", []any{values}, map[string]any{})
	if err != nil {
		return 0, err
	}

	id, ok := toInt(reply)
	if !ok {
		return 0, remoteErr(model, "create", fmt.Errorf("unexpected reply %T", reply))
	}
	return id, nil
}

// Write updates the given records in place. The id list must be
// non-empty; that is a caller bug and is rejected before any remote
// call.
func (c *Client) Write(model string, ids []int, values map[string]any) (bool, error) {
	if len(ids) == 0 {
		return false, fmt.Errorf("odoo: write on %s requires at least one id", model)
	}

	reply, err := c.executeKW(model, "write", []any{ids, values}, map[string]any{})
	if err != nil {
		return false, err
	}

	ok, _ := reply.(bool)
	return ok, nil
}

// Unlink hard-deletes records. Handlers prefer an archive write over
// this for anything other records may reference; it exists for
// completeness.
func (c *Client) Unlink(model string, ids []int) (bool, error) {
	if len(ids) == 0 {
		return false, fmt.Errorf("odoo: unlink on %s requires at least one id", model)
	}

	reply, err := c.executeKW(model, "unlink", []any{ids}, map[string]any{})
	if err != nil {
		return false, err
	}

	ok, _ := reply.(bool)
	return ok, nil
}

// Search returns the ids of records matching domain.
func (c *Client) Search(model string, domain Domain, opts Options) ([]int, error) {
	kwargs := map[string]any{}
	if opts.Limit > 0 {
		kwargs["limit"] = opts.Limit
	}

	reply, err := c.executeKW(model, "search", []any{domain.Wire()}, kwargs)
	if err != nil {
		return nil, err
	}

	items, ok := reply.([]any)
	if !ok {
		return nil, remoteErr(model, "search", fmt.Errorf("unexpected reply %T", reply))
	}

	ids := make([]int, 0, len(items))
	for _, item := range items {
		if id, ok := toInt(item); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Read fetches the given fields of specific records by id.
func (c *Client) Read(model string, ids []int, fields []string) ([]Record, error) {
	reply, err := c.executeKW(model, "read", []any{ids}, map[string]any{"fields": fields})
	if err != nil {
		return nil, err
	}

	return toRecords(model, "read", reply)
}

func toRecords(model, method string, reply any) ([]Record, error) {
	items, ok := reply.([]any)
	if !ok {
		return nil, remoteErr(model, method, fmt.Errorf("unexpected reply %T", reply))
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, remoteErr(model, method, fmt.Errorf("unexpected record %T", item))
		}
		records = append(records, Record(fields))
	}
	return records, nil
}
