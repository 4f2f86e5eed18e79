package odoo

import (
	"net/http"

	"github.com/kolo/xmlrpc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/erp-tools/odooconn/pkg/log"
)

// NoRecordID is returned by GetID when no record matches the domain.
const NoRecordID = int64(-1)

// Caller performs a single method call against one XML-RPC endpoint. It
// abstracts *xmlrpc.Client so that argument shaping can be tested without a
// live server.
type Caller interface {
	Call(serviceMethod string, args interface{}, reply interface{}) error
}

// Connection - handle to an authenticated Odoo session. It owns one client for
// the common (authentication) endpoint and one for the object (execute_kw)
// endpoint plus the session uid obtained at construction.
type Connection struct {
	options ConnectionOptions
	common  Caller
	models  Caller
	uid     int64
	logger  *logrus.Entry
}

// NewConnection builds the XML-RPC clients for the common and object endpoints
// and authenticates with the configured credentials. Authentication failure is
// fatal to the connection; there is no retry.
func NewConnection(options ConnectionOptions) (*Connection, error) {
	return NewConnectionWithTransport(options, nil)
}

// NewConnectionWithTransport is NewConnection with a caller-supplied transport,
// e.g. to configure timeouts or proxies. A nil transport uses http.DefaultTransport.
func NewConnectionWithTransport(options ConnectionOptions, transport http.RoundTripper) (*Connection, error) {
	base := options.endpointBase()
	common, err := xmlrpc.NewClient(base+"/xmlrpc/2/common", transport)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prepare client for common endpoint of %v", base)
	}
	models, err := xmlrpc.NewClient(base+"/xmlrpc/2/object", transport)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prepare client for object endpoint of %v", base)
	}
	return NewConnectionWithCallers(options, common, models)
}

// NewConnectionWithCallers authenticates against the given endpoint callers
// and returns the ready-to-use connection.
func NewConnectionWithCallers(options ConnectionOptions, common, models Caller) (*Connection, error) {
	log.RegisterSecret(options.Password)
	logger := log.Entry().WithField("package", "erp-tools/odooconn/pkg/odoo")

	connection := &Connection{
		options: options,
		common:  common,
		models:  models,
		logger:  logger,
	}

	var reply interface{}
	err := common.Call("authenticate", []interface{}{options.Database, options.Username, options.Password, map[string]interface{}{}}, &reply)
	if err != nil {
		return nil, errors.Wrapf(err, "authentication request to database %v failed", options.Database)
	}
	uid, ok := sessionUID(reply)
	if !ok {
		return nil, errors.Errorf("authentication rejected for user %v on database %v", options.Username, options.Database)
	}
	connection.uid = uid
	logger.Debugf("authenticated on database %v with uid %v", options.Database, uid)
	return connection, nil
}

// UID returns the session identifier obtained at authentication.
func (connection *Connection) UID() int64 {
	return connection.uid
}

// call relays one execute_kw invocation with the fixed envelope
// (database, uid, password, model, method, args[, kwargs]).
func (connection *Connection) call(model, method string, args []interface{}, kwargs map[string]interface{}, reply interface{}) error {
	params := []interface{}{connection.options.Database, connection.uid, connection.options.Password, model, method, args}
	if kwargs != nil {
		params = append(params, kwargs)
	}
	err := connection.models.Call("execute_kw", params, reply)
	if err != nil {
		connection.logger.WithError(err).
			WithField("model", model).
			WithField("method", method).
			Errorf("execute_kw failed with args %v", args)
		return errors.Wrapf(err, "%v on model %v failed", method, model)
	}
	return nil
}

// Create creates a single record and returns its id.
func (connection *Connection) Create(model string, values map[string]interface{}) (int64, error) {
	var reply interface{}
	if err := connection.call(model, "create", []interface{}{values}, nil, &reply); err != nil {
		return 0, err
	}
	return asID(reply)
}

// LoadResult - outcome of a bulk load. IDs holds the created record ids,
// Messages the per-row diagnostics the server produced. On failure the server
// reports no ids and one or more messages.
type LoadResult struct {
	IDs      []int64
	Messages []map[string]interface{}
}

// Load creates multiple records from a header plus a value matrix and returns
// the created ids. Header and matrix are each wrapped in one extra enclosing
// list; the server requires this exact shape.
func (connection *Connection) Load(model string, header []string, rows [][]interface{}) (LoadResult, error) {
	var result LoadResult
	var reply interface{}
	args := []interface{}{[]interface{}{header}, []interface{}{rows}}
	if err := connection.call(model, "load", args, nil, &reply); err != nil {
		return result, err
	}
	outcome, ok := reply.(map[string]interface{})
	if !ok {
		return result, errors.Errorf("unexpected load result of type %T", reply)
	}
	if ids, err := asIDs(outcome["ids"]); err == nil {
		result.IDs = ids
	}
	if messages, ok := outcome["messages"].([]interface{}); ok {
		for _, message := range messages {
			if entry, ok := message.(map[string]interface{}); ok {
				result.Messages = append(result.Messages, entry)
			}
		}
	}
	return result, nil
}

// Count returns the number of records matching the domain, capped at limit
// when limit is greater than zero.
func (connection *Connection) Count(model string, domain []interface{}, limit int) (int64, error) {
	var reply interface{}
	kwargs := map[string]interface{}{"limit": limit}
	if err := connection.call(model, "search_count", domain, kwargs, &reply); err != nil {
		return 0, err
	}
	return asID(reply)
}

// FieldsGet returns the definition of the fields of the model. An empty
// attribute list returns all attributes.
func (connection *Connection) FieldsGet(model string, attributes []string) (map[string]interface{}, error) {
	var reply interface{}
	var kwargs map[string]interface{}
	if len(attributes) > 0 {
		kwargs = map[string]interface{}{"attributes": attributes}
	}
	if err := connection.call(model, "fields_get", []interface{}{}, kwargs, &reply); err != nil {
		return nil, err
	}
	fields, ok := reply.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("unexpected fields_get result of type %T", reply)
	}
	return fields, nil
}

// GetID returns the id of the first record matching the domain, or NoRecordID
// if none is found.
func (connection *Connection) GetID(model string, domain []interface{}) (int64, error) {
	ids, err := connection.searchWithKwargs(model, domain, map[string]interface{}{"limit": 1})
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return NoRecordID, nil
	}
	return ids[0], nil
}

// Search returns the ids of the records matching the domain.
func (connection *Connection) Search(model string, domain []interface{}) ([]int64, error) {
	return connection.searchWithKwargs(model, domain, nil)
}

func (connection *Connection) searchWithKwargs(model string, domain []interface{}, kwargs map[string]interface{}) ([]int64, error) {
	var reply interface{}
	if err := connection.call(model, "search", domain, kwargs, &reply); err != nil {
		return nil, err
	}
	return asIDs(reply)
}

// Read returns the requested fields of the records with the given ids.
func (connection *Connection) Read(model string, ids []int64, fields []string) ([]map[string]interface{}, error) {
	var reply interface{}
	kwargs := map[string]interface{}{"fields": fields}
	if err := connection.call(model, "read", []interface{}{ids}, kwargs, &reply); err != nil {
		return nil, err
	}
	return asRecords(reply)
}

// SearchRead combines search and read server-side and returns the requested
// fields of the records matching the domain.
func (connection *Connection) SearchRead(model string, domain []interface{}, offset, limit int, fields []string) ([]map[string]interface{}, error) {
	var reply interface{}
	kwargs := map[string]interface{}{"offset": offset, "limit": limit, "fields": fields}
	if err := connection.call(model, "search_read", domain, kwargs, &reply); err != nil {
		return nil, err
	}
	return asRecords(reply)
}

// Write updates the fields of the record with the given id.
func (connection *Connection) Write(model string, id int64, values map[string]interface{}) (bool, error) {
	var reply interface{}
	args := []interface{}{[]interface{}{id}, values}
	if err := connection.call(model, "write", args, nil, &reply); err != nil {
		return false, err
	}
	return asBool(reply)
}

// Unlink deletes the records with the given ids.
func (connection *Connection) Unlink(model string, ids []int64) (bool, error) {
	var reply interface{}
	if err := connection.call(model, "unlink", []interface{}{ids}, nil, &reply); err != nil {
		return false, err
	}
	return asBool(reply)
}

// Execute calls an arbitrary method of the model with positional arguments
// and passes the result through untouched.
func (connection *Connection) Execute(model, method string, args []interface{}) (interface{}, error) {
	var reply interface{}
	if err := connection.call(model, method, args, nil, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ExecuteKw calls an arbitrary method of the model with positional and keyword
// arguments and passes the result through untouched.
func (connection *Connection) ExecuteKw(model, method string, args []interface{}, kwargs map[string]interface{}) (interface{}, error) {
	var reply interface{}
	if kwargs == nil {
		kwargs = map[string]interface{}{}
	}
	if err := connection.call(model, method, args, kwargs, &reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// sessionUID extracts the uid from the authenticate reply. The server answers
// with an integer on success and boolean false on bad credentials.
func sessionUID(reply interface{}) (int64, bool) {
	uid, err := asID(reply)
	if err != nil || uid <= 0 {
		return 0, false
	}
	return uid, true
}

func asID(value interface{}) (int64, error) {
	switch id := value.(type) {
	case int64:
		return id, nil
	case int32:
		return int64(id), nil
	case int:
		return int64(id), nil
	case float64:
		return int64(id), nil
	default:
		return 0, errors.Errorf("expected an integer result, got %T", value)
	}
}

func asIDs(value interface{}) ([]int64, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, errors.Errorf("expected a list of ids, got %T", value)
	}
	ids := make([]int64, 0, len(list))
	for _, entry := range list {
		id, err := asID(entry)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func asBool(value interface{}) (bool, error) {
	ok, isBool := value.(bool)
	if !isBool {
		return false, errors.Errorf("expected a boolean result, got %T", value)
	}
	return ok, nil
}

func asRecords(value interface{}) ([]map[string]interface{}, error) {
	list, ok := value.([]interface{})
	if !ok {
		return nil, errors.Errorf("expected a list of records, got %T", value)
	}
	records := make([]map[string]interface{}, 0, len(list))
	for _, entry := range list {
		record, ok := entry.(map[string]interface{})
		if !ok {
			return nil, errors.Errorf("expected a record mapping, got %T", entry)
		}
		records = append(records, record)
	}
	return records, nil
}
