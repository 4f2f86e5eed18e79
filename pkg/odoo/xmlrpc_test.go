package odoo

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	commonURL = "http://odoo.example.com:8069/xmlrpc/2/common"
	objectURL = "http://odoo.example.com:8069/xmlrpc/2/object"

	authOKResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><int>2</int></value></param></params></methodResponse>`

	authRejectedResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><boolean>0</boolean></value></param></params></methodResponse>`

	searchResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><int>11</int></value>
<value><int>12</int></value>
</data></array></value></param></params></methodResponse>`

	readResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><array><data>
<value><struct>
<member><name>id</name><value><int>11</int></value></member>
<member><name>name</name><value><string>ZExample1</string></value></member>
<member><name>email</name><value><string>zexample1@example.com</string></value></member>
</struct></value>
</data></array></value></param></params></methodResponse>`

	writeOKResponse = `<?xml version="1.0"?>
<methodResponse><params><param><value><boolean>1</boolean></value></param></params></methodResponse>`

	accessDeniedFault = `<?xml version="1.0"?>
<methodResponse><fault><value><struct>
<member><name>faultCode</name><value><int>2</int></value></member>
<member><name>faultString</name><value><string>Access Denied</string></value></member>
</struct></value></fault></methodResponse>`
)

// connects against httpmock responders, exercising the real XML-RPC encoding
func mockedConnection(t *testing.T) *Connection {
	httpmock.RegisterResponder(http.MethodPost, commonURL, httpmock.NewStringResponder(http.StatusOK, authOKResponse))
	connection, err := NewConnectionWithTransport(testOptions(), httpmock.DefaultTransport)
	require.NoError(t, err)
	return connection
}

func TestConnectionOverXMLRPC(t *testing.T) {
	t.Run("authenticate yields uid", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		connection := mockedConnection(t)

		assert.Equal(t, int64(2), connection.UID())
	})

	t.Run("authenticate rejected", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder(http.MethodPost, commonURL, httpmock.NewStringResponder(http.StatusOK, authRejectedResponse))

		_, err := NewConnectionWithTransport(testOptions(), httpmock.DefaultTransport)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "authentication rejected")
	})

	t.Run("search decodes ids", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		connection := mockedConnection(t)
		httpmock.RegisterResponder(http.MethodPost, objectURL, httpmock.NewStringResponder(http.StatusOK, searchResponse))

		ids, err := connection.Search("res.partner", []interface{}{})

		require.NoError(t, err)
		assert.Equal(t, []int64{11, 12}, ids)
	})

	t.Run("read decodes records", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		connection := mockedConnection(t)
		httpmock.RegisterResponder(http.MethodPost, objectURL, httpmock.NewStringResponder(http.StatusOK, readResponse))

		records, err := connection.Read("res.partner", []int64{11}, []string{"name", "email"})

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "ZExample1", records[0]["name"])
		assert.Equal(t, "zexample1@example.com", records[0]["email"])
	})

	t.Run("write decodes success indicator", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		connection := mockedConnection(t)
		httpmock.RegisterResponder(http.MethodPost, objectURL, httpmock.NewStringResponder(http.StatusOK, writeOKResponse))

		ok, err := connection.Write("res.partner", 11, map[string]interface{}{"email": "zexample1_1@example.com"})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("server fault surfaces as fault error", func(t *testing.T) {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()
		connection := mockedConnection(t)
		httpmock.RegisterResponder(http.MethodPost, objectURL, httpmock.NewStringResponder(http.StatusOK, accessDeniedFault))

		_, err := connection.Create("res.partner", map[string]interface{}{"name": "ZExample1"})

		require.Error(t, err)
		fault, ok := FaultOf(err)
		require.True(t, ok)
		assert.Equal(t, 2, fault.Code)
		assert.Equal(t, "Access Denied", fault.String)
	})
}
