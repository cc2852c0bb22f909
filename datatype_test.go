package jellyschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostnameDataType(t *testing.T) {
	schema := compileYAML(t, "type: hostname\n")
	assert.True(t, schema.Validate("example.com", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("Example.COM", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("not a hostname!", NewWalkContext()).IsInvalid())
}

func TestEmailDataType(t *testing.T) {
	schema := compileYAML(t, "type: email\n")
	assert.True(t, schema.Validate("a@example.com", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("not-an-email", NewWalkContext()).IsInvalid())
}

func TestDateDataTypeLeapYears(t *testing.T) {
	schema := compileYAML(t, "type: date\n")
	assert.True(t, schema.Validate("2020-02-29", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("2021-02-29", NewWalkContext()).IsInvalid())
	assert.True(t, schema.Validate("2000-02-29", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("1900-02-29", NewWalkContext()).IsInvalid())
}

func TestTimeDataTypeLeapSecond(t *testing.T) {
	schema := compileYAML(t, "type: time\n")
	assert.True(t, schema.Validate("23:59:60", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("24:00:00", NewWalkContext()).IsInvalid())
}

func TestDateTimeDataType(t *testing.T) {
	schema := compileYAML(t, "type: date-time\n")
	assert.True(t, schema.Validate("2020-02-29T23:59:60", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("2020-02-29", NewWalkContext()).IsInvalid())
}

func TestUUIDv4DataType(t *testing.T) {
	schema := compileYAML(t, "type: uuidv4\n")
	assert.True(t, schema.Validate("not-a-uuid", NewWalkContext()).IsInvalid())

	generated, err := schema.Generate(NewWalkContext())
	assert.NoError(t, err)
	s, ok := generated.(string)
	assert.True(t, ok)
	assert.True(t, schema.Validate(s, NewWalkContext()).IsValid())
}

func TestPortDataType(t *testing.T) {
	schema := compileYAML(t, "type: port\n")
	assert.True(t, schema.Validate(0, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate(65535, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate(-1, NewWalkContext()).IsInvalid())
	assert.True(t, schema.Validate(65536, NewWalkContext()).IsInvalid())
}

func TestBinaryDataType(t *testing.T) {
	schema := compileYAML(t, "type: binary\n")
	assert.True(t, schema.Validate("aGVsbG8=", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("not base64!!", NewWalkContext()).IsInvalid())
}

func TestIPAddressDataTypes(t *testing.T) {
	schema := compileYAML(t, "type: ipv4-address\n")
	assert.True(t, schema.Validate("192.168.1.1", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("::1", NewWalkContext()).IsInvalid())

	schema = compileYAML(t, "type: ipv6-address\n")
	assert.True(t, schema.Validate("::1", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("192.168.1.1", NewWalkContext()).IsInvalid())
}

func TestChronyAndDnsmasqAddress(t *testing.T) {
	schema := compileYAML(t, "type: chrony-address\n")
	assert.True(t, schema.Validate("pool.ntp.org", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("10.0.0.1", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("!!!", NewWalkContext()).IsInvalid())

	schema = compileYAML(t, "type: dnsmasq-address\n")
	assert.True(t, schema.Validate("10.0.0.1", NewWalkContext()).IsValid())
}

func TestURIDataType(t *testing.T) {
	schema := compileYAML(t, "type: uri\n")
	assert.True(t, schema.Validate("https://example.com/path", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("not a uri", NewWalkContext()).IsInvalid())
}

func TestStringlistDataType(t *testing.T) {
	schema := compileYAML(t, "type: stringlist\n")
	assert.True(t, schema.Validate([]any{"a", "b"}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate([]any{"a", 1}, NewWalkContext()).IsInvalid())
}
