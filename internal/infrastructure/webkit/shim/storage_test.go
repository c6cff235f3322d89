package shim

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port"
)

const storageStub = `
var window = this;
function Store() { this.items = {}; }
Store.prototype.getItem = function (k) { return this.items.hasOwnProperty(k) ? this.items[k] : null; };
Store.prototype.setItem = function (k, v) { this.items[k] = String(v); };
window.localStorage = new Store();
window.sessionStorage = new Store();
var console = { warn: function () {} };
`

func TestStorageScript_Empty(t *testing.T) {
	script, err := StorageScript(nil)
	require.NoError(t, err)
	assert.Empty(t, script)

	script, err = StorageScript(&port.StorageSnapshot{})
	require.NoError(t, err)
	assert.Empty(t, script)
}

func TestStorageScript_SeedsOnce(t *testing.T) {
	script, err := StorageScript(&port.StorageSnapshot{
		Local:   map[string]string{"token": "abc"},
		Session: map[string]string{"tab": "1"},
	})
	require.NoError(t, err)

	vm := sobek.New()
	_, err = vm.RunString(storageStub)
	require.NoError(t, err)
	_, err = vm.RunString(script)
	require.NoError(t, err)

	v, err := vm.RunString(`localStorage.getItem("token") + "/" + sessionStorage.getItem("tab")`)
	require.NoError(t, err)
	assert.Equal(t, "abc/1", v.String())

	_, err = vm.RunString(`localStorage.setItem("token", "changed");`)
	require.NoError(t, err)
	_, err = vm.RunString(script)
	require.NoError(t, err)

	v, err = vm.RunString(`localStorage.getItem("token")`)
	require.NoError(t, err)
	assert.Equal(t, "changed", v.String())
}

func TestParseSnapshot(t *testing.T) {
	assert.Nil(t, ParseSnapshot(nil))
	assert.Nil(t, ParseSnapshot([]byte("{not json")))

	snap := ParseSnapshot([]byte(`{"localStorage":{"a":"1"}}`))
	require.NotNil(t, snap)
	assert.Equal(t, map[string]string{"a": "1"}, snap.Local)
}
