package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testCfg = Config{DefaultPageSize: 10, MaxPageSize: 100}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Request
		want Request
	}{
		{"valores validos", Request{Page: 3, PageSize: 25}, Request{Page: 3, PageSize: 25}},
		{"pagina cero", Request{Page: 0, PageSize: 25}, Request{Page: 1, PageSize: 25}},
		{"tamano cero", Request{Page: 2, PageSize: 0}, Request{Page: 2, PageSize: 10}},
		{"tamano excedido", Request{Page: 1, PageSize: 500}, Request{Page: 1, PageSize: 100}},
		{"negativos", Request{Page: -4, PageSize: -1}, Request{Page: 1, PageSize: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in
			got.Normalize(testCfg)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFromQuery(t *testing.T) {
	got := FromQuery(url.Values{"page": {"2"}, "page_size": {"5"}}, testCfg)
	assert.Equal(t, Request{Page: 2, PageSize: 5}, got)

	got = FromQuery(url.Values{"page": {"abc"}}, testCfg)
	assert.Equal(t, Request{Page: 1, PageSize: 10}, got)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, testCfg.Validate())
	assert.Error(t, Config{DefaultPageSize: 0, MaxPageSize: 10}.Validate())
	assert.Error(t, Config{DefaultPageSize: 10, MaxPageSize: 0}.Validate())
	assert.Error(t, Config{DefaultPageSize: 50, MaxPageSize: 10}.Validate())
}
