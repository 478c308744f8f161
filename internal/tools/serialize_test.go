package tools

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cleitonmarx/moneypilot/internal/domain"
	"github.com/stretchr/testify/assert"
)

type customJSON struct{}

func (customJSON) MarshalJSON() ([]byte, error) {
	return []byte(`{"custom": true}`), nil
}

type brokenJSON struct{}

func (brokenJSON) MarshalJSON() ([]byte, error) {
	return []byte(`{not json`), nil
}

func (brokenJSON) String() string { return "broken" }

type currency struct {
	Code string
}

func (c currency) String() string { return c.Code }

type plainStruct struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

func TestSerialize(t *testing.T) {
	dumper := domain.NewMockRecordDumper(t)
	dumper.EXPECT().Dump().Return(map[string]any{"id": 1}).Once()

	tests := map[string]struct {
		value  any
		expect string
	}{
		"marshaler":    {value: customJSON{}, expect: `{"custom":true}`},
		"dumper":       {value: dumper, expect: `{"id":1}`},
		"string":       {value: "ok", expect: `"ok"`},
		"float":        {value: 1.5, expect: `1.5`},
		"slice":        {value: []int{1, 2}, expect: `[1,2]`},
		"struct":       {value: plainStruct{Name: "rent", Amount: 900}, expect: `{"name":"rent","amount":900}`},
		"unencodable":  {value: make(chan int), expect: ""},
		"bad-marshaler": {value: brokenJSON{}, expect: `"broken"`},
		"error":         {value: errors.New("account locked"), expect: `"account locked"`},
		"wrapped-error": {value: fmt.Errorf("sync: %w", errors.New("timeout")), expect: `"sync: timeout"`},
		"stringer":      {value: currency{Code: "EUR"}, expect: `"EUR"`},
		"duration":      {value: 1500 * time.Millisecond, expect: `"1.5s"`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Serialize(tt.value)
			if tt.expect == "" {
				assert.Regexp(t, `^"0x[0-9a-f]+"$`, got)
				return
			}
			assert.JSONEq(t, tt.expect, got)
		})
	}
}
