package projection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bondprojector/internal/domain/entity/bonds"
)

// Value is the projected position value after Years, with and without buyout.
type Value struct {
	Years  int
	Value  float64
	Buyout float64
}

// Row holds every projection for one bond. It serializes to the flat shape
// {...bond fields, firstPayout, year1, year1Buyout, ...}.
type Row struct {
	bonds.Bond
	FirstPayout float64
	Values      []Value
}

// Year returns the projection for the given horizon.
func (r Row) Year(years int) (Value, bool) {
	for _, v := range r.Values {
		if v.Years == years {
			return v, true
		}
	}
	return Value{}, false
}

func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fields := []field{
		{"uid", r.UID},
		{"name", r.Name},
		{"rate", r.Rate},
		{"period", r.Period},
		{"buyoutCost", r.BuyoutCost},
		{"capitalizationPeriod", r.CapitalizationPeriod},
		{"firstPayout", r.FirstPayout},
	}
	for _, v := range r.Values {
		fields = append(fields,
			field{yearKey(v.Years), v.Value},
			field{yearKey(v.Years) + "Buyout", v.Buyout},
		)
	}
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		encoded, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.key, err)
		}
		buf.WriteString(strconv.Quote(f.key))
		buf.WriteByte(':')
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Row) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &r.Bond); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.FirstPayout = 0
	if v, ok := raw["firstPayout"]; ok {
		if err := json.Unmarshal(v, &r.FirstPayout); err != nil {
			return fmt.Errorf("decode firstPayout: %w", err)
		}
	}

	values := map[int]*Value{}
	var order []int
	for key, v := range raw {
		years, buyout, ok := parseYearKey(key)
		if !ok {
			continue
		}
		entry, exists := values[years]
		if !exists {
			entry = &Value{Years: years}
			values[years] = entry
			order = append(order, years)
		}
		target := &entry.Value
		if buyout {
			target = &entry.Buyout
		}
		if err := json.Unmarshal(v, target); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
	}
	slices.Sort(order)
	r.Values = make([]Value, 0, len(order))
	for _, y := range order {
		r.Values = append(r.Values, *values[y])
	}
	return nil
}

// Table is the full projection for a set of inputs.
type Table struct {
	Inputs   Inputs   `json:"inputs"`
	Horizons Horizons `json:"horizons"`
	Rows     []Row    `json:"rows"`
}

// UnmarshalJSON decodes a table and lines each row's values up with Horizons.
func (t *Table) UnmarshalJSON(data []byte) error {
	type plain Table
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = Table(decoded)
	for i := range t.Rows {
		t.Rows[i].Values = t.Horizons.order(t.Rows[i].Values)
	}
	return nil
}

type field struct {
	key   string
	value any
}

func yearKey(years int) string {
	return "year" + strconv.Itoa(years)
}

func parseYearKey(key string) (years int, buyout bool, ok bool) {
	rest, found := strings.CutPrefix(key, "year")
	if !found {
		return 0, false, false
	}
	rest, buyout = strings.CutSuffix(rest, "Buyout")
	years, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false, false
	}
	return years, buyout, true
}
