package breeds

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// EncodeUserRecords serializa la lista completa del slot local como array JSON.
func EncodeUserRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	return json.Marshal(records)
}

// DecodeUserRecords nunca falla: contenido vacío, JSON inválido o algo que no sea
// un array => lista vacía. Entradas sueltas mal formadas se saltean.
func DecodeUserRecords(raw []byte) []Record {
	out := make([]Record, 0)

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return out
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return out
	}

	seen := map[string]struct{}{}
	doc.ForEach(func(_, v gjson.Result) bool {
		rec, ok := decodeUserRecord(v)
		if !ok {
			return true
		}
		if _, dup := seen[rec.ID]; dup {
			return true
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
		return true
	})
	return out
}

func decodeUserRecord(v gjson.Result) (Record, bool) {
	if !v.IsObject() {
		return Record{}, false
	}

	var id string
	switch idv := v.Get("id"); idv.Type {
	case gjson.String:
		id = strings.TrimSpace(idv.Str)
	case gjson.Number:
		id = idv.Raw
	}
	if id == "" {
		return Record{}, false
	}

	name := strings.TrimSpace(v.Get("name").String())
	if name == "" {
		return Record{}, false
	}

	rec := Record{
		ID:          id,
		Name:        name,
		Temperament: normalizeOptional(v.Get("temperament").String(), DefaultTemperament),
		LifeSpan:    normalizeOptional(v.Get("life_span").String(), DefaultLifeSpan),
		Origin:      OriginUser,
	}
	if u := v.Get("image.url"); u.Type == gjson.String && strings.TrimSpace(u.Str) != "" {
		rec.Image.URL = strPtr(u.Str)
	}
	return rec, true
}
